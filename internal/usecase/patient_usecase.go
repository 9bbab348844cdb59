package usecase

import (
	"context"
	"errors"

	"github.com/laudohub/laudohub-api/internal/converter"
	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/delivery/http/middleware"
	"github.com/laudohub/laudohub-api/internal/domain/entity"
	"github.com/laudohub/laudohub-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrPatientNotOwned = errors.New("patient does not belong to you")
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
	GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID uuid.UUID) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	patients, err := u.patientRepo.FindByProfessional(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to list patients for %s: %+v", professionalID, err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.ownedPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	patient := &entity.Patient{
		ProfessionalID: professionalID,
		Name:           req.Name,
		Phone:          req.Phone,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%s, professional=%s", patient.ID, professionalID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.ownedPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	patient.Name = req.Name
	patient.Phone = req.Phone

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", patientID, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientID uuid.UUID) error {
	if _, err := u.ownedPatient(ctx, patientID); err != nil {
		return err
	}

	if err := u.patientRepo.Delete(ctx, u.db, patientID); err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", patientID, err)
		return err
	}

	u.log.Infof("Patient deleted: id=%s", patientID)
	return nil
}

// ownedPatient loads a patient and verifies it belongs to the authenticated
// professional.
func (u *patientUsecase) ownedPatient(ctx context.Context, patientID uuid.UUID) (*entity.Patient, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if patient.ProfessionalID != professionalID {
		return nil, ErrPatientNotOwned
	}
	return patient, nil
}
