package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/laudohub/laudohub-api/internal/converter"
	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/delivery/http/middleware"
	"github.com/laudohub/laudohub-api/internal/domain/entity"
	"github.com/laudohub/laudohub-api/internal/domain/repository"
	"github.com/laudohub/laudohub-api/internal/schedule"
	"github.com/laudohub/laudohub-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentNotOwned  = errors.New("appointment does not belong to you")
	ErrInvalidTimeRange     = errors.New("end time must be after start time")
	ErrInvalidTimeFormat    = errors.New("invalid time format, use RFC 3339")
	ErrAppointmentCancelled = errors.New("appointment is cancelled")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
	GetCalendar(ctx context.Context, year int, month time.Month) (*dto.CalendarResponse, error)
	GetDaySlots(ctx context.Context, date time.Time) (*dto.DaySlotsResponse, error)
	SendReminder(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	whatsappService *service.WhatsAppService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	whatsappService *service.WhatsAppService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		whatsappService: whatsappService,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	appointments, err := u.appointmentRepo.FindByProfessional(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", professionalID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.ownedAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil || patient.ProfessionalID != professionalID {
		return nil, ErrPatientNotFound
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !endTime.After(startTime) {
		return nil, ErrInvalidTimeRange
	}

	appointment := &entity.Appointment{
		ProfessionalID: professionalID,
		PatientID:      patientID,
		Title:          req.Title,
		Description:    req.Description,
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         entity.AppointmentStatusScheduled,
		Type:           entity.AppointmentType(req.Type),
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	u.log.Infof("Appointment created: id=%s, patient=%s", appointment.ID, patientID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.ownedAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		appointment.Title = req.Title
	}
	if req.Description != "" {
		appointment.Description = req.Description
	}
	if req.StartTime != "" {
		startTime, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.StartTime = startTime
	}
	if req.EndTime != "" {
		endTime, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.EndTime = endTime
	}
	if !appointment.EndTime.After(appointment.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}

	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	if _, err := u.ownedAppointment(ctx, appointmentID); err != nil {
		return err
	}

	if err := u.appointmentRepo.Delete(ctx, u.db, appointmentID); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}

	return nil
}

// GetCalendar returns the month view with per-day appointments and free slot
// counts.
func (u *appointmentUsecase) GetCalendar(ctx context.Context, year int, month time.Month) (*dto.CalendarResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	appointments, err := u.appointmentRepo.FindByProfessionalBetween(ctx, u.db, professionalID, from, to)
	if err != nil {
		u.log.Warnf("Failed to load appointments for calendar: %+v", err)
		return nil, err
	}

	days := schedule.MonthDays(year, month, appointments, time.Now().UTC())

	return &dto.CalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  converter.CalendarDaysToResponses(days),
	}, nil
}

// GetDaySlots returns the half-hour slot grid for one date.
func (u *appointmentUsecase) GetDaySlots(ctx context.Context, date time.Time) (*dto.DaySlotsResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	appointments, err := u.appointmentRepo.FindByProfessionalBetween(ctx, u.db, professionalID, from, to)
	if err != nil {
		u.log.Warnf("Failed to load appointments for day slots: %+v", err)
		return nil, err
	}

	slots := schedule.TimeSlots(from, appointments)

	return &dto.DaySlotsResponse{
		Date:  from.Format("2006-01-02"),
		Slots: converter.TimeSlotsToResponses(slots),
	}, nil
}

// SendReminder sends a WhatsApp reminder for an upcoming appointment and
// records the send.
func (u *appointmentUsecase) SendReminder(ctx context.Context, appointmentID uuid.UUID) error {
	appointment, err := u.ownedAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}

	if appointment.IsCancelled() {
		return ErrAppointmentCancelled
	}
	if appointment.Patient.ID == uuid.Nil {
		return fmt.Errorf("appointment %s has no patient loaded", appointmentID)
	}

	if err := u.whatsappService.SendAppointmentReminder(ctx, appointment); err != nil {
		return err
	}

	appointment.MarkReminderSent()
	if err := u.appointmentRepo.Update(ctx, u.db, appointment); err != nil {
		// The message already went out; log and keep the API response positive
		u.log.Warnf("Failed to record reminder for appointment %s: %+v", appointmentID, err)
	}

	return nil
}

func (u *appointmentUsecase) ownedAppointment(ctx context.Context, appointmentID uuid.UUID) (*entity.Appointment, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.ProfessionalID != professionalID {
		return nil, ErrAppointmentNotOwned
	}
	return appointment, nil
}
