package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/laudohub/laudohub-api/internal/converter"
	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/delivery/http/middleware"
	"github.com/laudohub/laudohub-api/internal/domain/entity"
	"github.com/laudohub/laudohub-api/internal/domain/repository"
	"github.com/laudohub/laudohub-api/internal/laudo"
	"github.com/laudohub/laudohub-api/internal/service"
	"github.com/laudohub/laudohub-api/internal/template"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReportNotFound   = errors.New("report not found")
	ErrReportNotOwned   = errors.New("report does not belong to you")
	ErrTemplateNotFound = errors.New("template not found")
	ErrReportNotReady   = errors.New("report is awaiting payment")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrNoPendingPayment = errors.New("report has no pending payment")
)

// ReportDownload is the plain-text rendering of a ready report.
type ReportDownload struct {
	Filename string
	Content  string
}

type ReportUsecase interface {
	ListReports(ctx context.Context) (*dto.ReportListResponse, error)
	GetReport(ctx context.Context, reportID uuid.UUID) (*dto.ReportResponse, error)
	CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.CreateReportResponse, error)
	DownloadReport(ctx context.Context, reportID uuid.UUID) (*ReportDownload, error)
	CollectPayment(ctx context.Context, reportID uuid.UUID, req *dto.CollectPaymentRequest) error
	ConfirmPayment(ctx context.Context, req *dto.PaymentWebhookRequest) error
}

type reportUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	registry        *template.Registry
	reportRepo      repository.ReportRepository
	patientRepo     repository.PatientRepository
	paymentRepo     repository.PaymentRepository
	paymentService  *service.PaymentService
	whatsappService *service.WhatsAppService
	statsCache      *service.StatsCache
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	registry *template.Registry,
	reportRepo repository.ReportRepository,
	patientRepo repository.PatientRepository,
	paymentRepo repository.PaymentRepository,
	paymentService *service.PaymentService,
	whatsappService *service.WhatsAppService,
	statsCache *service.StatsCache,
) ReportUsecase {
	return &reportUsecase{
		db:              db,
		log:             log,
		registry:        registry,
		reportRepo:      reportRepo,
		patientRepo:     patientRepo,
		paymentRepo:     paymentRepo,
		paymentService:  paymentService,
		whatsappService: whatsappService,
		statsCache:      statsCache,
	}
}

func (u *reportUsecase) ListReports(ctx context.Context) (*dto.ReportListResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	reports, err := u.reportRepo.FindByProfessional(ctx, u.db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to list reports for %s: %+v", professionalID, err)
		return nil, err
	}

	return &dto.ReportListResponse{
		Reports: converter.ReportsToResponses(reports),
		Total:   len(reports),
	}, nil
}

func (u *reportUsecase) GetReport(ctx context.Context, reportID uuid.UUID) (*dto.ReportResponse, error) {
	report, err := u.ownedReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return converter.ReportToResponse(report), nil
}

// CreateReport runs the full pipeline: template lookup, schema derivation and
// validation, assembly, status decision, then a single transaction persisting
// the report (and checkout, when payment is required). Validation accumulates
// every field error; the assembly warning is carried to the response instead
// of failing the creation.
func (u *reportUsecase) CreateReport(ctx context.Context, req *dto.CreateReportRequest) (*dto.CreateReportResponse, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	tmpl, err := u.registry.Get(req.TemplateID)
	if err != nil {
		return nil, ErrTemplateNotFound
	}

	sub := laudo.Submission{
		PatientID:       req.PatientID,
		RequiresPayment: req.RequiresPayment,
		Price:           req.Price,
		Fields:          req.Fields,
	}

	schema := laudo.DeriveSchema(tmpl)
	if verrs := schema.Validate(sub); verrs != nil {
		return nil, verrs
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, laudo.ValidationErrors{"patientId": "Selecione um paciente"}
	}

	lookup := &ownedPatientLookup{
		db:             u.db,
		repo:           u.patientRepo,
		professionalID: professionalID,
	}
	assembly := laudo.Assemble(ctx, tmpl, sub, lookup)
	if assembly.Warning != "" {
		u.log.Warnf("Report assembly warning: %s", assembly.Warning)
	}

	report := &entity.Report{
		ProfessionalID:  professionalID,
		PatientID:       patientID,
		TemplateID:      tmpl.ID,
		Title:           assembly.Title,
		Body:            assembly.Body,
		Price:           req.Price,
		RequiresPayment: req.RequiresPayment,
		Status:          laudo.DecideStatus(req.RequiresPayment),
	}

	var checkoutURL string

	// Report and checkout commit together or not at all
	txErr := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.reportRepo.Create(ctx, tx, report); err != nil {
			return err
		}

		if report.RequiresPayment {
			providerID := u.paymentService.NewProviderID()
			payment := &entity.Payment{
				ReportID:   report.ID,
				ProviderID: providerID,
				Status:     entity.PaymentStatusPending,
				Amount:     report.Price,
			}
			if err := u.paymentRepo.Create(ctx, tx, payment); err != nil {
				return err
			}
			checkoutURL = u.paymentService.CheckoutURL(providerID)
		}

		return nil
	})
	if txErr != nil {
		if isForeignKeyError(txErr, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Errorf("Failed to create report: %+v", txErr)
		return nil, txErr
	}

	u.statsCache.Invalidate(ctx, professionalID)
	u.log.Infof("Report created: id=%s, template=%s, status=%s", report.ID, tmpl.ID, report.Status)

	// Reload with patient preloaded for the response
	full, err := u.reportRepo.FindByID(ctx, u.db, report.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload report %s: %+v", report.ID, err)
		full = report
	}

	return &dto.CreateReportResponse{
		Report:      *converter.ReportToResponse(full),
		CheckoutURL: checkoutURL,
		Warning:     assembly.Warning,
	}, nil
}

// DownloadReport renders the laudo as plain text. Reports awaiting payment
// are not downloadable.
func (u *reportUsecase) DownloadReport(ctx context.Context, reportID uuid.UUID) (*ReportDownload, error) {
	report, err := u.ownedReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if !report.IsReady() {
		return nil, ErrReportNotReady
	}

	content := fmt.Sprintf(
		"LAUDO MÉDICO\n\nTítulo: %s\n\nConteúdo:\n%s\n\nData: %s\n",
		report.Title,
		report.Body,
		report.CreatedAt.Format("02/01/2006"),
	)

	return &ReportDownload{
		Filename: fmt.Sprintf("laudo-%s.txt", report.ID),
		Content:  content,
	}, nil
}

// CollectPayment sends the checkout link to the patient over WhatsApp.
func (u *reportUsecase) CollectPayment(ctx context.Context, reportID uuid.UUID, req *dto.CollectPaymentRequest) error {
	report, err := u.ownedReport(ctx, reportID)
	if err != nil {
		return err
	}

	if !report.IsPendingPayment() {
		return ErrNoPendingPayment
	}

	payment, err := u.paymentRepo.FindByReportID(ctx, u.db, report.ID)
	if err != nil {
		u.log.Warnf("Failed to find payment for report %s: %+v", report.ID, err)
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	checkoutURL := u.paymentService.CheckoutURL(payment.ProviderID)
	return u.whatsappService.SendPaymentRequest(ctx, &report.Patient, report, checkoutURL, req.Phone)
}

// ConfirmPayment handles the provider webhook. A paid confirmation performs
// the sole status transition pending_payment -> ready; it is never reversed.
func (u *reportUsecase) ConfirmPayment(ctx context.Context, req *dto.PaymentWebhookRequest) error {
	payment, err := u.paymentRepo.FindByProviderID(ctx, u.db, req.ProviderID)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", req.ProviderID, err)
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	if !payment.IsPending() {
		// Provider retries are expected; the transition already happened
		u.log.Infof("Ignoring webhook for settled payment %s (status=%s)", payment.ID, payment.Status)
		return nil
	}

	if req.Status == "failed" {
		if err := u.paymentRepo.UpdateStatus(ctx, u.db, payment.ID, entity.PaymentStatusFailed); err != nil {
			u.log.Warnf("Failed to mark payment %s failed: %+v", payment.ID, err)
			return err
		}
		return nil
	}

	txErr := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.paymentRepo.UpdateStatus(ctx, tx, payment.ID, entity.PaymentStatusPaid); err != nil {
			return err
		}
		return u.reportRepo.UpdateStatus(ctx, tx, payment.ReportID, entity.ReportStatusReady)
	})
	if txErr != nil {
		u.log.Errorf("Failed to confirm payment %s: %+v", payment.ID, txErr)
		return txErr
	}

	u.statsCache.Invalidate(ctx, payment.Report.ProfessionalID)
	u.log.Infof("Payment confirmed: payment=%s, report=%s", payment.ID, payment.ReportID)
	return nil
}

func (u *reportUsecase) ownedReport(ctx context.Context, reportID uuid.UUID) (*entity.Report, error) {
	professionalID, ok := middleware.GetProfessionalIDFromContext(ctx)
	if !ok {
		return nil, errors.New("professional not found in context")
	}

	report, err := u.reportRepo.FindByID(ctx, u.db, reportID)
	if err != nil {
		u.log.Warnf("Failed to find report %s: %+v", reportID, err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	if report.ProfessionalID != professionalID {
		return nil, ErrReportNotOwned
	}
	return report, nil
}

// ownedPatientLookup resolves patients for assembly, restricted to the
// authenticated professional's roster. A patient of another professional
// behaves like a lookup miss.
type ownedPatientLookup struct {
	db             *gorm.DB
	repo           repository.PatientRepository
	professionalID uuid.UUID
}

func (l *ownedPatientLookup) FindPatient(ctx context.Context, id string) (*entity.Patient, error) {
	patientID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	patient, err := l.repo.FindByID(ctx, l.db, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.ProfessionalID != l.professionalID {
		return nil, nil
	}
	return patient, nil
}
