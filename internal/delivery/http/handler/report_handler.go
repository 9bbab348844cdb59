package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/laudo"
	"github.com/laudohub/laudohub-api/internal/usecase"
	"github.com/laudohub/laudohub-api/pkg/response"
	"github.com/laudohub/laudohub-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.ListReports(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list reports")
		return
	}

	response.Success(w, http.StatusOK, "Reports retrieved successfully", reports)
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	report, err := h.reportUsecase.GetReport(r.Context(), reportID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case usecase.ErrReportNotOwned:
			response.Forbidden(w, "Report does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get report")
		}
		return
	}

	response.Success(w, http.StatusOK, "Report retrieved successfully", report)
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	report, err := h.reportUsecase.CreateReport(r.Context(), &req)
	if err != nil {
		var fieldErrs laudo.ValidationErrors
		switch {
		case errors.As(err, &fieldErrs):
			response.ValidationError(w, fieldErrs)
		case err == usecase.ErrTemplateNotFound:
			response.NotFound(w, "Template not found")
		case err == usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create report")
		}
		return
	}

	if report.Warning != "" {
		response.SuccessWithWarning(w, http.StatusCreated, "Report created successfully", report, report.Warning)
		return
	}
	response.Success(w, http.StatusCreated, "Report created successfully", report)
}

func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	download, err := h.reportUsecase.DownloadReport(r.Context(), reportID)
	if err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case usecase.ErrReportNotOwned:
			response.Forbidden(w, "Report does not belong to you")
		case usecase.ErrReportNotReady:
			response.PaymentRequired(w, "Report is awaiting payment")
		default:
			response.InternalServerError(w, "Failed to download report")
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(download.Content))
}

func (h *ReportHandler) Collect(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid report ID", nil)
		return
	}

	var req dto.CollectPaymentRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.reportUsecase.CollectPayment(r.Context(), reportID, &req); err != nil {
		switch err {
		case usecase.ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case usecase.ErrReportNotOwned:
			response.Forbidden(w, "Report does not belong to you")
		case usecase.ErrNoPendingPayment:
			response.Error(w, http.StatusConflict, "Report has no pending payment", nil)
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		default:
			response.InternalServerError(w, "Failed to send payment request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment request sent successfully", nil)
}

// Webhook receives payment status updates from the checkout provider. It is
// unauthenticated and must stay idempotent.
func (h *ReportHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.reportUsecase.ConfirmPayment(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		default:
			response.InternalServerError(w, "Failed to process payment update")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment processed successfully", nil)
}
