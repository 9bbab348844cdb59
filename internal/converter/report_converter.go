package converter

import (
	"github.com/google/uuid"

	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/domain/entity"
)

// ReportToResponse converts a Report entity to ReportResponse DTO
func ReportToResponse(report *entity.Report) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	response := &dto.ReportResponse{
		ID:              report.ID,
		ProfessionalID:  report.ProfessionalID,
		PatientID:       report.PatientID,
		TemplateID:      report.TemplateID,
		Title:           report.Title,
		Body:            report.Body,
		Price:           report.Price,
		RequiresPayment: report.RequiresPayment,
		Status:          string(report.Status),
		CreatedAt:       report.CreatedAt,
		UpdatedAt:       report.UpdatedAt,
	}

	// Include patient info if preloaded
	if report.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&report.Patient)
	}

	return response
}

// ReportsToResponses converts a slice of Report entities to DTOs
func ReportsToResponses(reports []entity.Report) []dto.ReportResponse {
	responses := make([]dto.ReportResponse, len(reports))
	for i, report := range reports {
		resp := ReportToResponse(&report)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
