package converter

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laudohub/laudohub-api/internal/delivery/dto"
	"github.com/laudohub/laudohub-api/internal/domain/entity"
	"github.com/laudohub/laudohub-api/internal/schedule"
)

// AppointmentToResponse converts an Appointment entity to DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:           appointment.ID,
		PatientID:    appointment.PatientID,
		Title:        appointment.Title,
		Description:  appointment.Description,
		StartTime:    appointment.StartTime,
		EndTime:      appointment.EndTime,
		Status:       string(appointment.Status),
		Type:         string(appointment.Type),
		WhatsappSent: appointment.WhatsappSent,
		ReminderSent: appointment.ReminderSent,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}

	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// TimeSlotsToResponses converts a computed slot grid to DTOs
func TimeSlotsToResponses(slots []schedule.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.TimeSlotResponse{
			Time:        slot.Time,
			Available:   slot.Available,
			Appointment: AppointmentToResponse(slot.Appointment),
		}
	}
	return responses
}

// CalendarDaysToResponses converts computed schedule days to DTOs
func CalendarDaysToResponses(days []schedule.Day) []dto.CalendarDayResponse {
	responses := make([]dto.CalendarDayResponse, len(days))
	for i, day := range days {
		responses[i] = dto.CalendarDayResponse{
			Date:           day.Date.Format(time.RFC3339),
			DayOfWeek:      strings.ToLower(day.Weekday.String()),
			IsToday:        day.IsToday,
			Appointments:   AppointmentsToResponses(day.Appointments),
			AvailableSlots: day.AvailableSlots,
		}
	}
	return responses
}
