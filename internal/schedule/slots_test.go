package schedule

import (
	"testing"
	"time"

	"github.com/laudohub/laudohub-api/internal/domain/entity"
)

func TestTimeSlotsGrid(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	slots := TimeSlots(date, nil)
	if len(slots) != 20 {
		t.Fatalf("got %d slots, want 20", len(slots))
	}
	if slots[0].Time != "08:00" {
		t.Errorf("first slot = %q, want 08:00", slots[0].Time)
	}
	if slots[len(slots)-1].Time != "17:30" {
		t.Errorf("last slot = %q, want 17:30", slots[len(slots)-1].Time)
	}
	for _, slot := range slots {
		if !slot.Available {
			t.Errorf("slot %s should be available on an empty day", slot.Time)
		}
	}
}

func TestTimeSlotsMarksBookedSlot(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	appointments := []entity.Appointment{
		{
			Title:     "Consulta",
			StartTime: time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC),
			Status:    entity.AppointmentStatusScheduled,
		},
	}

	slots := TimeSlots(date, appointments)

	var booked *TimeSlot
	for i := range slots {
		if slots[i].Time == "09:30" {
			booked = &slots[i]
		} else if !slots[i].Available {
			t.Errorf("slot %s unexpectedly unavailable", slots[i].Time)
		}
	}
	if booked == nil {
		t.Fatal("09:30 slot not found")
	}
	if booked.Available {
		t.Error("09:30 slot should be taken")
	}
	if booked.Appointment == nil || booked.Appointment.Title != "Consulta" {
		t.Error("09:30 slot should carry the appointment")
	}
}

func TestTimeSlotsIgnoresCancelledAppointments(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	appointments := []entity.Appointment{
		{
			StartTime: time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC),
			Status:    entity.AppointmentStatusCancelled,
		},
	}

	for _, slot := range TimeSlots(date, appointments) {
		if !slot.Available {
			t.Errorf("slot %s blocked by a cancelled appointment", slot.Time)
		}
	}
}

func TestTimeSlotsIgnoresOtherDates(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	appointments := []entity.Appointment{
		{
			StartTime: time.Date(2026, time.March, 11, 9, 30, 0, 0, time.UTC),
			Status:    entity.AppointmentStatusScheduled,
		},
	}

	for _, slot := range TimeSlots(date, appointments) {
		if !slot.Available {
			t.Errorf("slot %s blocked by an appointment on another day", slot.Time)
		}
	}
}

func TestMonthDays(t *testing.T) {
	today := time.Date(2026, time.February, 14, 10, 0, 0, 0, time.UTC)
	appointments := []entity.Appointment{
		{
			StartTime: time.Date(2026, time.February, 14, 8, 0, 0, 0, time.UTC),
			Status:    entity.AppointmentStatusConfirmed,
		},
		{
			StartTime: time.Date(2026, time.February, 14, 8, 30, 0, 0, time.UTC),
			Status:    entity.AppointmentStatusScheduled,
		},
	}

	days := MonthDays(2026, time.February, appointments, today)
	if len(days) != 28 {
		t.Fatalf("got %d days for February 2026, want 28", len(days))
	}

	day := days[13]
	if !day.IsToday {
		t.Error("February 14 should be flagged as today")
	}
	if len(day.Appointments) != 2 {
		t.Errorf("got %d appointments on the 14th, want 2", len(day.Appointments))
	}
	if day.AvailableSlots != 18 {
		t.Errorf("AvailableSlots = %d, want 18", day.AvailableSlots)
	}

	for i, d := range days {
		if d.Date.Day() != i+1 {
			t.Fatalf("days out of order at index %d", i)
		}
		if i != 13 && d.IsToday {
			t.Errorf("day %d wrongly flagged as today", d.Date.Day())
		}
	}
}

func TestMonthDaysLeapYear(t *testing.T) {
	today := time.Date(2028, time.January, 1, 0, 0, 0, 0, time.UTC)

	days := MonthDays(2028, time.February, nil, today)
	if len(days) != 29 {
		t.Fatalf("got %d days for February 2028, want 29", len(days))
	}
	for _, d := range days {
		if d.IsToday {
			t.Error("no day in February should be today")
			break
		}
	}
}
