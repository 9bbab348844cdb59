package schedule

import (
	"fmt"
	"time"

	"github.com/laudohub/laudohub-api/internal/domain/entity"
)

// Working-day grid: half-hour slots from 08:00 until 18:00.
const (
	dayStartHour = 8
	dayEndHour   = 18
	slotMinutes  = 30
)

// TimeSlot is one bookable half hour of a day.
type TimeSlot struct {
	Time        string
	Available   bool
	Appointment *entity.Appointment
}

// Day aggregates one calendar day for the month view.
type Day struct {
	Date           time.Time
	Weekday        time.Weekday
	IsToday        bool
	Appointments   []entity.Appointment
	AvailableSlots int
}

// TimeSlots builds the slot grid for one date. A slot is taken when a
// non-cancelled appointment starts exactly on it.
func TimeSlots(date time.Time, appointments []entity.Appointment) []TimeSlot {
	slots := make([]TimeSlot, 0, (dayEndHour-dayStartHour)*60/slotMinutes)

	for hour := dayStartHour; hour < dayEndHour; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			slot := TimeSlot{
				Time:      fmt.Sprintf("%02d:%02d", hour, minute),
				Available: true,
			}
			for i := range appointments {
				apt := &appointments[i]
				if apt.IsCancelled() {
					continue
				}
				start := apt.StartTime
				if sameDate(start, date) && start.Hour() == hour && start.Minute() == minute {
					slot.Available = false
					slot.Appointment = apt
					break
				}
			}
			slots = append(slots, slot)
		}
	}

	return slots
}

// MonthDays builds the month view: per-day appointments and remaining free
// slots. today is passed in so the computation stays pure.
func MonthDays(year int, month time.Month, appointments []entity.Appointment, today time.Time) []Day {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, today.Location()).Day()
	days := make([]Day, 0, daysInMonth)

	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, today.Location())

		var dayAppointments []entity.Appointment
		for _, apt := range appointments {
			if sameDate(apt.StartTime, date) {
				dayAppointments = append(dayAppointments, apt)
			}
		}

		available := 0
		for _, slot := range TimeSlots(date, dayAppointments) {
			if slot.Available {
				available++
			}
		}

		days = append(days, Day{
			Date:           date,
			Weekday:        date.Weekday(),
			IsToday:        sameDate(date, today),
			Appointments:   dayAppointments,
			AvailableSlots: available,
		})
	}

	return days
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
