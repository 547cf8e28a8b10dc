package timeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// 2026-03-02 is a Monday
var refMonday = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func idOf(n byte) uuid.UUID {
	return uuid.UUID{n}
}

func newAppointment(n byte, scheduledAt time.Time, durationMinutes int) domain.Appointment {
	return domain.Appointment{
		ID:              idOf(n),
		BusinessID:      1,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
		ClientName:      "Client",
		ServiceName:     "Haircut",
		Price:           25,
	}
}

func hoursOf(slots []domain.Slot) []int {
	hours := make([]int, len(slots))
	for i, s := range slots {
		hours[i] = s.Hour
	}
	return hours
}

func slotAt(slots []domain.Slot, hour int) (domain.Slot, bool) {
	for _, s := range slots {
		if s.Hour == hour {
			return s, true
		}
	}
	return domain.Slot{}, false
}

func seq(from, to int) []int {
	var hours []int
	for h := from; h <= to; h++ {
		hours = append(hours, h)
	}
	return hours
}

func mondayOnly(start, end string) domain.WorkingHours {
	return domain.WorkingHours{
		domain.Sunday:    {Enabled: false},
		domain.Monday:    {Enabled: true, Start: types.TimeString(start), End: types.TimeString(end)},
		domain.Tuesday:   {Enabled: true, Start: "09:00", End: "18:00"},
		domain.Wednesday: {Enabled: true, Start: "09:00", End: "18:00"},
		domain.Thursday:  {Enabled: true, Start: "09:00", End: "18:00"},
		domain.Friday:    {Enabled: true, Start: "09:00", End: "18:00"},
		domain.Saturday:  {Enabled: false},
	}
}
