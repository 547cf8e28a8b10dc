package timeline

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// BuildSlots строит слоты для часов диапазона r
//
// К часу привязывается запись с самым ранним ScheduledAt среди занимающих его.
// Блокировка определяется по дню ref, а не по дню записи.
func BuildSlots(r Range, appointments []domain.Appointment, workingHours domain.WorkingHours, ref time.Time) []domain.Slot {
	return build(r, newSpans(appointments, ref.Location()), ResolveWorkingHours(ref, workingHours))
}

func build(r Range, spans []span, day *ResolvedDay) []domain.Slot {
	hours := r.Hours()
	slots := make([]domain.Slot, 0, len(hours))

	for _, hour := range hours {
		slot := domain.Slot{
			Hour:      hour,
			Label:     HourLabel(hour),
			IsBlocked: day.IsBlocked(hour),
		}

		for _, s := range spans {
			if s.covers(hour) {
				slot.Appointment = s.appointment
				break
			}
		}

		slots = append(slots, slot)
	}

	return slots
}

// HourLabel форматирует час в 12-часовом формате: 0 -> "12 AM", 13 -> "1 PM"
func HourLabel(hour int) string {
	hour = ((hour % domain.HoursPerDay) + domain.HoursPerDay) % domain.HoursPerDay

	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return strconv.Itoa(hour) + " AM"
	default:
		return strconv.Itoa(hour-12) + " PM"
	}
}
