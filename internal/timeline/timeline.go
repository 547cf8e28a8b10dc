package timeline

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// GenerateTimeSlots строит ленту дня ref: ExpandRange, затем BuildSlots
func GenerateTimeSlots(appointments []domain.Appointment, workingHours domain.WorkingHours, ref time.Time) []domain.Slot {
	spans := newSpans(appointments, ref.Location())
	day := ResolveWorkingHours(ref, workingHours)
	return build(expand(spans, day), spans, day)
}

// Conflict час, который занимают несколько записей
// Первой в AppointmentIDs идет запись, попавшая в слот
type Conflict struct {
	Hour           int
	AppointmentIDs []uuid.UUID
}

// DetectConflicts возвращает часы диапазона r, занятые несколькими записями,
// которые действительно пересекаются во времени.
// Записи разных суток, попавшие на один час после перехода через полночь, конфликтом не считаются.
func DetectConflicts(r Range, appointments []domain.Appointment, ref time.Time) []Conflict {
	spans := newSpans(appointments, ref.Location())

	var conflicts []Conflict
	for _, hour := range r.Hours() {
		var covering []span
		for _, s := range spans {
			if s.covers(hour) {
				covering = append(covering, s)
			}
		}

		var ids []uuid.UUID
		for i, s := range covering {
			for j, other := range covering {
				if i != j && s.overlaps(other) {
					ids = append(ids, s.appointment.ID)
					break
				}
			}
		}
		if len(ids) > 1 {
			conflicts = append(conflicts, Conflict{Hour: hour, AppointmentIDs: ids})
		}
	}
	return conflicts
}

// Summary сводка по ленте
type Summary struct {
	Total    int
	Occupied int
	Blocked  int
	Free     int
}

// Summarize считает занятые, заблокированные и свободные часы
// Занятый заблокированный час учитывается в обоих счетчиках
func Summarize(slots []domain.Slot) Summary {
	summary := Summary{Total: len(slots)}
	for i := range slots {
		if slots[i].IsOccupied() {
			summary.Occupied++
		}
		if slots[i].IsBlocked {
			summary.Blocked++
		}
		if slots[i].IsFree() {
			summary.Free++
		}
	}
	return summary
}

// FilterByStatus возвращает новый срез записей с указанными статусами
func FilterByStatus(appointments []domain.Appointment, statuses ...domain.AppointmentStatus) []domain.Appointment {
	filtered := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if slices.Contains(statuses, a.Status) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
