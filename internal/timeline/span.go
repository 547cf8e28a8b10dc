package timeline

import (
	"bytes"
	"slices"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// span часы суток, занятые записью
// Занятость считается по полуинтервалу [start, start+duration) с точностью до минуты
// в часовом поясе ленты: запись, заканчивающаяся ровно на границе часа, этот час не занимает.
// В дни перехода на летнее/зимнее время занятыми считаются только реально прошедшие часы.
type span struct {
	appointment *domain.Appointment
	start       time.Time
	end         time.Time // start для записи без длительности
	startHour   int
	lastHour    int  // Час последней занятой минуты
	wraps       bool // Последняя занятая минута приходится на следующие сутки
	hours       [domain.HoursPerDay]bool
}

func newSpan(appointment *domain.Appointment, loc *time.Location) span {
	start := appointment.ScheduledAt.In(loc)
	duration := appointment.EffectiveDurationMinutes()

	s := span{
		appointment: appointment,
		start:       start,
		end:         start.Add(time.Duration(duration) * time.Minute),
		startHour:   start.Hour(),
	}

	if duration >= domain.MinutesPerDay {
		for h := range s.hours {
			s.hours[h] = true
		}
		s.lastHour = (s.startHour + domain.HoursPerDay - 1) % domain.HoursPerDay
		s.wraps = s.startHour > 0
		return s
	}

	last := start
	if duration > 0 {
		last = s.end.Add(-time.Minute)
	}
	s.lastHour = last.Hour()
	s.wraps = !sameDate(start, last)

	for t := start; !t.After(last); t = nextHour(t) {
		s.hours[t.Hour()] = true
	}

	return s
}

// nextHour начало следующего часа по местному времени
func nextHour(t time.Time) time.Time {
	return t.Add(time.Hour -
		time.Duration(t.Minute())*time.Minute -
		time.Duration(t.Second())*time.Second -
		time.Duration(t.Nanosecond()))
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// endHour последний занятый час (по часам на стене)
func (s span) endHour() int {
	return s.lastHour
}

func (s span) wrapsMidnight() bool {
	return s.wraps
}

// coversAllDay запись занимает все 24 часа
func (s span) coversAllDay() bool {
	for _, occupied := range s.hours {
		if !occupied {
			return false
		}
	}
	return true
}

func (s span) covers(hour int) bool {
	if hour < 0 || hour >= domain.HoursPerDay {
		return false
	}
	return s.hours[hour]
}

// overlaps пересекаются ли записи во времени
// Запись без длительности считается занимающей свою первую минуту
func (s span) overlaps(other span) bool {
	return s.start.Before(other.occupiedUntil()) && other.start.Before(s.occupiedUntil())
}

func (s span) occupiedUntil() time.Time {
	if s.end.After(s.start) {
		return s.end
	}
	return s.start.Add(time.Minute)
}

// newSpans возвращает занятость записей, упорядоченных по времени начала (при равенстве - по ID)
// Входной срез не изменяется: span ссылается на элементы копии
func newSpans(appointments []domain.Appointment, loc *time.Location) []span {
	sorted := slices.Clone(appointments)
	slices.SortStableFunc(sorted, compareAppointments)

	spans := make([]span, len(sorted))
	for i := range sorted {
		spans[i] = newSpan(&sorted[i], loc)
	}
	return spans
}

func compareAppointments(a, b domain.Appointment) int {
	if c := a.ScheduledAt.Compare(b.ScheduledAt); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}
