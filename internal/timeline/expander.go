package timeline

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Range диапазон часов ленты
// При WrapsMidnight лента идет FirstHour..23, затем 0..LastHour, и LastHour < FirstHour
type Range struct {
	FirstHour     int
	LastHour      int
	WrapsMidnight bool
}

var fullDay = Range{FirstHour: 0, LastHour: domain.HoursPerDay - 1}

// Hours возвращает часы ленты в порядке отображения
func (r Range) Hours() []int {
	if !r.WrapsMidnight {
		hours := make([]int, 0, r.LastHour-r.FirstHour+1)
		for h := r.FirstHour; h <= r.LastHour; h++ {
			hours = append(hours, h)
		}
		return hours
	}

	hours := make([]int, 0, domain.HoursPerDay-r.FirstHour+r.LastHour+1)
	for h := r.FirstHour; h < domain.HoursPerDay; h++ {
		hours = append(hours, h)
	}
	for h := 0; h <= r.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Len количество часов в ленте
func (r Range) Len() int {
	if r.WrapsMidnight {
		return domain.HoursPerDay - r.FirstHour + r.LastHour + 1
	}
	return r.LastHour - r.FirstHour + 1
}

// Contains возвращает true, если час входит в ленту
func (r Range) Contains(hour int) bool {
	if r.WrapsMidnight {
		return hour >= r.FirstHour || hour <= r.LastHour
	}
	return hour >= r.FirstHour && hour <= r.LastHour
}

// ExpandRange вычисляет диапазон часов, в котором видны все записи
//
// Исходный диапазон - рабочее окно дня ref, либо 9..20, если часы не настроены или день закрыт.
// Диапазон только расширяется. Если исходным было рабочее окно и записи вытолкнули диапазон
// только с одной стороны, противоположная сторона дополняется одним часом,
// чтобы был виден хотя бы один заблокированный час за пределами окна.
func ExpandRange(appointments []domain.Appointment, workingHours domain.WorkingHours, ref time.Time) Range {
	return expand(newSpans(appointments, ref.Location()), ResolveWorkingHours(ref, workingHours))
}

func expand(spans []span, day *ResolvedDay) Range {
	seedFirst, seedLast := domain.DefaultFirstHour, domain.DefaultLastHour
	explicitSeed := day != nil && day.Enabled
	if explicitSeed {
		seedFirst, seedLast = day.OpenHour, day.CloseHour
	}

	first, last := seedFirst, seedLast
	wraps := false
	wrapEnd := 0

	for _, s := range spans {
		if s.coversAllDay() {
			return fullDay
		}

		first = min(first, s.startHour)
		if s.wrapsMidnight() {
			wraps = true
			wrapEnd = max(wrapEnd, s.endHour())
			continue
		}
		last = max(last, s.endHour())
	}

	if wraps {
		if wrapEnd >= first {
			return fullDay
		}
		last = wrapEnd
	}

	pushedLow := first < seedFirst
	pushedHigh := wraps || last > seedLast

	if explicitSeed && pushedLow != pushedHigh {
		switch {
		case pushedHigh && first > 0 && (!wraps || first-1 > last):
			first--
		case pushedLow && last < domain.HoursPerDay-1:
			last++
		}
	}

	return Range{FirstHour: first, LastHour: last, WrapsMidnight: wraps}
}
