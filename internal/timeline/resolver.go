package timeline

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// ResolvedDay рабочее окно конкретного календарного дня
type ResolvedDay struct {
	Enabled   bool
	OpenHour  int // Первый рабочий час
	CloseHour int // Последний рабочий час (включительно)
}

// IsBlocked возвращает true, если час вне рабочего окна
// Для nil (рабочие часы не настроены) всегда false
func (d *ResolvedDay) IsBlocked(hour int) bool {
	if d == nil {
		return false
	}
	return !d.Enabled || hour < d.OpenHour || hour > d.CloseHour
}

// ResolveWorkingHours возвращает рабочее окно дня date по недельному расписанию
//
// nil расписание - nil результат (часы никогда не блокируются).
// Отсутствующий, выключенный или некорректно заданный день считается полностью закрытым:
// функция не возвращает ошибок, календарь должен отрисоваться в любом случае.
func ResolveWorkingHours(date time.Time, workingHours domain.WorkingHours) *ResolvedDay {
	if workingHours == nil {
		return nil
	}

	hours, ok := workingHours.Day(domain.WeekdayOf(date))
	if !ok || !hours.Enabled {
		return &ResolvedDay{Enabled: false}
	}

	start, err := types.NewTimeStringFromString(string(hours.Start))
	if err != nil {
		return &ResolvedDay{Enabled: false}
	}
	end, err := types.NewTimeStringFromString(string(hours.End))
	if err != nil || start.Hour() >= end.Hour() {
		return &ResolvedDay{Enabled: false}
	}

	return &ResolvedDay{
		Enabled:   true,
		OpenHour:  start.Hour(),
		CloseHour: end.Hour(),
	}
}
