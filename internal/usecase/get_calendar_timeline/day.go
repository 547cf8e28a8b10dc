package get_calendar_timeline

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Запас выборки вокруг суток: смещения часовых поясов от UTC-12 до UTC+14 и час перехода на летнее время
const (
	windowBefore = 15 * time.Hour
	windowAfter  = 15 * time.Hour
)

// resolveLocation возвращает часовой пояс бизнеса или fallback, если он не задан или неизвестен
func resolveLocation(timezone string, fallback *time.Location) (*time.Location, bool) {
	if timezone == "" {
		return fallback, true
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fallback, false
	}
	return loc, true
}

// dayBounds возвращает полночь выбранного дня и полночь следующего в loc
// Если дата не задана, берется текущий день в loc
func dayBounds(date, now time.Time, loc *time.Location) (time.Time, time.Time) {
	if date.IsZero() {
		date = now.In(loc)
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// fetchWindow период выборки записей, покрывающий выбранный день в любом часовом поясе
// Нужен, чтобы загружать записи параллельно с бизнесом, пока часовой пояс еще неизвестен
func fetchWindow(date, now time.Time) (time.Time, time.Time) {
	if date.IsZero() {
		return now.Add(-24*time.Hour - windowBefore), now.Add(24*time.Hour + windowAfter)
	}
	utcMidnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return utcMidnight.Add(-windowBefore), utcMidnight.Add(24*time.Hour + windowAfter)
}

// withinDay оставляет записи, начинающиеся в [start, end)
func withinDay(appointments []domain.Appointment, start, end time.Time) []domain.Appointment {
	result := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if !a.ScheduledAt.Before(start) && a.ScheduledAt.Before(end) {
			result = append(result, a)
		}
	}
	return result
}
