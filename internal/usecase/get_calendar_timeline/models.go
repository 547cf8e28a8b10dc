package get_calendar_timeline

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/timeline"
)

// Request модель запроса ленты календаря
type Request struct {
	UserID         int64     // ID пользователя (должен быть владельцем бизнеса)
	BusinessID     int64     // ID бизнеса
	Date           time.Time // Календарная дата (используются только год, месяц, день); нулевая - сегодня
	IncludePending bool      // Показывать неподтвержденные записи
}

// Response модель ответа с лентой календаря
type Response struct {
	Date       time.Time             // Полночь выбранного дня в часовом поясе бизнеса
	BusinessID int64                 // ID бизнеса
	Timezone   string                // Часовой пояс, в котором построена лента
	Day        *timeline.ResolvedDay // Рабочее окно дня, nil - часы не настроены
	Range      timeline.Range        // Диапазон часов ленты
	Slots      []domain.Slot         // Почасовые слоты
	Summary    timeline.Summary      // Сводка по слотам
	Conflicts  []timeline.Conflict   // Часы с пересекающимися записями
}
