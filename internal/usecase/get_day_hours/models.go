package get_day_hours

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/timeline"
)

// Request модель запроса рабочих часов на день
type Request struct {
	BusinessID int64
	Date       time.Time // нулевая - сегодня в часовом поясе бизнеса
}

// Response модель ответа
type Response struct {
	Date       time.Time
	Weekday    domain.Weekday
	Timezone   string
	Configured bool                  // false - у бизнеса нет рабочих часов, день не блокируется
	Day        *timeline.ResolvedDay // nil, если Configured == false
}
