package get_day_hours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/integrations/businessservice"
)

// BusinessProvider источник бизнеса с рабочими часами
type BusinessProvider interface {
	GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
