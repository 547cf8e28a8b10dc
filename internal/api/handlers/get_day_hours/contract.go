package get_day_hours

import (
	"context"

	getDayHours "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_hours"
)

type GetDayHoursUseCase interface {
	Execute(ctx context.Context, req *getDayHours.Request) (*getDayHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
