package get_calendar_timeline

import (
	"context"

	getCalendarTimeline "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_timeline"
)

type GetCalendarTimelineUseCase interface {
	Execute(ctx context.Context, req *getCalendarTimeline.Request) (*getCalendarTimeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
