package get_day_hours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-CalendarService/internal/timeline"
)

type UseCase struct {
	businessProvider BusinessProvider
	timeProvider     TimeProvider
	defaultLocation  *time.Location
	logger           Logger
}

func NewUseCase(businessProvider BusinessProvider, defaultLocation *time.Location, logger Logger) *UseCase {
	return &UseCase{
		businessProvider: businessProvider,
		timeProvider:     &RealTimeProvider{},
		defaultLocation:  defaultLocation,
		logger:           logger,
	}
}

// Execute возвращает рабочее окно бизнеса на выбранный день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	business, err := uc.businessProvider.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, businessservice.ErrBusinessNotFound) {
			uc.logger.Warn("GetDayHours: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetDayHours: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc := uc.defaultLocation
	if business.Timezone != "" {
		if businessLoc, err := time.LoadLocation(business.Timezone); err == nil {
			loc = businessLoc
		} else {
			uc.logger.Warn("GetDayHours: unknown timezone %q of business=%d, using %s", business.Timezone, req.BusinessID, loc)
		}
	}

	date := req.Date
	if date.IsZero() {
		date = uc.timeProvider.Now().In(loc)
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	day := timeline.ResolveWorkingHours(dayStart, business.WorkingHours)

	return &Response{
		Date:       dayStart,
		Weekday:    domain.WeekdayOf(dayStart),
		Timezone:   loc.String(),
		Configured: day != nil,
		Day:        day,
	}, nil
}
