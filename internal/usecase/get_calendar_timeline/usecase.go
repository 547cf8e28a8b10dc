package get_calendar_timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-CalendarService/internal/timeline"
)

// UseCase use case для получения почасовой ленты календаря
type UseCase struct {
	appointmentRepo  AppointmentRepository
	businessProvider BusinessProvider
	timeProvider     TimeProvider
	defaultLocation  *time.Location
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	businessProvider BusinessProvider,
	defaultLocation *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		businessProvider: businessProvider,
		timeProvider:     &RealTimeProvider{},
		defaultLocation:  defaultLocation,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute выполняет use case получения ленты календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendarTimeline: user=%d, business=%d, date=%s, includePending=%t",
		req.UserID, req.BusinessID, formatDate(req.Date), req.IncludePending)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarTimeline: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Параллельно получаем бизнес и записи за окно, покрывающее день в любом часовом поясе
	var (
		business     *businessservice.Business
		appointments []domain.Appointment
	)

	from, to := fetchWindow(req.Date, now)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		business, err = uc.businessProvider.GetBusiness(gctx, req.BusinessID)
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = uc.appointmentRepo.GetByBusinessWithFilter(gctx, domain.AppointmentsFilter{
			BusinessID: req.BusinessID,
			From:       from,
			To:         to,
			Statuses:   domain.CalendarStatusesWithPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, businessservice.ErrBusinessNotFound) {
			uc.logger.Warn("GetCalendarTimeline: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("GetCalendarTimeline: %v", err)
			return nil, err
		}
		uc.logger.Error("GetCalendarTimeline: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 4. Проверяем права доступа (только владелец бизнеса)
	if !business.IsOwner(req.UserID) {
		uc.logger.Warn("GetCalendarTimeline: user=%d is not the owner of business=%d", req.UserID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	// 5. Определяем день в часовом поясе бизнеса
	loc, ok := resolveLocation(business.Timezone, uc.defaultLocation)
	if !ok {
		uc.logger.Warn("GetCalendarTimeline: unknown timezone %q of business=%d, using %s",
			business.Timezone, req.BusinessID, uc.defaultLocation)
	}
	dayStart, dayEnd := dayBounds(req.Date, now, loc)

	// 6. Оставляем записи выбранного дня с нужными статусами
	statuses := domain.CalendarStatuses
	if req.IncludePending {
		statuses = domain.CalendarStatusesWithPending
	}
	visible := timeline.FilterByStatus(withinDay(appointments, dayStart, dayEnd), statuses...)

	// 7. Строим ленту
	timeRange := timeline.ExpandRange(visible, business.WorkingHours, dayStart)
	slots := timeline.GenerateTimeSlots(visible, business.WorkingHours, dayStart)
	conflicts := timeline.DetectConflicts(timeRange, visible, dayStart)

	if len(conflicts) > 0 {
		uc.logger.Warn("GetCalendarTimeline: business=%d has %d overlapping hours on %s, earliest appointment shown",
			req.BusinessID, len(conflicts), dayStart.Format(domain.DateFormat))
	}
	uc.metrics.ObserveTimeline(len(slots), len(conflicts))

	uc.logger.Info("GetCalendarTimeline: generated %d slots (%d appointments) for business=%d, date=%s",
		len(slots), len(visible), req.BusinessID, dayStart.Format(domain.DateFormat))

	return &Response{
		Date:       dayStart,
		BusinessID: req.BusinessID,
		Timezone:   loc.String(),
		Day:        timeline.ResolveWorkingHours(dayStart, business.WorkingHours),
		Range:      timeRange,
		Slots:      slots,
		Summary:    timeline.Summarize(slots),
		Conflicts:  conflicts,
	}, nil
}

func formatDate(date time.Time) string {
	if date.IsZero() {
		return "today"
	}
	return date.Format(domain.DateFormat)
}
