package get_calendar_timeline

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/timeline"
	getCalendarTimeline "github.com/m04kA/SMC-CalendarService/internal/usecase/get_calendar_timeline"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// TimelineResponse HTTP response model
type TimelineResponse struct {
	Date         string                `json:"date"`
	BusinessID   int64                 `json:"businessId"`
	Timezone     string                `json:"timezone"`
	WorkingHours *WorkingHoursResponse `json:"workingHours"` // null - часы не настроены
	Range        RangeResponse         `json:"range"`
	Slots        []SlotResponse        `json:"slots"`
	Summary      SummaryResponse       `json:"summary"`
	Conflicts    []ConflictResponse    `json:"conflicts"`
}

// WorkingHoursResponse рабочее окно дня
type WorkingHoursResponse struct {
	Enabled   bool `json:"enabled"`
	OpenHour  *int `json:"openHour"` // null для закрытого дня
	CloseHour *int `json:"closeHour"`
}

// RangeResponse диапазон часов ленты
type RangeResponse struct {
	FirstHour     int  `json:"firstHour"`
	LastHour      int  `json:"lastHour"`
	WrapsMidnight bool `json:"wrapsMidnight"`
}

// SlotResponse модель часового слота
type SlotResponse struct {
	Hour        int                  `json:"hour"`
	Label       string               `json:"label"`
	IsBlocked   bool                 `json:"isBlocked"`
	Appointment *AppointmentResponse `json:"appointment"`
}

// AppointmentResponse запись, занимающая слот
type AppointmentResponse struct {
	ID              string  `json:"id"`
	ScheduledAt     string  `json:"scheduledAt"`
	EndsAt          string  `json:"endsAt"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientName      string  `json:"clientName"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	Notes           string  `json:"notes,omitempty"`
}

type SummaryResponse struct {
	Total    int `json:"total"`
	Occupied int `json:"occupied"`
	Blocked  int `json:"blocked"`
	Free     int `json:"free"`
}

type ConflictResponse struct {
	Hour           int      `json:"hour"`
	AppointmentIDs []string `json:"appointmentIds"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая дата - сегодня, пустой includePending - false
func ToUseCaseRequest(userID, businessID int64, dateStr, includePendingStr string) (*getCalendarTimeline.Request, error) {
	req := &getCalendarTimeline.Request{
		UserID:     userID,
		BusinessID: businessID,
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if includePendingStr != "" {
		includePending, err := strconv.ParseBool(includePendingStr)
		if err != nil {
			return nil, err
		}
		req.IncludePending = includePending
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarTimeline.Response) *TimelineResponse {
	loc := resp.Date.Location()

	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Hour:      slot.Hour,
			Label:     slot.Label,
			IsBlocked: slot.IsBlocked,
		}
		if slot.Appointment != nil {
			slots[i].Appointment = fromAppointment(slot.Appointment, loc)
		}
	}

	conflicts := make([]ConflictResponse, len(resp.Conflicts))
	for i, c := range resp.Conflicts {
		ids := make([]string, len(c.AppointmentIDs))
		for j, id := range c.AppointmentIDs {
			ids[j] = id.String()
		}
		conflicts[i] = ConflictResponse{Hour: c.Hour, AppointmentIDs: ids}
	}

	return &TimelineResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		BusinessID:   resp.BusinessID,
		Timezone:     resp.Timezone,
		WorkingHours: fromResolvedDay(resp.Day),
		Range: RangeResponse{
			FirstHour:     resp.Range.FirstHour,
			LastHour:      resp.Range.LastHour,
			WrapsMidnight: resp.Range.WrapsMidnight,
		},
		Slots: slots,
		Summary: SummaryResponse{
			Total:    resp.Summary.Total,
			Occupied: resp.Summary.Occupied,
			Blocked:  resp.Summary.Blocked,
			Free:     resp.Summary.Free,
		},
		Conflicts: conflicts,
	}
}

func fromAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID.String(),
		ScheduledAt:     a.ScheduledAt.In(loc).Format(time.RFC3339),
		EndsAt:          a.EndsAt().In(loc).Format(time.RFC3339),
		DurationMinutes: a.EffectiveDurationMinutes(),
		Status:          string(a.Status),
		ClientName:      a.ClientName,
		ServiceName:     a.ServiceName,
		Price:           a.Price,
		Notes:           ptr.Value(a.Notes, ""),
	}
}

func fromResolvedDay(day *timeline.ResolvedDay) *WorkingHoursResponse {
	if day == nil {
		return nil
	}
	result := &WorkingHoursResponse{Enabled: day.Enabled}
	if day.Enabled {
		result.OpenHour = ptr.Ptr(day.OpenHour)
		result.CloseHour = ptr.Ptr(day.CloseHour)
	}
	return result
}
