package get_day_hours

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getDayHours "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_hours"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

// DayHoursResponse HTTP response model
type DayHoursResponse struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Timezone   string `json:"timezone"`
	Configured bool   `json:"configured"`
	Enabled    bool   `json:"enabled"`
	OpenHour   *int   `json:"openHour"`
	CloseHour  *int   `json:"closeHour"`
}

// ToUseCaseRequest создает запрос use case, пустая дата - сегодня
func ToUseCaseRequest(businessID int64, dateStr string) (*getDayHours.Request, error) {
	req := &getDayHours.Request{BusinessID: businessID}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = date

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Ненастроенный день никогда не блокируется, поэтому enabled=true и часы не указаны
func FromUseCaseResponse(resp *getDayHours.Response) *DayHoursResponse {
	result := &DayHoursResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		Weekday:    string(resp.Weekday),
		Timezone:   resp.Timezone,
		Configured: resp.Configured,
		Enabled:    true,
	}

	if resp.Day != nil {
		result.Enabled = resp.Day.Enabled
		if resp.Day.Enabled {
			result.OpenHour = ptr.Ptr(resp.Day.OpenHour)
			result.CloseHour = ptr.Ptr(resp.Day.CloseHour)
		}
	}

	return result
}
