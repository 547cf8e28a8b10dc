package domain

// Default calendar display range, used when working hours are not configured
// or the viewed day is closed
const (
	DefaultFirstHour = 9
	DefaultLastHour  = 20
)

const (
	HoursPerDay    = 24
	MinutesPerHour = 60
	MinutesPerDay  = HoursPerDay * MinutesPerHour
)

// DateFormat формат календарной даты в API
const DateFormat = "2006-01-02" // YYYY-MM-DD

// CalendarStatuses статусы записей, отображаемые в календаре по умолчанию
var CalendarStatuses = []AppointmentStatus{
	StatusConfirmed,
}

// CalendarStatusesWithPending статусы для календаря с учетом неподтвержденных записей
var CalendarStatusesWithPending = []AppointmentStatus{
	StatusConfirmed,
	StatusPending,
}
