package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusExpired   AppointmentStatus = "expired"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid returns true for known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled, StatusExpired, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booked visit of a client.
// Client, service and price fields are display payload and never affect slot computation.
type Appointment struct {
	ID              uuid.UUID
	BusinessID      int64
	ScheduledAt     time.Time
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized display data
	ClientName  string
	ServiceName string
	Price       float64
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDurationMinutes returns the duration with negative values clamped to zero
func (a *Appointment) EffectiveDurationMinutes() int {
	if a.DurationMinutes < 0 {
		return 0
	}
	return a.DurationMinutes
}

// EndsAt returns the end instant of the appointment
func (a *Appointment) EndsAt() time.Time {
	return a.ScheduledAt.Add(time.Duration(a.EffectiveDurationMinutes()) * time.Minute)
}

// IsPointInTime returns true if the appointment has no duration
func (a *Appointment) IsPointInTime() bool {
	return a.EffectiveDurationMinutes() == 0
}

// AppointmentsFilter фильтр для выборки записей бизнеса за период
type AppointmentsFilter struct {
	BusinessID int64               // Обязательный параметр
	From       time.Time           // Начало периода (включительно)
	To         time.Time           // Конец периода (не включительно)
	Statuses   []AppointmentStatus // Пустой список - все статусы
}
