package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name         string
		appointments []domain.Appointment
		hours        domain.WorkingHours
		want         Range
	}{
		{
			name: "default range without appointments",
			want: Range{FirstHour: 9, LastHour: 20},
		},
		{
			name:  "working hours window without appointments",
			hours: mondayOnly("10:00", "16:00"),
			want:  Range{FirstHour: 10, LastHour: 16},
		},
		{
			name:  "disabled day falls back to default",
			hours: domain.WorkingHours{domain.Monday: {Enabled: false}},
			want:  Range{FirstHour: 9, LastHour: 20},
		},
		{
			name:         "appointment inside default range",
			appointments: []domain.Appointment{newAppointment(1, at(12, 0), 60)},
			want:         Range{FirstHour: 9, LastHour: 20},
		},
		{
			name:         "expands down",
			appointments: []domain.Appointment{newAppointment(1, at(7, 30), 45)},
			want:         Range{FirstHour: 7, LastHour: 20},
		},
		{
			name:         "expands up by duration",
			appointments: []domain.Appointment{newAppointment(1, at(20, 0), 150)},
			want:         Range{FirstHour: 9, LastHour: 22},
		},
		{
			name:         "ending exactly on the hour does not reach that hour",
			appointments: []domain.Appointment{newAppointment(1, at(20, 0), 120)},
			want:         Range{FirstHour: 9, LastHour: 21},
		},
		{
			name:         "ending exactly at midnight does not wrap",
			appointments: []domain.Appointment{newAppointment(1, at(23, 0), 60)},
			want:         Range{FirstHour: 9, LastHour: 23},
		},
		{
			name:         "midnight crossover",
			appointments: []domain.Appointment{newAppointment(1, at(23, 0), 125)},
			want:         Range{FirstHour: 9, LastHour: 1, WrapsMidnight: true},
		},
		{
			name: "several crossovers keep the latest end",
			appointments: []domain.Appointment{
				newAppointment(1, at(22, 30), 120),
				newAppointment(2, at(23, 15), 200),
			},
			want: Range{FirstHour: 9, LastHour: 2, WrapsMidnight: true},
		},
		{
			name: "crossover reaching the first hour covers the whole day",
			appointments: []domain.Appointment{
				newAppointment(1, at(20, 0), 14*60),
			},
			want: Range{FirstHour: 0, LastHour: 23},
		},
		{
			name:         "day long appointment covers the whole day",
			appointments: []domain.Appointment{newAppointment(1, at(10, 0), 24*60)},
			want:         Range{FirstHour: 0, LastHour: 23},
		},
		{
			name:         "negative duration is a point in time",
			appointments: []domain.Appointment{newAppointment(1, at(22, 10), -90)},
			want:         Range{FirstHour: 9, LastHour: 22},
		},
		{
			name:         "working hours pushed down are padded up",
			hours:        mondayOnly("10:00", "16:00"),
			appointments: []domain.Appointment{newAppointment(1, at(8, 0), 60)},
			want:         Range{FirstHour: 8, LastHour: 17},
		},
		{
			name:         "working hours pushed up are padded down",
			hours:        mondayOnly("10:00", "16:00"),
			appointments: []domain.Appointment{newAppointment(1, at(17, 0), 60)},
			want:         Range{FirstHour: 9, LastHour: 17},
		},
		{
			name:  "working hours pushed on both sides are not padded",
			hours: mondayOnly("10:00", "16:00"),
			appointments: []domain.Appointment{
				newAppointment(1, at(8, 0), 30),
				newAppointment(2, at(18, 0), 30),
			},
			want: Range{FirstHour: 8, LastHour: 18},
		},
		{
			name:         "working hours crossed at midnight are padded down",
			hours:        mondayOnly("10:00", "16:00"),
			appointments: []domain.Appointment{newAppointment(1, at(23, 0), 90)},
			want:         Range{FirstHour: 9, LastHour: 0, WrapsMidnight: true},
		},
		{
			name:         "padding stops at the end of the day",
			hours:        mondayOnly("10:00", "23:00"),
			appointments: []domain.Appointment{newAppointment(1, at(6, 0), 60)},
			want:         Range{FirstHour: 6, LastHour: 23},
		},
		{
			name:         "padding stops at the start of the day",
			hours:        mondayOnly("00:00", "12:00"),
			appointments: []domain.Appointment{newAppointment(1, at(14, 0), 60)},
			want:         Range{FirstHour: 0, LastHour: 14},
		},
		{
			name:         "default seed is never padded",
			appointments: []domain.Appointment{newAppointment(1, at(6, 0), 60)},
			want:         Range{FirstHour: 6, LastHour: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandRange(tt.appointments, tt.hours, refMonday)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandRange_OrderIndependent(t *testing.T) {
	appointments := []domain.Appointment{
		newAppointment(1, at(23, 0), 125),
		newAppointment(2, at(6, 15), 30),
		newAppointment(3, at(21, 0), 90),
	}
	reversed := []domain.Appointment{appointments[2], appointments[1], appointments[0]}

	assert.Equal(t,
		ExpandRange(appointments, mondayOnly("10:00", "16:00"), refMonday),
		ExpandRange(reversed, mondayOnly("10:00", "16:00"), refMonday),
	)
}

func TestRange_Hours(t *testing.T) {
	plain := Range{FirstHour: 9, LastHour: 12}
	assert.Equal(t, []int{9, 10, 11, 12}, plain.Hours())
	assert.Equal(t, 4, plain.Len())
	assert.True(t, plain.Contains(9))
	assert.False(t, plain.Contains(13))

	wrapped := Range{FirstHour: 22, LastHour: 1, WrapsMidnight: true}
	assert.Equal(t, []int{22, 23, 0, 1}, wrapped.Hours())
	assert.Equal(t, 4, wrapped.Len())
	assert.True(t, wrapped.Contains(0))
	assert.False(t, wrapped.Contains(2))
}
