package timeline

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

func TestGenerateTimeSlots_DefaultRange(t *testing.T) {
	slots := GenerateTimeSlots(nil, nil, refMonday)

	require.Len(t, slots, 12)
	assert.Equal(t, seq(9, 20), hoursOf(slots))
	assert.Equal(t, "9 AM", slots[0].Label)
	assert.Equal(t, "8 PM", slots[len(slots)-1].Label)
	for _, s := range slots {
		assert.False(t, s.IsBlocked)
		assert.Nil(t, s.Appointment)
	}
}

func TestGenerateTimeSlots_LowerExpansion(t *testing.T) {
	early := newAppointment(1, at(8, 0), 45)

	slots := GenerateTimeSlots([]domain.Appointment{early}, nil, refMonday)

	require.NotEmpty(t, slots)
	assert.Equal(t, 8, slots[0].Hour)
	require.NotNil(t, slots[0].Appointment)
	assert.Equal(t, early.ID, slots[0].Appointment.ID)
}

func TestGenerateTimeSlots_UpperExpansion(t *testing.T) {
	late := newAppointment(1, at(22, 0), 60)

	slots := GenerateTimeSlots([]domain.Appointment{late}, nil, refMonday)

	last := slots[len(slots)-1]
	assert.Equal(t, 22, last.Hour)
	require.NotNil(t, last.Appointment)
	assert.Equal(t, late.ID, last.Appointment.ID)
}

func TestGenerateTimeSlots_DualExpansion(t *testing.T) {
	early := newAppointment(1, at(7, 0), 60)
	late := newAppointment(2, at(23, 0), 30)

	slots := GenerateTimeSlots([]domain.Appointment{late, early}, nil, refMonday)

	assert.Equal(t, seq(7, 23), hoursOf(slots))
	require.NotNil(t, slots[0].Appointment)
	assert.Equal(t, early.ID, slots[0].Appointment.ID)
	require.NotNil(t, slots[len(slots)-1].Appointment)
	assert.Equal(t, late.ID, slots[len(slots)-1].Appointment.ID)
}

func TestGenerateTimeSlots_MidnightCrossover(t *testing.T) {
	overnight := newAppointment(1, at(23, 0), 125)

	slots := GenerateTimeSlots([]domain.Appointment{overnight}, nil, refMonday)

	assert.Equal(t, append(seq(9, 23), 0, 1), hoursOf(slots))
	for _, hour := range []int{23, 0, 1} {
		slot, ok := slotAt(slots, hour)
		require.True(t, ok, "hour %d", hour)
		require.NotNil(t, slot.Appointment, "hour %d", hour)
		assert.Equal(t, overnight.ID, slot.Appointment.ID)
	}
	for _, s := range slots {
		if s.Hour == 2 {
			assert.Nil(t, s.Appointment)
		}
	}
}

func TestGenerateTimeSlots_MidnightCrossoverWithEarlyAppointment(t *testing.T) {
	overnight := newAppointment(1, at(23, 0), 125)
	early := newAppointment(2, at(2, 0), 30)

	slots := GenerateTimeSlots([]domain.Appointment{overnight, early}, nil, refMonday)

	assert.Equal(t, append(seq(2, 23), 0, 1), hoursOf(slots))

	slot, ok := slotAt(slots, 2)
	require.True(t, ok)
	require.NotNil(t, slot.Appointment)
	assert.Equal(t, early.ID, slot.Appointment.ID)

	slot, ok = slotAt(slots, 1)
	require.True(t, ok)
	require.NotNil(t, slot.Appointment)
	assert.Equal(t, overnight.ID, slot.Appointment.ID)
}

func TestGenerateTimeSlots_WorkingHoursBlocking(t *testing.T) {
	tests := []struct {
		name        string
		appointment domain.Appointment
	}{
		{name: "appointment before opening", appointment: newAppointment(1, at(9, 0), 60)},
		{name: "appointment after closing", appointment: newAppointment(1, at(17, 0), 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateTimeSlots([]domain.Appointment{tt.appointment}, mondayOnly("10:00", "16:00"), refMonday)

			assert.Equal(t, seq(9, 17), hoursOf(slots))

			nine, _ := slotAt(slots, 9)
			noon, _ := slotAt(slots, 12)
			five, _ := slotAt(slots, 17)
			assert.True(t, nine.IsBlocked)
			assert.False(t, noon.IsBlocked)
			assert.True(t, five.IsBlocked)
		})
	}
}

func TestGenerateTimeSlots_DisabledDay(t *testing.T) {
	hours := mondayOnly("10:00", "16:00")
	hours[domain.Monday] = domain.DayHours{Enabled: false, Start: "10:00", End: "16:00"}

	appointments := []domain.Appointment{
		newAppointment(1, at(11, 0), 60),
		newAppointment(2, at(21, 30), 60),
	}

	slots := GenerateTimeSlots(appointments, hours, refMonday)

	assert.Equal(t, seq(9, 22), hoursOf(slots))
	for _, s := range slots {
		assert.True(t, s.IsBlocked, "hour %d", s.Hour)
	}
}

func TestGenerateTimeSlots_DurationAcrossHourBoundary(t *testing.T) {
	appointment := newAppointment(1, at(16, 0), 75)

	slots := GenerateTimeSlots([]domain.Appointment{appointment}, nil, refMonday)

	four, _ := slotAt(slots, 16)
	five, _ := slotAt(slots, 17)
	six, _ := slotAt(slots, 18)
	require.NotNil(t, four.Appointment)
	require.NotNil(t, five.Appointment)
	assert.Equal(t, appointment.ID, four.Appointment.ID)
	assert.Equal(t, appointment.ID, five.Appointment.ID)
	assert.Nil(t, six.Appointment)
}

func TestGenerateTimeSlots_ExactHourEnd(t *testing.T) {
	appointment := newAppointment(1, at(10, 30), 30)

	slots := GenerateTimeSlots([]domain.Appointment{appointment}, nil, refMonday)

	ten, _ := slotAt(slots, 10)
	eleven, _ := slotAt(slots, 11)
	require.NotNil(t, ten.Appointment)
	assert.Nil(t, eleven.Appointment)
}

func TestGenerateTimeSlots_PointInTime(t *testing.T) {
	appointment := newAppointment(1, at(14, 59), 0)

	slots := GenerateTimeSlots([]domain.Appointment{appointment}, nil, refMonday)

	var occupied []int
	for _, s := range slots {
		if s.IsOccupied() {
			occupied = append(occupied, s.Hour)
		}
	}
	assert.Equal(t, []int{14}, occupied)
}

func TestGenerateTimeSlots_Idempotent(t *testing.T) {
	appointments := []domain.Appointment{
		newAppointment(3, at(23, 0), 125),
		newAppointment(1, at(8, 15), 90),
		newAppointment(2, at(12, 0), 60),
	}
	hours := mondayOnly("10:00", "16:00")

	first := GenerateTimeSlots(appointments, hours, refMonday)
	second := GenerateTimeSlots(appointments, hours, refMonday)

	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_OnlyWorkingHours(t *testing.T) {
	slots := GenerateTimeSlots(nil, mondayOnly("10:00", "16:00"), refMonday)

	assert.Equal(t, seq(10, 16), hoursOf(slots))
	for _, s := range slots {
		assert.False(t, s.IsBlocked)
	}
}

func TestGenerateTimeSlots_OverlapEarliestWins(t *testing.T) {
	later := newAppointment(1, at(14, 30), 60)
	earlier := newAppointment(2, at(14, 0), 60)

	slots := GenerateTimeSlots([]domain.Appointment{later, earlier}, nil, refMonday)

	two, _ := slotAt(slots, 14)
	three, _ := slotAt(slots, 15)
	require.NotNil(t, two.Appointment)
	require.NotNil(t, three.Appointment)
	assert.Equal(t, earlier.ID, two.Appointment.ID)
	assert.Equal(t, later.ID, three.Appointment.ID)
}

func TestGenerateTimeSlots_SameStartLowestIDWins(t *testing.T) {
	b := newAppointment(9, at(11, 0), 60)
	a := newAppointment(4, at(11, 0), 60)

	slots := GenerateTimeSlots([]domain.Appointment{b, a}, nil, refMonday)

	eleven, _ := slotAt(slots, 11)
	require.NotNil(t, eleven.Appointment)
	assert.Equal(t, a.ID, eleven.Appointment.ID)
}

func TestGenerateTimeSlots_DoesNotMutateInput(t *testing.T) {
	appointments := []domain.Appointment{
		newAppointment(2, at(15, 0), 60),
		newAppointment(1, at(9, 0), -20),
	}
	snapshot := make([]domain.Appointment, len(appointments))
	copy(snapshot, appointments)

	_ = GenerateTimeSlots(appointments, nil, refMonday)

	assert.Equal(t, snapshot, appointments)
}

func TestGenerateTimeSlots_ConvertsToReferenceLocation(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	ref := time.Date(2026, 3, 2, 0, 0, 0, 0, moscow)

	// 05:00 UTC is 08:00 MSK
	appointment := newAppointment(1, time.Date(2026, 3, 2, 5, 0, 0, 0, time.UTC), 60)

	slots := GenerateTimeSlots([]domain.Appointment{appointment}, nil, ref)

	assert.Equal(t, 8, slots[0].Hour)
	assert.NotNil(t, slots[0].Appointment)
}

func TestGenerateTimeSlots_BlockingFollowsReferenceDay(t *testing.T) {
	// Appointment belongs to Sunday (closed), but the viewed day is Monday
	sundayAppointment := newAppointment(1, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), 60)

	slots := GenerateTimeSlots([]domain.Appointment{sundayAppointment}, mondayOnly("10:00", "16:00"), refMonday)

	noon, ok := slotAt(slots, 12)
	require.True(t, ok)
	assert.False(t, noon.IsBlocked)
	assert.NotNil(t, noon.Appointment)
}

func TestBuildSlots_UsesGivenRange(t *testing.T) {
	r := Range{FirstHour: 22, LastHour: 1, WrapsMidnight: true}

	slots := BuildSlots(r, nil, nil, refMonday)

	assert.Equal(t, []int{22, 23, 0, 1}, hoursOf(slots))
	assert.Equal(t, []string{"10 PM", "11 PM", "12 AM", "1 AM"}, []string{
		slots[0].Label, slots[1].Label, slots[2].Label, slots[3].Label,
	})
}

func TestHourLabel(t *testing.T) {
	tests := map[int]string{
		0:  "12 AM",
		1:  "1 AM",
		9:  "9 AM",
		11: "11 AM",
		12: "12 PM",
		13: "1 PM",
		20: "8 PM",
		23: "11 PM",
	}

	for hour, want := range tests {
		assert.Equal(t, want, HourLabel(hour), "hour %d", hour)
	}
}

func TestDetectConflicts(t *testing.T) {
	appointments := []domain.Appointment{
		newAppointment(1, at(14, 30), 60),
		newAppointment(2, at(14, 0), 60),
		newAppointment(3, at(18, 0), 30),
	}
	r := ExpandRange(appointments, nil, refMonday)

	conflicts := DetectConflicts(r, appointments, refMonday)

	require.Len(t, conflicts, 1)
	assert.Equal(t, 14, conflicts[0].Hour)
	assert.Equal(t, []uuid.UUID{idOf(2), idOf(1)}, conflicts[0].AppointmentIDs)
}

func TestDetectConflicts_SameHourDifferentNights(t *testing.T) {
	early := newAppointment(1, at(1, 0), 30)
	overnight := newAppointment(2, at(23, 0), 125)
	appointments := []domain.Appointment{early, overnight}

	r := ExpandRange(appointments, nil, refMonday)
	require.True(t, r.Contains(1))

	assert.Empty(t, DetectConflicts(r, appointments, refMonday))
}

func TestDetectConflicts_OnlyIntersectingAppointmentsListed(t *testing.T) {
	appointments := []domain.Appointment{
		newAppointment(1, at(10, 0), 20),
		newAppointment(2, at(10, 40), 30),
		newAppointment(3, at(10, 50), 10),
	}
	r := ExpandRange(appointments, nil, refMonday)

	conflicts := DetectConflicts(r, appointments, refMonday)

	require.Len(t, conflicts, 1)
	assert.Equal(t, 10, conflicts[0].Hour)
	assert.Equal(t, []uuid.UUID{idOf(2), idOf(3)}, conflicts[0].AppointmentIDs)
}

func TestGenerateTimeSlots_SpringForward(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 02:00 EST jumps to 03:00 EDT
	ref := time.Date(2026, 3, 8, 0, 0, 0, 0, newYork)
	appt := newAppointment(1, time.Date(2026, 3, 8, 1, 30, 0, 0, newYork), 60)

	slots := GenerateTimeSlots([]domain.Appointment{appt}, nil, ref)

	assert.Equal(t, seq(1, 20), hoursOf(slots))
	for hour, occupied := range map[int]bool{1: true, 2: false, 3: true, 4: false} {
		slot, ok := slotAt(slots, hour)
		require.True(t, ok)
		assert.Equal(t, occupied, slot.IsOccupied(), "hour %d", hour)
	}
}

func TestGenerateTimeSlots_FallBack(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-11-01 02:00 EDT falls back to 01:00 EST, hour 1 happens twice
	ref := time.Date(2026, 11, 1, 0, 0, 0, 0, newYork)
	appt := newAppointment(1, time.Date(2026, 11, 1, 0, 30, 0, 0, newYork), 120)

	slots := GenerateTimeSlots([]domain.Appointment{appt}, nil, ref)

	assert.Equal(t, seq(0, 20), hoursOf(slots))
	for hour, occupied := range map[int]bool{0: true, 1: true, 2: false} {
		slot, ok := slotAt(slots, hour)
		require.True(t, ok)
		assert.Equal(t, occupied, slot.IsOccupied(), "hour %d", hour)
	}
}

func TestSummarize(t *testing.T) {
	appointments := []domain.Appointment{
		newAppointment(1, at(9, 0), 60),
		newAppointment(2, at(12, 0), 90),
	}

	slots := GenerateTimeSlots(appointments, mondayOnly("10:00", "16:00"), refMonday)
	summary := Summarize(slots)

	// 9..17: 9 blocked+occupied, 12-13 occupied, 17 blocked (padding)
	assert.Equal(t, Summary{Total: 9, Occupied: 3, Blocked: 2, Free: 5}, summary)
}

func TestFilterByStatus(t *testing.T) {
	confirmed := newAppointment(1, at(10, 0), 60)
	pending := newAppointment(2, at(11, 0), 60)
	pending.Status = domain.StatusPending
	cancelled := newAppointment(3, at(12, 0), 60)
	cancelled.Status = domain.StatusCancelled

	all := []domain.Appointment{confirmed, pending, cancelled}

	assert.Equal(t, []domain.Appointment{confirmed}, FilterByStatus(all, domain.CalendarStatuses...))
	assert.Equal(t, []domain.Appointment{confirmed, pending}, FilterByStatus(all, domain.CalendarStatusesWithPending...))
	assert.Empty(t, FilterByStatus(all))
}
