package domain

// Slot is one hour-wide row of the calendar timeline
type Slot struct {
	Hour        int          // Hour of day, 0-23
	Label       string       // 12-hour label, e.g. "9 AM"
	Appointment *Appointment // Appointment occupying the hour, nil if free
	IsBlocked   bool         // Hour is outside working hours of the viewed day
}

// IsOccupied returns true if an appointment occupies the slot
func (s *Slot) IsOccupied() bool {
	return s.Appointment != nil
}

// IsFree returns true if the slot is neither occupied nor blocked
func (s *Slot) IsFree() bool {
	return s.Appointment == nil && !s.IsBlocked
}
