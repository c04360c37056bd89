package domain

import "github.com/bsmobile/salon-booking/pkg/types"

// AvailableSlot represents a time slot available for booking
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	FreeMasters     int // мастера профильной категории, свободные в этот слот
	TotalMasters    int // всего мастеров профильной категории
}

// HasFreeMaster returns true if at least one master is free for the slot
func (s *AvailableSlot) HasFreeMaster() bool {
	return s.FreeMasters > 0
}

// IsFullyFree returns true if all masters of the specialty are free
func (s *AvailableSlot) IsFullyFree() bool {
	return s.FreeMasters == s.TotalMasters
}
