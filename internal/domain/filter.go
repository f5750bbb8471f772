package domain

import "time"

// EventFilter restricts an event query. Nil fields match everything; set
// fields are AND-composed. The date range is only active when both ends are
// present.
type EventFilter struct {
	BarID     *int64
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

// HasDateRange reports whether both ends of the date range are set.
func (f EventFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}
