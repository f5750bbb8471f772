package domain

import "time"

// Event is a scheduled occurrence at a bar. EventDate carries the calendar
// date only (midnight UTC); StartTime and EndTime are wall-clock times with
// no date attached, so an EndTime before StartTime means the event runs past
// midnight.
type Event struct {
	ID             int64
	BarID          int64
	Title          string
	Description    string
	EventDate      time.Time
	StartTime      TimeOfDay
	EndTime        TimeOfDay
	CoverCharge    *float64
	AgeRequirement int
	Status         string
	CreatedAt      time.Time
}

const (
	DefaultAgeRequirement = 21
	DefaultStatus         = "scheduled"
)
