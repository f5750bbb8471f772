package domain

import "time"

// Bar is a venue that hosts events.
type Bar struct {
	ID           int64
	Name         string
	Address      string
	Capacity     *int
	ContactPhone *string
	CreatedAt    time.Time
}
