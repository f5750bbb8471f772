package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses an HH:MM:SS string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// TimeOfDayFromMicroseconds converts a microseconds-since-midnight value
// (the representation pgtype.Time uses for TIME columns) into a TimeOfDay.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	seconds := int(us / 1e6)
	return TimeOfDay{
		Hour:   seconds / 3600,
		Minute: seconds / 60 % 60,
		Second: seconds % 60,
	}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Microseconds returns the microseconds-since-midnight value for storage.
func (t TimeOfDay) Microseconds() int64 {
	return int64(t.SecondOfDay()) * 1e6
}

// SecondOfDay returns seconds since midnight.
func (t TimeOfDay) SecondOfDay() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// MinuteOfDay returns whole minutes since midnight, seconds discarded.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}
