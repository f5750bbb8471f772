package domain

// EventStats holds the aggregate statistics computed over a filtered event
// set. The first three values are rounded to two decimal places;
// AverageEventTime is an HH:MM minute-of-day string.
type EventStats struct {
	AverageCoverCharge     float64
	AverageDurationMinutes float64
	AverageAgeRequirement  float64
	AverageEventTime       string
}
