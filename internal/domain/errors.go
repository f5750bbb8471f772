package domain

import "errors"

var (
	ErrBarNotFound      = errors.New("bar not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrBarRequired       = errors.New("bar_id is required")
	ErrTitleRequired     = errors.New("title is required")
	ErrEventDateRequired = errors.New("event_date is required")
	ErrTimesRequired     = errors.New("start_time and end_time are required")
	ErrCategoryRequired  = errors.New("category_id is required")

	ErrInvalidBarID          = errors.New("invalid bar_id format, must be an integer")
	ErrInvalidDate           = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime           = errors.New("invalid time format, use HH:MM:SS")
	ErrNegativeCoverCharge   = errors.New("cover_charge must not be negative")
	ErrInvalidAgeRequirement = errors.New("age_requirement must be a positive integer")
)
