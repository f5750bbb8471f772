package app

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/AadiD123/348-Project/internal/domain"
)

const dateLayout = "2006-01-02"

// EventLister is the minimal repository surface the query service needs.
type EventLister interface {
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
}

// QueryService serves the filtered event listing and the aggregate
// statistics over the same filtered query.
type QueryService struct {
	repo EventLister
}

func NewQueryService(repo EventLister) *QueryService {
	return &QueryService{repo: repo}
}

// EventFilterParams holds the raw query-string values before validation.
// Empty strings mean the criterion is absent.
type EventFilterParams struct {
	BarID     string
	StartDate string
	EndDate   string
	Category  string
}

// ParseEventFilter validates the raw parameters and builds a typed filter.
// A malformed bar_id or date fails outright; a date range with only one end
// supplied is ignored rather than rejected, matching the established API
// behavior.
func ParseEventFilter(params EventFilterParams) (domain.EventFilter, error) {
	var filter domain.EventFilter

	if params.BarID != "" {
		barID, err := strconv.ParseInt(params.BarID, 10, 64)
		if err != nil {
			return domain.EventFilter{}, domain.ErrInvalidBarID
		}
		filter.BarID = &barID
	}

	if params.StartDate != "" && params.EndDate != "" {
		startDate, err := time.Parse(dateLayout, params.StartDate)
		if err != nil {
			return domain.EventFilter{}, domain.ErrInvalidDate
		}
		endDate, err := time.Parse(dateLayout, params.EndDate)
		if err != nil {
			return domain.EventFilter{}, domain.ErrInvalidDate
		}
		filter.StartDate = &startDate
		filter.EndDate = &endDate
	}

	if params.Category != "" {
		category := params.Category
		filter.Category = &category
	}

	return filter, nil
}

// FilteredEvents returns the events matching all active criteria.
func (s *QueryService) FilteredEvents(ctx context.Context, params EventFilterParams) ([]domain.Event, error) {
	filter, err := ParseEventFilter(params)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEvents(ctx, filter)
}

// EventStats computes the aggregate statistics over the filtered event set.
func (s *QueryService) EventStats(ctx context.Context, params EventFilterParams) (domain.EventStats, error) {
	filter, err := ParseEventFilter(params)
	if err != nil {
		return domain.EventStats{}, err
	}
	events, err := s.repo.ListEvents(ctx, filter)
	if err != nil {
		return domain.EventStats{}, err
	}
	return AggregateEvents(events), nil
}

// AggregateEvents computes the four statistics over the given events. An
// empty set yields zeros and "00:00" rather than an error.
//
// Durations are the raw signed difference end − start in minutes, seconds
// included: an event crossing midnight contributes a negative duration, the
// same value the stored TIME columns produce when subtracted. Null cover
// charges are excluded from both the sum and the count; zero charges count.
func AggregateEvents(events []domain.Event) domain.EventStats {
	if len(events) == 0 {
		return domain.EventStats{AverageEventTime: "00:00"}
	}

	var (
		coverSum    float64
		coverCount  int
		ageSum      float64
		durationSum float64
		startSum    float64
	)
	for _, event := range events {
		if event.CoverCharge != nil {
			coverSum += *event.CoverCharge
			coverCount++
		}
		ageSum += float64(event.AgeRequirement)
		durationSum += float64(event.EndTime.SecondOfDay()-event.StartTime.SecondOfDay()) / 60
		startSum += float64(event.StartTime.MinuteOfDay())
	}

	count := float64(len(events))

	var avgCover float64
	if coverCount > 0 {
		avgCover = coverSum / float64(coverCount)
	}

	// Truncate the averaged minute-of-day to whole minutes before
	// formatting.
	avgStart := int(startSum / count)

	return domain.EventStats{
		AverageCoverCharge:     round2(avgCover),
		AverageDurationMinutes: round2(durationSum / count),
		AverageAgeRequirement:  round2(ageSum / count),
		AverageEventTime:       fmt.Sprintf("%02d:%02d", avgStart/60, avgStart%60),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
