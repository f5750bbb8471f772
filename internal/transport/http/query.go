package http

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/AadiD123/348-Project/internal/app"
	"github.com/AadiD123/348-Project/internal/domain"
)

// EventQueryService is the minimal interface the filter/statistics
// endpoints need.
type EventQueryService interface {
	FilteredEvents(ctx context.Context, params app.EventFilterParams) ([]domain.Event, error)
	EventStats(ctx context.Context, params app.EventFilterParams) (domain.EventStats, error)
}

// HandleFilteredEvents returns the handler for GET /filtered-events.
func HandleFilteredEvents(svc EventQueryService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		events, err := svc.FilteredEvents(r.Context(), filterParams(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, projectEvents(events))
	}
}

// HandleEventStats returns the handler for GET /event-stats.
func HandleEventStats(svc EventQueryService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		stats, err := svc.EventStats(r.Context(), filterParams(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, eventStatsResponse{
			AverageCoverCharge:     stats.AverageCoverCharge,
			AverageDurationMinutes: stats.AverageDurationMinutes,
			AverageAgeRequirement:  stats.AverageAgeRequirement,
			AverageEventTime:       stats.AverageEventTime,
		})
	}
}

func filterParams(r *http.Request) app.EventFilterParams {
	q := r.URL.Query()
	return app.EventFilterParams{
		BarID:     q.Get("bar_id"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Category:  q.Get("category"),
	}
}

type eventStatsResponse struct {
	AverageCoverCharge     float64 `json:"average_cover_charge"`
	AverageDurationMinutes float64 `json:"average_duration_minutes"`
	AverageAgeRequirement  float64 `json:"average_age_requirement"`
	AverageEventTime       string  `json:"average_event_time"`
}
