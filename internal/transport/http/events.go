package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/AadiD123/348-Project/internal/app"
	"github.com/AadiD123/348-Project/internal/domain"
)

const dateLayout = "2006-01-02"

// EventService is the minimal interface the event endpoints need.
type EventService interface {
	CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
	GetEvent(ctx context.Context, eventID int64) (domain.Event, error)
	ListEvents(ctx context.Context, barID *int64) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, in app.EventInput) (domain.Event, error)
	DeleteEvent(ctx context.Context, eventID int64) error
}

// HandleCreateEvent returns the handler for POST /events.
func HandleCreateEvent(svc EventService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req createEventRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		in, err := req.eventRequest.toInput()
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if _, err := svc.CreateEvent(r.Context(), app.CreateEventInput{
			EventInput: in,
			CategoryID: req.CategoryID,
		}); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{Message: "Event created successfully"})
	}
}

// HandleListEvents returns the handler for GET /events, with the optional
// bar_id restriction.
func HandleListEvents(svc EventService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var barID *int64
		if raw := r.URL.Query().Get("bar_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeServiceError(w, domain.ErrInvalidBarID)
				return
			}
			barID = &id
		}

		events, err := svc.ListEvents(r.Context(), barID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, projectEvents(events))
	}
}

// HandleGetEvent returns the handler for GET /events/:event_id.
func HandleGetEvent(svc EventService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		eventID, ok := parseEventID(ps)
		if !ok {
			writeError(w, http.StatusNotFound, codeEventNotFound, domain.ErrEventNotFound.Error())
			return
		}

		event, err := svc.GetEvent(r.Context(), eventID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, projectEvent(event))
	}
}

// HandleUpdateEvent returns the handler for PUT /events/:event_id. The
// update is a full replace: omitted optional fields revert to their
// creation defaults.
func HandleUpdateEvent(svc EventService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		eventID, ok := parseEventID(ps)
		if !ok {
			writeError(w, http.StatusNotFound, codeEventNotFound, domain.ErrEventNotFound.Error())
			return
		}

		var req eventRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		in, err := req.toInput()
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if _, err := svc.UpdateEvent(r.Context(), eventID, in); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Event updated successfully"})
	}
}

// HandleDeleteEvent returns the handler for DELETE /events/:event_id.
func HandleDeleteEvent(svc EventService) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		eventID, ok := parseEventID(ps)
		if !ok {
			writeError(w, http.StatusNotFound, codeEventNotFound, domain.ErrEventNotFound.Error())
			return
		}

		if err := svc.DeleteEvent(r.Context(), eventID); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Event deleted successfully"})
	}
}

type eventRequest struct {
	BarID          int64    `json:"bar_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EventDate      string   `json:"event_date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	CoverCharge    *float64 `json:"cover_charge"`
	AgeRequirement *int     `json:"age_requirement"`
	Status         string   `json:"status"`
}

type createEventRequest struct {
	eventRequest
	CategoryID int64 `json:"category_id"`
}

func (r eventRequest) toInput() (app.EventInput, error) {
	in := app.EventInput{
		BarID:          r.BarID,
		Title:          r.Title,
		Description:    r.Description,
		CoverCharge:    r.CoverCharge,
		AgeRequirement: r.AgeRequirement,
		Status:         r.Status,
	}

	if r.EventDate == "" {
		return app.EventInput{}, domain.ErrEventDateRequired
	}
	eventDate, err := time.Parse(dateLayout, r.EventDate)
	if err != nil {
		return app.EventInput{}, domain.ErrInvalidDate
	}
	in.EventDate = eventDate

	if r.StartTime == "" || r.EndTime == "" {
		return app.EventInput{}, domain.ErrTimesRequired
	}
	if in.StartTime, err = domain.ParseTimeOfDay(r.StartTime); err != nil {
		return app.EventInput{}, err
	}
	if in.EndTime, err = domain.ParseTimeOfDay(r.EndTime); err != nil {
		return app.EventInput{}, err
	}

	return in, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// eventResponse is the wire form of an event. A null or zero cover charge
// projects to null; created_at is RFC 3339 or null when never set.
type eventResponse struct {
	EventID        int64    `json:"event_id"`
	BarID          int64    `json:"bar_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EventDate      string   `json:"event_date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	CoverCharge    *float64 `json:"cover_charge"`
	AgeRequirement int      `json:"age_requirement"`
	Status         string   `json:"status"`
	CreatedAt      *string  `json:"created_at"`
}

func projectEvent(event domain.Event) eventResponse {
	resp := eventResponse{
		EventID:        event.ID,
		BarID:          event.BarID,
		Title:          event.Title,
		Description:    event.Description,
		EventDate:      event.EventDate.Format(dateLayout),
		StartTime:      event.StartTime.String(),
		EndTime:        event.EndTime.String(),
		AgeRequirement: event.AgeRequirement,
		Status:         event.Status,
	}
	if event.CoverCharge != nil && *event.CoverCharge != 0 {
		charge := *event.CoverCharge
		resp.CoverCharge = &charge
	}
	if !event.CreatedAt.IsZero() {
		created := event.CreatedAt.Format(time.RFC3339)
		resp.CreatedAt = &created
	}
	return resp
}

func projectEvents(events []domain.Event) []eventResponse {
	resp := make([]eventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, projectEvent(event))
	}
	return resp
}

func parseEventID(ps httprouter.Params) (int64, bool) {
	id, err := strconv.ParseInt(ps.ByName("event_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
