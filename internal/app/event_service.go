package app

import (
	"context"
	"time"

	"github.com/AadiD123/348-Project/internal/clock"
	"github.com/AadiD123/348-Project/internal/domain"
)

type EventRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateEvent(ctx context.Context, event domain.Event) (int64, error)
	AddCategory(ctx context.Context, eventID, categoryID int64) error
	GetCategory(ctx context.Context, categoryID int64) (domain.Category, error)
	GetEvent(ctx context.Context, eventID int64) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID int64) error
	ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
}

type EventService struct {
	repo  EventRepository
	clock clock.Clock
}

func NewEventService(repo EventRepository, clk clock.Clock) *EventService {
	return &EventService{
		repo:  repo,
		clock: clk,
	}
}

// EventInput carries the mutable fields of an event. Optional fields are
// pointers; absent values take the creation defaults (empty description,
// zero cover charge, age 21, status "scheduled").
type EventInput struct {
	BarID          int64
	Title          string
	Description    string
	EventDate      time.Time
	StartTime      domain.TimeOfDay
	EndTime        domain.TimeOfDay
	CoverCharge    *float64
	AgeRequirement *int
	Status         string
}

type CreateEventInput struct {
	EventInput
	CategoryID int64
}

func (in EventInput) validate() error {
	if in.BarID <= 0 {
		return domain.ErrBarRequired
	}
	if in.Title == "" {
		return domain.ErrTitleRequired
	}
	if in.EventDate.IsZero() {
		return domain.ErrEventDateRequired
	}
	if in.CoverCharge != nil && *in.CoverCharge < 0 {
		return domain.ErrNegativeCoverCharge
	}
	if in.AgeRequirement != nil && *in.AgeRequirement <= 0 {
		return domain.ErrInvalidAgeRequirement
	}
	return nil
}

func (in EventInput) toEvent() domain.Event {
	event := domain.Event{
		BarID:          in.BarID,
		Title:          in.Title,
		Description:    in.Description,
		EventDate:      in.EventDate,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		AgeRequirement: domain.DefaultAgeRequirement,
		Status:         domain.DefaultStatus,
	}
	if in.CoverCharge != nil {
		event.CoverCharge = in.CoverCharge
	} else {
		zero := 0.0
		event.CoverCharge = &zero
	}
	if in.AgeRequirement != nil {
		event.AgeRequirement = *in.AgeRequirement
	}
	if in.Status != "" {
		event.Status = in.Status
	}
	return event
}

// CreateEvent stores a new event and tags it with the given category. The
// category must already exist; the lookup, the event insert, and the
// association insert share one transaction, so a missing category leaves
// nothing behind.
func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	if err := in.validate(); err != nil {
		return domain.Event{}, err
	}
	if in.CategoryID <= 0 {
		return domain.Event{}, domain.ErrCategoryRequired
	}

	event := in.toEvent()
	event.CreatedAt = s.clock.Now()

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetCategory(txCtx, in.CategoryID); err != nil {
			return err
		}
		id, err := s.repo.CreateEvent(txCtx, event)
		if err != nil {
			return err
		}
		event.ID = id
		return s.repo.AddCategory(txCtx, id, in.CategoryID)
	})
	if err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, eventID int64) (domain.Event, error) {
	return s.repo.GetEvent(ctx, eventID)
}

// ListEvents returns all events, optionally restricted to one bar.
func (s *EventService) ListEvents(ctx context.Context, barID *int64) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx, domain.EventFilter{BarID: barID})
}

// UpdateEvent replaces every mutable field of an existing event. Omitted
// optional fields fall back to the creation defaults rather than keeping
// their stored values.
func (s *EventService) UpdateEvent(ctx context.Context, eventID int64, in EventInput) (domain.Event, error) {
	if err := in.validate(); err != nil {
		return domain.Event{}, err
	}

	event := in.toEvent()
	event.ID = eventID

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetEvent(txCtx, eventID)
		if err != nil {
			return err
		}
		event.CreatedAt = current.CreatedAt
		return s.repo.UpdateEvent(txCtx, event)
	})
	if err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID int64) error {
	return s.repo.DeleteEvent(ctx, eventID)
}
