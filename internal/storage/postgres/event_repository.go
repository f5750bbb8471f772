package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AadiD123/348-Project/internal/domain"
)

const dateLayout = "2006-01-02"

const eventColumns = `event_id, bar_id, title, description, event_date, start_time, end_time, cover_charge, age_requirement, status, created_at`

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) (int64, error) {
	const stmt = `
INSERT INTO events (bar_id, title, description, event_date, start_time, end_time, cover_charge, age_requirement, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING event_id`

	var id int64
	err := r.queryRow(ctx, stmt,
		event.BarID,
		event.Title,
		event.Description,
		event.EventDate,
		timeValue(event.StartTime),
		timeValue(event.EndTime),
		event.CoverCharge,
		event.AgeRequirement,
		event.Status,
		event.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrBarNotFound
		}
		return 0, fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) AddCategory(ctx context.Context, eventID, categoryID int64) error {
	const stmt = `INSERT INTO event_categories (event_id, category_id) VALUES ($1, $2)`

	if _, err := r.exec(ctx, stmt, eventID, categoryID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("add category: %w", err)
	}
	return nil
}

func (r *EventRepository) GetCategory(ctx context.Context, categoryID int64) (domain.Category, error) {
	const query = `SELECT category_id, name, description FROM categories WHERE category_id = $1`

	var c domain.Category
	err := r.queryRow(ctx, query, categoryID).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, eventID int64) (domain.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`

	event, err := scanEvent(r.queryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// UpdateEvent replaces every mutable field of the event. Category
// associations are left untouched.
func (r *EventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
UPDATE events
SET bar_id = $2, title = $3, description = $4, event_date = $5, start_time = $6, end_time = $7, cover_charge = $8, age_requirement = $9, status = $10
WHERE event_id = $1`

	tag, err := r.exec(ctx, stmt,
		event.ID,
		event.BarID,
		event.Title,
		event.Description,
		event.EventDate,
		timeValue(event.StartTime),
		timeValue(event.EndTime),
		event.CoverCharge,
		event.AgeRequirement,
		event.Status,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrBarNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// DeleteEvent removes the event; its category associations go with it via
// the ON DELETE CASCADE on event_categories.
func (r *EventRepository) DeleteEvent(ctx context.Context, eventID int64) error {
	const stmt = `DELETE FROM events WHERE event_id = $1`

	tag, err := r.exec(ctx, stmt, eventID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// ListEvents returns the events matching every active filter criterion,
// ordered by event_id. The WHERE clause is composed dynamically, so one
// query serves the unfiltered listing, the bar-only listing, and the
// filtered/statistics endpoints.
func (r *EventRepository) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	sqlQuery, err := buildListEventsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build event query: %w", err)
	}

	rows, err := r.query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func buildListEventsQuery(filter domain.EventFilter) (string, error) {
	selectStmt := goqu.Dialect("postgres").
		From("events").
		Select(
			goqu.I("events.event_id"),
			goqu.I("events.bar_id"),
			goqu.I("events.title"),
			goqu.I("events.description"),
			goqu.I("events.event_date"),
			goqu.I("events.start_time"),
			goqu.I("events.end_time"),
			goqu.I("events.cover_charge"),
			goqu.I("events.age_requirement"),
			goqu.I("events.status"),
			goqu.I("events.created_at"),
		).
		Order(goqu.I("events.event_id").Asc())

	if filter.BarID != nil {
		selectStmt = selectStmt.Where(goqu.I("events.bar_id").Eq(*filter.BarID))
	}
	if filter.HasDateRange() {
		selectStmt = selectStmt.Where(
			goqu.I("events.event_date").Gte(filter.StartDate.Format(dateLayout)),
			goqu.I("events.event_date").Lte(filter.EndDate.Format(dateLayout)),
		)
	}
	if filter.Category != nil {
		selectStmt = selectStmt.
			Join(goqu.T("event_categories"), goqu.On(goqu.I("event_categories.event_id").Eq(goqu.I("events.event_id")))).
			Join(goqu.T("categories"), goqu.On(goqu.I("categories.category_id").Eq(goqu.I("event_categories.category_id")))).
			Where(goqu.I("categories.name").Eq(*filter.Category))
	}

	sqlQuery, _, err := selectStmt.ToSQL()
	if err != nil {
		return "", err
	}
	return sqlQuery, nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		e          domain.Event
		start, end pgtype.Time
	)
	err := row.Scan(
		&e.ID,
		&e.BarID,
		&e.Title,
		&e.Description,
		&e.EventDate,
		&start,
		&end,
		&e.CoverCharge,
		&e.AgeRequirement,
		&e.Status,
		&e.CreatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	e.StartTime = domain.TimeOfDayFromMicroseconds(start.Microseconds)
	e.EndTime = domain.TimeOfDayFromMicroseconds(end.Microseconds)
	return e, nil
}

func timeValue(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Microseconds(), Valid: true}
}

func (r *EventRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *EventRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *EventRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
