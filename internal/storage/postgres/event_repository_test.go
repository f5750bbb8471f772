package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AadiD123/348-Project/internal/domain"
	"github.com/AadiD123/348-Project/internal/testutil"
)

func TestEventRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewEventRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	t.Run("CreateEvent and GetEvent round-trip", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		barID := testutil.InsertBar(t, ctx, pool, "Harry's", "123 Main St")
		charge := 12.5
		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		id, err := repo.CreateEvent(ctx, domain.Event{
			BarID:          barID,
			Title:          "Trivia Night",
			Description:    "Weekly trivia",
			EventDate:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			StartTime:      domain.TimeOfDay{Hour: 19, Minute: 30},
			EndTime:        domain.TimeOfDay{Hour: 22},
			CoverCharge:    &charge,
			AgeRequirement: 21,
			Status:         "scheduled",
			CreatedAt:      created,
		})
		if err != nil {
			t.Fatalf("create event: %v", err)
		}

		event, err := repo.GetEvent(ctx, id)
		if err != nil {
			t.Fatalf("get event: %v", err)
		}
		if event.BarID != barID || event.Title != "Trivia Night" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if event.EventDate.Format(dateLayout) != "2025-06-15" {
			t.Fatalf("unexpected event_date: %v", event.EventDate)
		}
		if event.StartTime != (domain.TimeOfDay{Hour: 19, Minute: 30}) {
			t.Fatalf("unexpected start_time: %v", event.StartTime)
		}
		if event.EndTime != (domain.TimeOfDay{Hour: 22}) {
			t.Fatalf("unexpected end_time: %v", event.EndTime)
		}
		if event.CoverCharge == nil || *event.CoverCharge != 12.5 {
			t.Fatalf("unexpected cover_charge: %v", event.CoverCharge)
		}
	})

	t.Run("CreateEvent with unknown bar", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		_, err := repo.CreateEvent(ctx, domain.Event{
			BarID:          999,
			Title:          "Orphan",
			EventDate:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			AgeRequirement: 21,
			Status:         "scheduled",
			CreatedAt:      time.Now().UTC(),
		})
		if !errors.Is(err, domain.ErrBarNotFound) {
			t.Fatalf("expected ErrBarNotFound, got %v", err)
		}
	})

	t.Run("GetEvent missing", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		if _, err := repo.GetEvent(ctx, 42); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("transaction rolls back a failed create", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		barID := testutil.InsertBar(t, ctx, pool, "Harry's", "123 Main St")

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			id, err := repo.CreateEvent(txCtx, domain.Event{
				BarID:          barID,
				Title:          "Doomed",
				EventDate:      time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
				AgeRequirement: 21,
				Status:         "scheduled",
				CreatedAt:      time.Now().UTC(),
			})
			if err != nil {
				return err
			}
			return repo.AddCategory(txCtx, id, 999)
		})
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}

		events, err := repo.ListEvents(ctx, domain.EventFilter{})
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		if len(events) != 0 {
			t.Fatalf("expected rollback to leave no events, got %d", len(events))
		}
	})

	t.Run("UpdateEvent replaces fields and reports missing", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		barID := testutil.InsertBar(t, ctx, pool, "Harry's", "123 Main St")
		id := testutil.InsertEvent(t, ctx, pool, barID, "Old", "2025-06-15", "19:00:00", "22:00:00", nil)

		err := repo.UpdateEvent(ctx, domain.Event{
			ID:             id,
			BarID:          barID,
			Title:          "New",
			EventDate:      time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			StartTime:      domain.TimeOfDay{Hour: 20},
			EndTime:        domain.TimeOfDay{Hour: 23},
			AgeRequirement: 18,
			Status:         "rescheduled",
		})
		if err != nil {
			t.Fatalf("update event: %v", err)
		}

		event, err := repo.GetEvent(ctx, id)
		if err != nil {
			t.Fatalf("get event: %v", err)
		}
		if event.Title != "New" || event.AgeRequirement != 18 || event.Status != "rescheduled" {
			t.Fatalf("unexpected event after update: %+v", event)
		}

		err = repo.UpdateEvent(ctx, domain.Event{
			ID:             id + 1,
			BarID:          barID,
			Title:          "Ghost",
			EventDate:      time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			AgeRequirement: 21,
			Status:         "scheduled",
		})
		if !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("DeleteEvent removes associations", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		barID := testutil.InsertBar(t, ctx, pool, "Harry's", "123 Main St")
		categoryID := testutil.InsertCategory(t, ctx, pool, "Rave")
		id := testutil.InsertEvent(t, ctx, pool, barID, "Rave Night", "2025-06-15", "22:00:00", "02:00:00", nil)
		testutil.TagEvent(t, ctx, pool, id, categoryID)

		if err := repo.DeleteEvent(ctx, id); err != nil {
			t.Fatalf("delete event: %v", err)
		}

		var tags int
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM event_categories WHERE event_id = $1`, id).Scan(&tags); err != nil {
			t.Fatalf("count tags: %v", err)
		}
		if tags != 0 {
			t.Fatalf("expected associations removed, got %d", tags)
		}

		if err := repo.DeleteEvent(ctx, id); !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})
}

func TestEventRepository_ListEvents(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewEventRepository(pool)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	harrys := testutil.InsertBar(t, ctx, pool, "Harry's", "123 Main St")
	brothers := testutil.InsertBar(t, ctx, pool, "Brother's", "456 Elm St")
	rave := testutil.InsertCategory(t, ctx, pool, "Rave")
	sports := testutil.InsertCategory(t, ctx, pool, "Sports")

	charge := 15.0
	raveNight := testutil.InsertEvent(t, ctx, pool, harrys, "Rave Night", "2025-06-10", "22:00:00", "02:00:00", &charge)
	testutil.TagEvent(t, ctx, pool, raveNight, rave)
	gameDay := testutil.InsertEvent(t, ctx, pool, harrys, "Game Day", "2025-06-20", "12:00:00", "15:00:00", nil)
	testutil.TagEvent(t, ctx, pool, gameDay, sports)
	brothersRave := testutil.InsertEvent(t, ctx, pool, brothers, "Brother's Rave", "2025-07-01", "21:00:00", "01:00:00", &charge)
	testutil.TagEvent(t, ctx, pool, brothersRave, rave)

	listIDs := func(filter domain.EventFilter) []int64 {
		t.Helper()
		events, err := repo.ListEvents(ctx, filter)
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		ids := make([]int64, 0, len(events))
		for _, event := range events {
			ids = append(ids, event.ID)
		}
		return ids
	}

	equal := func(got, want []int64) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	}

	t.Run("no filter returns everything in id order", func(t *testing.T) {
		if got := listIDs(domain.EventFilter{}); !equal(got, []int64{raveNight, gameDay, brothersRave}) {
			t.Fatalf("unexpected ids: %v", got)
		}
	})

	t.Run("bar filter", func(t *testing.T) {
		if got := listIDs(domain.EventFilter{BarID: &harrys}); !equal(got, []int64{raveNight, gameDay}) {
			t.Fatalf("unexpected ids: %v", got)
		}
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
		if got := listIDs(domain.EventFilter{StartDate: &start, EndDate: &end}); !equal(got, []int64{raveNight, gameDay}) {
			t.Fatalf("unexpected ids: %v", got)
		}
	})

	t.Run("category filter is exact and case-sensitive", func(t *testing.T) {
		category := "Rave"
		if got := listIDs(domain.EventFilter{Category: &category}); !equal(got, []int64{raveNight, brothersRave}) {
			t.Fatalf("unexpected ids: %v", got)
		}

		lower := "rave"
		if got := listIDs(domain.EventFilter{Category: &lower}); len(got) != 0 {
			t.Fatalf("expected no match for %q, got %v", lower, got)
		}
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		category := "Rave"
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		combined := domain.EventFilter{
			BarID:     &harrys,
			StartDate: &start,
			EndDate:   &end,
			Category:  &category,
		}
		got := listIDs(combined)
		if !equal(got, []int64{raveNight}) {
			t.Fatalf("unexpected ids: %v", got)
		}

		// The combined result must match the intersection of each
		// criterion applied on its own.
		all := listIDs(domain.EventFilter{})
		inAll := func(id int64, ids []int64) bool {
			for _, v := range ids {
				if v == id {
					return true
				}
			}
			return false
		}
		byBar := listIDs(domain.EventFilter{BarID: &harrys})
		byDate := listIDs(domain.EventFilter{StartDate: &start, EndDate: &end})
		byCategory := listIDs(domain.EventFilter{Category: &category})
		for _, id := range got {
			if !inAll(id, all) || !inAll(id, byBar) || !inAll(id, byDate) || !inAll(id, byCategory) {
				t.Fatalf("combined result %d missing from an independent criterion", id)
			}
		}
	})

	t.Run("null cover charge scans as nil", func(t *testing.T) {
		events, err := repo.ListEvents(ctx, domain.EventFilter{})
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		for _, event := range events {
			if event.ID == gameDay && event.CoverCharge != nil {
				t.Fatalf("expected nil cover charge, got %v", *event.CoverCharge)
			}
			if event.ID == raveNight && (event.CoverCharge == nil || *event.CoverCharge != 15) {
				t.Fatalf("expected cover charge 15, got %v", event.CoverCharge)
			}
		}
	})
}

func TestBuildListEventsQuery(t *testing.T) {
	t.Parallel()

	t.Run("no filter has no where clause", func(t *testing.T) {
		t.Parallel()
		sqlQuery, err := buildListEventsQuery(domain.EventFilter{})
		if err != nil {
			t.Fatalf("build query: %v", err)
		}
		if strings.Contains(sqlQuery, "WHERE") {
			t.Fatalf("unexpected WHERE in %q", sqlQuery)
		}
		if !strings.Contains(sqlQuery, "ORDER BY") {
			t.Fatalf("expected ORDER BY in %q", sqlQuery)
		}
	})

	t.Run("category filter joins through the association table", func(t *testing.T) {
		t.Parallel()
		category := "Rave"
		sqlQuery, err := buildListEventsQuery(domain.EventFilter{Category: &category})
		if err != nil {
			t.Fatalf("build query: %v", err)
		}
		if !strings.Contains(sqlQuery, "event_categories") || !strings.Contains(sqlQuery, "categories") {
			t.Fatalf("expected joins in %q", sqlQuery)
		}
	})
}
