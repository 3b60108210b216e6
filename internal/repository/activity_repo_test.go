package repository

import (
	"context"
	"testing"
	"time"

	"portfolio_backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockActivityRepo(t *testing.T) (*ActivityRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewActivityRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestActivityRepository_Append(t *testing.T) {
	repo, mock, cleanup := newMockActivityRepo(t)
	defer cleanup()

	occurred := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	e := models.ActivityEvent{
		EventID:     "evt-1",
		OccurredAt:  occurred,
		Type:        "project_created", // normalized to upper case on insert
		Actor:       "alice",
		ProjectID:   4,
		Description: `project "Site" created`,
	}

	mock.ExpectExec("INSERT INTO activity_events").
		WithArgs("evt-1", "2026-08-01 12:30:00", "PROJECT_CREATED", "alice", int64(4), e.Description).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Append(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActivityRepository_Append_DefaultsIDAndTime(t *testing.T) {
	repo, mock, cleanup := newMockActivityRepo(t)
	defer cleanup()

	// EventID and OccurredAt are filled in when empty; project id 0 is
	// stored as NULL.
	mock.ExpectExec("INSERT INTO activity_events").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "PROJECT_DELETED", "admin", nil, "gone").
		WillReturnResult(sqlmock.NewResult(1, 1))

	e := models.ActivityEvent{Type: "PROJECT_DELETED", Actor: "admin", Description: "gone"}
	if err := repo.Append(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActivityRepository_List_Filters(t *testing.T) {
	repo, mock, cleanup := newMockActivityRepo(t)
	defer cleanup()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "type", "actor", "project_id", "message"}).
		AddRow("evt-1", from.Add(time.Hour), "PROJECT_UPDATED", "user", 9, "updated")

	mock.ExpectQuery("SELECT id, occurred_at, type, actor, project_id, message FROM activity_events").
		WithArgs("2026-08-01 00:00:00", "2026-08-31 23:59:59", "PROJECT_UPDATED").
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), from, to, "project_updated")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.EventID != "evt-1" || ev.Actor != "user" || ev.ProjectID != 9 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestActivityRepository_List_NoFilters(t *testing.T) {
	repo, mock, cleanup := newMockActivityRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "occurred_at", "type", "actor", "project_id", "message"}).
		AddRow("a", time.Now(), "PROJECT_CREATED", "alice", nil, "x").
		AddRow("b", time.Now(), "PROJECT_DELETED", "bob", 2, "y")

	mock.ExpectQuery("SELECT id, occurred_at, type, actor, project_id, message FROM activity_events").
		WillReturnRows(rows)

	events, err := repo.List(context.Background(), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ProjectID != 0 {
		t.Fatalf("expected zero project id for NULL column, got %d", events[0].ProjectID)
	}
}
