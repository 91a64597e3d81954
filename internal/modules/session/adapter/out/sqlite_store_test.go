package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	out "tempo/internal/modules/session/adapter/out"
	"tempo/internal/modules/session/domain"
	apperrors "tempo/internal/platform/errors"
)

func newStore(t *testing.T) *out.SQLiteStore {
	t.Helper()
	store, err := out.NewSQLiteStore(filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func at(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.Local)
}

func TestAppendAssignsIDsAndLoadAllOrdersDescending(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, domain.Session{Timestamp: at(1, 9), Duration: 60, Mood: "平静", Props: "手", Rating: 3})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := store.Append(ctx, domain.Session{Timestamp: at(2, 9), Duration: 120, Mood: "平静", Props: "手", Rating: 3})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first == 0 || second == 0 || first == second {
		t.Fatalf("ids must be distinct and nonzero: %d %d", first, second)
	}

	sessions, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != second || sessions[1].ID != first {
		t.Fatalf("expected most recent first, got ids %d, %d", sessions[0].ID, sessions[1].ID)
	}
	if !sessions[0].Timestamp.Equal(at(2, 9)) {
		t.Fatalf("timestamp round trip failed: %v", sessions[0].Timestamp)
	}
}

func TestReplaceAllSwapsWholeCollection(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	if _, err := store.Append(ctx, domain.Session{Timestamp: at(1, 9), Duration: 60, Mood: "平静", Props: "手", Rating: 3}); err != nil {
		t.Fatalf("append: %v", err)
	}
	replacement := []domain.Session{
		{Timestamp: at(5, 20), Duration: 925, Remark: "测试", Rating: 4.5, Mood: "兴奋", Props: "手"},
		{Timestamp: at(6, 20), Duration: 300, Rating: 3, Mood: "平静", Props: "手"},
	}
	if err := store.ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	sessions, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions after replace, got %d", len(sessions))
	}
	for _, s := range sessions {
		if s.ID == 0 {
			t.Fatalf("replace must assign fresh ids")
		}
	}
	if sessions[1].Remark != "测试" || sessions[1].Rating != 4.5 {
		t.Fatalf("replaced fields lost: %+v", sessions[1])
	}

	if err := store.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	sessions, err = store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected empty collection, got %d", len(sessions))
	}
}

func TestUpdateRewritesFieldsButNotTimestamp(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	id, err := store.Append(ctx, domain.Session{Timestamp: at(1, 9), Duration: 60, Rating: 3, Mood: "平静", Props: "手"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = store.Update(ctx, domain.Session{ID: id, Duration: 90, Remark: "edited", Rating: 5, Mood: "兴奋", Props: "手"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	sessions, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	s := sessions[0]
	if s.Duration != 90 || s.Remark != "edited" || s.Rating != 5 {
		t.Fatalf("update lost fields: %+v", s)
	}
	if !s.Timestamp.Equal(at(1, 9)) {
		t.Fatalf("update must not touch timestamp: %v", s.Timestamp)
	}
}

func TestRemoveMissingRowIsNotFound(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	if err := store.Remove(ctx, 42); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Update(ctx, domain.Session{ID: 42}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveDeletesExactlyOne(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	keep, err := store.Append(ctx, domain.Session{Timestamp: at(1, 9), Duration: 60, Rating: 3, Mood: "平静", Props: "手"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	drop, err := store.Append(ctx, domain.Session{Timestamp: at(1, 9), Duration: 60, Rating: 3, Mood: "平静", Props: "手"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := store.Remove(ctx, drop); err != nil {
		t.Fatalf("remove: %v", err)
	}
	sessions, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != keep {
		t.Fatalf("identical timestamps must not confuse delete: %+v", sessions)
	}
}
