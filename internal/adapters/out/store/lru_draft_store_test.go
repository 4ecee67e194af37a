package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-admin-panel/internal/config"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields) {}
func (nopLogger) Info(string, out.LogFields)  {}
func (nopLogger) Warn(string, out.LogFields)  {}
func (nopLogger) Error(string, out.LogFields) {}

func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

func newTestStore(t *testing.T, size int) *LRUDraftStore {
	t.Helper()

	cfg := &config.Config{}
	cfg.Drafts.Size = size

	store, err := NewLRUDraftStore(cfg, nopLogger{})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestLRUDraftStore_PutGetDelete(t *testing.T) {
	store := newTestStore(t, 10)

	draft := &domain.AppointmentDraft{ID: uuid.New(), Mode: domain.DraftModeCreate}
	store.Put(draft)

	got, ok := store.Get(draft.ID)
	if !ok {
		t.Fatal("expected draft found")
	}
	if got.ID != draft.ID {
		t.Errorf("expected draft %s, got %s", draft.ID, got.ID)
	}

	store.Delete(draft.ID)
	if _, ok := store.Get(draft.ID); ok {
		t.Error("expected draft deleted")
	}
}

func TestLRUDraftStore_EvictsOldest(t *testing.T) {
	store := newTestStore(t, 2)

	first := &domain.AppointmentDraft{ID: uuid.New()}
	second := &domain.AppointmentDraft{ID: uuid.New()}
	third := &domain.AppointmentDraft{ID: uuid.New()}

	store.Put(first)
	store.Put(second)
	store.Put(third)

	if _, ok := store.Get(first.ID); ok {
		t.Error("expected oldest draft evicted")
	}
	if _, ok := store.Get(second.ID); !ok {
		t.Error("expected second draft kept")
	}
	if _, ok := store.Get(third.ID); !ok {
		t.Error("expected third draft kept")
	}
}

func TestLRUDraftStore_ForEach(t *testing.T) {
	store := newTestStore(t, 10)

	ids := map[uuid.UUID]bool{}
	for i := 0; i < 3; i++ {
		draft := &domain.AppointmentDraft{ID: uuid.New()}
		ids[draft.ID] = true
		store.Put(draft)
	}

	seen := 0
	store.ForEach(func(draft *domain.AppointmentDraft) {
		if !ids[draft.ID] {
			t.Errorf("unexpected draft %s", draft.ID)
		}
		seen++
	})

	if seen != 3 {
		t.Errorf("expected 3 drafts visited, got %d", seen)
	}
}

func TestLRUDraftStore_InvalidSize(t *testing.T) {
	cfg := &config.Config{}
	cfg.Drafts.Size = 0

	if _, err := NewLRUDraftStore(cfg, nopLogger{}); err == nil {
		t.Fatal("expected error for zero size")
	}
}
