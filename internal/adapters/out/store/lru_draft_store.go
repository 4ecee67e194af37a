package store

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/clinic-admin-panel/internal/config"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// LRUDraftStore - черновики в памяти с вытеснением самых старых
// Брошенные формы не копятся вечно: при переполнении черновик просто пропадает,
// для пользователя это равносильно уходу со страницы
type LRUDraftStore struct {
	cache  *lru.Cache[uuid.UUID, *domain.AppointmentDraft]
	logger out.LoggerPort
}

func NewLRUDraftStore(cfg *config.Config, logger out.LoggerPort) (*LRUDraftStore, error) {
	cache, err := lru.New[uuid.UUID, *domain.AppointmentDraft](cfg.Drafts.Size)
	if err != nil {
		logger.Error("drafts.store.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Drafts.Size,
		})
		return nil, err
	}

	return &LRUDraftStore{
		cache:  cache,
		logger: logger.WithModule("DraftStore"),
	}, nil
}

func (s *LRUDraftStore) Put(draft *domain.AppointmentDraft) {
	evicted := s.cache.Add(draft.ID, draft)
	if evicted {
		s.logger.Debug("drafts.store.evicted", out.LogFields{
			"draftId": draft.ID,
		})
	}
}

func (s *LRUDraftStore) Get(id uuid.UUID) (*domain.AppointmentDraft, bool) {
	return s.cache.Get(id)
}

func (s *LRUDraftStore) Delete(id uuid.UUID) {
	s.cache.Remove(id)
}

func (s *LRUDraftStore) ForEach(fn func(draft *domain.AppointmentDraft)) {
	for _, key := range s.cache.Keys() {
		if draft, ok := s.cache.Peek(key); ok {
			fn(draft)
		}
	}
}
