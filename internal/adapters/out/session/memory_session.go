package session

import (
	"sync"

	"github.com/suchimauz/clinic-admin-panel/internal/config"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// MemorySession - токен доктора в памяти процесса
// Начальное значение можно задать через конфиг, логин его перезапишет
type MemorySession struct {
	mu     sync.RWMutex
	token  string
	logger out.LoggerPort
}

func NewMemorySession(cfg *config.Config, logger out.LoggerPort) *MemorySession {
	return &MemorySession{
		token:  cfg.Clinic.Token,
		logger: logger.WithModule("Session"),
	}
}

func (s *MemorySession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySession) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemorySession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		s.logger.Info("session.token.cleared", out.LogFields{})
	}
	s.token = ""
}
