package out

import (
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
)

// DraftStorePort - хранилище черновиков записи на прием
// Черновики живут только в памяти, хранилище ограничено по размеру
type DraftStorePort interface {
	Put(draft *domain.AppointmentDraft)
	Get(id uuid.UUID) (*domain.AppointmentDraft, bool)
	Delete(id uuid.UUID)

	// ForEach обходит все живые черновики, нужен слушателю событий о приемах
	ForEach(fn func(draft *domain.AppointmentDraft))
}
