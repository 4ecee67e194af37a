package in

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
)

type AppointmentDraftUseCase interface {
	// Открытие формы создания записи
	StartCreateDraft(ctx context.Context) (*domain.AppointmentDraft, error)

	// Открытие формы редактирования: запись забирается с бэкенда,
	// выбор слота наследуется, слоты на дату записи загружаются сразу
	StartEditDraft(ctx context.Context, appointmentID string) (*domain.AppointmentDraft, error)

	GetDraft(ctx context.Context, draftID uuid.UUID) (*domain.AppointmentDraft, error)

	// Изменение одного поля формы, смена даты сбрасывает выбор слота
	// и запускает новую загрузку слотов
	SetField(ctx context.Context, draftID uuid.UUID, field, value string) (*domain.AppointmentDraft, error)

	// Выбор слота по времени начала, недоступный слот игнорируется
	SelectSlot(ctx context.Context, draftID uuid.UUID, start time.Time) (*domain.AppointmentDraft, error)

	// Отправка черновика: создание или частичное обновление записи
	Submit(ctx context.Context, draftID uuid.UUID) (*domain.Appointment, error)

	DiscardDraft(ctx context.Context, draftID uuid.UUID) error

	// Слот заняли в обход панели - помечаем его занятым в открытых черновиках
	InvalidateSlot(ctx context.Context, start time.Time)
}
