package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
	"github.com/suchimauz/clinic-admin-panel/internal/utils"
)

type AppointmentDraftService struct {
	clinicPort out.ClinicPort
	draftStore out.DraftStorePort
	logger     out.LoggerPort

	// Один мьютекс на все черновики, их мало и операции над ними дешевые
	mu sync.Mutex
}

func NewAppointmentDraftService(
	clinicPort out.ClinicPort,
	draftStore out.DraftStorePort,
	logger out.LoggerPort,
) *AppointmentDraftService {
	return &AppointmentDraftService{
		clinicPort: clinicPort,
		draftStore: draftStore,
		logger:     logger.WithModule("AppointmentDraftService"),
	}
}

func (s *AppointmentDraftService) StartCreateDraft(ctx context.Context) (*domain.AppointmentDraft, error) {
	draft := &domain.AppointmentDraft{
		ID:              uuid.New(),
		Mode:            domain.DraftModeCreate,
		AppointmentType: domain.AppointmentTypeOnsite,
		VisitType:       domain.VisitTypeFirst,
		Status:          domain.AppointmentStatusScheduled,
	}

	s.mu.Lock()
	s.draftStore.Put(draft)
	snapshot := cloneDraft(draft)
	s.mu.Unlock()

	s.logger.Info("draft.create.started", out.LogFields{
		"draftId": draft.ID,
	})

	return snapshot, nil
}

func (s *AppointmentDraftService) StartEditDraft(ctx context.Context, appointmentID string) (*domain.AppointmentDraft, error) {
	appointment, err := s.clinicPort.GetAppointment(ctx, appointmentID)
	if err != nil {
		s.logger.Error("draft.edit.appointment.fetch_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, err
	}

	draft := &domain.AppointmentDraft{
		ID:              uuid.New(),
		Mode:            domain.DraftModeEdit,
		AppointmentID:   appointmentID,
		PatientID:       appointment.Patient.ID,
		Date:            utils.DateOnly(appointment.AppointmentDate.Date),
		TimeLabel:       appointment.AppointmentTime,
		AppointmentType: appointment.AppointmentType,
		VisitType:       appointment.VisitType,
		ConsultationFee: appointment.ConsultationFee,
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		Status:          appointment.Status,
	}

	if draft.AppointmentType == "" {
		draft.AppointmentType = domain.AppointmentTypeOnsite
	}
	if draft.VisitType == "" {
		draft.VisitType = domain.VisitTypeFirst
	}
	if draft.Status == "" {
		draft.Status = domain.AppointmentStatusScheduled
	}

	// Запоминаем исходный слот и наследуем его как текущий выбор,
	// SlotChanged при этом остается снятым
	if appointment.Slot != nil && !appointment.Slot.Start.IsZero() {
		draft.OriginalSlot = &domain.SlotRange{
			SlotID: appointment.Slot.SlotID,
			Start:  appointment.Slot.Start,
			End:    appointment.Slot.End,
		}
		draft.SelectedSlot = &domain.Slot{
			Start:       appointment.Slot.Start,
			End:         appointment.Slot.End,
			IsAvailable: true,
		}
	}

	s.mu.Lock()
	s.draftStore.Put(draft)
	s.mu.Unlock()

	s.logger.Info("draft.edit.started", out.LogFields{
		"draftId":       draft.ID,
		"appointmentId": appointmentID,
		"date":          draft.Date,
	})

	// Сразу подтягиваем слоты на дату записи
	var fetchErr error
	if draft.Date != "" {
		fetchErr = s.fetchSlots(ctx, draft.ID, draft.Date)
	}

	s.mu.Lock()
	current, ok := s.draftStore.Get(draft.ID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	snapshot := cloneDraft(current)
	s.mu.Unlock()

	return snapshot, fetchErr
}

func (s *AppointmentDraftService) GetDraft(ctx context.Context, draftID uuid.UUID) (*domain.AppointmentDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.draftStore.Get(draftID)
	if !ok {
		return nil, ErrDraftNotFound
	}

	return cloneDraft(draft), nil
}

func (s *AppointmentDraftService) SetField(ctx context.Context, draftID uuid.UUID, field, value string) (*domain.AppointmentDraft, error) {
	s.mu.Lock()

	draft, ok := s.draftStore.Get(draftID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}

	dateChanged := false

	switch field {
	case "patientId":
		draft.PatientID = value
	case "appointmentDate":
		dateChanged = draft.Date != value
		draft.Date = value
	case "appointmentType":
		draft.AppointmentType = domain.AppointmentType(value)
	case "visitType":
		draft.VisitType = domain.VisitType(value)
	case "status":
		draft.Status = domain.AppointmentStatus(value)
	case "reason":
		draft.Reason = value
	case "notes":
		draft.Notes = value
	case "consultationFee":
		// Единственное нестроковое поле формы, мусор на входе превращается в ноль
		fee, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fee = 0
		}
		draft.ConsultationFee = fee
	default:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	// Смена даты всегда сбрасывает выбор слота, чтобы слот с прошлой даты
	// не уехал в запись с новой датой
	if field == "appointmentDate" && dateChanged {
		draft.SelectedSlot = nil
		draft.TimeLabel = ""
		draft.SlotChanged = false
		draft.Slots = nil
	}

	needFetch := field == "appointmentDate" && dateChanged && value != ""
	date := draft.Date
	s.mu.Unlock()

	var fetchErr error
	if needFetch {
		fetchErr = s.fetchSlots(ctx, draftID, date)
	}

	s.mu.Lock()
	draft, ok = s.draftStore.Get(draftID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	snapshot := cloneDraft(draft)
	s.mu.Unlock()

	return snapshot, fetchErr
}

// fetchSlots забирает слоты на дату с учетом поколения запроса:
// если за время похода в бэкенд дата успела смениться еще раз,
// опоздавший ответ отбрасывается
func (s *AppointmentDraftService) fetchSlots(ctx context.Context, draftID uuid.UUID, date string) error {
	s.mu.Lock()
	draft, ok := s.draftStore.Get(draftID)
	if !ok {
		s.mu.Unlock()
		return ErrDraftNotFound
	}
	draft.SlotsGeneration++
	generation := draft.SlotsGeneration
	draft.SlotsLoading = true
	s.mu.Unlock()

	slots, err := s.clinicPort.GetAvailableSlots(ctx, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok = s.draftStore.Get(draftID)
	if !ok {
		return ErrDraftNotFound
	}

	if draft.SlotsGeneration != generation {
		s.logger.Debug("draft.slots.fetch_superseded", out.LogFields{
			"draftId":    draftID,
			"date":       date,
			"generation": generation,
		})
		return nil
	}

	draft.SlotsLoading = false

	if err != nil {
		draft.Slots = nil
		s.logger.Error("draft.slots.fetch_failed", out.LogFields{
			"draftId": draftID,
			"date":    date,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %v", ErrSlotsFetch, err)
	}

	draft.Slots = slots

	s.logger.Debug("draft.slots.fetch_success", out.LogFields{
		"draftId":    draftID,
		"date":       date,
		"slotsCount": len(slots),
	})

	return nil
}

func (s *AppointmentDraftService) SelectSlot(ctx context.Context, draftID uuid.UUID, start time.Time) (*domain.AppointmentDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.draftStore.Get(draftID)
	if !ok {
		return nil, ErrDraftNotFound
	}

	slot := draft.FindSlot(start)
	if slot == nil || !slot.IsAvailable {
		// Недоступный слот молча игнорируем, текущий выбор не трогаем
		s.logger.Debug("draft.slot.select_ignored", out.LogFields{
			"draftId": draftID,
			"start":   start,
		})
		return cloneDraft(draft), nil
	}

	selected := *slot
	draft.SelectedSlot = &selected
	draft.TimeLabel = utils.ClockLabel(slot.Start)
	draft.SlotChanged = true

	s.logger.Debug("draft.slot.selected", out.LogFields{
		"draftId": draftID,
		"start":   slot.Start,
		"label":   draft.TimeLabel,
	})

	return cloneDraft(draft), nil
}

func (s *AppointmentDraftService) Submit(ctx context.Context, draftID uuid.UUID) (*domain.Appointment, error) {
	s.mu.Lock()
	draft, ok := s.draftStore.Get(draftID)
	if !ok {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	snapshot := cloneDraft(draft)
	s.mu.Unlock()

	// Проверки перед отправкой, при провале запрос в бэкенд не уходит
	if snapshot.PatientID == "" || snapshot.Date == "" {
		return nil, ErrValidation
	}
	if snapshot.Mode == domain.DraftModeCreate && snapshot.SelectedSlot == nil {
		return nil, ErrValidation
	}

	var (
		appointment *domain.Appointment
		err         error
	)

	switch snapshot.Mode {
	case domain.DraftModeCreate:
		appointment, err = s.submitCreate(ctx, snapshot)
	case domain.DraftModeEdit:
		appointment, err = s.submitEdit(ctx, snapshot)
	default:
		return nil, fmt.Errorf("unknown draft mode: %s", snapshot.Mode)
	}

	if err != nil {
		s.logger.Error("draft.submit.failed", out.LogFields{
			"draftId": draftID,
			"mode":    snapshot.Mode,
			"error":   err.Error(),
		})
		return nil, err
	}

	// Успешная отправка закрывает черновик
	s.mu.Lock()
	s.draftStore.Delete(draftID)
	s.mu.Unlock()

	s.logger.Info("draft.submit.success", out.LogFields{
		"draftId": draftID,
		"mode":    snapshot.Mode,
	})

	return appointment, nil
}

func (s *AppointmentDraftService) submitCreate(ctx context.Context, draft *domain.AppointmentDraft) (*domain.Appointment, error) {
	selected := draft.SelectedSlot

	req := out.CreateAppointmentRequest{
		PatientID:           draft.PatientID,
		AppointmentDate:     draft.Date,
		AppointmentDateTime: selected.Start.UTC().Format(time.RFC3339),
		AppointmentTime:     draft.TimeLabel,
		Slot: domain.SlotRange{
			Start: selected.Start,
			End:   selected.End,
		},
		AppointmentType: draft.AppointmentType,
		VisitType:       draft.VisitType,
		ConsultationFee: draft.ConsultationFee,
		Reason:          draft.Reason,
		Notes:           draft.Notes,
	}

	return s.clinicPort.CreateAppointment(ctx, req)
}

func (s *AppointmentDraftService) submitEdit(ctx context.Context, draft *domain.AppointmentDraft) (*domain.Appointment, error) {
	req := out.UpdateAppointmentRequest{
		Status:          draft.Status,
		AppointmentType: draft.AppointmentType,
		VisitType:       draft.VisitType,
		ConsultationFee: draft.ConsultationFee,
		ReasonForVisit:  draft.Reason,
		Notes:           draft.Notes,
	}

	// Слот и производные от него даты уходят только если пользователь
	// сам выбрал новый слот, иначе подтвержденное время записи не трогаем
	if draft.SlotChanged && draft.SelectedSlot != nil {
		req.Slot = &domain.SlotRange{
			SlotID: utils.NewObjectID(),
			Start:  draft.SelectedSlot.Start,
			End:    draft.SelectedSlot.End,
		}
		req.AppointmentDate = draft.Date
		req.AppointmentDateTime = draft.SelectedSlot.Start.UTC().Format(time.RFC3339)
	}

	return s.clinicPort.UpdateAppointment(ctx, draft.AppointmentID, req)
}

func (s *AppointmentDraftService) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.draftStore.Get(draftID); !ok {
		return ErrDraftNotFound
	}

	s.draftStore.Delete(draftID)

	s.logger.Debug("draft.discarded", out.LogFields{
		"draftId": draftID,
	})

	return nil
}

func (s *AppointmentDraftService) InvalidateSlot(ctx context.Context, start time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	invalidated := 0
	s.draftStore.ForEach(func(draft *domain.AppointmentDraft) {
		for i := range draft.Slots {
			if draft.Slots[i].Start.Equal(start) {
				draft.Slots[i].IsBooked = true
				draft.Slots[i].IsAvailable = false
				invalidated++
			}
		}

		// Выбор, указывающий на занятый слот, снимаем
		if draft.SelectedSlot != nil && draft.SelectedSlot.Start.Equal(start) {
			draft.SelectedSlot = nil
			draft.TimeLabel = ""
			draft.SlotChanged = false
		}
	})

	if invalidated > 0 {
		s.logger.Info("draft.slot.invalidated", out.LogFields{
			"start": start,
			"count": invalidated,
		})
	}
}

// cloneDraft отдает наружу копию, чтобы хендлеры не читали черновик,
// который меняет параллельный запрос
func cloneDraft(draft *domain.AppointmentDraft) *domain.AppointmentDraft {
	clone := *draft

	if draft.Slots != nil {
		clone.Slots = make([]domain.Slot, len(draft.Slots))
		copy(clone.Slots, draft.Slots)
	}
	if draft.SelectedSlot != nil {
		selected := *draft.SelectedSlot
		clone.SelectedSlot = &selected
	}
	if draft.OriginalSlot != nil {
		original := *draft.OriginalSlot
		clone.OriginalSlot = &original
	}

	return &clone
}
