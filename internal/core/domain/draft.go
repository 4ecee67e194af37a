package domain

import (
	"time"

	"github.com/google/uuid"
)

type DraftMode string

const (
	DraftModeCreate DraftMode = "create"
	DraftModeEdit   DraftMode = "edit"
)

// SlotsState - что показывать на месте сетки слотов
type SlotsState string

const (
	SlotsStateNoDate  SlotsState = "no_date"
	SlotsStateLoading SlotsState = "loading"
	SlotsStateEmpty   SlotsState = "empty"
	SlotsStateReady   SlotsState = "ready"
)

// AppointmentDraft - черновик записи на прием
// Живет только в памяти панели, от открытия формы до отправки или отмены
type AppointmentDraft struct {
	ID            uuid.UUID `json:"id"`
	Mode          DraftMode `json:"mode"`
	AppointmentID string    `json:"appointmentId,omitempty"`

	PatientID       string            `json:"patientId"`
	Date            string            `json:"appointmentDate"`
	TimeLabel       string            `json:"appointmentTime"`
	AppointmentType AppointmentType   `json:"appointmentType"`
	VisitType       VisitType         `json:"visitType"`
	ConsultationFee float64           `json:"consultationFee"`
	Reason          string            `json:"reason"`
	Notes           string            `json:"notes"`
	Status          AppointmentStatus `json:"status"`

	Slots        []Slot `json:"slots"`
	SlotsLoading bool   `json:"slotsLoading"`
	SelectedSlot *Slot  `json:"selectedSlot,omitempty"`

	// OriginalSlot - слот, который был в записи при загрузке формы редактирования
	// Не меняется, нужен чтобы понять, трогал ли пользователь время приема
	OriginalSlot *SlotRange `json:"originalSlot,omitempty"`

	// SlotChanged взводится только когда пользователь сам выбрал слот в этой сессии,
	// унаследованный с сервера выбор его не поднимает
	SlotChanged bool `json:"slotChanged"`

	// Поколение запроса слотов, опоздавший ответ с другим поколением отбрасывается
	SlotsGeneration uint64 `json:"-"`
}

// SlotsDisplayState выводится только из (дата выбрана, загрузка, количество слотов),
// состояния взаимоисключающие
func (d *AppointmentDraft) SlotsDisplayState() SlotsState {
	switch {
	case d.Date == "":
		return SlotsStateNoDate
	case d.SlotsLoading:
		return SlotsStateLoading
	case len(d.Slots) == 0:
		return SlotsStateEmpty
	default:
		return SlotsStateReady
	}
}

// FindSlot ищет слот по времени начала в последнем загруженном списке
func (d *AppointmentDraft) FindSlot(start time.Time) *Slot {
	for i := range d.Slots {
		if d.Slots[i].Start.Equal(start) {
			return &d.Slots[i]
		}
	}
	return nil
}
