package domain

import "time"

// Slot - вариант времени приема, который посчитал бэкенд для выбранной даты
// Панель полностью доверяет флагам занятости и порядку слотов
type Slot struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Duration    int       `json:"duration"`
	IsBooked    bool      `json:"isBooked"`
	IsAvailable bool      `json:"isAvailable"`
}

// SlotRange - забронированный интервал внутри записи на прием
type SlotRange struct {
	SlotID string    `json:"slotId,omitempty"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}
