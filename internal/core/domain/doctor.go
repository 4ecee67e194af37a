package domain

import (
	"github.com/suchimauz/clinic-admin-panel/internal/core/json_types"
)

// OperatingDay - рабочие часы доктора в один день недели
type OperatingDay struct {
	Open         json_types.Clock `json:"open"`
	Close        json_types.Clock `json:"close"`
	SlotDuration string           `json:"slotDuration"`
}

type Doctor struct {
	ID              string                  `json:"_id"`
	Name            string                  `json:"name"`
	Email           string                  `json:"email"`
	Mobile          string                  `json:"mobile,omitempty"`
	Phone           string                  `json:"phone,omitempty"`
	Specialization  string                  `json:"specialization,omitempty"`
	Department      string                  `json:"department,omitempty"`
	DurationMinutes int                     `json:"durationMinutes,omitempty"`
	OperatingHours  map[string]OperatingDay `json:"operatingHours,omitempty"`
}
