package domain

import (
	"github.com/suchimauz/clinic-admin-panel/internal/core/json_types"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "No-Show"
)

type AppointmentType string

const (
	AppointmentTypeOnsite    AppointmentType = "onsite"
	AppointmentTypeVoiceCall AppointmentType = "voiceCall"
	AppointmentTypeVideoCall AppointmentType = "videoCall"
	AppointmentTypeHomeVisit AppointmentType = "homeVisit"
)

type VisitType string

const (
	VisitTypeFirst    VisitType = "First Visit"
	VisitTypeFollowUp VisitType = "Follow-Up"
)

type Appointment struct {
	ID                  string                     `json:"_id"`
	Patient             PatientRef                 `json:"patient"`
	AppointmentDate     json_types.Date            `json:"appointmentDate"`
	AppointmentTime     string                     `json:"appointmentTime"`
	AppointmentDateTime json_types.DateTimeOrEmpty `json:"appointmentDateTime"`
	Slot                *SlotRange                 `json:"slot,omitempty"`
	Status              AppointmentStatus          `json:"status"`
	AppointmentType     AppointmentType            `json:"appointmentType"`
	VisitType           VisitType                  `json:"visitType"`
	ConsultationFee     float64                    `json:"consultationFee"`
	Reason              string                     `json:"reason,omitempty"`
	Notes               string                     `json:"notes,omitempty"`
}

type AppointmentStats struct {
	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
