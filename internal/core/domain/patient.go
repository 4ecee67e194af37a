package domain

import (
	"github.com/suchimauz/clinic-admin-panel/internal/core/json_types"
)

// PatientRef - пациент внутри записи на прием
// Бэкенд присылает его то в поле patientId, то в поле patient,
// то объектом, то голым идентификатором - адаптер приводит все к этому типу
type PatientRef struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName,omitempty"`
	Mobile   string `json:"mobile,omitempty"`
}

type PatientAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type Patient struct {
	ID                     string            `json:"_id"`
	FullName               string            `json:"fullName"`
	Email                  string            `json:"email,omitempty"`
	Mobile                 string            `json:"mobile"`
	DateOfBirth            *json_types.Date  `json:"dateOfBirth,omitempty"`
	Age                    int               `json:"age,omitempty"`
	Gender                 string            `json:"gender,omitempty"`
	BloodGroup             string            `json:"bloodGroup,omitempty"`
	Address                *PatientAddress   `json:"address,omitempty"`
	PreferredContactMethod string            `json:"preferredContactMethod,omitempty"`
	KnownAllergies         []string          `json:"knownAllergies,omitempty"`
	MedicalConditions      []string          `json:"medicalConditions,omitempty"`
	Medications            []string          `json:"medications,omitempty"`
	EmergencyContact       *EmergencyContact `json:"emergencyContact,omitempty"`
	IsActive               bool              `json:"isActive"`
}

type PatientStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
