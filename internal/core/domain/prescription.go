package domain

type PrescriptionStatus string

const (
	PrescriptionStatusDraft  PrescriptionStatus = "draft"
	PrescriptionStatusIssued PrescriptionStatus = "issued"
)

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type Prescription struct {
	ID            string             `json:"_id"`
	AppointmentID string             `json:"appointmentId"`
	Diagnosis     string             `json:"diagnosis,omitempty"`
	Symptoms      string             `json:"symptoms,omitempty"`
	Medications   []Medication       `json:"medications,omitempty"`
	LabTests      []string           `json:"labTests,omitempty"`
	FollowUpDate  string             `json:"followUpDate,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	Status        PrescriptionStatus `json:"status,omitempty"`
	FileURL       string             `json:"fileUrl,omitempty"`
}
