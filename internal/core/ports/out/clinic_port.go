package out

import (
	"context"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
)

// ListParams - общие параметры списков бэкенда
type ListParams struct {
	Limit  int
	Status string
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Mobile         string `json:"mobile,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

type LoginResult struct {
	Token  string         `json:"token"`
	Doctor *domain.Doctor `json:"doctor,omitempty"`
}

// OperatingDayRequest - рабочие часы одного дня в том виде, как их вводит доктор
type OperatingDayRequest struct {
	Open         string `json:"open"`
	Close        string `json:"close"`
	SlotDuration string `json:"slotDuration"`
}

type UpdateProfileRequest struct {
	Name            string                         `json:"name"`
	Email           string                         `json:"email"`
	Mobile          string                         `json:"mobile"`
	Phone           string                         `json:"phone"`
	Specialization  string                         `json:"specialization"`
	Department      string                         `json:"department"`
	DurationMinutes int                            `json:"durationMinutes"`
	OperatingHours  map[string]OperatingDayRequest `json:"operatingHours"`
}

type PatientRequest struct {
	FullName               string                   `json:"fullName"`
	Email                  string                   `json:"email"`
	Mobile                 string                   `json:"mobile"`
	Gender                 string                   `json:"gender,omitempty"`
	DateOfBirth            string                   `json:"dateOfBirth,omitempty"`
	Age                    string                   `json:"age,omitempty"`
	BloodGroup             string                   `json:"bloodGroup,omitempty"`
	Address                *domain.PatientAddress   `json:"address,omitempty"`
	PreferredContactMethod string                   `json:"preferredContactMethod,omitempty"`
	KnownAllergies         []string                 `json:"knownAllergies,omitempty"`
	MedicalConditions      []string                 `json:"medicalConditions,omitempty"`
	Medications            []string                 `json:"medications,omitempty"`
	EmergencyContact       *domain.EmergencyContact `json:"emergencyContact,omitempty"`
}

type CreateAppointmentRequest struct {
	PatientID           string                 `json:"patientId"`
	AppointmentDate     string                 `json:"appointmentDate"`
	AppointmentDateTime string                 `json:"appointmentDateTime"`
	AppointmentTime     string                 `json:"appointmentTime"`
	Slot                domain.SlotRange       `json:"slot"`
	AppointmentType     domain.AppointmentType `json:"appointmentType"`
	VisitType           domain.VisitType       `json:"visitType"`
	ConsultationFee     float64                `json:"consultationFee"`
	Reason              string                 `json:"reason"`
	Notes               string                 `json:"notes"`
}

// UpdateAppointmentRequest - частичное обновление записи
// Скалярные поля уходят всегда, слот и производные от него даты -
// только если пользователь выбрал новый слот
type UpdateAppointmentRequest struct {
	Status              domain.AppointmentStatus `json:"status"`
	AppointmentType     domain.AppointmentType   `json:"appointmentType"`
	VisitType           domain.VisitType         `json:"visitType"`
	ConsultationFee     float64                  `json:"consultationFee"`
	ReasonForVisit      string                   `json:"reasonForVisit"`
	Notes               string                   `json:"notes"`
	Slot                *domain.SlotRange        `json:"slot,omitempty"`
	AppointmentDate     string                   `json:"appointmentDate,omitempty"`
	AppointmentDateTime string                   `json:"appointmentDateTime,omitempty"`
}

type PrescriptionRequest struct {
	AppointmentID string              `json:"appointmentId"`
	Diagnosis     string              `json:"diagnosis"`
	Symptoms      string              `json:"symptoms"`
	Medications   []domain.Medication `json:"medications"`
	LabTests      []string            `json:"labTests"`
	FollowUpDate  *string             `json:"followUpDate"`
	Notes         string              `json:"notes"`
}

type UploadPrescriptionRequest struct {
	AppointmentID string
	FileName      string
	ContentType   string
	Content       []byte
}

type ClinicPort interface {
	// Авторизация доктора
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, req RegisterRequest) (*domain.Doctor, error)
	GetProfile(ctx context.Context) (*domain.Doctor, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.Doctor, error)

	// Пациенты доктора
	GetPatients(ctx context.Context, params ListParams) ([]domain.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*domain.Patient, error)
	CreatePatient(ctx context.Context, req PatientRequest) (*domain.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, req PatientRequest) (*domain.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	TogglePatientStatus(ctx context.Context, patientID string) (*domain.Patient, error)
	GetPatientStats(ctx context.Context) (*domain.PatientStats, error)

	// Записи на прием
	GetAppointments(ctx context.Context, params ListParams) ([]domain.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, req UpdateAppointmentRequest) (*domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error
	CancelAppointment(ctx context.Context, appointmentID string) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
	GetAppointmentStats(ctx context.Context) (*domain.AppointmentStats, error)

	// Слоты считает бэкенд, панель только забирает готовый список на дату
	GetAvailableSlots(ctx context.Context, date string) ([]domain.Slot, error)

	// Рецепты
	GeneratePrescription(ctx context.Context, req PrescriptionRequest) (*domain.Prescription, error)
	UploadPrescription(ctx context.Context, req UploadPrescriptionRequest) (*domain.Prescription, error)
	IssuePrescription(ctx context.Context, prescriptionID string) error
}
