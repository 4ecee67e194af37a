package in

import (
	"context"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// PanelUseCase - экраны панели без собственной логики:
// списки, карточки, статистика, профиль, рецепты
type PanelUseCase interface {
	// Авторизация
	Login(ctx context.Context, req out.LoginRequest) (*out.LoginResult, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, req out.RegisterRequest) (*domain.Doctor, error)
	GetProfile(ctx context.Context) (*domain.Doctor, error)
	UpdateProfile(ctx context.Context, req out.UpdateProfileRequest) (*domain.Doctor, error)

	// Пациенты
	GetPatients(ctx context.Context) ([]domain.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*domain.Patient, error)
	CreatePatient(ctx context.Context, req out.PatientRequest) (*domain.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, req out.PatientRequest) (*domain.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	TogglePatientStatus(ctx context.Context, patientID string) (*domain.Patient, error)

	// Записи на прием
	GetAppointments(ctx context.Context, params out.ListParams) ([]domain.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error
	CancelAppointment(ctx context.Context, appointmentID string) error
	DeleteAppointment(ctx context.Context, appointmentID string) error

	// Главный экран
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)

	// Рецепты, issue=true сразу выписывает рецепт после создания
	CreatePrescription(ctx context.Context, req out.PrescriptionRequest, issue bool) (*domain.Prescription, error)
	UploadPrescription(ctx context.Context, req out.UploadPrescriptionRequest, issue bool) (*domain.Prescription, error)
}
