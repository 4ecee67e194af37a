package services

import (
	"context"
	"strings"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// PanelService - экраны без собственной логики поверх бэкенда клиники
type PanelService struct {
	clinicPort out.ClinicPort
	session    out.SessionPort
	logger     out.LoggerPort
}

func NewPanelService(
	clinicPort out.ClinicPort,
	session out.SessionPort,
	logger out.LoggerPort,
) *PanelService {
	return &PanelService{
		clinicPort: clinicPort,
		session:    session,
		logger:     logger.WithModule("PanelService"),
	}
}

func (s *PanelService) Login(ctx context.Context, req out.LoginRequest) (*out.LoginResult, error) {
	result, err := s.clinicPort.Login(ctx, req)
	if err != nil {
		s.logger.Error("panel.login.failed", out.LogFields{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	if result.Token != "" {
		s.session.SetToken(result.Token)
	}

	s.logger.Info("panel.login.success", out.LogFields{
		"email": req.Email,
	})

	return result, nil
}

func (s *PanelService) Logout(ctx context.Context) error {
	err := s.clinicPort.Logout(ctx)

	// Токен чистим в любом случае, даже если бэкенд не ответил
	s.session.Clear()

	if err != nil {
		s.logger.Warn("panel.logout.backend_failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}

	return nil
}

func (s *PanelService) Register(ctx context.Context, req out.RegisterRequest) (*domain.Doctor, error) {
	doctor, err := s.clinicPort.Register(ctx, req)
	if err != nil {
		s.logger.Error("panel.register.failed", out.LogFields{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	return doctor, nil
}

func (s *PanelService) GetProfile(ctx context.Context) (*domain.Doctor, error) {
	return s.clinicPort.GetProfile(ctx)
}

func (s *PanelService) UpdateProfile(ctx context.Context, req out.UpdateProfileRequest) (*domain.Doctor, error) {
	return s.clinicPort.UpdateProfile(ctx, req)
}

func (s *PanelService) GetPatients(ctx context.Context) ([]domain.Patient, error) {
	return s.clinicPort.GetPatients(ctx, out.ListParams{})
}

func (s *PanelService) GetPatient(ctx context.Context, patientID string) (*domain.Patient, error) {
	return s.clinicPort.GetPatient(ctx, patientID)
}

func (s *PanelService) CreatePatient(ctx context.Context, req out.PatientRequest) (*domain.Patient, error) {
	return s.clinicPort.CreatePatient(ctx, req)
}

func (s *PanelService) UpdatePatient(ctx context.Context, patientID string, req out.PatientRequest) (*domain.Patient, error) {
	return s.clinicPort.UpdatePatient(ctx, patientID, req)
}

func (s *PanelService) DeletePatient(ctx context.Context, patientID string) error {
	return s.clinicPort.DeletePatient(ctx, patientID)
}

func (s *PanelService) TogglePatientStatus(ctx context.Context, patientID string) (*domain.Patient, error) {
	return s.clinicPort.TogglePatientStatus(ctx, patientID)
}

func (s *PanelService) GetAppointments(ctx context.Context, params out.ListParams) ([]domain.Appointment, error) {
	return s.clinicPort.GetAppointments(ctx, params)
}

func (s *PanelService) GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	return s.clinicPort.GetAppointment(ctx, appointmentID)
}

func (s *PanelService) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error {
	return s.clinicPort.UpdateAppointmentStatus(ctx, appointmentID, status)
}

func (s *PanelService) CancelAppointment(ctx context.Context, appointmentID string) error {
	return s.clinicPort.CancelAppointment(ctx, appointmentID)
}

func (s *PanelService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	return s.clinicPort.DeleteAppointment(ctx, appointmentID)
}

// GetDashboard собирает главный экран из трех походов в бэкенд:
// статистика приемов, статистика пациентов и пять ближайших запланированных приемов
func (s *PanelService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	appointmentStats, err := s.clinicPort.GetAppointmentStats(ctx)
	if err != nil {
		return nil, err
	}

	patientStats, err := s.clinicPort.GetPatientStats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.clinicPort.GetAppointments(ctx, out.ListParams{
		Limit:  5,
		Status: string(domain.AppointmentStatusScheduled),
	})
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Appointments: *appointmentStats,
		Patients:     *patientStats,
		Recent:       recent,
	}, nil
}

func (s *PanelService) CreatePrescription(ctx context.Context, req out.PrescriptionRequest, issue bool) (*domain.Prescription, error) {
	// Пустые строки лекарств и анализов до бэкенда не доводим
	medications := make([]domain.Medication, 0, len(req.Medications))
	for _, medication := range req.Medications {
		if strings.TrimSpace(medication.Name) != "" {
			medications = append(medications, medication)
		}
	}
	req.Medications = medications

	labTests := make([]string, 0, len(req.LabTests))
	for _, test := range req.LabTests {
		if strings.TrimSpace(test) != "" {
			labTests = append(labTests, test)
		}
	}
	req.LabTests = labTests

	prescription, err := s.clinicPort.GeneratePrescription(ctx, req)
	if err != nil {
		return nil, err
	}

	if issue {
		if err := s.clinicPort.IssuePrescription(ctx, prescription.ID); err != nil {
			s.logger.Error("panel.prescription.issue_failed", out.LogFields{
				"prescriptionId": prescription.ID,
				"error":          err.Error(),
			})
			return nil, err
		}
		prescription.Status = domain.PrescriptionStatusIssued
	}

	return prescription, nil
}

func (s *PanelService) UploadPrescription(ctx context.Context, req out.UploadPrescriptionRequest, issue bool) (*domain.Prescription, error) {
	prescription, err := s.clinicPort.UploadPrescription(ctx, req)
	if err != nil {
		return nil, err
	}

	if issue {
		if err := s.clinicPort.IssuePrescription(ctx, prescription.ID); err != nil {
			return nil, err
		}
		prescription.Status = domain.PrescriptionStatusIssued
	}

	return prescription, nil
}
