package services

import (
	"context"
	"errors"
	"testing"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

type fakeSession struct {
	token   string
	cleared bool
}

func (s *fakeSession) Token() string         { return s.token }
func (s *fakeSession) SetToken(token string) { s.token = token }
func (s *fakeSession) Clear() {
	s.token = ""
	s.cleared = true
}

type fakePanelPort struct {
	out.ClinicPort

	loginResult *out.LoginResult
	loginErr    error
	logoutErr   error

	appointmentStats *domain.AppointmentStats
	patientStats     *domain.PatientStats
	appointments     []domain.Appointment
	listParams       out.ListParams

	prescriptionReq *out.PrescriptionRequest
	issuedID        string
	issueErr        error
}

func (f *fakePanelPort) Login(ctx context.Context, req out.LoginRequest) (*out.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakePanelPort) Logout(ctx context.Context) error { return f.logoutErr }

func (f *fakePanelPort) GetAppointmentStats(ctx context.Context) (*domain.AppointmentStats, error) {
	return f.appointmentStats, nil
}

func (f *fakePanelPort) GetPatientStats(ctx context.Context) (*domain.PatientStats, error) {
	return f.patientStats, nil
}

func (f *fakePanelPort) GetAppointments(ctx context.Context, params out.ListParams) ([]domain.Appointment, error) {
	f.listParams = params
	return f.appointments, nil
}

func (f *fakePanelPort) GeneratePrescription(ctx context.Context, req out.PrescriptionRequest) (*domain.Prescription, error) {
	f.prescriptionReq = &req
	return &domain.Prescription{ID: "prescription-1", Status: domain.PrescriptionStatusDraft}, nil
}

func (f *fakePanelPort) IssuePrescription(ctx context.Context, prescriptionID string) error {
	if f.issueErr != nil {
		return f.issueErr
	}
	f.issuedID = prescriptionID
	return nil
}

func TestLogin_StoresToken(t *testing.T) {
	session := &fakeSession{}
	port := &fakePanelPort{loginResult: &out.LoginResult{Token: "jwt-token"}}
	svc := NewPanelService(port, session, nopLogger{})

	result, err := svc.Login(context.Background(), out.LoginRequest{Email: "doc@clinic.ru", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "jwt-token" {
		t.Errorf("expected token returned, got %q", result.Token)
	}
	if session.Token() != "jwt-token" {
		t.Errorf("expected token stored in session, got %q", session.Token())
	}
}

func TestLogin_FailureKeepsSession(t *testing.T) {
	session := &fakeSession{token: "old-token"}
	port := &fakePanelPort{loginErr: errors.New("invalid credentials")}
	svc := NewPanelService(port, session, nopLogger{})

	_, err := svc.Login(context.Background(), out.LoginRequest{Email: "doc@clinic.ru", Password: "wrong"})
	if err == nil {
		t.Fatal("expected error")
	}
	if session.Token() != "old-token" {
		t.Errorf("expected session untouched, got %q", session.Token())
	}
}

func TestLogout_ClearsTokenEvenOnBackendError(t *testing.T) {
	session := &fakeSession{token: "jwt-token"}
	port := &fakePanelPort{logoutErr: errors.New("backend is down")}
	svc := NewPanelService(port, session, nopLogger{})

	err := svc.Logout(context.Background())
	if err == nil {
		t.Fatal("expected backend error surfaced")
	}
	if !session.cleared {
		t.Error("expected session cleared despite backend error")
	}
}

func TestGetDashboard(t *testing.T) {
	port := &fakePanelPort{
		appointmentStats: &domain.AppointmentStats{Total: 10, Scheduled: 4},
		patientStats:     &domain.PatientStats{Total: 25, Active: 20},
		appointments:     []domain.Appointment{{ID: "a1"}, {ID: "a2"}},
	}
	svc := NewPanelService(port, &fakeSession{}, nopLogger{})

	dashboard, err := svc.GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dashboard.Appointments.Total != 10 {
		t.Errorf("expected appointment stats, got %+v", dashboard.Appointments)
	}
	if dashboard.Patients.Total != 25 {
		t.Errorf("expected patient stats, got %+v", dashboard.Patients)
	}
	if len(dashboard.Recent) != 2 {
		t.Errorf("expected 2 recent appointments, got %d", len(dashboard.Recent))
	}
	if port.listParams.Limit != 5 || port.listParams.Status != string(domain.AppointmentStatusScheduled) {
		t.Errorf("expected recent list limited to 5 scheduled, got %+v", port.listParams)
	}
}

func TestCreatePrescription_FiltersEmptyRows(t *testing.T) {
	port := &fakePanelPort{}
	svc := NewPanelService(port, &fakeSession{}, nopLogger{})

	req := out.PrescriptionRequest{
		AppointmentID: "appointment-1",
		Medications: []domain.Medication{
			{Name: "Paracetamol", Dosage: "500mg"},
			{Name: "   "},
			{Name: ""},
		},
		LabTests: []string{"CBC", "", "  "},
	}

	prescription, err := svc.CreatePrescription(context.Background(), req, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := port.prescriptionReq
	if sent == nil {
		t.Fatal("expected request captured")
	}
	if len(sent.Medications) != 1 || sent.Medications[0].Name != "Paracetamol" {
		t.Errorf("expected empty medications filtered, got %+v", sent.Medications)
	}
	if len(sent.LabTests) != 1 || sent.LabTests[0] != "CBC" {
		t.Errorf("expected empty lab tests filtered, got %+v", sent.LabTests)
	}

	if port.issuedID != "prescription-1" {
		t.Errorf("expected prescription issued, got %q", port.issuedID)
	}
	if prescription.Status != domain.PrescriptionStatusIssued {
		t.Errorf("expected issued status, got %q", prescription.Status)
	}
}

func TestCreatePrescription_DraftNotIssued(t *testing.T) {
	port := &fakePanelPort{}
	svc := NewPanelService(port, &fakeSession{}, nopLogger{})

	prescription, err := svc.CreatePrescription(context.Background(), out.PrescriptionRequest{AppointmentID: "appointment-1"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port.issuedID != "" {
		t.Errorf("expected no issue call, got %q", port.issuedID)
	}
	if prescription.Status != domain.PrescriptionStatusDraft {
		t.Errorf("expected draft status, got %q", prescription.Status)
	}
}
