package clinicapi

import (
	"context"
	"fmt"
	"net/http"
	nurl "net/url"
	"strconv"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

func (a *ClinicAdapter) GetPatients(ctx context.Context, params out.ListParams) ([]domain.Patient, error) {
	query := nurl.Values{}
	if params.Limit > 0 {
		query.Add("limit", strconv.Itoa(params.Limit))
	}

	env, err := a.do(ctx, http.MethodGet, "/api/doctors/my-patients", query, nil)
	if err != nil {
		a.logger.Error("clinic.patients.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	var patients []domain.Patient
	if err := decodePayload(env, &patients); err != nil {
		return nil, err
	}

	return patients, nil
}

func (a *ClinicAdapter) GetPatient(ctx context.Context, patientID string) (*domain.Patient, error) {
	env, err := a.do(ctx, http.MethodGet, "/api/patients/"+patientID, nil, nil)
	if err != nil {
		return nil, err
	}

	patient := &domain.Patient{}
	if err := decodePayload(env, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func (a *ClinicAdapter) CreatePatient(ctx context.Context, req out.PatientRequest) (*domain.Patient, error) {
	a.logger.Info("clinic.patient.create", out.LogFields{
		"mobile": req.Mobile,
	})

	env, err := a.do(ctx, http.MethodPost, "/api/doctors/my-patients", nil, req)
	if err != nil {
		return nil, err
	}

	patient := &domain.Patient{}
	if err := decodePayload(env, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func (a *ClinicAdapter) UpdatePatient(ctx context.Context, patientID string, req out.PatientRequest) (*domain.Patient, error) {
	env, err := a.do(ctx, http.MethodPut, "/api/patients/"+patientID, nil, req)
	if err != nil {
		return nil, err
	}

	patient := &domain.Patient{}
	if err := decodePayload(env, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func (a *ClinicAdapter) DeletePatient(ctx context.Context, patientID string) error {
	_, err := a.do(ctx, http.MethodDelete, "/api/patients/"+patientID, nil, nil)
	return err
}

func (a *ClinicAdapter) TogglePatientStatus(ctx context.Context, patientID string) (*domain.Patient, error) {
	env, err := a.do(ctx, http.MethodPatch, fmt.Sprintf("/api/patients/%s/toggle-status", patientID), nil, nil)
	if err != nil {
		return nil, err
	}

	patient := &domain.Patient{}
	if err := decodePayload(env, patient); err != nil {
		return nil, err
	}

	return patient, nil
}

func (a *ClinicAdapter) GetPatientStats(ctx context.Context) (*domain.PatientStats, error) {
	env, err := a.do(ctx, http.MethodGet, "/api/doctors/my-patients/stats", nil, nil)
	if err != nil {
		return nil, err
	}

	stats := &domain.PatientStats{}
	if err := decodePayload(env, stats); err != nil {
		return nil, err
	}

	return stats, nil
}
