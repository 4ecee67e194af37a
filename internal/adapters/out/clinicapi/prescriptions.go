package clinicapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

func (a *ClinicAdapter) GeneratePrescription(ctx context.Context, req out.PrescriptionRequest) (*domain.Prescription, error) {
	a.logger.Info("clinic.prescription.generate", out.LogFields{
		"appointmentId": req.AppointmentID,
	})

	env, err := a.do(ctx, http.MethodPost, "/api/prescriptions/generate", nil, req)
	if err != nil {
		return nil, err
	}

	prescription := &domain.Prescription{}
	if err := decodePayload(env, prescription); err != nil {
		return nil, err
	}

	return prescription, nil
}

// UploadPrescription грузит готовый файл рецепта как multipart-форму
func (a *ClinicAdapter) UploadPrescription(ctx context.Context, req out.UploadPrescriptionRequest) (*domain.Prescription, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	if err := writer.WriteField("appointmentId", req.AppointmentID); err != nil {
		return nil, err
	}

	part, err := writer.CreateFormFile("file", req.FileName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(req.Content); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/prescriptions/upload", buf)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	if token := a.session.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env, err := a.decodeResponse(resp, http.MethodPost, "/api/prescriptions/upload")
	if err != nil {
		return nil, err
	}

	prescription := &domain.Prescription{}
	if err := decodePayload(env, prescription); err != nil {
		return nil, err
	}

	return prescription, nil
}

func (a *ClinicAdapter) IssuePrescription(ctx context.Context, prescriptionID string) error {
	_, err := a.do(ctx, http.MethodPost, fmt.Sprintf("/api/prescriptions/%s/issue", prescriptionID), nil, nil)
	return err
}
