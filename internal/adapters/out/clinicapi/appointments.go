package clinicapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nurl "net/url"
	"strconv"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/json_types"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// appointmentResource - запись на прием в том виде, как ее отдает бэкенд
// Пациент может лежать и в patientId, и в patient, причина - и в reason,
// и в reasonForVisit; вся эта неоднозначность гасится здесь и дальше не уходит
type appointmentResource struct {
	ID                  string                     `json:"_id"`
	PatientID           json.RawMessage            `json:"patientId"`
	Patient             json.RawMessage            `json:"patient"`
	AppointmentDate     json_types.Date            `json:"appointmentDate"`
	AppointmentTime     string                     `json:"appointmentTime"`
	AppointmentDateTime json_types.DateTimeOrEmpty `json:"appointmentDateTime"`
	Slot                *domain.SlotRange          `json:"slot"`
	Status              domain.AppointmentStatus   `json:"status"`
	AppointmentType     domain.AppointmentType     `json:"appointmentType"`
	VisitType           domain.VisitType           `json:"visitType"`
	ConsultationFee     float64                    `json:"consultationFee"`
	Reason              string                     `json:"reason"`
	ReasonForVisit      string                     `json:"reasonForVisit"`
	Notes               string                     `json:"notes"`
}

func (r *appointmentResource) toDomain() domain.Appointment {
	appointment := domain.Appointment{
		ID:                  r.ID,
		Patient:             normalizePatientRef(r.PatientID, r.Patient),
		AppointmentDate:     r.AppointmentDate,
		AppointmentTime:     r.AppointmentTime,
		AppointmentDateTime: r.AppointmentDateTime,
		Slot:                r.Slot,
		Status:              r.Status,
		AppointmentType:     r.AppointmentType,
		VisitType:           r.VisitType,
		ConsultationFee:     r.ConsultationFee,
		Reason:              r.Reason,
		Notes:               r.Notes,
	}

	if appointment.Reason == "" {
		appointment.Reason = r.ReasonForVisit
	}

	return appointment
}

// normalizePatientRef принимает оба формата ссылки на пациента:
// вложенный объект или голый идентификатор
func normalizePatientRef(candidates ...json.RawMessage) domain.PatientRef {
	for _, raw := range candidates {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}

		var ref domain.PatientRef
		if err := json.Unmarshal(raw, &ref); err == nil && ref.ID != "" {
			return ref
		}

		var id string
		if err := json.Unmarshal(raw, &id); err == nil && id != "" {
			return domain.PatientRef{ID: id}
		}
	}

	return domain.PatientRef{}
}

func (a *ClinicAdapter) GetAppointments(ctx context.Context, params out.ListParams) ([]domain.Appointment, error) {
	query := nurl.Values{}
	if params.Limit > 0 {
		query.Add("limit", strconv.Itoa(params.Limit))
	}
	if params.Status != "" {
		query.Add("status", params.Status)
	}

	env, err := a.do(ctx, http.MethodGet, "/api/doctors/my-appointments", query, nil)
	if err != nil {
		return nil, err
	}

	var resources []appointmentResource
	if err := decodePayload(env, &resources); err != nil {
		a.logger.Error("clinic.appointments.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	appointments := make([]domain.Appointment, 0, len(resources))
	for i := range resources {
		appointments = append(appointments, resources[i].toDomain())
	}

	return appointments, nil
}

func (a *ClinicAdapter) GetAppointment(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	env, err := a.do(ctx, http.MethodGet, "/api/appointments/"+appointmentID, nil, nil)
	if err != nil {
		return nil, err
	}

	var resource appointmentResource
	if err := decodePayload(env, &resource); err != nil {
		a.logger.Error("clinic.appointment.decode_failed", out.LogFields{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return nil, err
	}

	appointment := resource.toDomain()
	return &appointment, nil
}

func (a *ClinicAdapter) CreateAppointment(ctx context.Context, req out.CreateAppointmentRequest) (*domain.Appointment, error) {
	a.logger.Info("clinic.appointment.create", out.LogFields{
		"patientId": req.PatientID,
		"date":      req.AppointmentDate,
	})

	env, err := a.do(ctx, http.MethodPost, "/api/appointments", nil, req)
	if err != nil {
		return nil, err
	}

	var resource appointmentResource
	if err := decodePayload(env, &resource); err != nil {
		return nil, err
	}

	appointment := resource.toDomain()
	return &appointment, nil
}

func (a *ClinicAdapter) UpdateAppointment(ctx context.Context, appointmentID string, req out.UpdateAppointmentRequest) (*domain.Appointment, error) {
	a.logger.Info("clinic.appointment.update", out.LogFields{
		"appointmentId": appointmentID,
		"slotIncluded":  req.Slot != nil,
	})

	env, err := a.do(ctx, http.MethodPut, "/api/appointments/"+appointmentID, nil, req)
	if err != nil {
		return nil, err
	}

	var resource appointmentResource
	if err := decodePayload(env, &resource); err != nil {
		return nil, err
	}

	appointment := resource.toDomain()
	return &appointment, nil
}

func (a *ClinicAdapter) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error {
	body := map[string]domain.AppointmentStatus{"status": status}
	_, err := a.do(ctx, http.MethodPatch, fmt.Sprintf("/api/appointments/%s/status", appointmentID), nil, body)
	return err
}

func (a *ClinicAdapter) CancelAppointment(ctx context.Context, appointmentID string) error {
	_, err := a.do(ctx, http.MethodPatch, fmt.Sprintf("/api/appointments/%s/cancel", appointmentID), nil, nil)
	return err
}

func (a *ClinicAdapter) DeleteAppointment(ctx context.Context, appointmentID string) error {
	_, err := a.do(ctx, http.MethodDelete, "/api/appointments/"+appointmentID, nil, nil)
	return err
}

func (a *ClinicAdapter) GetAppointmentStats(ctx context.Context) (*domain.AppointmentStats, error) {
	env, err := a.do(ctx, http.MethodGet, "/api/doctors/my-appointments/stats", nil, nil)
	if err != nil {
		return nil, err
	}

	stats := &domain.AppointmentStats{}
	if err := decodePayload(env, stats); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetAvailableSlots забирает у бэкенда готовые слоты на дату,
// панель их не пересчитывает и не пересортировывает
func (a *ClinicAdapter) GetAvailableSlots(ctx context.Context, date string) ([]domain.Slot, error) {
	a.logger.Debug("clinic.slots.fetch", out.LogFields{
		"date": date,
	})

	query := nurl.Values{}
	query.Add("date", date)

	env, err := a.do(ctx, http.MethodGet, "/api/doctors/my-available-slots", query, nil)
	if err != nil {
		a.logger.Error("clinic.slots.fetch_failed", out.LogFields{
			"date":  date,
			"error": err.Error(),
		})
		return nil, err
	}

	var slots []domain.Slot
	if err := decodePayload(env, &slots); err != nil {
		a.logger.Error("clinic.slots.decode_failed", out.LogFields{
			"date":  date,
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("clinic.slots.fetch_success", out.LogFields{
		"date":       date,
		"slotsCount": len(slots),
	})

	return slots, nil
}
