package clinicapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

func (a *ClinicAdapter) Login(ctx context.Context, req out.LoginRequest) (*out.LoginResult, error) {
	a.logger.Info("clinic.auth.login", out.LogFields{
		"email": req.Email,
	})

	env, err := a.do(ctx, http.MethodPost, "/api/doctor-auth/login", nil, req)
	if err != nil {
		return nil, err
	}

	result := &out.LoginResult{Token: env.Token}

	// Доктор приходит вместе с токеном, но его отсутствие логин не ломает
	if len(env.Doctor) > 0 && string(env.Doctor) != "null" {
		doctor := &domain.Doctor{}
		if err := json.Unmarshal(env.Doctor, doctor); err == nil {
			result.Doctor = doctor
		}
	}

	return result, nil
}

func (a *ClinicAdapter) Logout(ctx context.Context) error {
	_, err := a.do(ctx, http.MethodPost, "/api/doctor-auth/logout", nil, struct{}{})
	return err
}

func (a *ClinicAdapter) Register(ctx context.Context, req out.RegisterRequest) (*domain.Doctor, error) {
	env, err := a.do(ctx, http.MethodPost, "/api/doctor-auth/register", nil, req)
	if err != nil {
		return nil, err
	}

	doctor := &domain.Doctor{}
	if err := decodePayload(env, doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

func (a *ClinicAdapter) GetProfile(ctx context.Context) (*domain.Doctor, error) {
	env, err := a.do(ctx, http.MethodGet, "/api/doctor-auth/profile", nil, nil)
	if err != nil {
		return nil, err
	}

	doctor := &domain.Doctor{}
	if err := decodePayload(env, doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}

func (a *ClinicAdapter) UpdateProfile(ctx context.Context, req out.UpdateProfileRequest) (*domain.Doctor, error) {
	a.logger.Info("clinic.profile.update", out.LogFields{
		"email": req.Email,
	})

	env, err := a.do(ctx, http.MethodPut, "/api/doctor-auth/profile", nil, req)
	if err != nil {
		return nil, err
	}

	doctor := &domain.Doctor{}
	if err := decodePayload(env, doctor); err != nil {
		return nil, err
	}

	return doctor, nil
}
