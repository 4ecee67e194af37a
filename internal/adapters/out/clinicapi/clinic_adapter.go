package clinicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/suchimauz/clinic-admin-panel/internal/config"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
)

// ClinicAdapter - клиент REST-бэкенда клиники
// Все запросы уходят с bearer-токеном доктора, 401 в ответ сбрасывает токен
type ClinicAdapter struct {
	client  *http.Client
	baseURL string
	session out.SessionPort
	logger  out.LoggerPort
}

func NewClinicAdapter(cfg *config.Config, session out.SessionPort, logger out.LoggerPort) *ClinicAdapter {
	return &ClinicAdapter{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.Clinic.URL,
		session: session,
		logger:  logger,
	}
}

// envelope - ответ бэкенда, полезная нагрузка лежит то в data,
// то в поле с именем ресурса
type envelope struct {
	Success      *bool           `json:"success,omitempty"`
	Message      string          `json:"message,omitempty"`
	Token        string          `json:"token,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
	Patients     json.RawMessage `json:"patients,omitempty"`
	Appointments json.RawMessage `json:"appointments,omitempty"`
	Appointment  json.RawMessage `json:"appointment,omitempty"`
	Doctor       json.RawMessage `json:"doctor,omitempty"`
}

// payload возвращает первое непустое поле с данными
func (e *envelope) payload() json.RawMessage {
	for _, raw := range []json.RawMessage{e.Data, e.Patients, e.Appointments, e.Appointment, e.Doctor} {
		if len(raw) > 0 && string(raw) != "null" {
			return raw
		}
	}
	return nil
}

func (a *ClinicAdapter) do(ctx context.Context, method, path string, query nurl.Values, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Без токена запрос все равно уходит, бэкенд сам его отклонит
	if token := a.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return a.decodeResponse(resp, method, path)
}

func (a *ClinicAdapter) decodeResponse(resp *http.Response, method, path string) (*envelope, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	env := &envelope{}
	if len(raw) > 0 {
		// Тело может быть не json, например на 502 от прокси - это не фатально,
		// сообщение просто останется пустым
		_ = json.Unmarshal(raw, env)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Протухший токен чистим сразу, редиректа на логин у панели нет
		a.logger.Warn("clinic.request.unauthorized", out.LogFields{
			"method": method,
			"path":   path,
		})
		a.session.Clear()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.logger.Error("clinic.request.failed", out.LogFields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		})
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
		}
	}

	if env.Success != nil && !*env.Success {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
		}
	}

	return env, nil
}

func decodePayload(env *envelope, v interface{}) error {
	raw := env.payload()
	if raw == nil {
		return fmt.Errorf("empty response payload")
	}
	return json.Unmarshal(raw, v)
}
