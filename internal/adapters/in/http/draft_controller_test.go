package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/suchimauz/clinic-admin-panel/internal/config"
	"github.com/suchimauz/clinic-admin-panel/internal/core/domain"
	"github.com/suchimauz/clinic-admin-panel/internal/core/ports/out"
	"github.com/suchimauz/clinic-admin-panel/internal/core/services"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields) {}
func (nopLogger) Info(string, out.LogFields)  {}
func (nopLogger) Warn(string, out.LogFields)  {}
func (nopLogger) Error(string, out.LogFields) {}

func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

type mapDraftStore struct {
	drafts map[uuid.UUID]*domain.AppointmentDraft
}

func newMapDraftStore() *mapDraftStore {
	return &mapDraftStore{drafts: make(map[uuid.UUID]*domain.AppointmentDraft)}
}

func (s *mapDraftStore) Put(draft *domain.AppointmentDraft) { s.drafts[draft.ID] = draft }
func (s *mapDraftStore) Get(id uuid.UUID) (*domain.AppointmentDraft, bool) {
	draft, ok := s.drafts[id]
	return draft, ok
}
func (s *mapDraftStore) Delete(id uuid.UUID) { delete(s.drafts, id) }
func (s *mapDraftStore) ForEach(fn func(draft *domain.AppointmentDraft)) {
	for _, draft := range s.drafts {
		fn(draft)
	}
}

type fakeClinicPort struct {
	out.ClinicPort

	slots     []domain.Slot
	slotsErr  error
	createReq *out.CreateAppointmentRequest
}

func (f *fakeClinicPort) GetAvailableSlots(ctx context.Context, date string) ([]domain.Slot, error) {
	return f.slots, f.slotsErr
}

func (f *fakeClinicPort) CreateAppointment(ctx context.Context, req out.CreateAppointmentRequest) (*domain.Appointment, error) {
	f.createReq = &req
	return &domain.Appointment{ID: "new-appointment"}, nil
}

func newTestRouter(port *fakeClinicPort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.TimeZone = time.UTC

	cfg := &config.Config{}
	cfg.Auth.BasicClients = []config.ConfigBasicClient{
		{Username: "panel", Password: "secret"},
	}

	draftService := services.NewAppointmentDraftService(port, newMapDraftStore(), nopLogger{})

	router := gin.New()
	api := router.Group("/api/v1", BasicAuth(cfg))
	NewDraftController(draftService).RegisterRoutes(api)

	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.SetBasicAuth("panel", "secret")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type draftResponse struct {
	Draft      domain.AppointmentDraft `json:"draft"`
	SlotsState string                  `json:"slotsState"`
	Error      string                  `json:"error"`
}

func decodeDraft(t *testing.T, recorder *httptest.ResponseRecorder) draftResponse {
	t.Helper()

	var resp draftResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %s: %v", recorder.Body.String(), err)
	}
	return resp
}

func TestDraftFlow_Create(t *testing.T) {
	port := &fakeClinicPort{
		slots: []domain.Slot{
			{
				Start:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
				End:         time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
				Duration:    30,
				IsAvailable: true,
			},
		},
	}
	router := newTestRouter(port)

	// Открываем форму создания
	recorder := doRequest(router, http.MethodPost, "/api/v1/drafts", StartDraftRequest{})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	draftID := decodeDraft(t, recorder).Draft.ID

	// Заполняем пациента и дату
	doRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/drafts/%s/fields", draftID), SetFieldRequest{Field: "patientId", Value: "patient-1"})
	recorder = doRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/drafts/%s/fields", draftID), SetFieldRequest{Field: "appointmentDate", Value: "2025-03-10"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if resp := decodeDraft(t, recorder); len(resp.Draft.Slots) != 1 {
		t.Fatalf("expected slots loaded, got %+v", resp.Draft.Slots)
	}

	// Выбираем слот
	recorder = doRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/drafts/%s/slot", draftID), SelectSlotRequest{
		Start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	resp := decodeDraft(t, recorder)
	if resp.Draft.SelectedSlot == nil {
		t.Fatal("expected slot selected")
	}
	if resp.Draft.TimeLabel != "09:00" {
		t.Errorf("expected appointmentTime 09:00, got %q", resp.Draft.TimeLabel)
	}

	// Отправляем форму
	recorder = doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/drafts/%s/submit", draftID), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if port.createReq == nil {
		t.Fatal("expected create request sent to backend")
	}
	if port.createReq.PatientID != "patient-1" {
		t.Errorf("expected patientId patient-1, got %q", port.createReq.PatientID)
	}

	// Черновик после отправки закрыт
	recorder = doRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/drafts/%s", draftID), nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404 after submit, got %d", recorder.Code)
	}
}

func TestDraftFlow_SlotsFetchFailureKeepsForm(t *testing.T) {
	port := &fakeClinicPort{slotsErr: errors.New("backend is down")}
	router := newTestRouter(port)

	recorder := doRequest(router, http.MethodPost, "/api/v1/drafts", StartDraftRequest{})
	draftID := decodeDraft(t, recorder).Draft.ID

	recorder = doRequest(router, http.MethodPut, fmt.Sprintf("/api/v1/drafts/%s/fields", draftID), SetFieldRequest{Field: "appointmentDate", Value: "2025-03-10"})

	// Слоты не загрузились, но форма жива: 200, дата на месте, текст ошибки рядом
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	resp := decodeDraft(t, recorder)
	if resp.Error != "Failed to load available slots" {
		t.Errorf("expected slots error message, got %q", resp.Error)
	}
	if resp.Draft.Date != "2025-03-10" {
		t.Errorf("expected date kept, got %q", resp.Draft.Date)
	}
}

func TestDraftFlow_SubmitValidation(t *testing.T) {
	router := newTestRouter(&fakeClinicPort{})

	recorder := doRequest(router, http.MethodPost, "/api/v1/drafts", StartDraftRequest{})
	draftID := decodeDraft(t, recorder).Draft.ID

	recorder = doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/drafts/%s/submit", draftID), nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete form, got %d", recorder.Code)
	}
}

func TestDraftRoutes_RequireBasicAuth(t *testing.T) {
	router := newTestRouter(&fakeClinicPort{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts", bytes.NewReader([]byte(`{}`)))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without credentials, got %d", recorder.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/drafts", bytes.NewReader([]byte(`{}`)))
	req.SetBasicAuth("panel", "wrong")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", recorder.Code)
	}
}

func TestDraftRoutes_InvalidDraftID(t *testing.T) {
	router := newTestRouter(&fakeClinicPort{})

	recorder := doRequest(router, http.MethodGet, "/api/v1/drafts/not-a-uuid", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad uuid, got %d", recorder.Code)
	}

	recorder = doRequest(router, http.MethodGet, "/api/v1/drafts/"+uuid.NewString(), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown draft, got %d", recorder.Code)
	}
}
