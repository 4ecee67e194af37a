package config

import (
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Env != EnvLocal {
		t.Errorf("expected local env by default, got %q", cfg.App.Env)
	}
	if cfg.HTTP.Port != "8090" {
		t.Errorf("expected default port 8090, got %q", cfg.HTTP.Port)
	}
	if cfg.Clinic.URL != "http://localhost:8080" {
		t.Errorf("expected default clinic url, got %q", cfg.Clinic.URL)
	}
	if cfg.Drafts.Size != 1000 {
		t.Errorf("expected default drafts size 1000, got %d", cfg.Drafts.Size)
	}
	if cfg.RabbitMQ.Queue != "appointment.events" {
		t.Errorf("expected default queue name, got %q", cfg.RabbitMQ.Queue)
	}

	if !cfg.IsLocal() || cfg.IsNotLocal() {
		t.Error("expected local environment by default")
	}
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("APP_ENV", "Production")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Env != EnvProduction {
		t.Errorf("expected environment lowercased, got %q", cfg.App.Env)
	}
	if cfg.IsLocal() || !cfg.IsNotLocal() {
		t.Error("expected non-local environment")
	}
}

func TestNewConfig_BasicClients(t *testing.T) {
	t.Setenv("AUTH_BASIC_CLIENTS", "panel:secret,monitor:mon_pass")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Auth.BasicClients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(cfg.Auth.BasicClients))
	}
	if cfg.Auth.BasicClients[0].Username != "panel" || cfg.Auth.BasicClients[0].Password != "secret" {
		t.Errorf("unexpected first client %+v", cfg.Auth.BasicClients[0])
	}
	if cfg.Auth.BasicClients[1].Username != "monitor" || cfg.Auth.BasicClients[1].Password != "mon_pass" {
		t.Errorf("unexpected second client %+v", cfg.Auth.BasicClients[1])
	}
}

func TestNewConfig_Timezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Asia/Yekaterinburg")

	if _, err := NewConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if TimeZone.String() != "Asia/Yekaterinburg" {
		t.Errorf("expected timezone loaded, got %q", TimeZone.String())
	}
}

func TestNewConfig_BadTimezoneFallsBackToUTC(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")
	TimeZone = time.UTC

	if _, err := NewConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if TimeZone != time.UTC {
		t.Errorf("expected UTC kept on bad value, got %v", TimeZone)
	}
}
