package utils

import (
	"testing"
	"time"

	"github.com/suchimauz/clinic-admin-panel/internal/config"
)

func TestParseDate(t *testing.T) {
	config.TimeZone = time.UTC

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: "2025-03-10T09:00:00Z",
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "without timezone",
			input: "2025-03-10T09:00:00",
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2025-03-10",
			want:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClockLabel(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	config.TimeZone = time.UTC
	if got := ClockLabel(start); got != "09:00" {
		t.Errorf("expected 09:00 in UTC, got %q", got)
	}

	config.TimeZone = moscow
	if got := ClockLabel(start); got != "12:00" {
		t.Errorf("expected 12:00 in Europe/Moscow, got %q", got)
	}

	config.TimeZone = time.UTC
}

func TestDateOnly(t *testing.T) {
	d := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	if got := DateOnly(d); got != "2025-03-10" {
		t.Errorf("expected 2025-03-10, got %q", got)
	}
}
