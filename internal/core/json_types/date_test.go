package json_types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/suchimauz/clinic-admin-panel/internal/config"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	config.TimeZone = time.UTC

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: `"2025-03-10T09:00:00Z"`,
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "without timezone",
			input: `"2025-03-10T09:00:00"`,
			want:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: `"2025-03-10"`,
			want:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
			want:  time.Time{},
		},
		{
			name:  "empty string",
			input: `""`,
			want:  time.Time{},
		},
		{
			name:    "garbage",
			input:   `"tomorrow"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dt DateTime
			err := json.Unmarshal([]byte(tt.input), &dt)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", dt.Date)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !dt.Date.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, dt.Date)
			}
		})
	}
}

func TestDateTime_MarshalJSON(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	dt := DateTime{Date: time.Date(2025, 3, 10, 12, 0, 0, 0, moscow)}
	got, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `"2025-03-10T09:00:00Z"` {
		t.Errorf("expected UTC rfc3339, got %s", got)
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	d := Date{Date: time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)}
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `"2025-03-10"` {
		t.Errorf("expected date only, got %s", got)
	}
}

func TestDateTimeOrEmpty_MarshalJSON(t *testing.T) {
	var empty DateTimeOrEmpty
	got, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "null" {
		t.Errorf("expected null for zero value, got %s", got)
	}

	filled := DateTimeOrEmpty{Date: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	got, err = json.Marshal(filled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `"2025-03-10T09:00:00Z"` {
		t.Errorf("expected rfc3339, got %s", got)
	}
}

func TestClock_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hours and minutes", input: `"09:00"`, want: "09:00"},
		{name: "with seconds", input: `"17:30:00"`, want: "17:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			if err := json.Unmarshal([]byte(tt.input), &c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.Time.Format("15:04"); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
