package utils

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewObjectID_Format(t *testing.T) {
	id := NewObjectID()

	if len(id) != ObjectIDLength {
		t.Fatalf("expected id length %d, got %d (%q)", ObjectIDLength, len(id), id)
	}

	for _, r := range id {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Fatalf("expected hex string, got %q", id)
		}
	}
}

func TestNewObjectID_TimestampPrefix(t *testing.T) {
	before := time.Now().Unix()
	id := NewObjectID()
	after := time.Now().Unix()

	prefix, err := strconv.ParseInt(id[:8], 16, 64)
	if err != nil {
		t.Fatalf("failed to parse timestamp prefix %q: %v", id[:8], err)
	}

	if prefix < before || prefix > after {
		t.Errorf("timestamp prefix %d outside of [%d, %d]", prefix, before, after)
	}
}

func TestNewObjectID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewObjectID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
