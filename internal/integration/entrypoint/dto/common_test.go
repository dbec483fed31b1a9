package dto

import (
	"encoding/json"
	"testing"
)

func TestNumericString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{name: "quoted string", payload: `"1500.50"`, expected: "1500.50"},
		{name: "bare number", payload: `1500.5`, expected: "1500.5"},
		{name: "integer", payload: `42`, expected: "42"},
		{name: "null", payload: `null`, expected: ""},
		{name: "empty string", payload: `""`, expected: ""},
		{name: "non-numeric text is kept raw", payload: `"abc"`, expected: "abc"},
		{name: "negative number", payload: `-10`, expected: "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NumericString
			if err := json.Unmarshal([]byte(tt.payload), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, n.String())
			}
		})
	}
}

func TestNumericString_InStruct(t *testing.T) {
	type request struct {
		Amount NumericString `json:"amount"`
	}

	t.Run("string field", func(t *testing.T) {
		var r request
		if err := json.Unmarshal([]byte(`{"amount":"250"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Amount != "250" {
			t.Errorf("expected 250, got %q", r.Amount)
		}
	})

	t.Run("number field", func(t *testing.T) {
		var r request
		if err := json.Unmarshal([]byte(`{"amount":250}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Amount != "250" {
			t.Errorf("expected 250, got %q", r.Amount)
		}
	})

	t.Run("absent field", func(t *testing.T) {
		var r request
		if err := json.Unmarshal([]byte(`{}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Amount != "" {
			t.Errorf("expected empty, got %q", r.Amount)
		}
	})
}
