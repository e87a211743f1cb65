package middleware

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
)

type createProbe struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Department     string `json:"department" validate:"omitempty,oneof=CSE BBA MBA LAW PHARMACY ENGLISH"`
	RegistrationID *int64 `json:"registrationId" validate:"required"`
}

func validateProbe(t *testing.T, probe createProbe) error {
	t.Helper()
	err := validator.New().Struct(probe)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	return err
}

func TestBindingErrorMessage_ValidationRules(t *testing.T) {
	registrationID := int64(1001)

	tests := []struct {
		name  string
		probe createProbe
		want  string
	}{
		{
			name:  "missing name",
			probe: createProbe{RegistrationID: &registrationID},
			want:  "Name is required",
		},
		{
			name:  "invalid email",
			probe: createProbe{Name: "Jane", Email: "nope", RegistrationID: &registrationID},
			want:  "Email must be valid",
		},
		{
			name:  "unknown department",
			probe: createProbe{Name: "Jane", Department: "PHYSICS", RegistrationID: &registrationID},
			want:  "Department must be one of CSE, BBA, MBA, LAW, PHARMACY, ENGLISH",
		},
		{
			name:  "missing registration ID",
			probe: createProbe{Name: "Jane"},
			want:  "Registration ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BindingErrorMessage(validateProbe(t, tt.probe)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBindingErrorMessage_TypeMismatch(t *testing.T) {
	var probe createProbe
	err := json.Unmarshal([]byte(`{"registrationId": "1001"}`), &probe)
	if err == nil {
		t.Fatal("expected an unmarshal error")
	}

	if got := BindingErrorMessage(err); got != "Registration ID must be a number" {
		t.Errorf("unexpected message %q", got)
	}

	err = json.Unmarshal([]byte(`{"name": 42}`), &probe)
	if err == nil {
		t.Fatal("expected an unmarshal error")
	}

	if got := BindingErrorMessage(err); got != "Name must be a string" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestBindingErrorMessage_UnknownField(t *testing.T) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(`{"nickname": "JD"}`)))
	decoder.DisallowUnknownFields()

	var probe createProbe
	err := decoder.Decode(&probe)
	if err == nil {
		t.Fatal("expected a decode error")
	}

	if got := BindingErrorMessage(err); got != `"nickname" is not allowed` {
		t.Errorf("unexpected message %q", got)
	}
}

func TestBindingErrorMessage_Fallback(t *testing.T) {
	err := json.Unmarshal([]byte("{"), &createProbe{})
	if err == nil {
		t.Fatal("expected a decode error")
	}

	if got := BindingErrorMessage(err); got != "Invalid request body" {
		t.Errorf("unexpected message %q", got)
	}
}
