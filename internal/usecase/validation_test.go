package usecase

import (
	"errors"
	"testing"

	"import_admin/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

func TestValidateStruct_Client(t *testing.T) {
	cases := []struct {
		name    string
		in      entities.ClientCreate
		invalid []string
	}{
		{name: "valid minimal", in: entities.ClientCreate{Name: "Ana"}},
		{name: "valid full", in: entities.ClientCreate{Name: "Ana Pérez", Email: "ana@example.com", Phone: "+54 (11) 5555-1234"}},
		{name: "name too short after trim", in: entities.ClientCreate{Name: " A "}, invalid: []string{"name"}},
		{name: "missing name", in: entities.ClientCreate{}, invalid: []string{"name"}},
		{name: "bad email", in: entities.ClientCreate{Name: "Ana", Email: "ana@"}, invalid: []string{"email"}},
		{name: "phone with letters", in: entities.ClientCreate{Name: "Ana", Phone: "555-CALL-NOW"}, invalid: []string{"phone"}},
		{name: "phone with too few digits", in: entities.ClientCreate{Name: "Ana", Phone: "12-34"}, invalid: []string{"phone"}},
		{name: "phone too long", in: entities.ClientCreate{Name: "Ana", Phone: "1234567890 1234567890"}, invalid: []string{"phone"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateStruct(tc.in)
			if len(tc.invalid) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			for _, f := range tc.invalid {
				if _, ok := vErr.Fields[f]; !ok {
					t.Fatalf("expected %s to be invalid, got %v", f, vErr.Fields)
				}
			}
		})
	}
}

func TestValidateStruct_CarUpdate(t *testing.T) {
	year := 1850
	err := validateStruct(entities.CarUpdate{Year: &year, Brand: strPtr("")})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.Fields["year"]; !ok {
		t.Fatalf("expected year error, got %v", vErr.Fields)
	}
	if err := validateStruct(entities.CarUpdate{}); err != nil {
		t.Fatalf("empty update should be valid: %v", err)
	}
}
