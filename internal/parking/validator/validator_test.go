package validator

import (
	"errors"
	"strings"
	"testing"

	"parkgate/pkg/logger"
	"parkgate/pkg/model"
)

func newTestValidator() *RequestValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewRequestValidator(log)
}

func TestValidateCheckIn(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		plate     string
		wantError bool
		wantField string
	}{
		{"valid plate", "B1234AA", false, ""},
		{"valid plate with spaces", "B 1234 CD", false, ""},
		{"empty plate", "", true, "plate_number"},
		{"too long", strings.Repeat("A", 17), true, "plate_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCheckIn(&model.CheckInRequest{PlateNumber: tt.plate})

			if !tt.wantError {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if verrs[0].Field != tt.wantField {
				t.Errorf("expected field %q in error, got %q", tt.wantField, verrs[0].Field)
			}
		})
	}
}

func TestValidateCheckIn_RequiredMessageUsesJSONName(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateCheckIn(&model.CheckInRequest{})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Message != "plate_number is required" {
		t.Errorf("expected message %q, got %q", "plate_number is required", verrs[0].Message)
	}
}

func TestValidateCheckOut(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateCheckOut(&model.CheckOutRequest{TicketID: "T0001"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := v.ValidateCheckOut(&model.CheckOutRequest{})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Message != "ticket_id is required" {
		t.Errorf("expected message %q, got %q", "ticket_id is required", verrs[0].Message)
	}
}
