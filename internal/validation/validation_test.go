package validation_test

import (
	"strings"
	"testing"

	"github.com/plantops/roundsdb/internal/validation"
)

func TestFieldRejectsEmpty(t *testing.T) {
	if err := validation.Field("Unit", "", validation.DefaultMaxLength); err == nil {
		t.Error("Expected error for empty value")
	}
	if err := validation.Field("Unit", "   \t ", validation.DefaultMaxLength); err == nil {
		t.Error("Expected error for whitespace-only value")
	}
}

func TestFieldRejectsOverlong(t *testing.T) {
	long := strings.Repeat("x", validation.DefaultMaxLength+1)
	err := validation.Field("Description", long, validation.DefaultMaxLength)
	if err == nil {
		t.Fatal("Expected error for overlong value")
	}
	if !strings.Contains(err.Error(), "Description") {
		t.Errorf("Error should name the field: %v", err)
	}

	exact := strings.Repeat("x", validation.DefaultMaxLength)
	if err := validation.Field("Description", exact, validation.DefaultMaxLength); err != nil {
		t.Errorf("Value at the limit should pass: %v", err)
	}
}

func TestFieldTrimsBeforeLengthCheck(t *testing.T) {
	padded := "  " + strings.Repeat("x", validation.DefaultMaxLength) + "  "
	if err := validation.Field("Description", padded, validation.DefaultMaxLength); err != nil {
		t.Errorf("Trimmed value at the limit should pass: %v", err)
	}
}

func TestMode(t *testing.T) {
	for _, mode := range validation.Modes() {
		if err := validation.Mode(mode); err != nil {
			t.Errorf("Mode %q should be valid: %v", mode, err)
		}
	}
	if err := validation.Mode(" Manual "); err != nil {
		t.Errorf("Mode should be trimmed before checking: %v", err)
	}
	if err := validation.Mode("Turbo"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}
