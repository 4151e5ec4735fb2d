package validation

import (
	"fmt"
	"strings"
)

// DefaultMaxLength is the limit applied to free-text fields unless a caller
// asks for something else.
const DefaultMaxLength = 255

// modes is the enumerated control-mode set. The empty string means the item
// carries no control mode.
var modes = map[string]struct{}{
	"":          {},
	"Manual":    {},
	"Auto":      {},
	"Cascade":   {},
	"Auto-Init": {},
	"B-Cascade": {},
}

// Field validates a free-text input: it must be non-empty after trimming and
// must not exceed maxLength characters. The returned error message names the
// field label so it can be surfaced to the caller directly.
func Field(label, value string, maxLength int) error {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fmt.Errorf("%s cannot be empty", label)
	}
	if len(trimmed) > maxLength {
		return fmt.Errorf("%s exceeds maximum length of %d characters", label, maxLength)
	}
	return nil
}

// Required validates a field with the default maximum length.
func Required(label, value string) error {
	return Field(label, value, DefaultMaxLength)
}

// Mode validates a control-mode tag against the enumerated set.
func Mode(value string) error {
	if _, ok := modes[strings.TrimSpace(value)]; !ok {
		return fmt.Errorf("unknown control mode %q", value)
	}
	return nil
}

// Modes returns the enumerated control-mode set in display order.
func Modes() []string {
	return []string{"", "Manual", "Auto", "Cascade", "Auto-Init", "B-Cascade"}
}
