// Package card holds the greeting card domain: name validation and the
// decorative flame and confetti primitives. It has no dependency on the
// TUI layer so everything here is testable in isolation.
package card

import (
	"fmt"
	"strings"
)

// DefaultName is shown when no name has been saved yet.
const DefaultName = "Lovie"

// MaxNameLength is the maximum recipient name length in runes.
const MaxNameLength = 20

// Validation is the outcome of checking a name draft.
type Validation int

const (
	Valid Validation = iota
	Empty
	TooLong
)

// ValidateName checks a draft name and returns the outcome together with
// the trimmed text. A draft is valid when, after trimming whitespace, it
// is non-empty and at most MaxNameLength runes.
func ValidateName(text string) (Validation, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Empty, trimmed
	}
	if len([]rune(trimmed)) > MaxNameLength {
		return TooLong, trimmed
	}
	return Valid, trimmed
}

// ValidationMessage returns the inline error text for a failed validation,
// or "" for Valid.
func ValidationMessage(v Validation) string {
	switch v {
	case Empty:
		return "Name cannot be empty"
	case TooLong:
		return fmt.Sprintf("Name must be %d characters or fewer", MaxNameLength)
	}
	return ""
}
