package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/soulsync/internal/repositories"
)

// Column limits of the users and tracks tables, in characters.
const (
	MaxUsernameLength   = 100
	MaxTrackFieldLength = 255
)

// checkText rejects values the database cannot store: invalid UTF-8, NUL bytes,
// and, when max is positive, more than max characters.
func checkText(field, value string, max int) error {
	if !utf8.ValidString(value) || strings.ContainsRune(value, 0) {
		return fmt.Errorf("%w: %s must be valid UTF-8 text", ErrInvalidInput, field)
	}
	if max > 0 && utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return nil
}

// checkOptionalText is checkText for nil-able fields.
func checkOptionalText(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return checkText(field, *value, max)
}

// rejectedValue turns a value the database refused into ErrInvalidInput.
// Other errors pass through unchanged.
func rejectedValue(err error) error {
	if errors.Is(err, repositories.ErrInvalidValue) {
		return fmt.Errorf("%w: value rejected by the database", ErrInvalidInput)
	}
	return err
}

// searchQuery trims q and reports whether it is long enough to search for.
// Text that is not valid UTF-8 or contains NUL bytes is ErrInvalidInput.
func searchQuery(q string) (string, bool, error) {
	q = strings.TrimSpace(q)
	if err := checkText("query", q, 0); err != nil {
		return "", false, err
	}
	return q, utf8.RuneCountInString(q) >= MinSearchQueryLength, nil
}
