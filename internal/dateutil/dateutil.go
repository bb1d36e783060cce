// Package dateutil resolves "auto" date values for transcript metadata.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an unknown date format name.
var ErrInvalidDateFormat = errors.New("invalid date format")

// defaultLayout is used when "auto" is given without a format name.
const defaultLayout = "2006-01-02"

// layouts maps named date formats to Go time layouts.
var layouts = map[string]string{
	"iso":      "2006-01-02",
	"european": "02/01/2006",
	"us":       "01/02/2006",
	"long":     "January 2, 2006",
}

// FormatNames lists the accepted format names for error messages.
func FormatNames() []string {
	return []string{"iso", "european", "us", "long"}
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" resolves to the current date as YYYY-MM-DD
//   - "auto:FORMAT" uses a named format (iso, european, us, long)
//   - any other value is returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	if lower == "auto" {
		return t.Format(defaultLayout), nil
	}

	if !strings.HasPrefix(lower, "auto:") {
		return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	name := strings.ToLower(value[len("auto:"):])
	layout, ok := layouts[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %s)", ErrInvalidDateFormat, name, strings.Join(FormatNames(), ", "))
	}

	return t.Format(layout), nil
}
