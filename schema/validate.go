package schema

import (
	"fmt"
	"strings"
)

// ============================================================================
// VALIDATOR — Required-column check, runs before any parsing or aggregation
// ============================================================================

// Error reports required columns missing from an uploaded dataset.
type Error struct {
	Missing []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Validate checks that every required column of cfg is present among the
// dataset headers. Header names are normalized ("Order Value" matches
// "order_value"). Returns a *Error naming every missing column, or nil.
func Validate(headers []string, cfg Config) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[NormalizeKey(h)] = true
	}

	var missing []string
	for _, key := range cfg.RequiredKeys() {
		if !present[key] {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return &Error{Missing: missing}
	}
	return nil
}

// NormalizeKey converts a header like "Order Value" to "order_value".
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
