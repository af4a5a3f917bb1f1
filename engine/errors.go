package engine

import (
	"fmt"
	"time"
)

// ============================================================================
// ERRORS — typed, matchable with errors.As, never retried
// ============================================================================
// Schema errors live in the schema package; everything downstream of
// validation signals through these types.
// ============================================================================

// DateRangeError reports a snapshot date outside the allowed bounds.
// Min is always the earliest order date; Max depends on the snapshot policy.
type DateRangeError struct {
	Snapshot time.Time
	Min      time.Time
	Max      time.Time
}

func (e *DateRangeError) Error() string {
	const layout = "2006-01-02"
	if e.Snapshot.Before(e.Min) {
		return fmt.Sprintf("snapshot date %s is before dataset start %s",
			e.Snapshot.Format(layout), e.Min.Format(layout))
	}
	return fmt.Sprintf("snapshot date %s is after allowed maximum %s",
		e.Snapshot.Format(layout), e.Max.Format(layout))
}

// InsufficientDataError reports a population too small or too uniform for a
// specific analytic. For quantile scoring it is fatal to the run; for the
// revenue projection the rest of the result still renders.
type InsufficientDataError struct {
	Analytic string
	Reason   string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: %s", e.Analytic, e.Reason)
}

// ParseError reports an order field that could not be parsed.
// Strict policy: one bad field rejects the whole dataset, since RFM
// correctness depends on complete date and value coverage.
type ParseError struct {
	Line   int // 1-based line in the source, including the header
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %s value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
