package engine

import "time"

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Segments           []Segment // empty = no filter
	ActiveWindowDays   int
	SnapshotMaxDataset bool             // cap snapshot at dataset end instead of today
	Now                func() time.Time // injectable clock for the "today" bound
}

// WithSegmentFilter restricts the result to the given segments, applied
// after classification and before KPI/analytics computation.
func WithSegmentFilter(segments ...Segment) Option {
	return func(c *config) {
		c.Segments = segments
	}
}

// WithActiveWindow sets the Recency threshold (in days) for the
// active-customer KPI. Default is 30.
func WithActiveWindow(days int) Option {
	return func(c *config) {
		c.ActiveWindowDays = days
	}
}

// WithSnapshotMaxDatasetEnd caps the snapshot date at the latest order date
// instead of the default "today" policy.
func WithSnapshotMaxDatasetEnd() Option {
	return func(c *config) {
		c.SnapshotMaxDataset = true
	}
}

// WithClock overrides the clock used for the "today" snapshot bound.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.Now = now
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		ActiveWindowDays: 30, // dashboard convention for "active"
		Now:              time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
