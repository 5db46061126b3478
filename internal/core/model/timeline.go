package model

import "errors"

// ErrEmptyTimeline is returned when no interval survives validation.
var ErrEmptyTimeline = errors.New("no valid start/end pairs found")

// ResolvedInterval is a validated interval ready for display.
type ResolvedInterval struct {
	DisplayName  string `json:"name"`
	OriginalName string `json:"original_name"`
	Start        int64  `json:"start"`
	End          int64  `json:"end"`
}

// Duration returns End - Start in milliseconds.
func (r ResolvedInterval) Duration() int64 {
	return r.End - r.Start
}

// Contains reports whether at falls inside the closed interval.
func (r ResolvedInterval) Contains(at float64) bool {
	return at >= float64(r.Start) && at <= float64(r.End)
}

// Timeline is the resolved, ordered set of intervals with overall bounds.
type Timeline struct {
	Intervals []ResolvedInterval
	MinTime   int64
	MaxTime   int64
	// Warnings holds one message per interval skipped because it ended before it started.
	Warnings []string
}

// TotalDuration returns MaxTime - MinTime.
func (t *Timeline) TotalDuration() int64 {
	return t.MaxTime - t.MinTime
}

// GapKind classifies the space between two consecutive intervals.
type GapKind int

const (
	GapNone GapKind = iota
	GapTrue
	GapOverlap
)

func (k GapKind) String() string {
	switch k {
	case GapTrue:
		return "gap"
	case GapOverlap:
		return "overlap"
	default:
		return "none"
	}
}

// GapAnnotation describes what precedes an interval in the final order.
// Duration and VisualStart are zero for GapNone.
type GapAnnotation struct {
	Kind        GapKind
	Duration    int64
	VisualStart int64
}

// Window is the displayed time range.
type Window struct {
	Min int64
	Max int64
}

// Span returns the window length, or 1 for a zero-length window so callers can
// divide by it.
func (w Window) Span() int64 {
	if w.Max-w.Min == 0 {
		return 1
	}
	return w.Max - w.Min
}
