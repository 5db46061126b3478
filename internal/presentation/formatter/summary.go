package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-log-grapher/internal/core/timeline"
	"github.com/penwyp/go-log-grapher/internal/util"
)

// SummaryFormatter prints aggregate figures for a timeline.
type SummaryFormatter struct{}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(w io.Writer, r *Report) error {
	s := timeline.Summarize(r.Timeline)

	var b strings.Builder
	b.WriteString(strings.Repeat("=", 48) + "\n")
	b.WriteString("Timeline Summary\n")
	b.WriteString(strings.Repeat("=", 48) + "\n")
	fmt.Fprintf(&b, "Range:            %d → %d\n", r.Timeline.MinTime, r.Timeline.MaxTime)
	fmt.Fprintf(&b, "Span:             %s\n", util.FormatMillis(s.Span))
	fmt.Fprintf(&b, "Intervals:        %d (%d tasks)\n", s.Intervals, s.Tasks)
	fmt.Fprintf(&b, "Busy:             %s\n", util.FormatMillis(s.Busy))
	fmt.Fprintf(&b, "Idle:             %s\n", util.FormatMillis(s.Idle))
	fmt.Fprintf(&b, "Max concurrency:  %d\n", s.MaxConcurrency)
	fmt.Fprintf(&b, "Longest:          %s (%s)\n", s.Longest.DisplayName, util.FormatMillis(s.Longest.Duration()))
	fmt.Fprintf(&b, "Gaps / overlaps:  %d / %d\n", s.Gaps, s.Overlaps)
	if n := len(r.Timeline.Warnings); n > 0 {
		fmt.Fprintf(&b, "Skipped:          %d inverted interval(s)\n", n)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
