package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-log-grapher/internal/core/model"
	"github.com/penwyp/go-log-grapher/internal/core/timeline"
	"github.com/penwyp/go-log-grapher/internal/util"
)

// Report is everything a formatter needs to render one timeline.
type Report struct {
	Timeline *model.Timeline
	Gaps     []model.GapAnnotation
	Window   model.Window
	ShowGaps bool
}

// NewReport derives gap annotations and uses the full timeline bounds as window.
func NewReport(tl *model.Timeline) *Report {
	return &Report{
		Timeline: tl,
		Gaps:     timeline.Gaps(tl.Intervals),
		Window:   model.Window{Min: tl.MinTime, Max: tl.MaxTime},
	}
}

// Hide drops the rows named in hidden. Gaps were derived from the full order and are
// kept as they were for the remaining rows.
func (r *Report) Hide(hidden []string) {
	r.Timeline, r.Gaps = timeline.Filter(r.Timeline, r.Gaps, hidden)
}

// Formatter renders a report to w.
type Formatter interface {
	Format(w io.Writer, r *Report) error
}

// Options tunes formatters that draw to a terminal.
type Options struct {
	Width int
	Color bool
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts Options) (Formatter, error) {
	switch name {
	case "chart", "":
		return NewChartFormatter(opts), nil
	case "table":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (chart, table, json, csv, summary)", name)
	}
}

func gapLabel(g model.GapAnnotation) string {
	return util.FormatGapLabel(g.Kind.String(), g.Duration)
}
