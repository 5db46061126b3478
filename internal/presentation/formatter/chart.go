package formatter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/penwyp/go-log-grapher/internal/core/model"
	"github.com/penwyp/go-log-grapher/internal/presentation/layout"
	"github.com/penwyp/go-log-grapher/internal/util"
)

const (
	maxLabelWidth = 28
	minBarWidth   = 10

	barCell   = "█"
	gapCell   = "╌"
	trackCell = " "
)

// ChartFormatter draws a Gantt chart, one row per interval, scaled to the
// report window.
type ChartFormatter struct {
	opts  Options
	sizer layout.Sizer
}

// NewChartFormatter creates a chart formatter; a zero width uses the terminal width.
func NewChartFormatter(opts Options) *ChartFormatter {
	return &ChartFormatter{opts: opts}
}

func (f *ChartFormatter) Format(w io.Writer, r *Report) error {
	width := f.opts.Width
	if width <= 0 {
		width = f.sizer.TerminalWidth()
	}

	labelWidth := 0
	for _, iv := range r.Timeline.Intervals {
		labelWidth = max(labelWidth, f.sizer.DisplayWidth(iv.DisplayName))
	}
	labelWidth = min(max(labelWidth, 4), maxLabelWidth)

	suffixes := make([]string, len(r.Timeline.Intervals))
	suffixWidth := 0
	for i, iv := range r.Timeline.Intervals {
		suffixes[i] = util.FormatMillis(iv.Duration())
		if r.ShowGaps {
			if label := gapLabel(r.Gaps[i]); label != "" {
				suffixes[i] += "  " + label
			}
		}
		suffixWidth = max(suffixWidth, f.sizer.DisplayWidth(suffixes[i]))
	}

	// label + " │" + bar + "│ " + suffix
	barWidth := max(width-labelWidth-suffixWidth-4, minBarWidth)

	var renderer *lipgloss.Renderer
	if f.opts.Color {
		renderer = lipgloss.NewRenderer(w)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d → %d (%s)\n", f.sizer.PadString("", labelWidth, true),
		r.Window.Min, r.Window.Max, util.FormatMillis(r.Window.Max-r.Window.Min))

	for i, iv := range r.Timeline.Intervals {
		track := f.track(r, i, barWidth)
		if renderer != nil {
			color := lipgloss.Color(util.HueToHex(util.NameHue(iv.OriginalName)))
			track = renderer.NewStyle().Foreground(color).Render(track)
		}
		fmt.Fprintf(&b, "%s │%s│ %s\n", f.sizer.Fit(iv.DisplayName, labelWidth), track, suffixes[i])
	}

	f.writeAxis(&b, r.Window, labelWidth, barWidth)

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *ChartFormatter) track(r *Report, i, barWidth int) string {
	cells := make([]string, barWidth)
	for c := range cells {
		cells[c] = trackCell
	}

	if r.ShowGaps && r.Gaps[i].Kind == model.GapTrue {
		gap := r.Gaps[i]
		span := model.ResolvedInterval{Start: gap.VisualStart, End: gap.VisualStart + gap.Duration}
		if from, to, ok := barCells(span, r.Window, barWidth); ok {
			for c := from; c < to; c++ {
				cells[c] = gapCell
			}
		}
	}

	if from, to, ok := barCells(r.Timeline.Intervals[i], r.Window, barWidth); ok {
		for c := from; c < to; c++ {
			cells[c] = barCell
		}
	}
	return strings.Join(cells, "")
}

func (f *ChartFormatter) writeAxis(b *strings.Builder, window model.Window, labelWidth, barWidth int) {
	indent := f.sizer.PadString("", labelWidth, true)
	fmt.Fprintf(b, "%s └%s┘\n", indent, strings.Repeat("─", barWidth))

	left := fmt.Sprintf("%d", window.Min)
	right := fmt.Sprintf("%d", window.Max)
	pad := max(barWidth+2-len(left)-len(right), 1)
	fmt.Fprintf(b, "%s %s%s%s\n", indent, left, strings.Repeat(" ", pad), right)
}

// barCells maps an interval onto [from, to) track cells. Intervals outside the
// window are not drawn; visible ones always get at least one cell.
func barCells(iv model.ResolvedInterval, window model.Window, barWidth int) (int, int, bool) {
	if iv.End < window.Min || iv.Start > window.Max {
		return 0, 0, false
	}

	pos := func(t int64) float64 {
		return float64(t-window.Min) * float64(barWidth) / float64(window.Span())
	}
	from := int(math.Floor(pos(iv.Start)))
	to := int(math.Ceil(pos(iv.End)))

	from = min(max(from, 0), barWidth-1)
	to = min(to, barWidth)
	if to <= from {
		to = from + 1
	}
	return from, to, true
}
