package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/go-log-grapher/internal/util"
	"golang.org/x/term"
)

const (
	fallbackWidth = 80
	minWidth      = 40
)

// Sizer measures and pads text by terminal display width.
type Sizer struct{}

// DisplayWidth returns the number of terminal cells s occupies.
func (Sizer) DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads s to width display cells.
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.DisplayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Truncate shortens s to at most width cells, marking the cut with an ellipsis.
func (Sizer) Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// Fit truncates then left-pads s to exactly width cells.
func (i Sizer) Fit(s string, width int) string {
	return i.PadString(i.Truncate(s, width), width, true)
}

// TerminalWidth returns the stdout width, or a fallback when stdout is not a
// terminal or is too narrow to draw a chart.
func (Sizer) TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		util.LogDebugf("Terminal width unavailable (%d, %v), using %d", width, err, fallbackWidth)
		return fallbackWidth
	}
	return width
}
