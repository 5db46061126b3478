package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-log-grapher/internal/presentation/layout"
	"github.com/penwyp/go-log-grapher/internal/util"
)

// TableFormatter draws a bordered table with a total row.
type TableFormatter struct {
	headers []string
	sizer   layout.Sizer
}

// NewTableFormatter creates a new instance of TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{
		headers: []string{"Task", "Start", "End", "Duration", "Gap"},
	}
}

func (f *TableFormatter) Format(w io.Writer, r *Report) error {
	headers := f.headers
	if !r.ShowGaps {
		headers = headers[:len(headers)-1]
	}

	rows := make([][]string, 0, len(r.Timeline.Intervals)+1)
	for i, iv := range r.Timeline.Intervals {
		row := []string{
			iv.DisplayName,
			fmt.Sprintf("%d", iv.Start),
			fmt.Sprintf("%d", iv.End),
			util.FormatMillis(iv.Duration()),
		}
		if r.ShowGaps {
			row = append(row, gapLabel(r.Gaps[i]))
		}
		rows = append(rows, row)
	}

	total := []string{"Total", fmt.Sprintf("%d", r.Timeline.MinTime), fmt.Sprintf("%d", r.Timeline.MaxTime),
		util.FormatMillis(r.Timeline.TotalDuration())}
	if r.ShowGaps {
		total = append(total, "")
	}

	widths := f.calculateColumnWidths(headers, append(rows, total))

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, row := range rows {
		f.writeRow(&b, row, widths)
	}
	f.writeBorder(&b, widths, "middle")
	f.writeRow(&b, total, widths)
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TableFormatter) calculateColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = f.sizer.DisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			widths[i] = max(widths[i], f.sizer.DisplayWidth(value))
		}
	}
	return widths
}

func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right + "\n")
}

// writeRow left-aligns the name and gap columns and right-aligns the numbers.
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		leftAlign := i == 0 || i == 4
		b.WriteString(" " + f.sizer.PadString(value, widths[i], leftAlign) + " │")
	}
	b.WriteString("\n")
}
