package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVFormatter writes one row per interval with its gap annotation.
type CSVFormatter struct{}

// NewCSVFormatter creates a new instance of CSVFormatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)

	headers := []string{"name", "original_name", "start", "end", "duration_ms", "gap_kind", "gap_ms", "gap_visual_start"}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for i, iv := range r.Timeline.Intervals {
		g := r.Gaps[i]
		record := []string{
			iv.DisplayName,
			iv.OriginalName,
			strconv.FormatInt(iv.Start, 10),
			strconv.FormatInt(iv.End, 10),
			strconv.FormatInt(iv.Duration(), 10),
			g.Kind.String(),
			strconv.FormatInt(g.Duration, 10),
			strconv.FormatInt(g.VisualStart, 10),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
