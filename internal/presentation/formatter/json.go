package formatter

import (
	"io"

	"github.com/bytedance/sonic"
)

// JSONFormatter writes the timeline as an indented JSON document.
type JSONFormatter struct{}

// NewJSONFormatter creates a new instance of JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonInterval struct {
	Name         string   `json:"name"`
	OriginalName string   `json:"original_name"`
	Start        int64    `json:"start"`
	End          int64    `json:"end"`
	Duration     int64    `json:"duration"`
	Gap          *jsonGap `json:"gap,omitempty"`
}

type jsonGap struct {
	Kind        string `json:"kind"`
	Duration    int64  `json:"duration"`
	VisualStart int64  `json:"visual_start"`
}

type jsonTimeline struct {
	MinTime       int64          `json:"min_time"`
	MaxTime       int64          `json:"max_time"`
	TotalDuration int64          `json:"total_duration"`
	Intervals     []jsonInterval `json:"intervals"`
	Warnings      []string       `json:"warnings,omitempty"`
}

func (f *JSONFormatter) Format(w io.Writer, r *Report) error {
	doc := jsonTimeline{
		MinTime:       r.Timeline.MinTime,
		MaxTime:       r.Timeline.MaxTime,
		TotalDuration: r.Timeline.TotalDuration(),
		Intervals:     make([]jsonInterval, 0, len(r.Timeline.Intervals)),
		Warnings:      r.Timeline.Warnings,
	}
	for i, iv := range r.Timeline.Intervals {
		item := jsonInterval{
			Name:         iv.DisplayName,
			OriginalName: iv.OriginalName,
			Start:        iv.Start,
			End:          iv.End,
			Duration:     iv.Duration(),
		}
		if g := r.Gaps[i]; g.Duration > 0 {
			item.Gap = &jsonGap{Kind: g.Kind.String(), Duration: g.Duration, VisualStart: g.VisualStart}
		}
		doc.Intervals = append(doc.Intervals, item)
	}

	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
