package timeline

import (
	"fmt"

	"github.com/penwyp/go-log-grapher/internal/core/model"
)

// SpanProbe describes an interval covering a probed point in time.
type SpanProbe struct {
	Interval  model.ResolvedInterval
	Elapsed   float64
	Remaining float64
	// Fraction is Elapsed over the interval duration, 0 for zero-length intervals.
	Fraction float64
}

// Probe returns the visible intervals covering at, in timeline order.
func Probe(tl *model.Timeline, at float64, hidden []string) []SpanProbe {
	skip := make(map[string]struct{}, len(hidden))
	for _, name := range hidden {
		skip[name] = struct{}{}
	}

	var out []SpanProbe
	for _, iv := range tl.Intervals {
		if _, ok := skip[iv.DisplayName]; ok || !iv.Contains(at) {
			continue
		}
		p := SpanProbe{
			Interval:  iv,
			Elapsed:   at - float64(iv.Start),
			Remaining: float64(iv.End) - at,
		}
		if d := iv.Duration(); d > 0 {
			p.Fraction = p.Elapsed / float64(d)
		}
		out = append(out, p)
	}
	return out
}

// Window resolves the displayed range. Nil bounds default to the timeline bounds.
func Window(tl *model.Timeline, from, to *int64) (model.Window, error) {
	w := model.Window{Min: tl.MinTime, Max: tl.MaxTime}
	if from != nil {
		w.Min = *from
	}
	if to != nil {
		w.Max = *to
	}
	if w.Max < w.Min {
		return model.Window{}, fmt.Errorf("invalid window: end %d is before start %d", w.Max, w.Min)
	}
	return w, nil
}
