package timeline

import "github.com/penwyp/go-log-grapher/internal/core/model"

// GapAt classifies the space before intervals[i] relative to intervals[i-1].
//
// A true gap is measured from the latest end at or before the current start among
// all earlier intervals, not just the previous one, so a long-running interval
// further up still counts as covering the time. An overlap is measured from the
// previous start. Non-positive durations and i == 0 yield GapNone.
func GapAt(intervals []model.ResolvedInterval, i int) model.GapAnnotation {
	if i <= 0 || i >= len(intervals) {
		return model.GapAnnotation{}
	}
	prev, cur := intervals[i-1], intervals[i]

	var ann model.GapAnnotation
	switch {
	case cur.Start == prev.End:
		return model.GapAnnotation{}
	case cur.Start > prev.End:
		closest := prev.End
		for _, earlier := range intervals[:i] {
			if earlier.End <= cur.Start && earlier.End > closest {
				closest = earlier.End
			}
		}
		ann = model.GapAnnotation{Kind: model.GapTrue, VisualStart: closest, Duration: cur.Start - closest}
	default:
		ann = model.GapAnnotation{Kind: model.GapOverlap, VisualStart: prev.Start, Duration: cur.Start - prev.Start}
	}

	if ann.Duration <= 0 {
		return model.GapAnnotation{}
	}
	return ann
}

// Gaps returns one annotation per interval; the first is always GapNone.
func Gaps(intervals []model.ResolvedInterval) []model.GapAnnotation {
	out := make([]model.GapAnnotation, len(intervals))
	for i := 1; i < len(intervals); i++ {
		out[i] = GapAt(intervals, i)
	}
	return out
}
