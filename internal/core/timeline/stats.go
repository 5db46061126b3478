package timeline

import (
	"sort"

	"github.com/penwyp/go-log-grapher/internal/core/model"
)

// Summary aggregates a timeline for reporting.
type Summary struct {
	Intervals      int
	Tasks          int
	Span           int64
	Busy           int64
	Idle           int64
	MaxConcurrency int
	Longest        model.ResolvedInterval
	Gaps           int
	Overlaps       int
}

// Summarize computes totals over the timeline. Busy is the length of the union of
// all intervals; Idle is the rest of the span.
func Summarize(tl *model.Timeline) Summary {
	s := Summary{
		Intervals: len(tl.Intervals),
		Span:      tl.TotalDuration(),
	}

	tasks := make(map[string]struct{})
	for _, iv := range tl.Intervals {
		tasks[iv.OriginalName] = struct{}{}
		if iv.Duration() > s.Longest.Duration() || s.Longest.DisplayName == "" {
			s.Longest = iv
		}
	}
	s.Tasks = len(tasks)

	for _, gap := range Gaps(tl.Intervals) {
		switch gap.Kind {
		case model.GapTrue:
			s.Gaps++
		case model.GapOverlap:
			s.Overlaps++
		}
	}

	s.Busy = busyTime(tl.Intervals)
	s.Idle = s.Span - s.Busy
	s.MaxConcurrency = maxConcurrency(tl.Intervals)
	return s
}

func busyTime(intervals []model.ResolvedInterval) int64 {
	if len(intervals) == 0 {
		return 0
	}
	sorted := make([]model.ResolvedInterval, len(intervals))
	copy(sorted, intervals)
	sortByStart(sorted)

	var busy int64
	curStart, curEnd := sorted[0].Start, sorted[0].End
	for _, iv := range sorted[1:] {
		if iv.Start > curEnd {
			busy += curEnd - curStart
			curStart, curEnd = iv.Start, iv.End
			continue
		}
		curEnd = max(curEnd, iv.End)
	}
	return busy + curEnd - curStart
}

// maxConcurrency treats intervals as closed, so one ending where another starts
// counts as running together for that instant.
func maxConcurrency(intervals []model.ResolvedInterval) int {
	type edge struct {
		at    int64
		delta int
	}
	edges := make([]edge, 0, 2*len(intervals))
	for _, iv := range intervals {
		edges = append(edges, edge{iv.Start, 1}, edge{iv.End, -1})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at != edges[j].at {
			return edges[i].at < edges[j].at
		}
		return edges[i].delta > edges[j].delta
	})

	running, peak := 0, 0
	for _, e := range edges {
		running += e.delta
		peak = max(peak, running)
	}
	return peak
}
