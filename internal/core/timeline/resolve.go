package timeline

import (
	"fmt"
	"math"
	"sort"

	"github.com/penwyp/go-log-grapher/internal/core/model"
	"github.com/penwyp/go-log-grapher/internal/util"
)

// ResolveOption customises Resolve.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	warn func(string)
}

// WithWarnFunc receives one message per interval skipped for ending before it started.
func WithWarnFunc(fn func(string)) ResolveOption {
	return func(c *resolveConfig) {
		c.warn = fn
	}
}

// Resolve validates the parsed intervals, assigns display names and orders them.
// Names listed in order come first in that order; the rest follow by start time.
// It returns model.ErrEmptyTimeline when no complete, non-inverted interval exists.
func Resolve(groups *model.TaskGroup, order []string, opts ...ResolveOption) (*model.Timeline, error) {
	cfg := resolveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	tl := &model.Timeline{}
	minTime := int64(math.MaxInt64)
	maxTime := int64(math.MinInt64)
	nameCounts := make(map[string]int)

	for _, baseName := range groups.Names() {
		for _, raw := range groups.Intervals(baseName) {
			if !raw.Complete() {
				continue
			}
			if raw.End < raw.Start {
				msg := fmt.Sprintf("Skipping %s: end time before start time.", baseName)
				tl.Warnings = append(tl.Warnings, msg)
				util.LogWarn(msg)
				if cfg.warn != nil {
					cfg.warn(msg)
				}
				continue
			}

			minTime = min(minTime, raw.Start)
			maxTime = max(maxTime, raw.End)

			nameCounts[baseName]++
			tl.Intervals = append(tl.Intervals, model.ResolvedInterval{
				DisplayName:  displayName(baseName, nameCounts[baseName]),
				OriginalName: baseName,
				Start:        raw.Start,
				End:          raw.End,
			})
		}
	}

	if len(tl.Intervals) == 0 {
		return nil, model.ErrEmptyTimeline
	}

	tl.MinTime = minTime
	tl.MaxTime = maxTime
	sortByStart(tl.Intervals)
	tl.Intervals = ApplyOrder(tl.Intervals, order)

	util.LogDebugf("Resolved %d intervals spanning %dms", len(tl.Intervals), tl.TotalDuration())
	return tl, nil
}

func displayName(baseName string, occurrence int) string {
	if occurrence == 1 {
		return baseName
	}
	return fmt.Sprintf("%s %d", baseName, occurrence)
}

func sortByStart(intervals []model.ResolvedInterval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
}

// ApplyOrder returns a new slice with intervals named in order first, in that order,
// followed by the remaining intervals sorted by start. Unknown names and repeats
// beyond the intervals carrying that name are ignored. An empty order returns a copy of intervals unchanged.
func ApplyOrder(intervals []model.ResolvedInterval, order []string) []model.ResolvedInterval {
	out := make([]model.ResolvedInterval, 0, len(intervals))
	if len(order) == 0 {
		return append(out, intervals...)
	}

	// A literal base name such as "A 2" can collide with a generated suffix, so a
	// name may own several intervals; each order entry claims the next unused one.
	byName := make(map[string][]int, len(intervals))
	for i, iv := range intervals {
		byName[iv.DisplayName] = append(byName[iv.DisplayName], i)
	}

	used := make([]bool, len(intervals))
	for _, name := range order {
		for _, idx := range byName[name] {
			if used[idx] {
				continue
			}
			used[idx] = true
			out = append(out, intervals[idx])
			break
		}
	}

	rest := make([]model.ResolvedInterval, 0, len(intervals)-len(out))
	for i, iv := range intervals {
		if !used[i] {
			rest = append(rest, iv)
		}
	}
	sortByStart(rest)

	return append(out, rest...)
}

// Filter drops intervals whose display name is hidden, together with their entries in
// gaps. Annotations are not recomputed, so visible rows keep the gap they have in the
// full order. Bounds are kept so the chart scale does not jump when tasks are hidden.
func Filter(tl *model.Timeline, gaps []model.GapAnnotation, hidden []string) (*model.Timeline, []model.GapAnnotation) {
	if len(hidden) == 0 {
		return tl, gaps
	}
	skip := make(map[string]struct{}, len(hidden))
	for _, name := range hidden {
		skip[name] = struct{}{}
	}

	out := &model.Timeline{MinTime: tl.MinTime, MaxTime: tl.MaxTime, Warnings: tl.Warnings}
	var outGaps []model.GapAnnotation
	for i, iv := range tl.Intervals {
		if _, ok := skip[iv.DisplayName]; ok {
			continue
		}
		out.Intervals = append(out.Intervals, iv)
		if i < len(gaps) {
			outGaps = append(outGaps, gaps[i])
		}
	}
	return out, outGaps
}
