package timeline

import (
	"fmt"
	"sort"
	"testing"

	"github.com/penwyp/go-log-grapher/internal/core/model"
	"github.com/penwyp/go-log-grapher/internal/data/parser"
	"github.com/penwyp/go-log-grapher/internal/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanKeys(spans []fixtures.Span) []string {
	keys := make([]string, 0, len(spans))
	for _, s := range spans {
		keys = append(keys, fmt.Sprintf("%s/%d/%d", s.Name, s.Start, s.End))
	}
	sort.Strings(keys)
	return keys
}

func intervalKeys(intervals []model.ResolvedInterval) []string {
	keys := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		keys = append(keys, fmt.Sprintf("%s/%d/%d", iv.OriginalName, iv.Start, iv.End))
	}
	sort.Strings(keys)
	return keys
}

func TestResolveGeneratedLogs(t *testing.T) {
	tests := []struct {
		name string
		seed int64
		opts fixtures.GeneratorOptions
	}{
		{
			name: "plain",
			seed: 1,
			opts: fixtures.GeneratorOptions{Names: []string{"fetch", "parse", "render"}, Occurrences: 3, BaseTime: 1000},
		},
		{
			name: "decorated with noise",
			seed: 7,
			opts: fixtures.GeneratorOptions{
				Names:       []string{"db query", "cache warm", "http"},
				Occurrences: 5,
				BaseTime:    1700000000000,
				NoiseEvery:  3,
				Decorate:    true,
			},
		},
		{
			name: "single name many occurrences",
			seed: 42,
			opts: fixtures.GeneratorOptions{Names: []string{"tick"}, Occurrences: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := fixtures.NewEventLogGenerator(t.TempDir(), tt.seed)
			text, spans := gen.Generate(tt.opts)

			tl, err := Resolve(parser.Parse(text), nil)
			require.NoError(t, err)
			assert.Empty(t, tl.Warnings)
			assert.Equal(t, spanKeys(spans), intervalKeys(tl.Intervals))

			names := make(map[string]bool)
			for i, iv := range tl.Intervals {
				assert.False(t, names[iv.DisplayName], "duplicate display name %q", iv.DisplayName)
				names[iv.DisplayName] = true
				assert.GreaterOrEqual(t, iv.Start, tl.MinTime)
				assert.LessOrEqual(t, iv.End, tl.MaxTime)
				if i > 0 {
					assert.LessOrEqual(t, tl.Intervals[i-1].Start, iv.Start)
				}
			}

			again, err := Resolve(parser.Parse(text), nil)
			require.NoError(t, err)
			assert.Equal(t, tl, again)

			path, err := gen.WriteFile("events.log", text)
			require.NoError(t, err)
			fromFile, err := parser.NewParser().ParseFile(path)
			require.NoError(t, err)
			assert.Equal(t, parser.Parse(text), fromFile)
		})
	}
}

func TestGeneratedGapKinds(t *testing.T) {
	gen := fixtures.NewEventLogGenerator(t.TempDir(), 3)
	text, _ := gen.Generate(fixtures.GeneratorOptions{
		Names:       []string{"a", "b", "c", "d"},
		Occurrences: 6,
	})

	tl, err := Resolve(parser.Parse(text), nil)
	require.NoError(t, err)

	gaps := Gaps(tl.Intervals)
	require.Len(t, gaps, len(tl.Intervals))
	assert.Equal(t, model.GapNone, gaps[0].Kind)
	for i := 1; i < len(gaps); i++ {
		prev, cur := tl.Intervals[i-1], tl.Intervals[i]
		g := gaps[i]
		switch {
		case cur.Start == prev.End:
			assert.Equal(t, model.GapNone, g.Kind)
		case cur.Start < prev.End:
			if g.Kind != model.GapNone {
				assert.Equal(t, model.GapOverlap, g.Kind)
				assert.Equal(t, prev.Start, g.VisualStart)
			}
		default:
			if g.Kind != model.GapNone {
				assert.Equal(t, model.GapTrue, g.Kind)
				assert.Greater(t, g.Duration, int64(0))
				assert.Equal(t, cur.Start, g.VisualStart+g.Duration)
			}
		}
	}
}
