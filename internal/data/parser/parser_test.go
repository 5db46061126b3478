package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/penwyp/go-log-grapher/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Event
	}{
		{
			name:     "start",
			line:     "ProcessA start: 1678886400000",
			expected: Event{Kind: EventStart, Name: "ProcessA", Time: 1678886400000},
		},
		{
			name:     "end with ms suffix",
			line:     "ProcessA end: 42 ms",
			expected: Event{Kind: EventEnd, Name: "ProcessA", Time: 42},
		},
		{
			name:     "surrounding whitespace",
			line:     "   load config start: 7\t",
			expected: Event{Kind: EventStart, Name: "load config", Time: 7},
		},
		{
			name:     "greedy name keeps inner keyword",
			line:     "x start: 1 start: 2",
			expected: Event{Kind: EventStart, Name: "x start: 1", Time: 2},
		},
		{
			name:     "end pattern when start tail is not numeric",
			line:     "job start: 5 end: 9",
			expected: Event{Kind: EventEnd, Name: "job start: 5", Time: 9},
		},
		{
			name:     "prefix marker stripped",
			line:     "2024-01-01 INFO!!! A start: 5",
			expected: Event{Kind: EventStart, Name: "A", Time: 5},
		},
		{
			name:     "only the first marker segment is used",
			line:     "noise!!! A end: 3 !!! trailer",
			expected: Event{Kind: EventEnd, Name: "A", Time: 3},
		},
		{name: "negative time", line: "A start: -5", expected: Event{}},
		{name: "non numeric time", line: "A start: soon", expected: Event{}},
		{name: "no space before keyword", line: "start: 5", expected: Event{}},
		{name: "other suffix", line: "A start: 5 s", expected: Event{}},
		{name: "blank", line: "   ", expected: Event{}},
		{name: "int64 overflow", line: "A start: 99999999999999999999", expected: Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLine(tt.line))
		})
	}
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "A start: 5", StripPrefix("A start: 5"))
	assert.Equal(t, "A start: 5", StripPrefix("junk!!! A start: 5"))
	assert.Equal(t, "", StripPrefix("trailing!!!"))
	assert.Equal(t, "b", StripPrefix("a!!!b!!!c"))
}

func TestParsePrefixStrippingEquivalence(t *testing.T) {
	assert.Equal(t, Parse("A start: 5"), Parse("junk!!! A start: 5"))
}

func TestParseMsSuffixEquivalence(t *testing.T) {
	assert.Equal(t, Parse("A start: 5"), Parse("A start: 5 ms"))
}

func TestParseDuplicateStartsCreateIndependentSlots(t *testing.T) {
	groups := Parse(strings.Join([]string{
		"A start: 1",
		"A start: 2",
		"A end: 10",
		"A end: 20",
	}, "\n"))

	ivs := groups.Intervals("A")
	require.Len(t, ivs, 2)
	assert.Equal(t, model.RawInterval{Start: 1, End: 20, HasStart: true, HasEnd: true}, *ivs[0])
	assert.Equal(t, model.RawInterval{Start: 2, End: 10, HasStart: true, HasEnd: true}, *ivs[1])
}

func TestParseEndWithoutStart(t *testing.T) {
	groups := Parse("A end: 10\nA start: 20")

	ivs := groups.Intervals("A")
	require.Len(t, ivs, 2)
	assert.Equal(t, model.RawInterval{End: 10, HasEnd: true}, *ivs[0])
	assert.Equal(t, model.RawInterval{Start: 20, HasStart: true}, *ivs[1])
	assert.Equal(t, 1, groups.Pending("A"))
}

func TestParseNamesAreCaseSensitive(t *testing.T) {
	groups := Parse("a start: 1\nA end: 2")

	assert.Equal(t, []string{"a", "A"}, groups.Names())
	assert.Equal(t, 1, groups.Pending("a"))
}

func TestParserStats(t *testing.T) {
	p := NewParser()
	p.ParseString("A start: 1\ngarbage\nA end: 2\nB end: 3\n")

	stats := p.Stats()
	assert.Equal(t, 5, stats.Lines)
	assert.Equal(t, 1, stats.Starts)
	assert.Equal(t, 2, stats.Ends)
	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 1, stats.Unmatched)
	assert.Equal(t, 2, stats.Skipped)
}

func TestParseReaderMatchesParse(t *testing.T) {
	text := "A start: 1\r\nnoise\r\nB start: 2\r\nA end: 5 ms\r\nx!!! B end: 9\r\n"

	groups, err := NewParser().ParseReader(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, Parse(text), groups)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("A start: 1\nA end: 2\n"), 0644))

	groups, err := NewParser().ParseFile(path)
	require.NoError(t, err)
	require.Len(t, groups.Intervals("A"), 1)
	assert.True(t, groups.Intervals("A")[0].Complete())
}

func TestParseFileNonExistent(t *testing.T) {
	groups, err := NewParser().ParseFile("/path/that/does/not/exist.log")

	assert.Error(t, err)
	assert.Nil(t, groups)
}

func TestParseEmptyInput(t *testing.T) {
	groups := Parse("")
	assert.Equal(t, 0, groups.Len())
	assert.Empty(t, groups.Names())
}
