package fixtures

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Span is an interval the generator expects the parser to reconstruct.
type Span struct {
	Name  string
	Start int64
	End   int64
}

// GeneratorOptions controls the shape of a generated log.
type GeneratorOptions struct {
	Names       []string
	Occurrences int   // per name
	BaseTime    int64 // ms
	NoiseEvery  int   // insert a noise line every N events, 0 for none
	Decorate    bool  // random "!!!" prefixes and " ms" suffixes
}

// EventLogGenerator produces start/end logs with known intervals
type EventLogGenerator struct {
	baseDir string
	rng     *rand.Rand
}

// NewEventLogGenerator creates a generator writing under baseDir. The same seed
// always yields the same logs.
func NewEventLogGenerator(baseDir string, seed int64) *EventLogGenerator {
	return &EventLogGenerator{
		baseDir: baseDir,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

type event struct {
	at    int64
	name  string
	start bool
}

// Generate returns log text and the spans it encodes. Occurrences of one name
// never overlap, so pairing is unambiguous; different names interleave freely.
func (g *EventLogGenerator) Generate(opts GeneratorOptions) (string, []Span) {
	var spans []Span
	var events []event

	for _, name := range opts.Names {
		cursor := opts.BaseTime + g.rng.Int63n(50)
		for i := 0; i < opts.Occurrences; i++ {
			start := cursor + g.rng.Int63n(40)
			end := start + g.rng.Int63n(120)
			spans = append(spans, Span{Name: name, Start: start, End: end})
			events = append(events, event{at: start, name: name, start: true}, event{at: end, name: name})
			cursor = end + 1
		}
	}

	// Within a timestamp, starts go last so a zero-length interval never closes a
	// different occurrence.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}
		return !events[i].start && events[j].start
	})

	var b strings.Builder
	for i, ev := range events {
		if opts.NoiseEvery > 0 && i%opts.NoiseEvery == 0 {
			fmt.Fprintf(&b, "[worker-%d] heartbeat ok\n", g.rng.Intn(8))
		}
		b.WriteString(g.line(ev, opts.Decorate))
		b.WriteByte('\n')
	}

	return b.String(), spans
}

func (g *EventLogGenerator) line(ev event, decorate bool) string {
	kind := "end"
	if ev.start {
		kind = "start"
	}
	line := fmt.Sprintf("%s %s: %d", ev.name, kind, ev.at)
	if !decorate {
		return line
	}
	if g.rng.Intn(2) == 0 {
		line += " ms"
	}
	if g.rng.Intn(2) == 0 {
		line = fmt.Sprintf("2024-05-01T10:00:%02d.000Z DEBUG tid=%d !!! %s", g.rng.Intn(60), g.rng.Intn(100), line)
	}
	return line
}

// WriteFile stores text as baseDir/name and returns the path.
func (g *EventLogGenerator) WriteFile(name, text string) (string, error) {
	if err := os.MkdirAll(g.baseDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(g.baseDir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}
