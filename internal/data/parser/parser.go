package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/penwyp/go-log-grapher/internal/core/model"
	"github.com/penwyp/go-log-grapher/internal/util"
)

// prefixMarker separates noise (logger prefixes, thread ids) from the event text.
const prefixMarker = "!!!"

var (
	startPattern = regexp.MustCompile(`^(.*) start: (\d+)(?: ms)?$`)
	endPattern   = regexp.MustCompile(`^(.*) end: (\d+)(?: ms)?$`)
)

// EventKind is the kind of a recognised line.
type EventKind int

const (
	EventNone EventKind = iota
	EventStart
	EventEnd
)

// Event is a single recognised start or end line.
type Event struct {
	Kind EventKind
	Name string
	Time int64
}

// Stats counts what a parse saw.
type Stats struct {
	Lines     int
	Starts    int
	Ends      int
	Matched   int
	Unmatched int
	Skipped   int
}

// Parser reconstructs task intervals from event logs.
type Parser struct {
	maxLineSize int
	stats       Stats
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{maxLineSize: 10 * 1024 * 1024}
}

// Stats returns the counters of the last parse.
func (p *Parser) Stats() Stats {
	return p.stats
}

// Parse is a convenience wrapper around a fresh Parser.
func Parse(text string) *model.TaskGroup {
	return NewParser().ParseString(text)
}

// ParseString parses newline-delimited log text.
func (p *Parser) ParseString(text string) *model.TaskGroup {
	p.stats = Stats{}
	groups := model.NewTaskGroup()
	for _, line := range strings.Split(text, "\n") {
		p.apply(groups, line)
	}
	util.LogDebugf("Parsed %d lines: %d starts, %d ends, %d skipped",
		p.stats.Lines, p.stats.Starts, p.stats.Ends, p.stats.Skipped)
	return groups
}

// ParseReader parses log text from r line by line. The result equals ParseString
// on the same text.
func (p *Parser) ParseReader(r io.Reader) (*model.TaskGroup, error) {
	p.stats = Stats{}
	groups := model.NewTaskGroup()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), p.maxLineSize)
	for scanner.Scan() {
		p.apply(groups, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	util.LogDebugf("Parsed %d lines: %d starts, %d ends, %d skipped",
		p.stats.Lines, p.stats.Starts, p.stats.Ends, p.stats.Skipped)
	return groups, nil
}

// ParseFile parses the log file at path.
func (p *Parser) ParseFile(path string) (*model.TaskGroup, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	util.LogDebugf("Start parsing file: %s", path)
	return p.ParseReader(file)
}

func (p *Parser) apply(groups *model.TaskGroup, line string) {
	p.stats.Lines++

	ev := ParseLine(line)
	switch ev.Kind {
	case EventStart:
		p.stats.Starts++
		groups.AddStart(ev.Name, ev.Time)
	case EventEnd:
		p.stats.Ends++
		if groups.AddEnd(ev.Name, ev.Time) {
			p.stats.Matched++
		} else {
			p.stats.Unmatched++
		}
	default:
		p.stats.Skipped++
		if strings.TrimSpace(line) != "" {
			util.LogDebugf("Skip unrecognised line %d: %q", p.stats.Lines, line)
		}
	}
}

// ParseLine classifies one raw line. Lines matching neither pattern, or whose time
// does not fit in an int64, return an Event with Kind EventNone.
func ParseLine(line string) Event {
	clean := StripPrefix(strings.TrimSpace(line))

	if m := startPattern.FindStringSubmatch(clean); m != nil {
		return newEvent(EventStart, m[1], m[2])
	}
	if m := endPattern.FindStringSubmatch(clean); m != nil {
		return newEvent(EventEnd, m[1], m[2])
	}
	return Event{}
}

// StripPrefix returns the trimmed segment between the first and second marker when
// line contains one, and line unchanged otherwise.
func StripPrefix(line string) string {
	if !strings.Contains(line, prefixMarker) {
		return line
	}
	parts := strings.Split(line, prefixMarker)
	if len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return line
}

func newEvent(kind EventKind, name, digits string) Event {
	ts, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		util.LogDebugf("Skip out of range time %q: %v", digits, err)
		return Event{}
	}
	return Event{Kind: kind, Name: strings.TrimSpace(name), Time: ts}
}
