// Package order loads display-order overrides.
package order

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
)

// LoadFile reads a display order from path. A file whose first non-blank byte is
// '[' is decoded as a JSON array of names; anything else is read as one name per
// line, skipping blank lines and lines starting with '#'.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}
	return Parse(data)
}

// Parse decodes order data in either supported form.
func Parse(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var names []string
		if err := sonic.Unmarshal(trimmed, &names); err != nil {
			return nil, fmt.Errorf("decode order list: %w", err)
		}
		return names, nil
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}

// Merge appends extra after base, dropping repeats.
func Merge(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
