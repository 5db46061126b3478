package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "0ms", FormatMillis(0))
	assert.Equal(t, "1500ms", FormatMillis(1500))
	assert.Equal(t, "-3ms", FormatMillis(-3))
}

func TestFormatGapLabel(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		ms       int64
		expected string
	}{
		{name: "true gap", kind: "gap", ms: 5, expected: "+5ms gap"},
		{name: "overlap", kind: "overlap", ms: 12, expected: "+12ms from prev start"},
		{name: "none", kind: "none", ms: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatGapLabel(tt.kind, tt.ms))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50.0%", FormatPercent(0.5))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestNameHue(t *testing.T) {
	assert.Equal(t, 0, NameHue(""))
	assert.Equal(t, 65, NameHue("A"))
	// 66 + (65<<5) - 65 = 2081, 2081 mod 360 = 281
	assert.Equal(t, 281, NameHue("AB"))

	for _, name := range []string{"ProcessA", "a much longer task name with spaces", "日本語"} {
		hue := NameHue(name)
		assert.GreaterOrEqual(t, hue, 0)
		assert.Less(t, hue, 360)
		assert.Equal(t, hue, NameHue(name), "hue must be stable")
	}
}

func TestHueToHex(t *testing.T) {
	assert.Equal(t, "#d92626", HueToHex(0))
	assert.Equal(t, "#26d926", HueToHex(120))
	assert.Equal(t, "#2626d9", HueToHex(240))
	assert.Equal(t, HueToHex(10), HueToHex(370))
}
