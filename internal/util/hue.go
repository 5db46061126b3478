package util

import (
	"math"
	"unicode/utf16"
)

// NameHue maps a task name to a hue in [0, 360). Duplicates of the same base name
// share a colour. The hash walks UTF-16 code units with 32-bit shift wrap-around so
// colours match the browser grapher for the same names.
func NameHue(name string) int {
	var hash float64
	for _, c := range utf16.Encode([]rune(name)) {
		shifted := int32(int64(hash)) << 5
		hash = float64(c) + float64(shifted) - hash
	}
	return int(math.Abs(math.Mod(hash, 360)))
}

// HueToHex converts a hue with the chart's fixed saturation (70%) and lightness
// (50%) to a #rrggbb string.
func HueToHex(hue int) string {
	const s, l = 0.7, 0.5
	hue = ((hue % 360) + 360) % 360
	hp := float64(hue) / 60

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch hue / 60 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	to := func(v float64) int { return int(math.Round((v + m) * 255)) }
	return hexColor(to(r), to(g), to(b))
}

func hexColor(r, g, b int) string {
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []int{r, g, b} {
		out[1+2*i] = digits[v>>4&0xf]
		out[2+2*i] = digits[v&0xf]
	}
	return string(out)
}
