package pipeline

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" leniently: the leading '#'
// is optional and any group that is missing or not valid hex becomes 255.
func ParseHexColor(s string) color.NRGBA {
	hex := strings.TrimPrefix(s, "#")
	return color.NRGBA{
		R: hexGroup(hex, 0),
		G: hexGroup(hex, 1),
		B: hexGroup(hex, 2),
		A: hexGroup(hex, 3),
	}
}

func hexGroup(hex string, i int) uint8 {
	start := i * 2
	if start+2 > len(hex) {
		return 255
	}
	v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
	if err != nil {
		return 255
	}
	return uint8(v)
}
