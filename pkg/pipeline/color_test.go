package pipeline

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{in: "#282c34", want: color.NRGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}},
		{in: "abb2bf", want: color.NRGBA{R: 0xab, G: 0xb2, B: 0xbf, A: 0xff}},
		{in: "#00000080", want: color.NRGBA{A: 0x80}},
		{in: "#zz0000", want: color.NRGBA{R: 255, A: 255}},
		{in: "#12", want: color.NRGBA{R: 0x12, G: 255, B: 255, A: 255}},
		{in: "", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "#ffffffgg", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseHexColor(tt.in); got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
