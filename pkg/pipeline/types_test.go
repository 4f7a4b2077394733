package pipeline

import "testing"

func TestRenderScale(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1, want: 1},
		{in: 3.5, want: 3.5},
		{in: 0, want: DefaultRenderScale},
		{in: -1, want: DefaultRenderScale},
	}
	for _, tt := range tests {
		if got := RenderScale(tt.in); got != tt.want {
			t.Errorf("RenderScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScalePx_Truncates(t *testing.T) {
	if got := ScalePx(80, 2); got != 160 {
		t.Errorf("expected 160, got %d", got)
	}
	if got := ScalePx(5, 1.5); got != 7 {
		t.Errorf("expected 7 (7.5 truncated), got %d", got)
	}
	if got := ScalePx(3, 0.3); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestLayoutResult_LineTop(t *testing.T) {
	l := LayoutResult{Padding: 160, LineHeight: 56}
	if got := l.LineTop(0); got != 160 {
		t.Errorf("line 0: expected 160, got %d", got)
	}
	if got := l.LineTop(2); got != 272 {
		t.Errorf("line 2: expected 272, got %d", got)
	}
}

func TestNewShadowSpec(t *testing.T) {
	s := NewShadowSpec(20, 0.5, 0, 8, 2)
	if s.Sigma != 40 || s.Opacity != 0.5 || s.OffsetX != 0 || s.OffsetY != 16 {
		t.Errorf("unexpected default shadow: %+v", s)
	}

	s = NewShadowSpec(3, 1, 1.5, -2.5, 1.5)
	if s.Sigma != 4.5 || s.OffsetX != 2 || s.OffsetY != -3 {
		t.Errorf("offsets should truncate after scaling: %+v", s)
	}
}
