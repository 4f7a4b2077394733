package card

import (
	"unicode/utf8"

	"github.com/user/codesnap/pkg/pipeline"
)

// Run is a contiguous slice of a line drawn in one style.
// Span is nil for unstyled gaps.
type Run struct {
	Text  string
	Start int
	End   int
	Span  *pipeline.Span
}

// Runs splits a line into drawable runs in left-to-right order: the gaps
// between spans in the default style and each span's clamped byte range.
// Offsets that fall inside a multi-byte rune snap back to the rune's first
// byte, and offsets before the previous run's end or past the text are
// clamped, so malformed spans never split or repeat characters.
func Runs(line pipeline.Line) []Run {
	text := line.Text
	if len(line.Spans) == 0 {
		if text == "" {
			return nil
		}
		return []Run{{Text: text, Start: 0, End: len(text)}}
	}

	var runs []Run
	lastEnd := 0
	for i := range line.Spans {
		span := &line.Spans[i]

		start := runeFloor(text, clamp(span.Start, lastEnd, len(text)))
		if start > lastEnd {
			runs = append(runs, Run{Text: text[lastEnd:start], Start: lastEnd, End: start})
		}

		end := runeFloor(text, clamp(span.End, start, len(text)))
		if end > start {
			runs = append(runs, Run{Text: text[start:end], Start: start, End: end, Span: span})
		}
		lastEnd = end
	}

	if lastEnd < len(text) {
		runs = append(runs, Run{Text: text[lastEnd:], Start: lastEnd, End: len(text)})
	}
	return runs
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runeFloor moves i back to the start of the rune containing it.
func runeFloor(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
