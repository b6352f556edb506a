package chords

import (
	"strings"
	"unicode/utf8"
)

// RenderedLine is the two-row display decomposition of one line: a
// chord row padded so each chord starts above the lyric character it
// anchors to, and the lyric row below it. Lines without markers render
// as a single lyric row (empty ChordRow).
type RenderedLine struct {
	ChordRow string
	LyricRow string
}

// RenderLine lays a parsed line out in two rows. When a chord's text
// overruns the next marker's column the next chord is pushed right with
// a single space so the row stays readable.
func RenderLine(line Line) RenderedLine {
	if len(line.Markers) == 0 {
		return RenderedLine{LyricRow: line.Text}
	}
	var b strings.Builder
	col := 0
	for _, m := range line.Markers {
		if col > 0 && col >= m.Offset {
			b.WriteString(" ")
			col++
		}
		for col < m.Offset {
			b.WriteString(" ")
			col++
		}
		b.WriteString(m.Chord)
		col += utf8.RuneCountInString(m.Chord)
	}
	return RenderedLine{ChordRow: b.String(), LyricRow: line.Text}
}

// RenderContent renders every line of a canonical content string.
func RenderContent(content string) []RenderedLine {
	lines := ParseContent(content)
	out := make([]RenderedLine, len(lines))
	for i, line := range lines {
		out[i] = RenderLine(line)
	}
	return out
}

// FormatStacked writes canonical content back out in the two-row
// stacked convention, for plain-text display surfaces. Chord rows are
// emitted only for lines that carry chords.
func FormatStacked(content string) string {
	var out []string
	for _, r := range RenderContent(content) {
		if r.ChordRow != "" {
			out = append(out, strings.TrimRight(r.ChordRow, " "))
		}
		out = append(out, r.LyricRow)
	}
	return strings.Join(out, "\n")
}
