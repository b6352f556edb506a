package chords

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Marker anchors a chord immediately before the lyric character at
// Offset. Offsets are rune offsets into the line's lyric-only text and
// never exceed its length; markers sharing an offset keep their
// insertion order.
type Marker struct {
	Offset int
	Chord  string
}

// Line is the structural normal form of one inline-annotated line: the
// lyric text with all brackets stripped, plus the chord markers in
// order. The raw byte layout of a line is not guaranteed to round-trip,
// the (Text, Markers) pair is.
type Line struct {
	Text    string
	Markers []Marker
}

var bracketRe = regexp.MustCompile(`\[([^\]]*)\]`)

// ParseLine splits an inline-annotated line into its lyric text and
// chord markers. Bracketed content is accepted loosely: anything
// between brackets becomes a marker, chord-valid or not, so free-form
// annotations survive a parse/serialize round trip.
func ParseLine(s string) Line {
	var text strings.Builder
	var markers []Marker
	offset := 0
	last := 0
	for _, loc := range bracketRe.FindAllStringSubmatchIndex(s, -1) {
		run := s[last:loc[0]]
		text.WriteString(run)
		offset += utf8.RuneCountInString(run)
		markers = append(markers, Marker{Offset: offset, Chord: s[loc[2]:loc[3]]})
		last = loc[1]
	}
	text.WriteString(s[last:])
	return Line{Text: text.String(), Markers: markers}
}

// SerializeLine writes a line back to inline notation, emitting each
// marker immediately before the lyric character at its offset and
// trailing markers after the text.
func SerializeLine(line Line) string {
	var b strings.Builder
	next := 0
	for i, r := range []rune(line.Text) {
		for next < len(line.Markers) && line.Markers[next].Offset <= i {
			b.WriteString("[")
			b.WriteString(line.Markers[next].Chord)
			b.WriteString("]")
			next++
		}
		b.WriteRune(r)
	}
	for ; next < len(line.Markers); next++ {
		b.WriteString("[")
		b.WriteString(line.Markers[next].Chord)
		b.WriteString("]")
	}
	return b.String()
}

// ParseContent parses every line of a canonical content string.
func ParseContent(content string) []Line {
	raw := strings.Split(normalizeNewlines(content), "\n")
	lines := make([]Line, len(raw))
	for i, s := range raw {
		lines[i] = ParseLine(s)
	}
	return lines
}

// SerializeContent is the inverse of ParseContent.
func SerializeContent(lines []Line) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = SerializeLine(line)
	}
	return strings.Join(out, "\n")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
