package chords

import (
	"strings"
	"unicode"
)

// WordSpan is one editable word of a line's lyric text: its [Start,
// End) rune offsets, its text, and the index of the chord marker
// attached to it (-1 when none). A marker is attached to the word whose
// span contains its offset, preferring exact equality with the word
// start.
type WordSpan struct {
	Start  int
	End    int
	Text   string
	Marker int
}

// SegmentLine parses an inline line and splits its lyric text into word
// spans with their attached markers. Editing surfaces use the spans to
// let a chord be attached or replaced by clicking a word.
func SegmentLine(s string) (Line, []WordSpan) {
	line := ParseLine(s)
	runes := []rune(line.Text)
	var words []WordSpan
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		words = append(words, WordSpan{
			Start:  start,
			End:    i,
			Text:   string(runes[start:i]),
			Marker: markerWithin(line.Markers, start, i),
		})
	}
	return line, words
}

// markerWithin finds the marker whose offset falls inside [start, end),
// preferring an exact match with start.
func markerWithin(markers []Marker, start, end int) int {
	found := -1
	for i, m := range markers {
		if m.Offset == start {
			return i
		}
		if found < 0 && m.Offset > start && m.Offset < end {
			found = i
		}
	}
	return found
}

// AttachChord attaches a chord to the word at wordIndex, replacing the
// word's existing marker when it has one. The marker is addressed by
// its structural position from parse time, so a line carrying the same
// chord text twice stays editable per word. The whole line is rebuilt
// and re-serialized; out-of-range indexes leave it unchanged.
func AttachChord(s string, wordIndex int, chord string) string {
	line, words := SegmentLine(s)
	if wordIndex < 0 || wordIndex >= len(words) {
		return s
	}
	word := words[wordIndex]
	if word.Marker >= 0 {
		line.Markers[word.Marker].Chord = chord
		return SerializeLine(line)
	}
	insert := len(line.Markers)
	for i, m := range line.Markers {
		if m.Offset > word.Start {
			insert = i
			break
		}
	}
	markers := make([]Marker, 0, len(line.Markers)+1)
	markers = append(markers, line.Markers[:insert]...)
	markers = append(markers, Marker{Offset: word.Start, Chord: chord})
	markers = append(markers, line.Markers[insert:]...)
	line.Markers = markers
	return SerializeLine(line)
}

// DetachChord removes the first bracket group whose content equals the
// chord's literal text. When the line carries the same chord text
// twice, only the first occurrence is removed; callers needing per-word
// removal should go through AttachChord's structural addressing
// instead.
func DetachChord(s string, chord string) string {
	return strings.Replace(s, "["+chord+"]", "", 1)
}
