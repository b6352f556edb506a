package chords

import (
	"regexp"
	"strings"
)

// sectionTagRe matches the section labels found on imported sheets,
// in both the English and Portuguese vocabulary, written as literal
// bracket groups.
var sectionTagRe = regexp.MustCompile(`(?i)\[(?:intro|verse|chorus|bridge|refrão|ponte|solo|tab|instrumental|pre-chorus|pré-refrão|outro|final)\]`)

// barSeparators are the characters used to draw bar lines and spacers
// on chord staffs.
var barSeparators = strings.NewReplacer("|", " ", "-", " ", "–", " ", "—", " ")

// IsChordLine reports whether a raw text line is a chord staff: section
// tags and bar separators are ignored, and the line qualifies when at
// least one token parses as a chord and at least half of them do. A
// line still containing a bracket pair after tag removal is inline
// notation already and never classifies as a staff.
func IsChordLine(line string) bool {
	clean := sectionTagRe.ReplaceAllString(line, " ")
	clean = barSeparators.Replace(clean)
	if open := strings.Index(clean, "["); open >= 0 && strings.Contains(clean[open:], "]") {
		return false
	}
	tokens := strings.Fields(clean)
	if len(tokens) == 0 {
		return false
	}
	matched := 0
	for _, token := range tokens {
		if IsChord(token) {
			matched++
		}
	}
	return matched >= 1 && 2*matched >= len(tokens)
}
