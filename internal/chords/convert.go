package chords

import (
	"strings"
	"unicode"
)

// chordAt records where a chord token starts on the original staff
// line, in rune columns.
type chordAt struct {
	col  int
	text string
}

// staffTokens reports whether a raw line is a pure chord sequence (one
// or more whitespace-separated tokens, all of them chords) and returns
// the tokens. This is stricter than IsChordLine: the converter only
// pairs lines made of nothing but chords.
func staffTokens(line string) ([]string, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, false
	}
	for _, token := range tokens {
		if !IsChord(token) {
			return nil, false
		}
	}
	return tokens, true
}

// chordColumns locates each expected token's starting column on the
// original, non-collapsed staff line.
func chordColumns(staff string, tokens []string) []chordAt {
	runes := []rune(staff)
	cols := make([]chordAt, 0, len(tokens))
	next := 0
	for i := 0; i < len(runes) && next < len(tokens); i++ {
		if unicode.IsSpace(runes[i]) {
			continue
		}
		token := []rune(tokens[next])
		if i+len(token) <= len(runes) && string(runes[i:i+len(token)]) == tokens[next] {
			cols = append(cols, chordAt{col: i, text: tokens[next]})
			next++
			i += len(token) - 1
		}
	}
	return cols
}

// mergeStacked folds a column-aligned staff line into the lyric line
// below it, emitting each chord immediately before the lyric character
// at or after its column. Chords anchored past the end of a shorter
// lyric line are appended after it.
func mergeStacked(staff string, tokens []string, lyric string) string {
	cols := chordColumns(staff, tokens)
	var b strings.Builder
	next := 0
	for pos, r := range []rune(lyric) {
		for next < len(cols) && cols[next].col <= pos {
			b.WriteString("[")
			b.WriteString(cols[next].text)
			b.WriteString("]")
			next++
		}
		b.WriteRune(r)
	}
	for ; next < len(cols); next++ {
		b.WriteString("[")
		b.WriteString(cols[next].text)
		b.WriteString("]")
	}
	return b.String()
}

// ConvertStacked turns raw two-row stacked text into canonical inline
// content and detects the song's original key. A staff line followed by
// a non-blank, non-staff line is folded into it; a staff line on its
// own (an instrumental break) becomes a chord-only inline line; every
// other line, blank lines included, passes through unchanged in order.
//
// The detected key is the first chord token seen anywhere, normalized
// to root, accidental and minor marker ("G7" detects as "G", "Dm7" as
// "Dm"). When no chord is found, or the normalized candidate is not a
// canonical key name, the key defaults to "C"; conversion itself never
// fails.
func ConvertStacked(raw string) (content, detectedKey string) {
	lines := strings.Split(normalizeNewlines(raw), "\n")
	out := make([]string, 0, len(lines))
	firstChord := ""
	for i := 0; i < len(lines); i++ {
		tokens, isStaff := staffTokens(lines[i])
		if !isStaff {
			out = append(out, lines[i])
			continue
		}
		if firstChord == "" {
			firstChord = tokens[0]
		}
		if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
			if _, nextIsStaff := staffTokens(lines[i+1]); !nextIsStaff {
				out = append(out, mergeStacked(lines[i], tokens, lines[i+1]))
				i++
				continue
			}
		}
		bare := make([]string, len(tokens))
		for j, token := range tokens {
			bare[j] = "[" + token + "]"
		}
		out = append(out, strings.Join(bare, " "))
	}
	return strings.Join(out, "\n"), normalizeKey(firstChord)
}

// normalizeKey reduces a chord token to a canonical key name, keeping
// only the root, its accidental and the minor marker. Non-chords and
// non-canonical results fall back to "C".
func normalizeKey(token string) string {
	c, ok := ParseChord(token)
	if !ok {
		return "C"
	}
	name := c.Root
	if strings.HasPrefix(c.Suffix, "m") && !strings.HasPrefix(c.Suffix, "maj") {
		name += "m"
	}
	if !IsCanonicalKey(name) {
		return "C"
	}
	return name
}
