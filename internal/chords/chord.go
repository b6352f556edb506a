// Package chords is the single shared chord/lyric notation engine:
// chord-symbol parsing, key-aware transposition, the inline bracket
// notation used as the persisted song format, the chord-staff line
// classifier, the stacked-to-inline import converter and the word
// segmentation used by interactive editors. Every surface (bot, CLI,
// importer) calls into this package; none of them re-derives any of the
// grammar.
//
// All operations are pure functions over caller-owned strings and are
// safe to call from any number of goroutines.
package chords

import "regexp"

// Chord is a decomposed chord symbol. The suffix is opaque quality
// text: it is preserved verbatim and never interpreted, only the root
// and bass take part in transposition.
type Chord struct {
	Root   string // letter plus optional accidental, e.g. "F#"
	Suffix string // quality text, e.g. "m7", "sus4", "7(4/9)"
	Bass   string // slash bass, empty when absent
}

// suffixPattern enumerates the accepted quality vocabulary: named
// qualities, numeric extensions, the symbolic quality markers and
// parenthesized alteration groups. Repetition is handled at the use
// site.
const suffixPattern = `(?:maj|min|dim|aug|sus|add|13|11|[245679]|[Mm+\-°øº]|\([0-9#b+\-/]+\))`

// chordRe is the one chord-token grammar shared by the parser, the
// classifier, the converter and the transposer.
var chordRe = regexp.MustCompile(`^([A-G][#b]?)(` + suffixPattern + `*)(?:/([A-G][#b]?))?$`)

// ParseChord decomposes a token into root, suffix and optional slash
// bass. The second return value reports whether the token is a chord at
// all; parsing never fails in any other way, and callers treat a
// non-chord token as ordinary text.
func ParseChord(token string) (Chord, bool) {
	m := chordRe.FindStringSubmatch(token)
	if m == nil {
		return Chord{}, false
	}
	return Chord{Root: m[1], Suffix: m[2], Bass: m[3]}, true
}

// String reassembles the chord symbol.
func (c Chord) String() string {
	if c.Bass != "" {
		return c.Root + c.Suffix + "/" + c.Bass
	}
	return c.Root + c.Suffix
}

// IsChord reports whether a token matches the chord grammar. A bare
// letter like "A" is a valid chord, which is an accepted ambiguity with
// single-letter lyric words.
func IsChord(token string) bool {
	return chordRe.MatchString(token)
}
