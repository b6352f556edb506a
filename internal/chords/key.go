package chords

import (
	"fmt"
	"strings"
)

// The 34 canonical key names: the twelve sharp-side spellings plus the
// five flat duplicates of the enharmonic pairs, in both major and minor
// ("m" suffix) form. This is the full vocabulary accepted as an
// original or target key.
var majorKeyNames = []string{
	"C", "C#", "Db", "D", "D#", "Eb", "E", "F", "F#", "Gb",
	"G", "G#", "Ab", "A", "A#", "Bb", "B",
}

var canonicalKeyNames = buildKeyNames()

func buildKeyNames() []string {
	names := make([]string, 0, 2*len(majorKeyNames))
	names = append(names, majorKeyNames...)
	for _, name := range majorKeyNames {
		names = append(names, name+"m")
	}
	return names
}

// flatKeyLetters are the key letters whose scales are spelled with
// flats. Keys named with an explicit accidental are decided by that
// accidental instead.
var flatKeyLetters = map[string]bool{
	"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true, "Cb": true,
}

// CanonicalKeys returns the 34 canonical key names, majors first.
func CanonicalKeys() []string {
	names := make([]string, len(canonicalKeyNames))
	copy(names, canonicalKeyNames)
	return names
}

// IsCanonicalKey reports whether name is one of the 34 canonical key
// names.
func IsCanonicalKey(name string) bool {
	for _, k := range canonicalKeyNames {
		if k == name {
			return true
		}
	}
	return false
}

// IsMinorKey reports whether a canonical key name carries the minor
// marker.
func IsMinorKey(name string) bool {
	return strings.HasSuffix(name, "m")
}

// KeyPitchClass returns the pitch class of a key's root. The second
// return value is false for names outside the canonical list.
func KeyPitchClass(name string) (int, bool) {
	if !IsCanonicalKey(name) {
		return 0, false
	}
	return NotePitchClass(strings.TrimSuffix(name, "m"))
}

// PreferFlats reports whether chords in the given key are spelled with
// flats. A name with an explicit accidental decides by that accidental;
// plain names fall back to the fixed flat-key letter set.
func PreferFlats(name string) bool {
	root := strings.TrimSuffix(name, "m")
	if strings.Contains(root, "b") {
		return true
	}
	if strings.Contains(root, "#") {
		return false
	}
	return flatKeyLetters[root]
}

// SemitonesBetween returns the signed semitone distance from one
// canonical key to another. It errors on names outside the canonical
// list; this is the one caller contract the engine enforces.
func SemitonesBetween(fromKey, toKey string) (int, error) {
	from, ok := KeyPitchClass(fromKey)
	if !ok {
		return 0, fmt.Errorf("unknown key %q", fromKey)
	}
	to, ok := KeyPitchClass(toKey)
	if !ok {
		return 0, fmt.Errorf("unknown key %q", toKey)
	}
	return to - from, nil
}
