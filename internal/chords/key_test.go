package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKeyVocabulary(t *testing.T) {
	assert := assert.New(t)

	keys := CanonicalKeys()
	assert.Len(keys, 34)

	seen := make(map[string]bool)
	for _, k := range keys {
		assert.False(seen[k], k)
		seen[k] = true
		assert.True(IsCanonicalKey(k))
	}
	assert.False(IsCanonicalKey("H"))
	assert.False(IsCanonicalKey("Cmaj"))
	assert.False(IsCanonicalKey(""))
}

func TestKeyPitchClasses(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]int{
		"C": 0, "C#": 1, "Db": 1, "D": 2, "Eb": 3, "E": 4,
		"F": 5, "F#": 6, "Gb": 6, "G": 7, "Ab": 8, "A": 9,
		"Bb": 10, "B": 11,
		"Am": 9, "F#m": 6, "Bbm": 10,
	}
	for name, want := range cases {
		pc, ok := KeyPitchClass(name)
		assert.True(ok, name)
		assert.Equal(want, pc, name)
	}

	_, ok := KeyPitchClass("X")
	assert.False(ok)
}

func TestMinorMarker(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsMinorKey("Am"))
	assert.True(IsMinorKey("Ebm"))
	assert.False(IsMinorKey("A"))
	assert.False(IsMinorKey("Eb"))
}

func TestPreferFlats(t *testing.T) {
	assert := assert.New(t)

	// explicit accidental decides
	assert.True(PreferFlats("Eb"))
	assert.True(PreferFlats("Bbm"))
	assert.False(PreferFlats("F#"))
	assert.False(PreferFlats("C#m"))

	// plain names fall back to the flat-key letter set
	assert.True(PreferFlats("F"))
	assert.True(PreferFlats("Fm"))
	assert.False(PreferFlats("C"))
	assert.False(PreferFlats("D"))
	assert.False(PreferFlats("Dm"))
	assert.False(PreferFlats("G"))
}

func TestSemitonesBetween(t *testing.T) {
	assert := assert.New(t)

	d, err := SemitonesBetween("C", "D")
	assert.NoError(err)
	assert.Equal(2, d)

	d, err = SemitonesBetween("D", "C")
	assert.NoError(err)
	assert.Equal(-2, d)

	d, err = SemitonesBetween("Am", "Cm")
	assert.NoError(err)
	assert.Equal(3, d)

	_, err = SemitonesBetween("C", "H")
	assert.Error(err)
	_, err = SemitonesBetween("Hm", "C")
	assert.Error(err)
}
