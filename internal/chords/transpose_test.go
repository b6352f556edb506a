package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransposeNote(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("D", TransposeNote("C", 2, false))
	assert.Equal("B", TransposeNote("C", -1, true))
	assert.Equal("Bb", TransposeNote("A", 1, true))
	assert.Equal("A#", TransposeNote("A", 1, false))
	assert.Equal("C", TransposeNote("C", -24, false))

	// not a note: returned unchanged
	assert.Equal("hello", TransposeNote("hello", 5, false))
}

func TestTransposeChord(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("A7", TransposeChord("G7", 2, false))
	assert.Equal("Cm", TransposeChord("Am", 3, true))
	assert.Equal("Ebm7", TransposeChord("Dm7", 1, true))
	assert.Equal("D#m7", TransposeChord("Dm7", 1, false))

	// root and slash bass move independently by the same interval
	assert.Equal("E/G#", TransposeChord("D/F#", 2, false))
	assert.Equal("Bbm7/Ab", TransposeChord("Am7/G", 1, true))

	// non-chord tokens are a no-op
	assert.Equal("Louvado", TransposeChord("Louvado", 4, false))
	assert.Equal("", TransposeChord("", 4, false))
}

func TestTransposeRoundTripRestoresPitchClasses(t *testing.T) {
	tokens := []string{"C", "F#m7", "Bb7M", "G/B", "Cm7/Bb", "E7(4/9)", "Aº"}
	for _, token := range tokens {
		orig, ok := ParseChord(token)
		assert.True(t, ok, token)
		for d := -13; d <= 13; d++ {
			up := TransposeChord(token, d, false)
			back := TransposeChord(up, -d, true)
			got, ok := ParseChord(back)
			assert.True(t, ok, back)

			wantRoot, _ := NotePitchClass(orig.Root)
			gotRoot, _ := NotePitchClass(got.Root)
			assert.Equal(t, wantRoot, gotRoot, "%s by %d", token, d)
			assert.Equal(t, orig.Suffix, got.Suffix, token)

			if orig.Bass != "" {
				wantBass, _ := NotePitchClass(orig.Bass)
				gotBass, _ := NotePitchClass(got.Bass)
				assert.Equal(t, wantBass, gotBass, "%s by %d", token, d)
			}
		}
	}
}

func TestTransposeByZeroKeepsPitchClasses(t *testing.T) {
	for _, token := range []string{"C#", "Db", "F#m", "Gbm", "B"} {
		orig, _ := ParseChord(token)
		moved, _ := ParseChord(TransposeChord(token, 0, PreferFlats("C")))
		wantPC, _ := NotePitchClass(orig.Root)
		gotPC, _ := NotePitchClass(moved.Root)
		assert.Equal(t, wantPC, gotPC, token)
	}
}

func TestTransposeContent(t *testing.T) {
	assert := assert.New(t)

	content := "[C]Amazing [G7]grace\n\nhow [F]sweet the [C/E]sound"

	up, err := TransposeContent(content, "C", "D")
	assert.NoError(err)
	assert.Equal("[D]Amazing [A7]grace\n\nhow [G]sweet the [D/F#]sound", up)

	flat, err := TransposeContent(content, "C", "Eb")
	assert.NoError(err)
	assert.Equal("[Eb]Amazing [Bb7]grace\n\nhow [Ab]sweet the [Eb/G]sound", flat)

	_, err = TransposeContent(content, "C", "X")
	assert.Error(err)
	_, err = TransposeContent(content, "X", "C")
	assert.Error(err)
}
