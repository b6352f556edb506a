package chords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLineSplitsTextAndMarkers(t *testing.T) {
	assert := assert.New(t)

	line := ParseLine("[G]Amazing [D]grace")
	assert.Equal("Amazing grace", line.Text)
	assert.Equal([]Marker{{0, "G"}, {8, "D"}}, line.Markers)

	line = ParseLine("no chords here")
	assert.Equal("no chords here", line.Text)
	assert.Empty(line.Markers)

	line = ParseLine("")
	assert.Equal("", line.Text)
	assert.Empty(line.Markers)
}

func TestParseLineOffsetsCountRunes(t *testing.T) {
	line := ParseLine("Coração [C]valente")
	assert.Equal(t, "Coração valente", line.Text)
	assert.Equal(t, []Marker{{8, "C"}}, line.Markers)
}

func TestParseLineAcceptsNonChordBrackets(t *testing.T) {
	// free-form annotations survive as markers
	line := ParseLine("[Refrão] [G]la la")
	assert.Equal(t, []Marker{{0, "Refrão"}, {1, "G"}}, line.Markers)
	assert.Equal(t, " la la", line.Text)
}

func TestSerializeLinePlacesMarkers(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("[G]Amazing [D]grace", SerializeLine(Line{
		Text:    "Amazing grace",
		Markers: []Marker{{0, "G"}, {8, "D"}},
	}))

	// trailing chords with no following lyric
	assert.Equal("la la [G]", SerializeLine(Line{
		Text:    "la la ",
		Markers: []Marker{{6, "G"}},
	}))

	// markers at the same offset keep their insertion order
	assert.Equal("[C][G]word", SerializeLine(Line{
		Text:    "word",
		Markers: []Marker{{0, "C"}, {0, "G"}},
	}))
}

func TestParseSerializeNormalForm(t *testing.T) {
	inputs := []string{
		"[G]Amazing [D]grace",
		"la la [G]",
		"[C][G]word",
		"[Refrão] [Em]la",
		"plain lyric line",
		"",
		"Coração [C]valente no [G7]fim",
	}
	for _, x := range inputs {
		once := ParseLine(x)
		again := ParseLine(SerializeLine(once))
		assert.Equal(t, once, again, x)
	}
}

func TestContentRoundTrip(t *testing.T) {
	content := "[G]Amazing [D]grace\n\nhow [Em]sweet"
	assert.Equal(t, content, SerializeContent(ParseContent(content)))

	// carriage returns are normalized on the way in
	lines := ParseContent("[G]one\r\ntwo\rthree")
	assert.Len(t, lines, 3)
}
