package chords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertPairedBlock(t *testing.T) {
	content, key := ConvertStacked("G       D\nAmazing grace")
	assert.Equal(t, "[G]Amazing [D]grace", content)
	assert.Equal(t, "G", key)
}

func TestConvertAlignsChordsByColumn(t *testing.T) {
	staff := "C" + strings.Repeat(" ", 12) + "G/B" + strings.Repeat(" ", 7) + "Am"
	raw := strings.Join([]string{
		staff,
		"Louvado seja o Senhor, meu Deus",
	}, "\n")
	content, key := ConvertStacked(raw)
	assert.Equal(t, "[C]Louvado seja [G/B]o Senhor, [Am]meu Deus", content)
	assert.Equal(t, "C", key)
}

func TestConvertChordsPastLyricEnd(t *testing.T) {
	// chords anchored past the shorter lyric line are appended
	content, _ := ConvertStacked("C        G\nla")
	assert.Equal(t, "[C]la[G]", content)
}

func TestConvertInstrumentalStaff(t *testing.T) {
	content, key := ConvertStacked("C G Am F\n\nAmazing")
	assert.Equal(t, "[C] [G] [Am] [F]\n\nAmazing", content)
	assert.Equal(t, "C", key)
}

func TestConvertConsecutiveStaffs(t *testing.T) {
	raw := strings.Join([]string{
		"Em C",
		"G       D",
		"Amazing grace",
	}, "\n")
	content, key := ConvertStacked(raw)
	assert.Equal(t, "[Em] [C]\n[G]Amazing [D]grace", content)
	assert.Equal(t, "Em", key)
}

func TestConvertPreservesPlainAndBlankLines(t *testing.T) {
	raw := strings.Join([]string{
		"[Refrão]",
		"",
		"G       D",
		"Amazing grace",
		"",
		"how sweet the sound",
	}, "\n")
	content, _ := ConvertStacked(raw)
	assert.Equal(t, strings.Join([]string{
		"[Refrão]",
		"",
		"[G]Amazing [D]grace",
		"",
		"how sweet the sound",
	}, "\n"), content)
}

func TestConvertWithoutChordsDefaultsToC(t *testing.T) {
	raw := "just some lyrics\nand another line"
	content, key := ConvertStacked(raw)
	assert.Equal(t, raw, content)
	assert.Equal(t, "C", key)
}

func TestDetectedKeyNormalization(t *testing.T) {
	assert := assert.New(t)

	_, key := ConvertStacked("G7\nla")
	assert.Equal("G", key)

	_, key = ConvertStacked("Dm7\nla")
	assert.Equal("Dm", key)

	_, key = ConvertStacked("Dmaj7\nla")
	assert.Equal("D", key)

	_, key = ConvertStacked("Cm7/Bb\nla")
	assert.Equal("Cm", key)
}
