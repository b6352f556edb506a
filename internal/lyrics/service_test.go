package lyrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportTextConvertsSheet(t *testing.T) {
	assert := assert.New(t)

	result := NewService().ImportText("G7      D\nAmazing grace")
	assert.Equal("[G7]Amazing [D]grace", result.Content)
	assert.Equal("G", result.DetectedKey)
	assert.Equal(1, result.ChordLines)
	assert.Equal("text", result.Source)
}

func TestImportTextWithoutChords(t *testing.T) {
	assert := assert.New(t)

	result := NewService().ImportText("só letra\nmais letra")
	assert.Equal("só letra\nmais letra", result.Content)
	assert.Equal("C", result.DetectedKey)
	assert.Equal(0, result.ChordLines)
}

func TestImportRejectsUnknownSource(t *testing.T) {
	_, err := NewService().Import(context.Background(), "https://example.com/some-song")
	assert.Error(t, err)
}
