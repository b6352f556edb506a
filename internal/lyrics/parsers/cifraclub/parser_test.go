package cifraclub

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
)

const samplePage = `<html><body>
<div class="cifra_cnt">
<pre><b>G</b>       <b>D</b>
Amazing grace
<span class="tablatura">e|--3--2--0--|</span>
how sweet the sound</pre>
</div>
</body></html>`

func TestSheetTextExtractsStackedBlock(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(samplePage))
	assert.NoError(t, err)

	raw, err := SheetText(doc)
	assert.NoError(t, err)
	assert.Equal(t, "G       D\nAmazing grace\n\nhow sweet the sound", raw)
}

func TestSheetTextWithoutPre(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	assert.NoError(t, err)

	_, err = SheetText(doc)
	assert.Error(t, err)
}

func TestCleanSheetText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("a\nb", cleanSheetText("a\r\nb\n"))
	assert.Equal("a\n\nb", cleanSheetText("a\n\n\n\nb"))
	assert.Equal("C  G", cleanSheetText("C  G"))
	assert.Equal("C\nla", cleanSheetText("C   \nla"))
}
