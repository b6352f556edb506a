package cifraclub

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dmelo/cifrabot/internal/logger"
)

// Parser extracts the stacked chord/lyric block from a cifra page. The
// sheet lives in a <pre> element with chords wrapped in <b> tags;
// flattening the element to text preserves the column alignment that
// the stacked format depends on.
type Parser struct {
	client *Client
}

func NewParser() *Parser {
	return &Parser{client: NewClient()}
}

// ExtractSheet fetches a cifra page and returns its raw stacked text.
func (p *Parser) ExtractSheet(ctx context.Context, url string) (*Sheet, error) {
	logger.Debug(fmt.Sprintf("ExtractSheet: fetching page %s", url))

	html, err := p.client.FetchPage(ctx, url)
	if err != nil {
		logger.Error(fmt.Sprintf("ExtractSheet: failed to fetch page %s\nError: %v", url, err))
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Error(fmt.Sprintf("ExtractSheet: failed to parse HTML for %s\nError: %v", url, err))
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	raw, err := SheetText(doc)
	if err != nil {
		logger.Error(fmt.Sprintf("ExtractSheet: %v for URL %s", err, url))
		return nil, err
	}

	logger.Success(fmt.Sprintf("ExtractSheet: extracted sheet for %s (length: %d chars)", url, len(raw)))

	return &Sheet{
		URL:       url,
		RawText:   raw,
		FetchedAt: time.Now(),
	}, nil
}

// SheetText pulls the stacked text out of an already-parsed cifra page.
// Tablature spans are dropped; they are guitar fingering, not part of
// the chord/lyric sheet.
func SheetText(doc *goquery.Document) (string, error) {
	selection := doc.Find(`div.cifra_cnt pre`)
	if selection.Length() == 0 {
		selection = doc.Find("pre")
	}
	if selection.Length() == 0 {
		return "", fmt.Errorf("could not find sheet element")
	}

	selection = selection.First()
	selection.Find("span.tablatura").Remove()

	return cleanSheetText(selection.Text()), nil
}
