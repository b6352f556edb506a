package lyrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmelo/cifrabot/internal/chords"
	"github.com/dmelo/cifrabot/internal/logger"
	"github.com/dmelo/cifrabot/internal/lyrics/parsers/cifraclub"
)

// ImportResult is what an import hands to the storage collaborator:
// canonical inline content plus the key detected from the first chord
// of the sheet.
type ImportResult struct {
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source"`
	Content     string    `json:"content"`
	DetectedKey string    `json:"detected_key"`
	ChordLines  int       `json:"chord_lines"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// countChordLines reports how many lines of the raw sheet classify as
// chord staffs. Zero is not an error — a lyric-only sheet converts
// fine — but callers may want to warn about it.
func countChordLines(raw string) int {
	count := 0
	for _, line := range strings.Split(raw, "\n") {
		if chords.IsChordLine(line) {
			count++
		}
	}
	return count
}

// Service turns an external chord sheet into canonical content. All
// musical understanding lives in the chords package; this service only
// picks the right scraper for the URL and feeds the converter.
type Service struct {
	cifraParser *cifraclub.Parser
}

func NewService() *Service {
	return &Service{cifraParser: cifraclub.NewParser()}
}

// Import scrapes a supported URL and converts the sheet.
func (s *Service) Import(ctx context.Context, url string) (*ImportResult, error) {
	if !strings.Contains(url, "cifraclub.com") {
		logger.Error(fmt.Sprintf("unsupported URL source: %s", url))
		return nil, fmt.Errorf("unsupported URL source: %s", url)
	}

	sheet, err := s.cifraParser.ExtractSheet(ctx, url)
	if err != nil {
		return nil, err
	}

	content, key := chords.ConvertStacked(sheet.RawText)
	logger.Debug(fmt.Sprintf("Import: converted %s (detected key %s, %d chars)", url, key, len(content)))

	return &ImportResult{
		URL:         url,
		Source:      "cifraclub.com.br",
		Content:     content,
		DetectedKey: key,
		ChordLines:  countChordLines(sheet.RawText),
		FetchedAt:   sheet.FetchedAt,
	}, nil
}

// ImportText converts stacked text that arrived by some other route
// (manual paste, file). A sheet without a single chord line still
// converts; it just comes back as lyric-only content in the default
// key.
func (s *Service) ImportText(raw string) *ImportResult {
	content, key := chords.ConvertStacked(raw)
	return &ImportResult{
		Source:      "text",
		Content:     content,
		DetectedKey: key,
		ChordLines:  countChordLines(raw),
		FetchedAt:   time.Now(),
	}
}
