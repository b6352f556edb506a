package cifraclub

import "time"

// Sheet is the raw stacked chord/lyric text extracted from one cifra
// page. Only this text crosses into the chord engine; everything about
// the page markup stays in this package.
type Sheet struct {
	URL       string    `json:"url"`
	RawText   string    `json:"raw_text"`
	FetchedAt time.Time `json:"fetched_at"`
}
