package domain

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// Source identifies which site a review was scraped from.
type Source string

const (
	SourceG2       Source = "g2"
	SourceCapterra Source = "capterra"
	SourceSaaS     Source = "saas"
)

// ParseSource accepts the CLI spelling of a source, case-insensitively.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case SourceG2:
		return SourceG2, nil
	case SourceCapterra:
		return SourceCapterra, nil
	case SourceSaaS:
		return SourceSaaS, nil
	}
	return "", fmt.Errorf("unknown source %q (want g2, capterra or saas)", s)
}

// Review is one scraped review. Every field is always set: extraction
// substitutes "" / 0.0 where a page is missing a piece, never omits the key.
// Date keeps the raw text as found on the page, not a normalized form.
type Review struct {
	Title        string  `json:"title"`
	Date         string  `json:"date"`
	Rating       float64 `json:"rating"`
	ReviewerName string  `json:"reviewer_name"`
	ReviewText   string  `json:"review_text"`
	Source       Source  `json:"source"`
	Company      string  `json:"company"`
}

// Fingerprint is a stable content hash used as the archive upsert key.
// Snapshots are written as-is; only the MySQL archive deduplicates.
func (r Review) Fingerprint() string {
	sig := strings.Join([]string{
		r.Title,
		r.Date,
		fmt.Sprintf("%.3f", r.Rating),
		r.ReviewerName,
		r.ReviewText,
		string(r.Source),
		r.Company,
	}, "|")
	sum := sha1.Sum([]byte(sig))
	return hex.EncodeToString(sum[:])
}
