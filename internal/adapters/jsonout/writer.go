// Package jsonout writes scraped reviews to pretty-printed JSON snapshots.
package jsonout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"review_scraper/internal/domain"
)

type Writer struct {
	dir string
}

func New(dir string) *Writer {
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir}
}

// Filename derives the snapshot name from company and source: the company is
// lowercased with spaces turned into underscores.
func Filename(company string, source domain.Source) string {
	slug := strings.ReplaceAll(strings.ToLower(company), " ", "_")
	return fmt.Sprintf("%s_%s_reviews.json", slug, source)
}

// Write serializes reviews to the snapshot file for company and source,
// replacing any previous snapshot. An empty run writes a JSON empty list.
// Returns the written path.
func (w *Writer) Write(company string, source domain.Source, reviews []domain.Review) (string, error) {
	if reviews == nil {
		reviews = []domain.Review{}
	}
	path := filepath.Join(w.dir, Filename(company, source))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reviews); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	log.Info().Int("reviews", len(reviews)).Str("file", path).Msg("snapshot written")
	return path, nil
}
