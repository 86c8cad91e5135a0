package jsonout_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"review_scraper/internal/adapters/jsonout"
	"review_scraper/internal/domain"
)

func TestFilename(t *testing.T) {
	cases := []struct {
		company string
		source  domain.Source
		want    string
	}{
		{"Pulse", domain.SourceG2, "pulse_g2_reviews.json"},
		{"Acme Corp", domain.SourceCapterra, "acme_corp_capterra_reviews.json"},
		{"Two  Spaces", domain.SourceSaaS, "two__spaces_saas_reviews.json"},
	}
	for _, c := range cases {
		if got := jsonout.Filename(c.company, c.source); got != c.want {
			t.Errorf("Filename(%q, %s) = %q, want %q", c.company, c.source, got, c.want)
		}
	}
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := jsonout.New(dir)

	reviews := []domain.Review{
		{
			Title:        "Great <b>tool</b>",
			Date:         "January 5, 2024",
			Rating:       4.5,
			ReviewerName: "René",
			ReviewText:   "Fast & simple.",
			Source:       domain.SourceG2,
			Company:      "Pulse",
		},
	}
	path, err := w.Write("Pulse", domain.SourceG2, reviews)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "pulse_g2_reviews.json" {
		t.Fatalf("unexpected path: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	s := string(raw)

	// pretty-printed, two-space indent
	if !strings.HasPrefix(s, "[\n  {\n    \"title\"") {
		t.Fatalf("unexpected layout:\n%s", s)
	}
	// no HTML escaping, non-ASCII kept as-is
	if !strings.Contains(s, "Great <b>tool</b>") || !strings.Contains(s, "René") || !strings.Contains(s, "Fast & simple.") {
		t.Fatalf("content was escaped:\n%s", s)
	}
	// fixed key order
	last := -1
	for _, k := range []string{`"title"`, `"date"`, `"rating"`, `"reviewer_name"`, `"review_text"`, `"source"`, `"company"`} {
		i := strings.Index(s, k)
		if i < 0 || i < last {
			t.Fatalf("key %s missing or out of order:\n%s", k, s)
		}
		last = i
	}

	var back []domain.Review
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 1 || back[0] != reviews[0] {
		t.Fatalf("roundtrip mismatch: %+v", back)
	}
}

func TestWriter_WriteEmptyList(t *testing.T) {
	dir := t.TempDir()
	w := jsonout.New(dir)

	for _, reviews := range [][]domain.Review{nil, {}} {
		path, err := w.Write("Pulse", domain.SourceSaaS, reviews)
		if err != nil {
			t.Fatalf("write: %v", err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if got := strings.TrimSpace(string(raw)); got != "[]" {
			t.Fatalf("empty run should write [], got %q", got)
		}
	}
}

func TestWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := jsonout.New(dir)

	two := []domain.Review{{Title: "a"}, {Title: "b"}}
	if _, err := w.Write("Pulse", domain.SourceG2, two); err != nil {
		t.Fatalf("first write: %v", err)
	}
	one := []domain.Review{{Title: "c"}}
	path, err := w.Write("Pulse", domain.SourceG2, one)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var back []domain.Review
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 1 || back[0].Title != "c" {
		t.Fatalf("snapshot not replaced: %+v", back)
	}
}

func TestWriter_BadDirectory(t *testing.T) {
	w := jsonout.New(filepath.Join(t.TempDir(), "missing"))
	if _, err := w.Write("Pulse", domain.SourceG2, nil); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
