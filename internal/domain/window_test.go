package domain_test

import (
	"testing"
	"time"

	"review_scraper/internal/domain"
)

func day(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWindow_Contains_SupportedFormats(t *testing.T) {
	w := domain.Window{Start: day("2024-01-01"), End: day("2024-12-31")}

	cases := []struct {
		raw  string
		want bool
	}{
		{"January 5, 2024", true},
		{"Jan 5, 2024", true},
		{"2024-01-05", true},
		// zero-padded days and surrounding whitespace still parse
		{"January 05, 2024", true},
		{"  Jan 5, 2024  ", true},
		// both window boundaries are inclusive
		{"January 1, 2024", true},
		{"December 31, 2024", true},
		{"March 3, 2023", false},
		{"Dec 31, 2023", false},
		{"2025-01-01", false},
	}
	for _, c := range cases {
		if got := w.Contains(c.raw); got != c.want {
			t.Errorf("Contains(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestWindow_Contains_FailOpen(t *testing.T) {
	w := domain.Window{Start: day("2024-01-01"), End: day("2024-12-31")}

	// Unparseable date text keeps the review regardless of the window.
	for _, raw := range []string{"not a date", "", "3 days ago", "05/01/2024", "2024年1月5日"} {
		if !w.Contains(raw) {
			t.Errorf("Contains(%q) = false, want true (fail open)", raw)
		}
	}
}

func TestParseDay(t *testing.T) {
	d, err := domain.ParseDay("2024-06-15")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.June || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}
	if _, err := domain.ParseDay("15-06-2024"); err == nil {
		t.Fatalf("expected error for non-ISO date")
	}
	if _, err := domain.ParseDay("2024-6-15"); err == nil {
		t.Fatalf("expected error for unpadded ISO date")
	}
}
