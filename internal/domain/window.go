package domain

import (
	"strings"
	"time"
)

// dayLayout is the CLI date format (ISO year-month-day).
const dayLayout = "2006-01-02"

// reviewDateLayouts are the on-page date formats we recognize, tried in
// order. Sites render dates as "January 5, 2024", "Jan 5, 2024" or ISO.
var reviewDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	dayLayout,
}

// ParseDay parses a YYYY-MM-DD date as given on the command line.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(dayLayout, strings.TrimSpace(s))
}

// Window is the inclusive [Start, End] date range a scrape filters against.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the raw date text from a review card falls inside
// the window. Text matching none of the known layouts keeps the review (fail
// open): an unparseable date is not evidence that the review is out of range,
// so it must not be dropped.
func (w Window) Contains(raw string) bool {
	raw = strings.TrimSpace(raw)
	for _, layout := range reviewDateLayouts {
		d, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return !d.Before(w.Start) && !d.After(w.End)
	}
	return true
}
