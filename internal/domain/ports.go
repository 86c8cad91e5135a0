package domain

import (
	"context"
	"time"
)

// SiteExtractor scrapes every listing page of one review site for a company,
// returning the reviews that pass the window filter in page-then-card order.
// Pagination ending early (non-success status, zero cards) is not an error;
// a scrape only fails on an unresolvable company or a canceled context.
type SiteExtractor interface {
	Source() Source
	Scrape(ctx context.Context, company string, window Window) ([]Review, error)
}

// SnapshotWriter persists one run's reviews as a JSON document and returns
// the path written.
type SnapshotWriter interface {
	Write(company string, source Source, reviews []Review) (string, error)
}

// ReviewStore is the optional archive behind the read API.
type ReviewStore interface {
	UpsertReviews(ctx context.Context, reviews []Review) error
	RecordRun(ctx context.Context, run ScrapeRun) error
	ListReviews(ctx context.Context, company string, source Source, limit int) (ReviewsPage, error)
	ListRuns(ctx context.Context, limit int) ([]ScrapeRun, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ScrapeRun records one completed scraper invocation.
type ScrapeRun struct {
	ID         int64     `json:"id"`
	Company    string    `json:"company"`
	Source     Source    `json:"source"`
	Reviews    int       `json:"reviews"`
	OutputFile string    `json:"output_file"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// ReviewsPage is the read model served by the API.
type ReviewsPage struct {
	Items []Review `json:"items"`
}
