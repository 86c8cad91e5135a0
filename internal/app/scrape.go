package app

import (
	"context"
	"fmt"
	"time"

	"review_scraper/internal/domain"
)

// ScrapeService runs one scrape end to end: extract from the site, write the
// JSON snapshot, then archive and invalidate caches when a store is wired.
// Store and cache are optional; without them a run is snapshot-only.
type ScrapeService struct {
	extractors map[domain.Source]domain.SiteExtractor
	snapshots  domain.SnapshotWriter
	store      domain.ReviewStore
	cache      domain.Cache
}

func NewScrapeService(ex map[domain.Source]domain.SiteExtractor, w domain.SnapshotWriter, store domain.ReviewStore, cache domain.Cache) *ScrapeService {
	return &ScrapeService{extractors: ex, snapshots: w, store: store, cache: cache}
}

// RunSummary reports what one scrape produced.
type RunSummary struct {
	Reviews    int
	OutputFile string
}

func (s *ScrapeService) Run(ctx context.Context, company string, window domain.Window, source domain.Source) (RunSummary, error) {
	ex, ok := s.extractors[source]
	if !ok {
		return RunSummary{}, fmt.Errorf("no extractor configured for source %q", source)
	}

	started := time.Now().UTC()
	reviews, err := ex.Scrape(ctx, company, window)
	if err != nil {
		// Only resolution failures and cancellation; pagination ending
		// early is a normal return with the reviews gathered so far.
		return RunSummary{}, err
	}

	// The snapshot is written even for an empty run.
	path, err := s.snapshots.Write(company, source, reviews)
	if err != nil {
		return RunSummary{}, err
	}

	if s.store != nil {
		if len(reviews) > 0 {
			if err := s.store.UpsertReviews(ctx, reviews); err != nil {
				// IMPORTANT: do not swallow this; surface so we know inserts failed
				return RunSummary{}, fmt.Errorf("archive reviews for %q: %w", company, err)
			}
		}
		run := domain.ScrapeRun{
			Company:    company,
			Source:     source,
			Reviews:    len(reviews),
			OutputFile: path,
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
		}
		if err := s.store.RecordRun(ctx, run); err != nil {
			return RunSummary{}, fmt.Errorf("record run for %q: %w", company, err)
		}
		// Archive changed: evict the read-path caches so the API does not
		// keep serving a pre-scrape snapshot.
		if s.cache != nil {
			s.invalidateReviews(ctx, company, source)
			s.invalidateRuns(ctx)
		}
	}

	return RunSummary{Reviews: len(reviews), OutputFile: path}, nil
}

// invalidate the most common review cache variants
func (s *ScrapeService) invalidateReviews(ctx context.Context, company string, source domain.Source) {
	// The API default is limit=50. Invalidate that first, plus a couple more
	// common limits, for both the scraped source and the all-sources view.
	for _, lim := range []int{50, 100, 200} {
		_ = s.cache.Del(ctx, reviewsKey(company, source, lim))
		_ = s.cache.Del(ctx, reviewsKey(company, "", lim))
	}
}

func (s *ScrapeService) invalidateRuns(ctx context.Context) {
	for _, lim := range []int{50, 100, 200} {
		_ = s.cache.Del(ctx, runsKey(lim))
	}
}
