package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"review_scraper/internal/domain"
)

type QueryService struct {
	store    domain.ReviewStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s domain.ReviewStore, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: s, cache: c, cacheTTL: ttl}
}

func reviewsKey(company string, source domain.Source, limit int) string {
	src := string(source)
	if src == "" {
		src = "all"
	}
	return fmt.Sprintf("reviews:%s:%s:%d", strings.ToLower(company), src, limit)
}

func runsKey(limit int) string {
	return fmt.Sprintf("runs:%d", limit)
}

// ListCompanyReviews serves the archived reviews for a company, newest first.
// An empty source means all sources.
func (s *QueryService) ListCompanyReviews(ctx context.Context, company string, source domain.Source, limit int) (domain.ReviewsPage, error) {
	key := reviewsKey(company, source, limit)
	var out domain.ReviewsPage
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	page, err := s.store.ListReviews(ctx, company, source, limit)
	if err != nil {
		return domain.ReviewsPage{}, err
	}

	// copy slice to avoid aliasing the repo's backing array (prevents tests from mutating cached value)
	copyPage := deepCopyReviewsPage(page)

	// optional size guard
	if b, _ := json.Marshal(copyPage); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, copyPage, int(s.cacheTTL.Seconds()))
	}
	return copyPage, nil
}

func (s *QueryService) ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error) {
	key := runsKey(limit)
	var out []domain.ScrapeRun
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	runs, err := s.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}

	copyRuns := make([]domain.ScrapeRun, len(runs))
	copy(copyRuns, runs)
	_ = s.cache.Set(ctx, key, copyRuns, int(s.cacheTTL.Seconds()))
	return copyRuns, nil
}

func deepCopyReviewsPage(in domain.ReviewsPage) domain.ReviewsPage {
	var out domain.ReviewsPage
	if in.Items != nil {
		out.Items = make([]domain.Review, len(in.Items))
		copy(out.Items, in.Items)
	}
	return out
}
