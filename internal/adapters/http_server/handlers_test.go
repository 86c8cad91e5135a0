package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "review_scraper/internal/adapters/http_server"
	"review_scraper/internal/app"
	"review_scraper/internal/domain"
)

type stubStore struct {
	page domain.ReviewsPage
	runs []domain.ScrapeRun
}

func (s *stubStore) UpsertReviews(ctx context.Context, rs []domain.Review) error { return nil }
func (s *stubStore) RecordRun(ctx context.Context, run domain.ScrapeRun) error   { return nil }
func (s *stubStore) ListReviews(ctx context.Context, company string, source domain.Source, limit int) (domain.ReviewsPage, error) {
	return s.page, nil
}
func (s *stubStore) ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error) {
	return s.runs, nil
}

// noopCache always misses; the handler tests only care about HTTP behavior.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dst any) (bool, error)   { return false, nil }
func (noopCache) Set(ctx context.Context, key string, v any, ttlSec int) error { return nil }
func (noopCache) Del(ctx context.Context, key string) error                    { return nil }

func newTestServer(store *stubStore) *httptest.Server {
	q := app.NewQueryService(store, noopCache{}, time.Minute)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: q})
	return httptest.NewServer(srv.Mux())
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(&stubStore{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestListReviews_OKAndETag(t *testing.T) {
	store := &stubStore{page: domain.ReviewsPage{Items: []domain.Review{
		{Title: "Great for standups", Date: "January 5, 2024", Rating: 4.5, Source: domain.SourceG2, Company: "Pulse"},
	}}}
	ts := newTestServer(store)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/companies/Pulse/reviews?source=g2")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
	etag := res.Header.Get("ETag")
	if !strings.HasPrefix(etag, `W/"`) {
		t.Fatalf("missing weak etag, got %q", etag)
	}

	var body domain.ReviewsPage
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].Title != "Great for standups" {
		t.Fatalf("unexpected body: %+v", body)
	}

	// Replaying with If-None-Match short-circuits to 304.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/companies/Pulse/reviews?source=g2", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("status %d, want 304", res2.StatusCode)
	}
}

func TestListReviews_BadParams(t *testing.T) {
	ts := newTestServer(&stubStore{})
	defer ts.Close()

	cases := []string{
		"/v1/companies/Pulse/reviews?source=trustradius",
		"/v1/companies/Pulse/reviews?limit=0",
		"/v1/companies/Pulse/reviews?limit=201",
		"/v1/companies/Pulse/reviews?limit=abc",
	}
	for _, path := range cases {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if res.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", path, res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
			t.Errorf("%s: content type %q", path, ct)
		}
		res.Body.Close()
	}
}

func TestListRuns(t *testing.T) {
	store := &stubStore{runs: []domain.ScrapeRun{
		{ID: 7, Company: "Pulse", Source: domain.SourceG2, Reviews: 3, OutputFile: "pulse_g2_reviews.json"},
	}}
	ts := newTestServer(store)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/runs")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var runs []domain.ScrapeRun
	if err := json.NewDecoder(res.Body).Decode(&runs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != 7 || runs[0].OutputFile != "pulse_g2_reviews.json" {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}

func TestListRuns_EmptyIsJSONArray(t *testing.T) {
	ts := newTestServer(&stubStore{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/runs")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Fatalf("empty runs should serialize as [], got %q", raw)
	}
}
