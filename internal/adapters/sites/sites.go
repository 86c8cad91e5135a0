// Package sites extracts reviews from the paginated listings of supported
// review sites. Each site is described by a Config; a single Extractor walks
// any configured site, so per-site code is data rather than control flow.
package sites

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"review_scraper/internal/adapters/observability"
	"review_scraper/internal/domain"
)

// Fetcher fetches one listing page. Satisfied by fetch.Client.
type Fetcher interface {
	Get(ctx context.Context, service, url string) ([]byte, error)
}

// Selector locates one field inside a review card. When Attr is set the
// value comes from that attribute, otherwise from the element text.
type Selector struct {
	Query string
	Attr  string
}

// Fields maps the fixed review schema onto site-specific selectors.
type Fields struct {
	Title    Selector
	Date     Selector
	Rating   Selector
	Reviewer Selector
	Body     Selector
}

// Config describes one review site: how a company resolves to the site's
// product identifier, how listing URLs are built, and where fields live
// inside a card.
type Config struct {
	Source  domain.Source
	Resolve func(company string) (string, error)
	PageURL func(product string, page int) string
	CardSel string
	Fields  Fields
}

// Extractor walks a site's paginated review listing for one company.
type Extractor struct {
	cfg Config
	fc  Fetcher
}

func New(cfg Config, fc Fetcher) *Extractor {
	return &Extractor{cfg: cfg, fc: fc}
}

// All builds an extractor for every supported site.
func All(fc Fetcher) map[domain.Source]domain.SiteExtractor {
	return map[domain.Source]domain.SiteExtractor{
		domain.SourceG2:       New(G2(), fc),
		domain.SourceCapterra: New(Capterra(), fc),
		domain.SourceSaaS:     New(SaaS(), fc),
	}
}

func (e *Extractor) Source() domain.Source { return e.cfg.Source }

// Scrape fetches listing pages in order, starting at page 1, until a page
// fails to fetch or yields no review cards. Fetch failures and non-200
// statuses end pagination normally; reviews gathered so far are returned.
// Only a missing company mapping or a canceled context is an error.
func (e *Extractor) Scrape(ctx context.Context, company string, window domain.Window) ([]domain.Review, error) {
	product, err := e.cfg.Resolve(company)
	if err != nil {
		return nil, err
	}

	src := string(e.cfg.Source)
	reviews := make([]domain.Review, 0)
	for page := 1; ; page++ {
		url := e.cfg.PageURL(product, page)
		log.Info().Str("source", src).Int("page", page).Str("url", url).Msg("fetching listing page")

		body, err := e.fc.Get(ctx, src, url)
		if err != nil {
			if ctx.Err() != nil {
				return reviews, ctx.Err()
			}
			log.Debug().Err(err).Str("source", src).Int("page", page).Msg("pagination stopped")
			break
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			log.Debug().Err(err).Str("source", src).Int("page", page).Msg("unparseable page, stopping")
			break
		}
		cards := doc.Find(e.cfg.CardSel)
		if cards.Length() == 0 {
			break
		}

		kept := 0
		cards.Each(func(_ int, card *goquery.Selection) {
			r := e.extract(card, company)
			if !window.Contains(r.Date) {
				return
			}
			reviews = append(reviews, r)
			kept++
		})
		observability.ObserveScraped(src, kept, cards.Length()-kept)
	}

	log.Info().Str("source", src).Str("company", company).Int("reviews", len(reviews)).Msg("scrape finished")
	return reviews, nil
}

// extract reads one card. Absent elements yield zero values, never an error.
func (e *Extractor) extract(card *goquery.Selection, company string) domain.Review {
	f := e.cfg.Fields
	return domain.Review{
		Title:        fieldText(card, f.Title),
		Date:         fieldText(card, f.Date),
		Rating:       parseRating(fieldText(card, f.Rating)),
		ReviewerName: fieldText(card, f.Reviewer),
		ReviewText:   fieldText(card, f.Body),
		Source:       e.cfg.Source,
		Company:      company,
	}
}

func fieldText(card *goquery.Selection, sel Selector) string {
	if sel.Query == "" {
		return ""
	}
	el := card.Find(sel.Query).First()
	if sel.Attr != "" {
		return strings.TrimSpace(el.AttrOr(sel.Attr, ""))
	}
	return collapseSpace(el.Text())
}

// collapseSpace trims and squashes whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseRating converts rating text to a float, accepting a decimal comma.
// Anything unparseable becomes 0.0.
func parseRating(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0
	}
	return f
}
