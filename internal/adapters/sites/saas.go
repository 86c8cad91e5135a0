package sites

import (
	"fmt"
	"strings"

	"review_scraper/internal/domain"
)

// SaaS targets a generic review site whose listing URLs embed the lowercased
// company name directly, so resolution always succeeds. Field extraction is
// null-safe like the other sites: a card missing an element yields defaults
// instead of aborting the run.
func SaaS() Config {
	return Config{
		Source: domain.SourceSaaS,
		Resolve: func(company string) (string, error) {
			return strings.ToLower(company), nil
		},
		PageURL: func(product string, page int) string {
			return fmt.Sprintf("https://example-saas-reviews.com/%s/reviews?page=%d", product, page)
		},
		CardSel: ".review-card",
		Fields: Fields{
			Title:    Selector{Query: ".review-title"},
			Date:     Selector{Query: ".review-date"},
			Rating:   Selector{Query: ".review-rating", Attr: "data-score"},
			Reviewer: Selector{Query: ".reviewer-name"},
			Body:     Selector{Query: ".review-body"},
		},
	}
}
