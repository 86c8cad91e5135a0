package sites

import (
	"fmt"
	"strings"

	"review_scraper/internal/domain"
)

// g2Catalog maps lowercased company names to G2 product slugs. Operators add
// entries here when wiring up a new company; there is no remote lookup.
var g2Catalog = map[string]string{
	"pulse": "pulse",
}

func G2() Config {
	return Config{
		Source: domain.SourceG2,
		Resolve: func(company string) (string, error) {
			slug, ok := g2Catalog[strings.ToLower(company)]
			if !ok {
				return "", fmt.Errorf("%w: no g2 slug for %q", domain.ErrUnknownCompany, company)
			}
			return slug, nil
		},
		PageURL: func(slug string, page int) string {
			return fmt.Sprintf("https://www.g2.com/products/%s/reviews?page=%d", slug, page)
		},
		CardSel: ".paper.paper--white.paper--box",
		Fields: Fields{
			Title:    Selector{Query: "h3"},
			Date:     Selector{Query: "time"},
			Rating:   Selector{Query: `meta[itemprop="ratingValue"]`, Attr: "content"},
			Reviewer: Selector{Query: "a.link--header-color"},
			Body:     Selector{Query: `div[itemprop="reviewBody"]`},
		},
	}
}
