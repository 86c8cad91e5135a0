package sites

import (
	"fmt"
	"strings"

	"review_scraper/internal/domain"
)

// capterraCatalog maps lowercased company names to Capterra product paths,
// the "{id}/{Name}" segment from the product URL. Operator-populated.
var capterraCatalog = map[string]string{
	"pulse": "12345/Pulse",
}

func Capterra() Config {
	return Config{
		Source: domain.SourceCapterra,
		Resolve: func(company string) (string, error) {
			path, ok := capterraCatalog[strings.ToLower(company)]
			if !ok {
				return "", fmt.Errorf("%w: no capterra path for %q", domain.ErrUnknownCompany, company)
			}
			return path, nil
		},
		PageURL: func(path string, page int) string {
			base := fmt.Sprintf("https://www.capterra.com/p/%s/reviews/", path)
			if page == 1 {
				return base
			}
			return fmt.Sprintf("%s?page=%d", base, page)
		},
		CardSel: "section.review-card",
		Fields: Fields{
			Title:    Selector{Query: "h3.review-card__title"},
			Date:     Selector{Query: "span.review-card__date"},
			Rating:   Selector{Query: "span.star-rating__rating"},
			Reviewer: Selector{Query: "span.review-card__reviewer-name"},
			Body:     Selector{Query: "p.review-card__review-text"},
		},
	}
}
