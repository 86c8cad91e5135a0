package main

import (
	"errors"

	"review_scraper/internal/domain"
)

const usage = `Usage: scraper <company_name> <start_date> <end_date> <source>
Example: scraper "Pulse" 2024-01-01 2024-12-31 g2`

type args struct {
	Company string
	Window  domain.Window
	Source  domain.Source
}

// parseArgs validates the four positional arguments. Anything wrong is a
// usage error; the caller prints it and exits non-zero.
func parseArgs(argv []string) (args, error) {
	if len(argv) != 4 {
		return args{}, errors.New(usage)
	}
	start, err := domain.ParseDay(argv[1])
	if err != nil {
		return args{}, errors.New("dates must be in YYYY-MM-DD format")
	}
	end, err := domain.ParseDay(argv[2])
	if err != nil {
		return args{}, errors.New("dates must be in YYYY-MM-DD format")
	}
	source, err := domain.ParseSource(argv[3])
	if err != nil {
		return args{}, err
	}
	return args{
		Company: argv[0],
		Window:  domain.Window{Start: start, End: end},
		Source:  source,
	}, nil
}
