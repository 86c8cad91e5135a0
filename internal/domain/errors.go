package domain

import "errors"

// ErrUnknownCompany means the operator has not mapped the company to a
// product identifier for the requested site. It is a configuration gap, not
// a network fault: the run aborts instead of scraping the wrong page.
var ErrUnknownCompany = errors.New("no product mapping for company")
