package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the base zerolog Logger for a binary. Every event
// carries the service name so scraper and API logs can share a sink.
// APP_ENV=dev (or development) switches to a human-friendly console writer.
func NewLogger(env, service string) zerolog.Logger {
	l := zerolog.New(os.Stdout)
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return l.With().Timestamp().Str("service", service).Logger()
}
