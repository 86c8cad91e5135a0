package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"review_scraper/internal/adapters/fetch"
	"review_scraper/internal/adapters/jsonout"
	"review_scraper/internal/adapters/observability"
	redisad "review_scraper/internal/adapters/redis"
	"review_scraper/internal/adapters/sites"
	"review_scraper/internal/app"
	"review_scraper/internal/domain"
	"review_scraper/internal/shared"
	mysqlrepo "review_scraper/internal/storage/mysql"
)

func main() {
	// Usage errors go straight to stderr, before any logging is set up.
	a, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "scraper")
	observability.Serve()

	log.Info().
		Str("company", a.Company).
		Str("source", string(a.Source)).
		Str("from", a.Window.Start.Format("2006-01-02")).
		Str("to", a.Window.End.Format("2006-01-02")).
		Msg("scraper starting")

	// The archive is optional: without MYSQL_DSN a run only writes the
	// JSON snapshot.
	var store domain.ReviewStore
	var cache domain.Cache
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		defer db.Close()
		log.Info().Msg("db ping ok")
		store = mysqlrepo.New(db)

		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	client := fetch.New(cfg.ScrapeRPS)
	svc := app.NewScrapeService(sites.All(client), jsonout.New(cfg.SnapshotDir), store, cache)

	sum, err := svc.Run(ctx, a.Company, a.Window, a.Source)
	if err != nil {
		log.Fatal().Err(err).Msg("scrape failed")
	}
	log.Info().Int("reviews", sum.Reviews).Str("file", sum.OutputFile).Msg("scrape completed")
}
