package mysql

import (
	"context"
	"database/sql"
	"strings"

	"review_scraper/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertReviews(ctx context.Context, rs []domain.Review) error {
	if len(rs) == 0 {
		return nil
	}
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*8) // 8 params per row (includes fingerprint)
	for _, rv := range rs {
		// Columns (from insertReviewsPrefix):
		// (fingerprint, title, review_date, rating, reviewer_name, review_text, source, company)
		values = append(values, "(?,?,?,?,?,?,?,?)")
		args = append(args,
			rv.Fingerprint(),
			rv.Title,
			rv.Date,
			rv.Rating,
			rv.ReviewerName,
			rv.ReviewText,
			string(rv.Source),
			rv.Company,
		)
	}
	sqlStr := insertReviewsPrefix + strings.Join(values, ",") + insertReviewsOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) RecordRun(ctx context.Context, run domain.ScrapeRun) error {
	_, err := r.db.ExecContext(ctx, insertRunSQL,
		run.Company,
		string(run.Source),
		run.Reviews,
		run.OutputFile,
		run.StartedAt,
		run.FinishedAt,
	)
	return err
}

// ListReviews returns the archived reviews for a company, newest first. An
// empty source means all sources.
func (r *Repo) ListReviews(ctx context.Context, company string, source domain.Source, limit int) (domain.ReviewsPage, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if source == "" {
		rows, err = r.db.QueryContext(ctx, listReviewsSQL, company, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, listReviewsBySourceSQL, company, string(source), limit)
	}
	if err != nil {
		return domain.ReviewsPage{}, err
	}
	defer rows.Close()

	out := make([]domain.Review, 0, limit)
	for rows.Next() {
		var rv domain.Review
		var src string
		if err := rows.Scan(
			&rv.Title,
			&rv.Date,
			&rv.Rating,
			&rv.ReviewerName,
			&rv.ReviewText,
			&src,
			&rv.Company,
		); err != nil {
			return domain.ReviewsPage{}, err
		}
		rv.Source = domain.Source(src)
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return domain.ReviewsPage{}, err
	}
	return domain.ReviewsPage{Items: out}, nil
}

func (r *Repo) ListRuns(ctx context.Context, limit int) ([]domain.ScrapeRun, error) {
	rows, err := r.db.QueryContext(ctx, listRunsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ScrapeRun, 0, limit)
	for rows.Next() {
		var run domain.ScrapeRun
		var src string
		if err := rows.Scan(
			&run.ID,
			&run.Company,
			&src,
			&run.Reviews,
			&run.OutputFile,
			&run.StartedAt,
			&run.FinishedAt,
		); err != nil {
			return nil, err
		}
		run.Source = domain.Source(src)
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
