package mysql

// Rows are keyed by the review fingerprint, so a re-scrape of identical
// content only bumps last_seen_at. Any field change hashes to a new row.
const insertReviewsPrefix = "INSERT INTO reviews\n  (fingerprint, title, review_date, rating, reviewer_name, review_text, source, company)\nVALUES "

const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  last_seen_at = CURRENT_TIMESTAMP\n"

const insertRunSQL = `
INSERT INTO scrape_runs
  (company, source, review_count, output_file, started_at, finished_at)
VALUES
  (?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Newest archived first; id breaks ties within one upsert batch.
const listReviewsSQL = `
SELECT
  title,
  review_date,
  rating,
  reviewer_name,
  review_text,
  source,
  company
FROM reviews
WHERE company = ?
ORDER BY last_seen_at DESC, id DESC
LIMIT ?
`

const listReviewsBySourceSQL = `
SELECT
  title,
  review_date,
  rating,
  reviewer_name,
  review_text,
  source,
  company
FROM reviews
WHERE company = ? AND source = ?
ORDER BY last_seen_at DESC, id DESC
LIMIT ?
`

const listRunsSQL = `
SELECT
  id,
  company,
  source,
  review_count,
  output_file,
  started_at,
  finished_at
FROM scrape_runs
ORDER BY finished_at DESC, id DESC
LIMIT ?
`
