package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "github.com/artem13815/skillstat/pkg/errors"
	"github.com/artem13815/skillstat/pkg/job"
)

// JobRepository хранит вакансии в таблице job_postings.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	r := &JobRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_postings (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	company TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_job_postings_created ON job_postings(created_at);
`)
	return err
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, COALESCE(title, ''), COALESCE(description, ''), COALESCE(company, ''), COALESCE(location, '')
FROM job_postings
ORDER BY created_at, id
`)
	if err != nil {
		return nil, apperrors.Unavailable("query job_postings", err)
	}
	defer rows.Close()

	res := []job.Job{}
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Company, &j.Location); err != nil {
			return nil, apperrors.Internal("scan job_postings row", err)
		}
		res = append(res, j)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Unavailable("iterate job_postings", err)
	}
	return res, nil
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Seed inserts jobs, skipping ids that already exist. Returns the number inserted.
func (r *JobRepository) Seed(ctx context.Context, jobs []job.Job) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	inserted := 0
	for i, j := range jobs {
		if j.ID == uuid.Nil {
			j.ID = j.DerivedID()
		}
		// keep file order stable under ORDER BY created_at
		created := now.Add(time.Duration(i) * time.Microsecond)
		cmd, err := tx.Exec(ctx, `
INSERT INTO job_postings (id, title, description, company, location, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING
`, j.ID, strings.TrimSpace(j.Title), j.Description, strings.TrimSpace(j.Company), strings.TrimSpace(j.Location), created)
		if err != nil {
			return 0, err
		}
		inserted += int(cmd.RowsAffected())
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}
