package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// schema is applied at startup. The unique indexes on users.email and
// applications(job_id, candidate_id) are load-bearing: the service-level
// pre-checks are only fast paths, these constraints are the enforcement.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name    TEXT,
		last_name     TEXT,
		company       TEXT,
		role          TEXT NOT NULL CHECK (role IN ('admin', 'employer', 'candidate')),
		is_banned     BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		company_name TEXT NOT NULL,
		location     TEXT NOT NULL,
		job_type     TEXT NOT NULL,
		salary_min   NUMERIC,
		salary_max   NUMERIC,
		skills       TEXT[],
		created_by   TEXT NOT NULL REFERENCES users(id),
		job_status   TEXT NOT NULL DEFAULT 'Active' CHECK (job_status IN ('Active', 'Inactive')),
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id           TEXT PRIMARY KEY,
		job_id       TEXT NOT NULL REFERENCES jobs(id),
		candidate_id TEXT NOT NULL REFERENCES users(id),
		cover_letter TEXT,
		resume       TEXT,
		status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
		applied_at   TIMESTAMPTZ NOT NULL,
		UNIQUE (job_id, candidate_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_created_by ON jobs(created_by)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_candidate_id ON applications(candidate_id)`,
}

// Migrate ensures the schema exists. Statements are idempotent so repeated
// startups (and concurrent replicas) converge on the same schema.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
