package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique index on (job_id, candidate_id)
// is the real duplicate guard; a 23505 here means a concurrent request won the
// race past the usecase pre-check, and is reported as the same conflict.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (id, job_id, candidate_id, cover_letter, resume, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.CandidateID,
		app.CoverLetter, app.Resume, app.Status, app.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this job")
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.resume, a.status, a.applied_at,
			j.title AS job_title, u.email AS candidate_email
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN users u ON a.candidate_id = u.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Resume,
		&app.Status, &app.AppliedAt, &app.JobTitle, &app.CandidateEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job with candidate emails joined
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.resume, a.status, a.applied_at,
			j.title AS job_title, u.email AS candidate_email
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN users u ON a.candidate_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

// GetByCandidateID retrieves all applications a candidate has submitted
func (r *applicationRepo) GetByCandidateID(ctx context.Context, candidateID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.resume, a.status, a.applied_at,
			j.title AS job_title, u.email AS candidate_email
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN users u ON a.candidate_id = u.id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Resume,
			&app.Status, &app.AppliedAt, &app.JobTitle, &app.CandidateEmail,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// CheckExists checks if an application already exists for the job/candidate pair
func (r *applicationRepo) CheckExists(ctx context.Context, jobID, candidateID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
