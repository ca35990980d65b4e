package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, description, company_name, location, job_type,
	salary_min, salary_max, skills, created_by, job_status, created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (id, title, description, company_name, location, job_type,
			salary_min, salary_max, skills, created_by, job_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.JobStatus == "" {
		job.JobStatus = domain.JobStatusActive
	}

	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.CompanyName, job.Location, job.JobType,
		job.SalaryMin, job.SalaryMax, job.Skills, job.CreatedBy, job.JobStatus,
		job.CreatedAt, job.UpdatedAt,
	)
	return err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Description, &job.CompanyName, &job.Location, &job.JobType,
		&job.SalaryMin, &job.SalaryMax, &job.Skills, &job.CreatedBy, &job.JobStatus,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchActive lists active jobs with optional substring filters
func (r *jobRepo) FetchActive(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where := `WHERE job_status = 'Active'
		AND ($1 = '' OR title ILIKE '%' || $1 || '%')
		AND ($2 = '' OR location ILIKE '%' || $2 || '%')
		AND ($3 = '' OR job_type ILIKE '%' || $3 || '%')
		AND ($4 = '' OR EXISTS (SELECT 1 FROM unnest(skills) s WHERE s ILIKE '%' || $4 || '%'))`

	query := `SELECT ` + jobColumns + ` FROM jobs ` + where + `
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6`

	rows, err := r.db.Query(ctx, query,
		filter.Title, filter.Location, filter.JobType, filter.Skill, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs ` + where
	if err := r.db.QueryRow(ctx, countQuery,
		filter.Title, filter.Location, filter.JobType, filter.Skill).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchByCreator(ctx context.Context, userID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE created_by = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.CompanyName, &job.Location, &job.JobType,
			&job.SalaryMin, &job.SalaryMax, &job.Skills, &job.CreatedBy, &job.JobStatus,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2, description = $3, company_name = $4, location = $5, job_type = $6,
		salary_min = $7, salary_max = $8, skills = $9, job_status = $10, updated_at = $11
		WHERE id = $1`

	job.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.CompanyName, job.Location, job.JobType,
		job.SalaryMin, job.SalaryMax, job.Skills, job.JobStatus, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteWithApplications removes the job and its applications atomically,
// applications first so no orphaned reference can survive a partial failure.
func (r *jobRepo) DeleteWithApplications(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
