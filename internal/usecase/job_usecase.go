package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	notifier domain.Notifier
}

func NewJobUsecase(jobRepo domain.JobRepository, notifier domain.Notifier) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, notifier: notifier}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	if err := validateSalaryRange(job); err != nil {
		return err
	}

	job.ID = uuid.NewString()
	job.CreatedBy = userID
	if job.JobStatus == "" {
		job.JobStatus = domain.JobStatusActive
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}

	u.notifier.NotifyRole(domain.RoleCandidate, domain.Event{
		Name: domain.EventJobPosted,
		Payload: map[string]string{
			"job_id":       job.ID,
			"title":        job.Title,
			"company_name": job.CompanyName,
			"location":     job.Location,
		},
	})

	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// ListActiveJobs returns active jobs only; inactive postings never appear
// in public listings regardless of filters.
func (u *jobUsecase) ListActiveJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchActive(ctx, filter, limit, offset)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchByCreator(ctx, userID, limit, offset)
}

// UpdateJob mutates a job after the ownership gate: existence is checked
// first (404), then ownership (403), uniformly with every other resource.
func (u *jobUsecase) UpdateJob(ctx context.Context, principal domain.Principal, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if !principal.Owns(existing.CreatedBy) {
		return apperror.Forbidden("Only the job owner or an admin can update this job")
	}

	if err := validateSalaryRange(job); err != nil {
		return err
	}
	if job.JobStatus != domain.JobStatusActive && job.JobStatus != domain.JobStatusInactive {
		return apperror.BadRequest("Job status must be Active or Inactive")
	}

	// Ownership and creation time never change on update
	job.CreatedBy = existing.CreatedBy
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// DeleteJob removes the job and cascades to its applications
func (u *jobUsecase) DeleteJob(ctx context.Context, principal domain.Principal, id string) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if !principal.Owns(existing.CreatedBy) {
		return apperror.Forbidden("Only the job owner or an admin can delete this job")
	}

	if err := u.jobRepo.DeleteWithApplications(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func validateSalaryRange(job *domain.Job) error {
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.Validation("Invalid salary range", []string{
			"Maximum salary: must be greater than or equal to Minimum salary",
		})
	}
	return nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
