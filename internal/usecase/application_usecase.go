package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	notifier        domain.Notifier
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	notifier domain.Notifier,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		notifier:        notifier,
	}
}

// ApplyToJob submits a candidate's application to an active job.
// The duplicate pre-check gives a friendly error on the common path; the
// unique index on (job_id, candidate_id) is what actually guarantees at
// most one application per pair under concurrent submissions.
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, candidateID, jobID string, coverLetter, resume string) (*domain.Application, error) {
	// 1. Job must exist and be active at submission time
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.JobStatus != domain.JobStatusActive {
		return nil, apperror.BadRequest("Cannot apply to an inactive job")
	}

	// 2. Fast duplicate check
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	// 3. Create; a lost race surfaces as the same conflict from the repo
	toPtr := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: toPtr(coverLetter),
		Resume:      toPtr(resume),
		Status:      domain.ApplicationStatusPending,
		AppliedAt:   time.Now(),
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.Internal(err)
	}

	uc.notifier.NotifyUser(job.CreatedBy, domain.Event{
		Name: domain.EventApplicationNew,
		Payload: map[string]string{
			"application_id": app.ID,
			"job_id":         job.ID,
			"job_title":      job.Title,
			"candidate_id":   candidateID,
		},
	})

	return app, nil
}

// GetMyApplications returns all applications the candidate has submitted
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, candidateID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.GetByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListByJobID returns a job's applications for its owner or an admin.
// Ownership is transitive through the job: existence first (404), then
// the ownership comparison (403).
func (uc *applicationUsecase) ListByJobID(ctx context.Context, principal domain.Principal, jobID string) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !principal.Owns(job.CreatedBy) {
		return nil, apperror.Forbidden("Only the job owner or an admin can view its applications")
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateApplicationStatus moves a pending application to accepted/rejected
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, principal domain.Principal, applicationID, status string) (*domain.Application, error) {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return nil, apperror.BadRequest("Status must be accepted or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !principal.Owns(job.CreatedBy) {
		return nil, apperror.Forbidden("Only the job owner or an admin can update application status")
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	app.Status = status

	uc.notifier.NotifyUser(app.CandidateID, domain.Event{
		Name: domain.EventApplicationStatus,
		Payload: map[string]string{
			"application_id": app.ID,
			"job_id":         app.JobID,
			"status":         status,
		},
	})

	return app, nil
}

// WithdrawApplication deletes an application for its owning candidate or
// an admin
func (uc *applicationUsecase) WithdrawApplication(ctx context.Context, principal domain.Principal, applicationID string) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if !principal.Owns(app.CandidateID) {
		return apperror.Forbidden("Only the applicant or an admin can withdraw this application")
	}

	if err := uc.applicationRepo.Delete(ctx, applicationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
