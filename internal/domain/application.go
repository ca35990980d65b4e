package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application represents a job application from a candidate.
// At most one application exists per (JobID, CandidateID) pair.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	Resume      *string   `json:"resume,omitempty"`
	Status      string    `json:"status"` // pending, accepted or rejected
	AppliedAt   time.Time `json:"applied_at"`

	// Joined data for list responses
	JobTitle       *string `json:"job_title,omitempty"`
	CandidateEmail *string `json:"candidate_email,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	GetByCandidateID(ctx context.Context, candidateID string) ([]Application, error)
	CheckExists(ctx context.Context, jobID, candidateID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type ApplicationUsecase interface {
	// Candidate operations
	ApplyToJob(ctx context.Context, candidateID, jobID string, coverLetter, resume string) (*Application, error)
	GetMyApplications(ctx context.Context, candidateID string) ([]Application, error)
	WithdrawApplication(ctx context.Context, principal Principal, applicationID string) error

	// Employer operations
	ListByJobID(ctx context.Context, principal Principal, jobID string) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, principal Principal, applicationID, status string) (*Application, error)
}
