package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job statuses
const (
	JobStatusActive   = "Active"
	JobStatusInactive = "Inactive"
)

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CompanyName string    `json:"company_name"`
	Location    string    `json:"location"`
	JobType     string    `json:"job_type"`
	SalaryMin   *float64  `json:"salary_min,omitempty"`
	SalaryMax   *float64  `json:"salary_max,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	CreatedBy   string    `json:"created_by"`
	JobStatus   string    `json:"job_status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobFilter narrows public listings by substring match
type JobFilter struct {
	Title    string
	Location string
	JobType  string
	Skill    string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	FetchActive(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	FetchByCreator(ctx context.Context, userID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	// DeleteWithApplications removes the job and every application
	// referencing it in a single transaction, applications first.
	DeleteWithApplications(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id string) (*Job, error)
	ListActiveJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, int64, error)
	ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, principal Principal, job *Job) error
	DeleteJob(ctx context.Context, principal Principal, id string) error
}
