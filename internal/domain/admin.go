package domain

import "context"

// AdminStats summarizes portal-wide counts for the admin dashboard
type AdminStats struct {
	TotalUsers  int64 `json:"total_users"`
	UsersByRole struct {
		Admin     int64 `json:"admin"`
		Employer  int64 `json:"employer"`
		Candidate int64 `json:"candidate"`
	} `json:"users_by_role"`
	TotalJobs         int64 `json:"total_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	TotalApplications int64 `json:"total_applications"`
	ApplicationsByStatus struct {
		Pending  int64 `json:"pending"`
		Accepted int64 `json:"accepted"`
		Rejected int64 `json:"rejected"`
	} `json:"applications_by_status"`
}

// PaginatedResult is a generic wrapper for paginated list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
}

type AdminUsecase interface {
	GetStats(ctx context.Context, principal Principal) (*AdminStats, error)
	ListUsers(ctx context.Context, principal Principal, role string, page, pageSize int) (*PaginatedResult[User], error)
	SetUserBanned(ctx context.Context, principal Principal, userID string, banned bool) (*User, error)
	DeleteUser(ctx context.Context, principal Principal, userID string) error
}
