package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// GetStats fetches dashboard statistics in one round trip
func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{}

	query := `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM users WHERE role = 'admin'),
		(SELECT COUNT(*) FROM users WHERE role = 'employer'),
		(SELECT COUNT(*) FROM users WHERE role = 'candidate'),
		(SELECT COUNT(*) FROM jobs),
		(SELECT COUNT(*) FROM jobs WHERE job_status = 'Active'),
		(SELECT COUNT(*) FROM applications),
		(SELECT COUNT(*) FROM applications WHERE status = 'pending'),
		(SELECT COUNT(*) FROM applications WHERE status = 'accepted'),
		(SELECT COUNT(*) FROM applications WHERE status = 'rejected')`

	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.UsersByRole.Admin,
		&stats.UsersByRole.Employer,
		&stats.UsersByRole.Candidate,
		&stats.TotalJobs,
		&stats.ActiveJobs,
		&stats.TotalApplications,
		&stats.ApplicationsByStatus.Pending,
		&stats.ApplicationsByStatus.Accepted,
		&stats.ApplicationsByStatus.Rejected,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
