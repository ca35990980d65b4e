package usecase

import (
	"context"
	"errors"
	"math"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
	notifier  domain.Notifier
}

func NewAdminUsecase(adminRepo domain.AdminRepository, userRepo domain.UserRepository, notifier domain.Notifier) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, userRepo: userRepo, notifier: notifier}
}

func requireAdmin(principal domain.Principal) error {
	if !principal.IsAdmin() {
		return apperror.Forbidden("Admin role required")
	}
	return nil
}

// GetStats returns dashboard statistics
func (u *adminUsecase) GetStats(ctx context.Context, principal domain.Principal) (*domain.AdminStats, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

// ListUsers returns paginated users, optionally filtered by role
func (u *adminUsecase) ListUsers(ctx context.Context, principal domain.Principal, role string, page, pageSize int) (*domain.PaginatedResult[domain.User], error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	if role != "" && role != domain.RoleAdmin && role != domain.RoleEmployer && role != domain.RoleCandidate {
		return nil, apperror.BadRequest("Role filter must be admin, employer or candidate")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	users, total, err := u.userRepo.List(ctx, role, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.PaginatedResult[domain.User]{
		Data:       users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// SetUserBanned bans or unbans a user. Admin accounts cannot be banned.
// Banning has no cascade: the user's jobs and applications remain, but
// every further authenticated call (and any live socket) is cut off.
func (u *adminUsecase) SetUserBanned(ctx context.Context, principal domain.Principal, userID string, banned bool) (*domain.User, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	target, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if banned && target.Role == domain.RoleAdmin {
		return nil, apperror.BadRequest("Cannot ban admin")
	}

	if err := u.userRepo.SetBanned(ctx, userID, banned); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	target.IsBanned = banned

	if banned {
		u.notifier.NotifyUser(userID, domain.Event{
			Name:    domain.EventUserBanned,
			Payload: map[string]string{"user_id": userID, "email": target.Email},
		})
		u.notifier.DisconnectUser(userID)
	}

	return target, nil
}

// DeleteUser removes a user and cascades to everything they own. Admin
// accounts cannot be deleted.
func (u *adminUsecase) DeleteUser(ctx context.Context, principal domain.Principal, userID string) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	target, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	if target.Role == domain.RoleAdmin {
		return apperror.BadRequest("Cannot delete admin")
	}

	if err := u.userRepo.DeleteWithDependents(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	u.notifier.DisconnectUser(userID)
	return nil
}
