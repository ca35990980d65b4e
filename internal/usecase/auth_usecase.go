package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	jwter    *auth.JWTer
}

func NewAuthUsecase(userRepo domain.UserRepository, jwter *auth.JWTer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, jwter: jwter}
}

// Register creates an employer or candidate account. Admin accounts only
// come from the bootstrap path, never from self-registration.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if input.Role != domain.RoleEmployer && input.Role != domain.RoleCandidate {
		return nil, apperror.BadRequest("Role must be employer or candidate")
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Role:      input.Role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Company:   input.Company,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.PasswordHash = hash

	// The unique index on users.email is the real duplicate guard; Create
	// maps its violation to a conflict.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issueFor(user)
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Internal(err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	// Checked after the credential so a banned account with wrong
	// credentials does not confirm the ban to a guesser.
	if user.IsBanned {
		return nil, apperror.Unauthorized("Your account is banned")
	}

	return u.issueFor(user)
}

func (u *authUsecase) issueFor(user *domain.User) (*domain.AuthResult, error) {
	token, err := u.jwter.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}

// GetCurrentUser resolves the principal's user record. Banned users fail
// here so a still-valid token stops working for the duration of the ban.
func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	if user.IsBanned {
		return nil, apperror.Unauthorized("Your account is banned")
	}
	return user, nil
}

// EnsureAdmin guarantees an admin account exists for the given credentials.
// Idempotent: a concurrent replica losing the unique-email race treats the
// resulting conflict as "already bootstrapped".
func (u *authUsecase) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil // already bootstrapped
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = u.userRepo.Create(ctx, admin)
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code == http.StatusConflict {
		return nil // another replica created it between check and insert
	}
	return err
}
