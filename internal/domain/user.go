package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleCandidate = "candidate"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // unique, stored lowercase
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"first_name,omitempty"`
	LastName     *string   `json:"last_name,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Role         string    `json:"role"` // immutable after creation
	IsBanned     bool      `json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, role string, limit, offset int) ([]User, int64, error)
	SetBanned(ctx context.Context, id string, banned bool) error
	// DeleteWithDependents removes the user together with their jobs and
	// applications in a single transaction, dependents first.
	DeleteWithDependents(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	// EnsureAdmin guarantees an admin account exists for the given
	// credentials. Safe to call from multiple replicas concurrently.
	EnsureAdmin(ctx context.Context, email, password string) error
}

type RegisterInput struct {
	Email     string
	Password  string
	Role      string
	FirstName *string
	LastName  *string
	Company   *string
}

type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
