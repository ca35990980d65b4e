package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Principal is the authenticated identity attached to a request after the
// auth middleware has resolved the token and rejected banned accounts.
type Principal struct {
	ID    string
	Email string
	Role  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Owns reports whether the principal may mutate a resource owned by
// ownerID: admins always can, everyone else only their own resources.
func (p Principal) Owns(ownerID string) bool {
	return p.IsAdmin() || p.ID == ownerID
}
