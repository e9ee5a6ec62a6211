package ports

import (
	"context"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

// TokenManager issues and verifies signed session tokens. The payload is
// signed, not encrypted: anyone holding a token can read its claims.
type TokenManager interface {
	Issue(userID string, role domain.Role) (string, error)
	Verify(token string) (domain.Identity, error)
}

// RevocationStore records tokens invalidated before their natural expiry.
// Revocation is by exact token string, not by user: logging out with one
// token leaves a second live session for the same user untouched. The set
// only grows; entries for long-expired tokens are never pruned.
type RevocationStore interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	// Login returns the session token together with the authenticated user.
	Login(ctx context.Context, email, password string) (string, domain.User, error)
	Logout(ctx context.Context, token string) error
}
