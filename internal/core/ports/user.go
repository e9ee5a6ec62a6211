package ports

import (
	"context"

	"github.com/codeskillotech/taskmanagement-backend/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByName(ctx context.Context, name string) (domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
