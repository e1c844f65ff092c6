package repository

import (
	"context"

	"github.com/curioapp/curio/internal/domain/entity"
)

// UserRepository defines the credential store operations the core depends on.
// Get* methods return (nil, nil) when no row matches so callers can tell
// absence apart from store failures.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUUID(ctx context.Context, uuid string) (*entity.User, error)
	GetByUserName(ctx context.Context, userName string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Delete(ctx context.Context, uuid string) error
}
