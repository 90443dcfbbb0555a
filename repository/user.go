package repository

import (
	"context"

	"github.com/TalalZoabi/fullstack-bank/domain"
)

// UserFilter narrows List results. A nil IsActive returns every user.
type UserFilter struct {
	IsActive *bool
}

// UserRepository is the user store. Reads resolve the accounts relation into
// full account entities; GetByEmail skips the expansion since it only backs
// the uniqueness check.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
