package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/TalalZoabi/fullstack-bank/domain"
	"github.com/TalalZoabi/fullstack-bank/repository"
)

type UseCase struct {
	users    repository.UserRepository
	accounts repository.AccountRepository
	logger   *zap.Logger
}

func New(users repository.UserRepository, accounts repository.AccountRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		accounts: accounts,
		logger:   logger,
	}
}

// List returns every user with the accounts relation expanded.
func (uc *UseCase) List(ctx context.Context) ([]domain.User, error) {
	return uc.list(ctx, repository.UserFilter{})
}

// ListByStatus returns the users whose active flag matches.
func (uc *UseCase) ListByStatus(ctx context.Context, active bool) ([]domain.User, error) {
	return uc.list(ctx, repository.UserFilter{IsActive: &active})
}

func (uc *UseCase) list(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	users, err := uc.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Get fetches one user by id with the accounts relation expanded.
func (uc *UseCase) Get(ctx context.Context, id string) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

// Create validates the required fields, guards email uniqueness and persists
// a new active user with no accounts.
func (uc *UseCase) Create(ctx context.Context, name, email string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, domain.ErrInvalidUserParams
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		IsActive: true,
		Accounts: []domain.Account{},
	}

	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("user created", zap.String("user_id", created.ID))
	return created, nil
}

// UpdateParams carries the optional fields of an update. Nil fields are left
// untouched; Accounts replaces the reference list when non-nil.
type UpdateParams struct {
	Name     *string
	Email    *string
	IsActive *bool
	Accounts []string
}

// Update applies the provided fields to an existing user and persists the
// result. The returned entity is the one assembled in memory; a caller-
// supplied accounts list is echoed back as bare references, not expanded.
func (uc *UseCase) Update(ctx context.Context, id string, params UpdateParams) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.IsActive != nil {
		user.IsActive = *params.IsActive
	}
	if params.Accounts != nil {
		refs := make([]domain.Account, 0, len(params.Accounts))
		for _, accountID := range params.Accounts {
			refs = append(refs, domain.Account{ID: accountID})
		}
		user.Accounts = refs
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user and cascades to the owned accounts. The accounts are
// deleted first; the user delete only proceeds once that is acknowledged.
func (uc *UseCase) Delete(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := uc.accounts.DeleteByOwner(ctx, id)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "couldn't delete user accounts", err)
	}

	if err := uc.users.Delete(ctx, id); err != nil {
		return nil, err
	}

	uc.logger.Info("user deleted",
		zap.String("user_id", id),
		zap.Int64("accounts_removed", removed),
	)
	return user, nil
}
