package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TalalZoabi/fullstack-bank/domain"
	"github.com/TalalZoabi/fullstack-bank/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, error) {
	const query = `
	SELECT id, name, email, is_active, account_ids, created_at, updated_at
	FROM users
	WHERE ($1::boolean IS NULL OR is_active = $1)
	ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, filter.IsActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	var refs []userAccountRefs
	for rows.Next() {
		user, ids, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
		refs = append(refs, userAccountRefs{index: len(users) - 1, ids: ids})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.expandAccounts(ctx, users, refs); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
	SELECT id, name, email, is_active, account_ids, created_at, updated_at
	FROM users
	WHERE id = $1
	`
	user, ids, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	users := []domain.User{*user}
	if err := r.expandAccounts(ctx, users, []userAccountRefs{{index: 0, ids: ids}}); err != nil {
		return nil, err
	}
	return &users[0], nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
	SELECT id, name, email, is_active, account_ids, created_at, updated_at
	FROM users
	WHERE email = $1
	`
	user, _, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO users (id, name, email, is_active, account_ids)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.IsActive,
		marshalIDs(user.AccountIDs()),
	).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	if user.Accounts == nil {
		user.Accounts = []domain.Account{}
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE users
	SET name = $2,
		email = $3,
		is_active = $4,
		account_ids = $5,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.IsActive,
		marshalIDs(user.AccountIDs()),
	).Scan(&user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// userAccountRefs remembers which stored account ids belong to which user
// while the referenced accounts are fetched in a single batch.
type userAccountRefs struct {
	index int
	ids   []string
}

// expandAccounts resolves the stored account id lists against the accounts
// table and attaches the full entities in stored order. References to
// accounts that no longer exist are dropped silently.
func (r *userRepository) expandAccounts(ctx context.Context, users []domain.User, refs []userAccountRefs) error {
	var all []string
	for _, ref := range refs {
		all = append(all, ref.ids...)
	}

	for i := range users {
		users[i].Accounts = []domain.Account{}
	}
	if len(all) == 0 {
		return nil
	}

	const query = `
	SELECT id, owner_id, type, balance, currency, created_at, updated_at
	FROM accounts
	WHERE id = ANY($1)
	`
	rows, err := r.pool.Query(ctx, query, all)
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[string]domain.Account, len(all))
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.OwnerID,
			&account.Type,
			&account.Balance,
			&account.Currency,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return err
		}
		byID[account.ID] = account
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, ref := range refs {
		for _, id := range ref.ids {
			if account, ok := byID[id]; ok {
				users[ref.index].Accounts = append(users[ref.index].Accounts, account)
			}
		}
	}
	return nil
}

func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, []string, error) {
	var user domain.User
	var accountIDs []byte

	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.IsActive,
		&accountIDs,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, nil, err
	}

	return &user, unmarshalIDs(accountIDs), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
