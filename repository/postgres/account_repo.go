package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TalalZoabi/fullstack-bank/repository"
)

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation of AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &accountRepository{pool: pool}
}

func (r *accountRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	const query = `DELETE FROM accounts WHERE owner_id = $1`
	tag, err := r.pool.Exec(ctx, query, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
