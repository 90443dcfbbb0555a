package repository

import "context"

// AccountRepository is the account store surface this service depends on.
// DeleteByOwner reports the number of removed accounts; a nil error is the
// acknowledgement the cascade delete is gated on.
type AccountRepository interface {
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
