package domain

import "time"

// Account represents a bank account owned by a user. Only the owner relation
// is used by this service; the remaining fields travel through reads untouched.
type Account struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Type      string    `json:"type,omitempty"`
	Balance   int64     `json:"balance"`
	Currency  string    `json:"currency,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Account) IsOwnedBy(userID string) bool {
	return a != nil && userID != "" && a.OwnerID == userID
}
