package domain

import "time"

// User represents a bank customer owning zero or more accounts.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	Accounts  []Account `json:"accounts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountIDs returns the identifiers of the referenced accounts in order.
func (u *User) AccountIDs() []string {
	if u == nil || len(u.Accounts) == 0 {
		return nil
	}
	ids := make([]string, 0, len(u.Accounts))
	for _, account := range u.Accounts {
		ids = append(ids, account.ID)
	}
	return ids
}
