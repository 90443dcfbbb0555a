package transport

type UserCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserUpdateRequest carries a partial update; absent fields stay nil and the
// stored values are kept. Accounts replaces the reference list when present.
type UserUpdateRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	IsActive *bool    `json:"isActive"`
	Accounts []string `json:"accounts"`
}
