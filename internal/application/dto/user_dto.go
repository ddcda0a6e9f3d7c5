package dto

import "time"

// UserRequest entrada para crear o actualizar un usuario.
// Username solo se usa al crear (es inmutable); Enabled solo al actualizar.
type UserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Enabled       bool       `json:"enabled"`
	CreatedDate   time.Time  `json:"created_date"`
	UpdatedDate   *time.Time `json:"updated_date"`
	LastLoginDate *time.Time `json:"last_login_date"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse = ListResponse[UserResponse]

// LastLoginRequest entrada de POST /api/users/last-login.
type LastLoginRequest struct {
	Username string `json:"username"`
}
