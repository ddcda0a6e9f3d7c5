package entity

import "time"

// Rol exigido para operar el back-office.
const RoleAdmin = "admin"

// Límites de User.
const (
	UserUsernameMaxLength  = 50
	UserEmailMaxLength     = 100
	UserFirstNameMaxLength = 50
	UserLastNameMaxLength  = 50
)

// User representa un operador del back-office. No guarda credenciales: la autenticación es externa.
type User struct {
	ID            int64
	Username      string // único, inmutable
	Email         string // único
	FirstName     string
	LastName      string
	Enabled       bool
	CreatedDate   time.Time
	UpdatedDate   *time.Time
	LastLoginDate *time.Time
}
