package domain

import "time"

// UserRole enumerates the access levels granted by the backend.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
	RoleCustomer UserRole = "customer"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// User models an account as the backend reports it. The portal never owns
// this data; id is server-assigned and never reused within a session.
type User struct {
	ID        int        `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name,omitempty"`
	Role      UserRole   `json:"role"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	Company   string     `json:"company,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UserCreate is the registration payload for POST /users/.
type UserCreate struct {
	Email    string   `json:"email"     validate:"required,email"`
	Username string   `json:"username"  validate:"required"`
	Password string   `json:"password"  validate:"required,min=8"`
	FullName string   `json:"full_name,omitempty"`
	Role     UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin manager employee customer"`
	Phone    string   `json:"phone,omitempty"`
	Address  string   `json:"address,omitempty"`
	Company  string   `json:"company,omitempty"`
}

// Credentials is the login payload. Transient: sent form-encoded to the token
// endpoint and never persisted anywhere.
type Credentials struct {
	Username string
	Password string
}

// Token is the response of the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
