package ports

import (
	"context"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
)

// AuthService talks to the backend's auth endpoints.
type AuthService interface {
	// Login exchanges credentials for a bearer token. The credentials are
	// sent form-encoded; they are never stored anywhere.
	Login(ctx context.Context, creds domain.Credentials) (domain.Token, error)
	// Register creates a new account.
	Register(ctx context.Context, input domain.UserCreate) (*domain.User, error)
	// CurrentUser returns the profile of the token's owner.
	CurrentUser(ctx context.Context) (*domain.User, error)
}
