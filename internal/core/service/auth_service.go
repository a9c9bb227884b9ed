package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/api/rest"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
)

// AuthService implements ports.AuthService over the REST client.
type AuthService struct {
	client *rest.Client
	logger zerolog.Logger
}

func NewAuthService(client *rest.Client, logger zerolog.Logger) *AuthService {
	return &AuthService{client: client, logger: logger}
}

// Login exchanges credentials for a bearer token. The token endpoint is the
// one place the backend requires form encoding instead of JSON.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var token domain.Token
	if err := s.client.PostForm(ctx, "/token", form, &token); err != nil {
		if rest.StatusCode(err) == http.StatusUnauthorized {
			return domain.Token{}, domain.ErrInvalidCredentials
		}
		return domain.Token{}, err
	}

	s.logger.Info().Str("username", creds.Username).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) Register(ctx context.Context, input domain.UserCreate) (*domain.User, error) {
	if err := checkPayload(input); err != nil {
		return nil, err
	}

	var user domain.User
	if err := s.client.Post(ctx, "/users/", input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
