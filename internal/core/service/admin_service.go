package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/api/rest"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/ports"
)

// AdminService implements ports.AdminService over the REST client. Both
// mutating calls return the updated user record.
type AdminService struct {
	client *rest.Client
	logger zerolog.Logger
}

func NewAdminService(client *rest.Client, logger zerolog.Logger) *AdminService {
	return &AdminService{client: client, logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
	query := url.Values{}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Role != "" {
		query.Set("role", string(filter.Role))
	}

	var users []domain.User
	if err := s.client.Get(ctx, "/admin/users/", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type updateRoleRequest struct {
	NewRole domain.UserRole `json:"new_role"`
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id int, role domain.UserRole) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	var user domain.User
	if err := s.client.Patch(ctx, fmt.Sprintf("/admin/users/%d/role", id), updateRoleRequest{NewRole: role}, &user); err != nil {
		if rest.StatusCode(err) == http.StatusNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	s.logger.Info().Int("user_id", id).Str("role", string(role)).Msg("user role updated")
	return &user, nil
}

func (s *AdminService) ToggleUserStatus(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := s.client.Patch(ctx, fmt.Sprintf("/admin/users/%d/status", id), nil, &user); err != nil {
		if rest.StatusCode(err) == http.StatusNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	s.logger.Info().Int("user_id", id).Bool("is_active", user.IsActive).Msg("user status toggled")
	return &user, nil
}
