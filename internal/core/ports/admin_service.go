package ports

import (
	"context"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
)

// ListUsersFilter narrows GET /admin/users/.
type ListUsersFilter struct {
	Skip  int
	Limit int
	Role  domain.UserRole
}

// AdminService talks to the backend's user-administration endpoints. The
// mutating calls return the updated record so callers never have to guess
// whether a follow-up list refresh is needed.
type AdminService interface {
	ListUsers(ctx context.Context, filter ListUsersFilter) ([]domain.User, error)
	UpdateUserRole(ctx context.Context, id int, role domain.UserRole) (*domain.User, error)
	ToggleUserStatus(ctx context.Context, id int) (*domain.User, error)
}
