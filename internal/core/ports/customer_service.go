package ports

import (
	"context"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
)

// CustomerService talks to the backend's customer endpoint.
type CustomerService interface {
	// List returns all customers. A backend failure yields an empty list,
	// not an error: the customers view degrades to "none" rather than
	// breaking.
	List(ctx context.Context) []domain.User
}
