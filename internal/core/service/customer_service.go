package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/api/rest"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
)

// CustomerService implements ports.CustomerService over the REST client.
type CustomerService struct {
	client *rest.Client
	logger zerolog.Logger
}

func NewCustomerService(client *rest.Client, logger zerolog.Logger) *CustomerService {
	return &CustomerService{client: client, logger: logger}
}

// List returns all customers. A backend failure degrades to an empty list:
// the customers view renders "no customers" instead of an error.
func (s *CustomerService) List(ctx context.Context) []domain.User {
	var customers []domain.User
	if err := s.client.Get(ctx, "/customers", nil, &customers); err != nil {
		s.logger.Warn().Err(err).Msg("customer list unavailable")
		return []domain.User{}
	}
	if customers == nil {
		customers = []domain.User{}
	}
	return customers
}
