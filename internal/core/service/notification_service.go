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

// NotificationService implements ports.NotificationService over the REST
// client. Pure pass-throughs.
type NotificationService struct {
	client *rest.Client
	logger zerolog.Logger
}

func NewNotificationService(client *rest.Client, logger zerolog.Logger) *NotificationService {
	return &NotificationService{client: client, logger: logger}
}

func (s *NotificationService) List(ctx context.Context, filter ports.ListNotificationsFilter) ([]domain.Notification, error) {
	query := url.Values{}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.UnreadOnly {
		query.Set("unread_only", "true")
	}

	var notifications []domain.Notification
	if err := s.client.Get(ctx, "/notifications/", query, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *NotificationService) Create(ctx context.Context, input domain.NotificationCreate) (*domain.Notification, error) {
	if err := checkPayload(input); err != nil {
		return nil, err
	}

	var notification domain.Notification
	if err := s.client.Post(ctx, "/notifications/", input, &notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id int) (*domain.Notification, error) {
	var notification domain.Notification
	if err := s.client.Patch(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, &notification); err != nil {
		if rest.StatusCode(err) == http.StatusNotFound {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}
