package ports

import (
	"context"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
)

// ListNotificationsFilter narrows GET /notifications/.
type ListNotificationsFilter struct {
	Skip       int
	Limit      int
	UnreadOnly bool
}

// NotificationService talks to the backend's notification endpoints.
type NotificationService interface {
	List(ctx context.Context, filter ListNotificationsFilter) ([]domain.Notification, error)
	Create(ctx context.Context, input domain.NotificationCreate) (*domain.Notification, error)
	// MarkRead stamps read_at on the notification server-side and returns
	// the updated record.
	MarkRead(ctx context.Context, id int) (*domain.Notification, error)
}
