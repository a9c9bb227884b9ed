package domain

import "time"

// NotificationType is the delivery channel of a notification.
type NotificationType string

const (
	NotificationEmail NotificationType = "email"
	NotificationSMS   NotificationType = "sms"
	NotificationPush  NotificationType = "push"
	NotificationInApp NotificationType = "in_app"
)

// NotificationStatus tracks delivery progress of a notification.
type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationSent      NotificationStatus = "sent"
	NotificationDelivered NotificationStatus = "delivered"
	NotificationFailed    NotificationStatus = "failed"
)

// Notification is addressed to exactly one user. sent_at and read_at mark the
// lifecycle transitions and stay nil until they happen.
type Notification struct {
	ID        int                `json:"id"`
	UserID    int                `json:"user_id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Type      NotificationType   `json:"notification_type"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
	ReadAt    *time.Time         `json:"read_at,omitempty"`
}

// NotificationCreate is the payload for POST /notifications/.
type NotificationCreate struct {
	UserID  int                `json:"user_id" validate:"required"`
	Title   string             `json:"title"   validate:"required"`
	Message string             `json:"message" validate:"required"`
	Type    NotificationType   `json:"notification_type" validate:"required,oneof=email sms push in_app"`
	Status  NotificationStatus `json:"status,omitempty"  validate:"omitempty,oneof=pending sent delivered failed"`
}
