package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/ports"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/infrastructure/storage"
)

func fakeNotificationBackend() *echo.Echo {
	now := time.Now().UTC()
	items := map[int]*domain.Notification{
		1: {ID: 1, UserID: 1, Title: "Shipment Update", Message: "ABC123456 in transit",
			Type: domain.NotificationEmail, Status: domain.NotificationSent, CreatedAt: now},
		2: {ID: 2, UserID: 1, Title: "Delivered", Message: "XYZ789012 delivered",
			Type: domain.NotificationInApp, Status: domain.NotificationDelivered, CreatedAt: now, ReadAt: &now},
	}

	e := echo.New()

	e.GET("/notifications/", func(c echo.Context) error {
		out := []domain.Notification{}
		unreadOnly := c.QueryParam("unread_only") == "true"
		for _, n := range items {
			if unreadOnly && n.ReadAt != nil {
				continue
			}
			out = append(out, *n)
		}
		return c.JSON(http.StatusOK, out)
	})

	e.POST("/notifications/", func(c echo.Context) error {
		var in domain.NotificationCreate
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid payload"})
		}
		status := in.Status
		if status == "" {
			status = domain.NotificationPending
		}
		n := &domain.Notification{
			ID: len(items) + 1, UserID: in.UserID, Title: in.Title,
			Message: in.Message, Type: in.Type, Status: status, CreatedAt: time.Now().UTC(),
		}
		items[n.ID] = n
		return c.JSON(http.StatusOK, n)
	})

	e.PATCH("/notifications/:id/read", func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))
		n, ok := items[id]
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Notification not found"})
		}
		read := time.Now().UTC()
		n.ReadAt = &read
		return c.JSON(http.StatusOK, n)
	})

	return e
}

func newNotificationService(t *testing.T) *NotificationService {
	t.Helper()
	return NewNotificationService(newClient(t, fakeNotificationBackend(), storage.NewMemStore()), zerolog.Nop())
}

func TestListNotificationsUnreadOnly(t *testing.T) {
	svc := newNotificationService(t)

	all, err := svc.List(context.Background(), ports.ListNotificationsFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}

	unread, err := svc.List(context.Background(), ports.ListNotificationsFilter{UnreadOnly: true})
	if err != nil {
		t.Fatalf("List unread: %v", err)
	}
	if len(unread) != 1 || unread[0].ReadAt != nil {
		t.Errorf("unread = %+v, want the single unread notification", unread)
	}
}

func TestCreateNotificationValidated(t *testing.T) {
	svc := newNotificationService(t)

	created, err := svc.Create(context.Background(), domain.NotificationCreate{
		UserID: 1, Title: "Hello", Message: "World", Type: domain.NotificationPush,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != domain.NotificationPending {
		t.Errorf("Status = %q, want pending default", created.Status)
	}

	if _, err := svc.Create(context.Background(), domain.NotificationCreate{
		UserID: 1, Title: "Hello", Message: "World", Type: "carrier-pigeon",
	}); err == nil {
		t.Error("Create with unknown type succeeded, want validation error")
	}
}

func TestMarkReadSetsTimestamp(t *testing.T) {
	svc := newNotificationService(t)

	n, err := svc.MarkRead(context.Background(), 1)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if n.ReadAt == nil {
		t.Error("ReadAt nil after MarkRead, want timestamp")
	}
}

func TestMarkReadNotFound(t *testing.T) {
	svc := newNotificationService(t)

	_, err := svc.MarkRead(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Errorf("error = %v, want ErrNotificationNotFound", err)
	}
}
