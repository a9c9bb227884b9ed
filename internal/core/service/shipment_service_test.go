package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/ports"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/infrastructure/storage"
)

// ---------------------------------------------------------------------------
// In-memory fake shipment backend
// ---------------------------------------------------------------------------

type fakeShipmentBackend struct {
	mu            sync.Mutex
	nextID        int
	shipments     map[int]*domain.Shipment
	history       map[int][]domain.TrackingHistory
	analyticsDown bool
}

func newFakeShipmentBackend() *fakeShipmentBackend {
	return &fakeShipmentBackend{
		nextID:    1,
		shipments: make(map[int]*domain.Shipment),
		history:   make(map[int][]domain.TrackingHistory),
	}
}

func (b *fakeShipmentBackend) router() *echo.Echo {
	e := echo.New()

	e.POST("/shipments/", func(c echo.Context) error {
		var in domain.ShipmentCreate
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid payload"})
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		now := time.Now().UTC()
		s := &domain.Shipment{
			ID:                 b.nextID,
			TrackingNumber:     in.TrackingNumber,
			Status:             in.Status,
			Priority:           in.Priority,
			OriginAddress:      in.OriginAddress,
			DestinationAddress: in.DestinationAddress,
			OriginCity:         in.OriginCity,
			DestinationCity:    in.DestinationCity,
			OriginCountry:      in.OriginCountry,
			DestinationCountry: in.DestinationCountry,
			Weight:             in.Weight,
			CustomerID:         in.CustomerID,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if s.TrackingNumber == "" {
			s.TrackingNumber = fmt.Sprintf("TRK%06d", b.nextID)
		}
		if s.Status == "" {
			s.Status = domain.StatusPending
		}
		if s.Priority == "" {
			s.Priority = domain.PriorityNormal
		}
		b.nextID++
		b.shipments[s.ID] = s
		return c.JSON(http.StatusOK, s)
	})

	e.GET("/shipments/", func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()

		out := []domain.Shipment{}
		for _, s := range b.shipments {
			if st := c.QueryParam("status"); st != "" && string(s.Status) != st {
				continue
			}
			if q := c.QueryParam("search"); q != "" && !strings.Contains(s.TrackingNumber, q) {
				continue
			}
			out = append(out, *s)
		}
		return c.JSON(http.StatusOK, out)
	})

	e.GET("/shipments/track/:tn", func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()

		for _, s := range b.shipments {
			if s.TrackingNumber == c.Param("tn") {
				return c.JSON(http.StatusOK, s)
			}
		}
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Shipment not found"})
	})

	e.GET("/shipments/:id", func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))

		b.mu.Lock()
		defer b.mu.Unlock()

		s, ok := b.shipments[id]
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Shipment not found"})
		}
		return c.JSON(http.StatusOK, s)
	})

	e.PATCH("/shipments/:id", func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))

		b.mu.Lock()
		defer b.mu.Unlock()

		s, ok := b.shipments[id]
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Shipment not found"})
		}
		var in domain.ShipmentUpdate
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid payload"})
		}
		if in.Status != nil {
			s.Status = *in.Status
		}
		if in.Priority != nil {
			s.Priority = *in.Priority
		}
		if in.Weight != nil {
			s.Weight = *in.Weight
		}
		s.UpdatedAt = time.Now().UTC()
		return c.JSON(http.StatusOK, s)
	})

	e.DELETE("/shipments/:id", func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))

		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.shipments[id]; !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Shipment not found"})
		}
		delete(b.shipments, id)
		return c.NoContent(http.StatusOK)
	})

	e.GET("/shipments/:id/tracking", func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))

		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.shipments[id]; !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Shipment not found"})
		}
		out := b.history[id]
		if out == nil {
			out = []domain.TrackingHistory{}
		}
		return c.JSON(http.StatusOK, out)
	})

	e.POST("/shipments/:id/tracking", func(c echo.Context) error {
		id, _ := strconv.Atoi(c.Param("id"))

		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.shipments[id]; !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"detail": "Shipment not found"})
		}
		var in domain.TrackingHistoryCreate
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid payload"})
		}
		entry := domain.TrackingHistory{
			ID:          len(b.history[id]) + 1,
			ShipmentID:  id,
			Status:      in.Status,
			Location:    in.Location,
			Description: in.Description,
			Timestamp:   time.Now().UTC(),
		}
		if in.Timestamp != nil {
			entry.Timestamp = *in.Timestamp
		}
		b.history[id] = append(b.history[id], entry)
		return c.JSON(http.StatusOK, entry)
	})

	e.GET("/analytics/dashboard", func(c echo.Context) error {
		if b.analyticsDown {
			return c.JSON(http.StatusInternalServerError, map[string]string{"detail": "boom"})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"total_shipments":      12,
			"pending_shipments":    3,
			"in_transit_shipments": 5,
			"delivered_shipments":  4,
			"total_revenue":        1234.5,
			"avg_delivery_time":    2.5,
		})
	})

	return e
}

func newShipmentService(t *testing.T, b *fakeShipmentBackend) *ShipmentService {
	t.Helper()
	return NewShipmentService(newClient(t, b.router(), storage.NewMemStore()), zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCreateShipmentDefaults(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	created, err := svc.Create(context.Background(), domain.ShipmentCreate{
		OriginAddress:      "123 Main St",
		DestinationAddress: "456 Oak Ave",
		OriginCity:         "NY",
		DestinationCity:    "LA",
		Weight:             2.5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.TrackingNumber == "" {
		t.Error("TrackingNumber is empty, want server-assigned value")
	}
	if created.Status != domain.StatusPending {
		t.Errorf("Status = %q, want pending", created.Status)
	}
	if created.Priority != domain.PriorityNormal {
		t.Errorf("Priority = %q, want normal", created.Priority)
	}
}

func TestCreateShipmentRejectsInvalidPayload(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	tests := []struct {
		name  string
		input domain.ShipmentCreate
	}{
		{"missing cities", domain.ShipmentCreate{OriginAddress: "a", DestinationAddress: "b", Weight: 1}},
		{"zero weight", domain.ShipmentCreate{
			OriginAddress: "a", DestinationAddress: "b",
			OriginCity: "NY", DestinationCity: "LA",
		}},
		{"unknown priority", domain.ShipmentCreate{
			OriginAddress: "a", DestinationAddress: "b",
			OriginCity: "NY", DestinationCity: "LA",
			Weight: 1, Priority: "asap",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.input); err == nil {
				t.Error("Create succeeded, want validation error")
			}
		})
	}
}

func TestTrackRoundTrip(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	created, err := svc.Create(context.Background(), domain.ShipmentCreate{
		TrackingNumber:     "ABC123456",
		OriginAddress:      "123 Main St",
		DestinationAddress: "456 Oak Ave",
		OriginCity:         "NY",
		DestinationCity:    "LA",
		Weight:             2.5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	tracked, err := svc.Track(context.Background(), "ABC123456")
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if tracked.TrackingNumber != "ABC123456" {
		t.Errorf("TrackingNumber = %q, want ABC123456", tracked.TrackingNumber)
	}
	if tracked.ID != created.ID {
		t.Errorf("ID = %d, want %d", tracked.ID, created.ID)
	}
}

func TestGetAndTrackNotFound(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("Get error = %v, want ErrShipmentNotFound", err)
	}
	if _, err := svc.Track(context.Background(), "NOPE"); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("Track error = %v, want ErrShipmentNotFound", err)
	}
}

func TestGetReturnsMatchingRecord(t *testing.T) {
	backend := newFakeShipmentBackend()
	svc := newShipmentService(t, backend)

	first, err := svc.Create(context.Background(), domain.ShipmentCreate{
		OriginAddress: "a", DestinationAddress: "b",
		OriginCity: "NY", DestinationCity: "LA", Weight: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(context.Background(), domain.ShipmentCreate{
		OriginAddress: "c", DestinationAddress: "d",
		OriginCity: "Chicago", DestinationCity: "Miami", Weight: 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != second.ID || got.ID == first.ID {
		t.Errorf("Get returned id %d, want %d", got.ID, second.ID)
	}
}

func TestUpdatePatchesOnlySetFields(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	created, err := svc.Create(context.Background(), domain.ShipmentCreate{
		OriginAddress: "a", DestinationAddress: "b",
		OriginCity: "NY", DestinationCity: "LA", Weight: 2.5,
	})
	if err != nil {
		t.Fatal(err)
	}

	status := domain.StatusInTransit
	updated, err := svc.Update(context.Background(), created.ID, domain.ShipmentUpdate{Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Status != domain.StatusInTransit {
		t.Errorf("Status = %q, want in_transit", updated.Status)
	}
	if updated.Weight != 2.5 {
		t.Errorf("Weight = %v, want 2.5 untouched", updated.Weight)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	created, err := svc.Create(context.Background(), domain.ShipmentCreate{
		OriginAddress: "a", DestinationAddress: "b",
		OriginCity: "NY", DestinationCity: "LA", Weight: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("Get after delete = %v, want ErrShipmentNotFound", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Errorf("second Delete = %v, want ErrShipmentNotFound", err)
	}
}

func TestTrackingHistoryAppendAndList(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	created, err := svc.Create(context.Background(), domain.ShipmentCreate{
		OriginAddress: "a", DestinationAddress: "b",
		OriginCity: "NY", DestinationCity: "LA", Weight: 1,
	})
	if err != nil {
		t.Fatal(err)
	}

	entry, err := svc.AddTrackingUpdate(context.Background(), created.ID, domain.TrackingHistoryCreate{
		Status:      domain.StatusPickedUp,
		Location:    "Origin facility",
		Description: "Package received",
	})
	if err != nil {
		t.Fatalf("AddTrackingUpdate: %v", err)
	}
	if entry.Status != domain.StatusPickedUp {
		t.Errorf("Status = %q, want picked_up", entry.Status)
	}

	history, err := svc.TrackingHistory(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("TrackingHistory: %v", err)
	}
	if len(history) != 1 || history[0].Location != "Origin facility" {
		t.Errorf("history = %+v, want the appended entry", history)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())
	ctx := context.Background()

	delivered := domain.StatusDelivered
	if _, err := svc.Create(ctx, domain.ShipmentCreate{
		OriginAddress: "a", DestinationAddress: "b",
		OriginCity: "NY", DestinationCity: "LA", Weight: 1,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, domain.ShipmentCreate{
		Status:        delivered,
		OriginAddress: "c", DestinationAddress: "d",
		OriginCity: "Chicago", DestinationCity: "Miami", Weight: 2,
	}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.List(ctx, ports.ListShipmentsFilter{Status: domain.StatusDelivered})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Status != domain.StatusDelivered {
		t.Errorf("List = %+v, want exactly the delivered shipment", got)
	}
}

func TestDashboardAnalyticsReshapesBackendPayload(t *testing.T) {
	svc := newShipmentService(t, newFakeShipmentBackend())

	a := svc.DashboardAnalytics(context.Background())

	if a.TotalShipments != 12 {
		t.Errorf("TotalShipments = %d, want 12", a.TotalShipments)
	}
	if a.MonthlyRevenue != a.TotalRevenue {
		t.Errorf("MonthlyRevenue = %v, want the total revenue figure %v", a.MonthlyRevenue, a.TotalRevenue)
	}
	if a.AverageDeliveryTime != 2.5 {
		t.Errorf("AverageDeliveryTime = %v, want 2.5", a.AverageDeliveryTime)
	}
	if a.CustomerSatisfaction == 0 {
		t.Error("CustomerSatisfaction = 0, want defaulted value")
	}
	if len(a.TopDestinations) == 0 {
		t.Error("TopDestinations empty, want placeholder list")
	}
	if a.RecentShipments == nil {
		t.Error("RecentShipments nil, want non-nil slice")
	}
}

func TestDashboardAnalyticsFallbackIsShapeComplete(t *testing.T) {
	backend := newFakeShipmentBackend()
	backend.analyticsDown = true
	svc := newShipmentService(t, backend)

	a := svc.DashboardAnalytics(context.Background())

	if a.TotalShipments == 0 {
		t.Error("fallback TotalShipments = 0, want static snapshot")
	}
	if a.TotalRevenue == 0 || a.MonthlyRevenue == 0 {
		t.Error("fallback revenue fields empty")
	}
	if a.CustomerSatisfaction == 0 {
		t.Error("fallback CustomerSatisfaction = 0")
	}
	if len(a.TopDestinations) == 0 {
		t.Error("fallback TopDestinations empty")
	}
	if a.RecentShipments == nil {
		t.Error("fallback RecentShipments nil, want non-nil slice")
	}
}
