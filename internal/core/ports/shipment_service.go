package ports

import (
	"context"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
)

// ListShipmentsFilter narrows GET /shipments/. Zero values are omitted from
// the query string.
type ListShipmentsFilter struct {
	Skip       int
	Limit      int
	Status     domain.ShipmentStatus
	Priority   domain.ShipmentPriority
	Search     string
	CustomerID int
}

// ShipmentService talks to the backend's shipment endpoints.
type ShipmentService interface {
	List(ctx context.Context, filter ListShipmentsFilter) ([]domain.Shipment, error)
	// Get looks a shipment up by numeric id. Returns
	// domain.ErrShipmentNotFound when the backend has no such record.
	Get(ctx context.Context, id int) (*domain.Shipment, error)
	// Track looks a shipment up by its tracking number, the unique
	// business key. Returns domain.ErrShipmentNotFound when absent.
	Track(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	Create(ctx context.Context, input domain.ShipmentCreate) (*domain.Shipment, error)
	Update(ctx context.Context, id int, input domain.ShipmentUpdate) (*domain.Shipment, error)
	Delete(ctx context.Context, id int) error

	TrackingHistory(ctx context.Context, shipmentID int) ([]domain.TrackingHistory, error)
	AddTrackingUpdate(ctx context.Context, shipmentID int, input domain.TrackingHistoryCreate) (*domain.TrackingHistory, error)

	// DashboardAnalytics never fails: when the backend call errors out a
	// complete static fallback snapshot is returned instead, so the
	// dashboard always has a full shape to render.
	DashboardAnalytics(ctx context.Context) domain.DashboardAnalytics
}
