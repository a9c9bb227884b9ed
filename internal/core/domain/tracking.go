package domain

import "time"

// TrackingHistory is one append-only event in a shipment's trail, ordered by
// timestamp for display. Many-to-one with Shipment.
type TrackingHistory struct {
	ID          int            `json:"id"`
	ShipmentID  int            `json:"shipment_id"`
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
}

// TrackingHistoryCreate is the payload for POST /shipments/{id}/tracking.
// The backend stamps the event when Timestamp is nil.
type TrackingHistoryCreate struct {
	Status      ShipmentStatus `json:"status" validate:"required,oneof=pending confirmed picked_up in_transit out_for_delivery delivered cancelled returned"`
	Location    string         `json:"location"    validate:"required"`
	Description string         `json:"description" validate:"required"`
	Timestamp   *time.Time     `json:"timestamp,omitempty"`
}
