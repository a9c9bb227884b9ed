package domain

import (
	"errors"
	"time"
)

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "pending"
	StatusConfirmed      ShipmentStatus = "confirmed"
	StatusPickedUp       ShipmentStatus = "picked_up"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
	StatusCancelled      ShipmentStatus = "cancelled"
	StatusReturned       ShipmentStatus = "returned"
)

// Valid reports whether s is one of the known statuses.
func (s ShipmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPickedUp, StatusInTransit,
		StatusOutForDelivery, StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// ShipmentPriority represents the handling priority of a shipment.
type ShipmentPriority string

const (
	PriorityLow    ShipmentPriority = "low"
	PriorityNormal ShipmentPriority = "normal"
	PriorityHigh   ShipmentPriority = "high"
	PriorityUrgent ShipmentPriority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p ShipmentPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

var ErrShipmentNotFound = errors.New("shipment not found")
var ErrNotificationNotFound = errors.New("notification not found")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Shipment is the core aggregate as served by the backend. tracking_number
// is the globally unique business key, distinct from the numeric id.
type Shipment struct {
	ID                    int              `json:"id"`
	TrackingNumber        string           `json:"tracking_number"`
	Status                ShipmentStatus   `json:"status"`
	Priority              ShipmentPriority `json:"priority"`
	OriginAddress         string           `json:"origin_address"`
	DestinationAddress    string           `json:"destination_address"`
	OriginCity            string           `json:"origin_city"`
	DestinationCity       string           `json:"destination_city"`
	OriginCountry         string           `json:"origin_country"`
	DestinationCountry    string           `json:"destination_country"`
	Weight                float64          `json:"weight"`
	Dimensions            string           `json:"dimensions,omitempty"`
	DeclaredValue         float64          `json:"declared_value,omitempty"`
	InsuranceRequired     bool             `json:"insurance_required"`
	Fragile               bool             `json:"fragile"`
	Description           string           `json:"description,omitempty"`
	SpecialInstructions   string           `json:"special_instructions,omitempty"`
	EstimatedDeliveryDate *time.Time       `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time       `json:"actual_delivery_date,omitempty"`
	CustomerID            int              `json:"customer_id,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	Customer              *User            `json:"customer,omitempty"`
}

// ShipmentCreate is the payload for POST /shipments/. The backend assigns
// the tracking number when none is supplied and defaults status to pending.
type ShipmentCreate struct {
	TrackingNumber        string           `json:"tracking_number,omitempty"`
	Status                ShipmentStatus   `json:"status,omitempty"   validate:"omitempty,oneof=pending confirmed picked_up in_transit out_for_delivery delivered cancelled returned"`
	Priority              ShipmentPriority `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	OriginAddress         string           `json:"origin_address"      validate:"required"`
	DestinationAddress    string           `json:"destination_address" validate:"required"`
	OriginCity            string           `json:"origin_city"         validate:"required"`
	DestinationCity       string           `json:"destination_city"    validate:"required"`
	OriginCountry         string           `json:"origin_country,omitempty"`
	DestinationCountry    string           `json:"destination_country,omitempty"`
	Weight                float64          `json:"weight" validate:"required,gt=0"`
	Dimensions            string           `json:"dimensions,omitempty"`
	DeclaredValue         float64          `json:"declared_value,omitempty" validate:"omitempty,gt=0"`
	InsuranceRequired     bool             `json:"insurance_required,omitempty"`
	Fragile               bool             `json:"fragile,omitempty"`
	Description           string           `json:"description,omitempty"`
	SpecialInstructions   string           `json:"special_instructions,omitempty"`
	EstimatedDeliveryDate *time.Time       `json:"estimated_delivery_date,omitempty"`
	CustomerID            int              `json:"customer_id,omitempty"`
}

// ShipmentUpdate is the patch payload for PATCH /shipments/{id}. Nil fields
// are omitted from the request so the backend leaves them untouched.
type ShipmentUpdate struct {
	TrackingNumber        *string           `json:"tracking_number,omitempty"`
	Status                *ShipmentStatus   `json:"status,omitempty"`
	Priority              *ShipmentPriority `json:"priority,omitempty"`
	OriginAddress         *string           `json:"origin_address,omitempty"`
	DestinationAddress    *string           `json:"destination_address,omitempty"`
	OriginCity            *string           `json:"origin_city,omitempty"`
	DestinationCity       *string           `json:"destination_city,omitempty"`
	Weight                *float64          `json:"weight,omitempty"`
	Dimensions            *string           `json:"dimensions,omitempty"`
	DeclaredValue         *float64          `json:"declared_value,omitempty"`
	InsuranceRequired     *bool             `json:"insurance_required,omitempty"`
	Fragile               *bool             `json:"fragile,omitempty"`
	Description           *string           `json:"description,omitempty"`
	SpecialInstructions   *string           `json:"special_instructions,omitempty"`
	EstimatedDeliveryDate *time.Time        `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time        `json:"actual_delivery_date,omitempty"`
}
