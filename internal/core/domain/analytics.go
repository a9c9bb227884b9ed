package domain

// DestinationCount is one entry of the top-destinations leaderboard.
type DestinationCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// RecentShipment is the lightweight summary used on the dashboard.
type RecentShipment struct {
	ID             int    `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	Destination    string `json:"destination"`
	CreatedAt      string `json:"created_at"`
}

// DashboardAnalytics is the read-only snapshot rendered on the dashboard.
// All aggregation happens server-side; the portal only renames and defaults
// fields when the backend shape differs from this display shape.
type DashboardAnalytics struct {
	TotalShipments       int                `json:"total_shipments"`
	PendingShipments     int                `json:"pending_shipments"`
	InTransitShipments   int                `json:"in_transit_shipments"`
	DeliveredShipments   int                `json:"delivered_shipments"`
	TotalRevenue         float64            `json:"total_revenue"`
	MonthlyRevenue       float64            `json:"monthly_revenue"`
	AverageDeliveryTime  float64            `json:"average_delivery_time"`
	CustomerSatisfaction float64            `json:"customer_satisfaction"`
	TopDestinations      []DestinationCount `json:"top_destinations"`
	RecentShipments      []RecentShipment   `json:"recent_shipments"`
}
