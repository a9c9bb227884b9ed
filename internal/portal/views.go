package portal

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/domain"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/core/ports"
	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/session"
)

// Views renders the portal screens as terminal output.
type Views struct {
	Out           io.Writer
	Session       *session.Store
	Shipments     ports.ShipmentService
	Notifications ports.NotificationService
	Customers     ports.CustomerService
	Admin         ports.AdminService
}

// Register installs the route table. The auth flags mirror the portal's
// pages: everything but the login screen requires a session.
func (v *Views) Register(r *Router) {
	r.Handle(Route{Path: PathLogin, Name: "login", Render: v.Login})
	r.Handle(Route{Path: PathDashboard, Name: "dashboard", RequiresAuth: true, Render: v.Dashboard})
	r.Handle(Route{Path: PathShipments, Name: "shipments", RequiresAuth: true, Render: v.ShipmentList})
	r.Handle(Route{Path: PathTracking, Name: "tracking", RequiresAuth: true, Render: v.Tracking})
	r.Handle(Route{Path: PathAnalytics, Name: "analytics", RequiresAuth: true, Render: v.Analytics})
	r.Handle(Route{Path: PathCustomers, Name: "customers", RequiresAuth: true, Render: v.CustomerList})
	r.Handle(Route{Path: PathSettings, Name: "settings", RequiresAuth: true, Render: v.Settings})
}

func (v *Views) Login(ctx context.Context) error {
	if v.Session.IsAuthenticated() {
		fmt.Fprintln(v.Out, "Already logged in. Use 'logout' to end the session.")
		return nil
	}
	if msg := v.Session.Err(); msg != "" {
		fmt.Fprintln(v.Out, msg)
	}
	fmt.Fprintln(v.Out, "Not logged in. Use: login <username> <password>")
	return nil
}

func (v *Views) Dashboard(ctx context.Context) error {
	a := v.Shipments.DashboardAnalytics(ctx)

	fmt.Fprintln(v.Out, "== Dashboard ==")
	w := tabwriter.NewWriter(v.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total shipments\t%d\n", a.TotalShipments)
	fmt.Fprintf(w, "Pending\t%d\n", a.PendingShipments)
	fmt.Fprintf(w, "In transit\t%d\n", a.InTransitShipments)
	fmt.Fprintf(w, "Delivered\t%d\n", a.DeliveredShipments)
	fmt.Fprintf(w, "Total revenue\t%.2f\n", a.TotalRevenue)
	fmt.Fprintf(w, "Monthly revenue\t%.2f\n", a.MonthlyRevenue)
	fmt.Fprintf(w, "Avg delivery time\t%.1f days\n", a.AverageDeliveryTime)
	fmt.Fprintf(w, "Satisfaction\t%.1f / 5\n", a.CustomerSatisfaction)
	return w.Flush()
}

func (v *Views) ShipmentList(ctx context.Context) error {
	shipments, err := v.Shipments.List(ctx, ports.ListShipmentsFilter{Limit: 50})
	if err != nil {
		return err
	}

	fmt.Fprintln(v.Out, "== Shipments ==")
	if len(shipments) == 0 {
		fmt.Fprintln(v.Out, "No shipments.")
		return nil
	}

	w := tabwriter.NewWriter(v.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTRACKING\tSTATUS\tPRIORITY\tFROM\tTO")
	for _, s := range shipments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.TrackingNumber, s.Status, s.Priority, s.OriginCity, s.DestinationCity)
	}
	return w.Flush()
}

func (v *Views) Tracking(ctx context.Context) error {
	fmt.Fprintln(v.Out, "== Tracking ==")
	fmt.Fprintln(v.Out, "Use: track <tracking-number>")
	return nil
}

// RenderTrackResult prints a tracking lookup: the shipment plus its history
// trail in timestamp order.
func (v *Views) RenderTrackResult(ctx context.Context, trackingNumber string) error {
	shipment, err := v.Shipments.Track(ctx, trackingNumber)
	if err != nil {
		return err
	}

	fmt.Fprintf(v.Out, "%s: %s (%s -> %s)\n",
		shipment.TrackingNumber, shipment.Status, shipment.OriginCity, shipment.DestinationCity)

	history, err := v.Shipments.TrackingHistory(ctx, shipment.ID)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(v.Out, 0, 4, 2, ' ', 0)
	for _, h := range history {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			h.Timestamp.Format("2006-01-02 15:04"), h.Status, h.Location, h.Description)
	}
	return w.Flush()
}

func (v *Views) Analytics(ctx context.Context) error {
	a := v.Shipments.DashboardAnalytics(ctx)

	fmt.Fprintln(v.Out, "== Analytics ==")
	w := tabwriter.NewWriter(v.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOP DESTINATIONS\tSHIPMENTS")
	for _, d := range a.TopDestinations {
		fmt.Fprintf(w, "%s\t%d\n", d.City, d.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(a.RecentShipments) > 0 {
		fmt.Fprintln(v.Out, "Recent:")
		for _, s := range a.RecentShipments {
			fmt.Fprintf(v.Out, "  %s %s -> %s\n", s.TrackingNumber, s.Status, s.Destination)
		}
	}
	return nil
}

func (v *Views) CustomerList(ctx context.Context) error {
	customers := v.Customers.List(ctx)

	fmt.Fprintln(v.Out, "== Customers ==")
	if len(customers) == 0 {
		fmt.Fprintln(v.Out, "No customers.")
		return nil
	}

	w := tabwriter.NewWriter(v.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tCOMPANY")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Username, c.Email, c.Company)
	}
	return w.Flush()
}

func (v *Views) Settings(ctx context.Context) error {
	fmt.Fprintln(v.Out, "== Settings ==")

	user := v.Session.User()
	if user == nil {
		if err := v.Session.FetchUser(ctx); err != nil {
			return err
		}
		user = v.Session.User()
	}

	w := tabwriter.NewWriter(v.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Username\t%s\n", user.Username)
	fmt.Fprintf(w, "Email\t%s\n", user.Email)
	fmt.Fprintf(w, "Role\t%s\n", user.Role)
	fmt.Fprintf(w, "Active\t%t\n", user.IsActive)
	if err := w.Flush(); err != nil {
		return err
	}

	notifications, err := v.Notifications.List(ctx, ports.ListNotificationsFilter{Limit: 10, UnreadOnly: true})
	if err != nil {
		return err
	}
	if len(notifications) > 0 {
		fmt.Fprintln(v.Out, "Unread notifications:")
		for _, n := range notifications {
			fmt.Fprintf(v.Out, "  [%s] %s: %s\n", n.Type, n.Title, n.Message)
		}
	}
	return nil
}

// RenderUserTable prints an admin user listing.
func (v *Views) RenderUserTable(users []domain.User) error {
	w := tabwriter.NewWriter(v.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tACTIVE\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", u.ID, u.Username, u.Role, u.IsActive, u.Email)
	}
	return w.Flush()
}
