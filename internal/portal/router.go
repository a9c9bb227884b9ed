// Package portal maps paths to terminal views and gates navigation behind
// the session token, the way the web portal gated its pages.
package portal

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/YuvarajSYali-developer/Full-stack-project----delivery-trackerry/internal/infrastructure/storage"
)

const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathShipments = "/shipments"
	PathTracking  = "/tracking"
	PathAnalytics = "/analytics"
	PathCustomers = "/customers"
	PathSettings  = "/settings"
)

var ErrRouteNotFound = errors.New("no such route")

// View renders one screen of the portal.
type View func(ctx context.Context) error

// Route binds a path to a view. RequiresAuth is fixed at route-table
// definition time and never changes afterwards.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	Render       View
}

// Router resolves paths, applies the auth guard, and renders views. The
// guard reads the same durable TokenStore the session store writes, so
// there is exactly one authority for "is a session present".
type Router struct {
	routes map[string]Route
	tokens storage.TokenStore
	log    zerolog.Logger
	now    func() time.Time
}

func NewRouter(tokens storage.TokenStore, log zerolog.Logger) *Router {
	return &Router{
		routes: make(map[string]Route),
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
}

// Handle registers a route. Later registrations of the same path win, which
// matches route-table override semantics.
func (r *Router) Handle(route Route) {
	r.routes[route.Path] = route
}

// Routes returns the registered routes keyed by path.
func (r *Router) Routes() map[string]Route {
	return r.routes
}

// Resolve applies redirects and the navigation guard, returning the route
// that should actually render. The root path unconditionally redirects to
// the dashboard, itself subject to the guard.
func (r *Router) Resolve(path string) (Route, error) {
	if path == PathRoot {
		path = PathDashboard
	}

	route, ok := r.routes[path]
	if !ok {
		return Route{}, ErrRouteNotFound
	}

	if route.RequiresAuth && !r.hasValidToken() {
		r.log.Debug().Str("path", path).Msg("unauthenticated, redirecting to login")
		login, ok := r.routes[PathLogin]
		if !ok {
			return Route{}, ErrRouteNotFound
		}
		return login, nil
	}

	return route, nil
}

// Navigate resolves path and renders the resulting view.
func (r *Router) Navigate(ctx context.Context, path string) error {
	route, err := r.Resolve(path)
	if err != nil {
		return err
	}
	if route.Render == nil {
		return nil
	}
	return route.Render(ctx)
}

// hasValidToken reports whether durable storage holds an unexpired token.
// An expired JWT counts as absent: letting it through would only bounce off
// the backend with a 401 on the first request.
func (r *Router) hasValidToken() bool {
	token, err := r.tokens.Load()
	if err != nil {
		return false
	}
	return !storage.Expired(token, r.now())
}
