package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/abkoo/helpdesk/internal/api/http/handlers"
	"github.com/abkoo/helpdesk/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. This is the entire contract the
// presentation layer may call.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)
	app.Post("/auth/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Get("/stats", cfg.Tickets.Stats)
	tickets.Post("", cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Patch("/:id", cfg.Tickets.Update)
	tickets.Post("/:id/advance", cfg.Tickets.Advance)
	tickets.Post("/:id/regress", cfg.Tickets.Regress)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Post("/users", cfg.Users.Create)
	admin.Get("/users", cfg.Users.List)
	admin.Delete("/users/:id", cfg.Users.Deactivate)
}
