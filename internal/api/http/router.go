package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Metrics   *handlers.MetricsHandler
	Staff     *handlers.StaffHandler
	Employees *handlers.EmployeesHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Expose)

	staff := app.Group("/staff")
	staff.Get("/", cfg.Staff.List)
	staff.Post("/", cfg.Staff.Create)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)
	staff.Delete("/:id", cfg.Staff.Delete)

	employees := app.Group("/employees")
	employees.Get("/", cfg.Employees.List)
	employees.Post("/", cfg.Employees.Create)
	employees.Get("/:id", cfg.Employees.Get)
	employees.Put("/:id", cfg.Employees.Update)
	employees.Delete("/:id", cfg.Employees.Delete)
}
