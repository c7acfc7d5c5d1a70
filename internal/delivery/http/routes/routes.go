package routes

import (
	"skill-manager/internal/delivery/http/handler"
	"skill-manager/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health    *handler.HealthHandler
	Skills    *handler.SkillHandler
	Projects  *handler.ProjectHandler
	Employees *handler.EmployeeHandler
	WS        *ws.Handler
	Metrics   fiber.Handler
	// Guard runs in front of every mutating API route.
	Guard fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil || r == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.Metrics != nil {
		app.Get("/metrics", r.Metrics)
	}
	if r.WS != nil {
		r.WS.RegisterRoutes(app)
	}
	r.registerAPI(app.Group("/api"))
}

func (r *Registry) registerAPI(api fiber.Router) {
	guard := r.Guard
	if guard == nil {
		guard = func(c fiber.Ctx) error { return c.Next() }
	}

	if r.Skills != nil {
		r.Skills.RegisterRoutes(api, guard)
	}
	if r.Projects != nil {
		r.Projects.RegisterRoutes(api, guard)
	}
	if r.Employees != nil {
		r.Employees.RegisterRoutes(api, guard)
	}
}
