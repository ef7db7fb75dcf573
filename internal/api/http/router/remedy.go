package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/api/http/handler"
)

func (r *Router) registerRemedyRoutes(app *fiber.App, h *handler.RemedyHandler) {
	remedies := app.Group("/remedy")
	remedies.Get("/", h.List)
	remedies.Post("/", h.Create)

	rem := remedies.Group("/:id")
	rem.Get("/", h.Get)
	rem.Put("/", h.Update)
	rem.Patch("/", h.Update)
	rem.Delete("/", h.Delete)
}
