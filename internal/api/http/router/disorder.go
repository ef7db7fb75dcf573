package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/api/http/handler"
)

func (r *Router) registerDisorderRoutes(app *fiber.App, h *handler.DisorderHandler) {
	disorders := app.Group("/disorder")
	disorders.Get("/", h.List)
	disorders.Post("/", h.Create)

	d := disorders.Group("/:id")
	d.Get("/", h.Get)
	d.Put("/", h.Update)
	d.Patch("/", h.Update)
	d.Delete("/", h.Delete)
}
