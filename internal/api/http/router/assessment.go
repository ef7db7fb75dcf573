package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/api/http/handler"
)

func (r *Router) registerAssessmentRoutes(app *fiber.App, h *handler.AssessmentHandler) {
	assessments := app.Group("/assessment")
	assessments.Get("/", h.List)
	assessments.Post("/", h.Create)

	a := assessments.Group("/:id")
	a.Get("/", h.Get)
	a.Put("/", h.Update)
	a.Patch("/", h.Update)
	a.Delete("/", h.Delete)
}
