package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/api/http/handler"
)

func (r *Router) registerQuestionRoutes(app *fiber.App, h *handler.QuestionHandler) {
	questions := app.Group("/question")
	questions.Get("/", h.List)
	questions.Post("/", h.Create)

	q := questions.Group("/:id")
	q.Get("/", h.Get)
	q.Put("/", h.Update)
	q.Patch("/", h.Update)
	q.Delete("/", h.Delete)
}
