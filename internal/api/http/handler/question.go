package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/service/question"
)

type QuestionHandler struct {
	svc question.Service
}

func NewQuestionHandler(svc question.Service) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

func mapQuestionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, question.ErrQuestionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, question.ErrTextRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /question
func (h *QuestionHandler) List(c fiber.Ctx) error {
	var q struct {
		Active bool `query:"active"`
	}
	_ = c.Bind().Query(&q)

	questions, err := h.svc.List(c.Context(), q.Active)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, newQuestionList(questions))
}

// POST /question
func (h *QuestionHandler) Create(c fiber.Ctx) error {
	var body struct {
		Text       string  `json:"text"`
		Category   *string `json:"category"`
		Weight     *int    `json:"weight"`
		OrderIndex *int    `json:"order_index"`
		IsActive   *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	q, err := h.svc.Create(c.Context(), question.CreateQuestionRequest{
		Text:       body.Text,
		Category:   body.Category,
		Weight:     body.Weight,
		OrderIndex: body.OrderIndex,
		IsActive:   body.IsActive,
	})
	if err != nil {
		return mapQuestionError(c, err)
	}
	return created(c, newQuestionResponse(q))
}

// GET /question/:id
func (h *QuestionHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid question id")
	}

	q, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, newQuestionResponse(q))
}

// PUT/PATCH /question/:id
func (h *QuestionHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid question id")
	}

	var body struct {
		Text       *string `json:"text"`
		Category   *string `json:"category"`
		Weight     *int    `json:"weight"`
		OrderIndex *int    `json:"order_index"`
		IsActive   *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	q, err := h.svc.Update(c.Context(), id, question.UpdateQuestionRequest{
		Text:       body.Text,
		Category:   body.Category,
		Weight:     body.Weight,
		OrderIndex: body.OrderIndex,
		IsActive:   body.IsActive,
	})
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, newQuestionResponse(q))
}

// DELETE /question/:id
func (h *QuestionHandler) Delete(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid question id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, fiber.Map{"message": "question deleted"})
}
