package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/service/remedy"
)

type RemedyHandler struct {
	svc remedy.Service
}

func NewRemedyHandler(svc remedy.Service) *RemedyHandler {
	return &RemedyHandler{svc: svc}
}

func mapRemedyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, remedy.ErrRemedyNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, remedy.ErrTitleRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, remedy.ErrInvalidDisorderRef):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /remedy
func (h *RemedyHandler) List(c fiber.Ctx) error {
	var q struct {
		DisorderID *int `query:"disorder_id"`
	}
	_ = c.Bind().Query(&q)

	remedies, err := h.svc.List(c.Context(), q.DisorderID)
	if err != nil {
		return mapRemedyError(c, err)
	}
	return ok(c, newRemedyList(remedies))
}

// POST /remedy
func (h *RemedyHandler) Create(c fiber.Ctx) error {
	var body struct {
		DisorderID  int     `json:"disorder_id"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DisorderID <= 0 {
		return badRequest(c, "disorder_id is required")
	}

	r, err := h.svc.Create(c.Context(), remedy.CreateRemedyRequest{
		DisorderID:  body.DisorderID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
	})
	if err != nil {
		return mapRemedyError(c, err)
	}
	return created(c, newRemedyResponse(r))
}

// GET /remedy/:id
func (h *RemedyHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid remedy id")
	}

	r, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapRemedyError(c, err)
	}
	return ok(c, newRemedyResponse(r))
}

// PUT/PATCH /remedy/:id
func (h *RemedyHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid remedy id")
	}

	var body struct {
		DisorderID  *int    `json:"disorder_id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	r, err := h.svc.Update(c.Context(), id, remedy.UpdateRemedyRequest{
		DisorderID:  body.DisorderID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
	})
	if err != nil {
		return mapRemedyError(c, err)
	}
	return ok(c, newRemedyResponse(r))
}

// DELETE /remedy/:id
func (h *RemedyHandler) Delete(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid remedy id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapRemedyError(c, err)
	}
	return ok(c, fiber.Map{"message": "remedy deleted"})
}
