package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/service/disorder"
)

type DisorderHandler struct {
	svc disorder.Service
}

func NewDisorderHandler(svc disorder.Service) *DisorderHandler {
	return &DisorderHandler{svc: svc}
}

// Any parseable integer is accepted; ids that were never issued fall
// through to the service's not-found path.
func idParam(c fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil
}

func mapDisorderError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, disorder.ErrDisorderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, disorder.ErrDisorderExists):
		return conflict(c, err.Error())
	case errors.Is(err, disorder.ErrNameRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /disorder
func (h *DisorderHandler) List(c fiber.Ctx) error {
	var q struct {
		Search string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	disorders, err := h.svc.List(c.Context(), q.Search)
	if err != nil {
		return mapDisorderError(c, err)
	}
	return ok(c, newDisorderList(disorders))
}

// POST /disorder
func (h *DisorderHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Symptoms    *string `json:"symptoms"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Create(c.Context(), disorder.CreateDisorderRequest{
		Name:        body.Name,
		Description: body.Description,
		Symptoms:    body.Symptoms,
	})
	if err != nil {
		return mapDisorderError(c, err)
	}
	return created(c, newDisorderResponse(d))
}

// GET /disorder/:id
func (h *DisorderHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid disorder id")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDisorderError(c, err)
	}
	return ok(c, newDisorderResponse(d))
}

// PUT/PATCH /disorder/:id
func (h *DisorderHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid disorder id")
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Symptoms    *string `json:"symptoms"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Update(c.Context(), id, disorder.UpdateDisorderRequest{
		Name:        body.Name,
		Description: body.Description,
		Symptoms:    body.Symptoms,
	})
	if err != nil {
		return mapDisorderError(c, err)
	}
	return ok(c, newDisorderResponse(d))
}

// DELETE /disorder/:id
func (h *DisorderHandler) Delete(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid disorder id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDisorderError(c, err)
	}
	return ok(c, fiber.Map{"message": "disorder deleted"})
}
