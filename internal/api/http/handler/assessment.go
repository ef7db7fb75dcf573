package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mindcare/mindcare_backend/internal/service/assessment"
)

type AssessmentHandler struct {
	svc assessment.Service
}

func NewAssessmentHandler(svc assessment.Service) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

func mapAssessmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessment.ErrAssessmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assessment.ErrSessionIDRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, assessment.ErrInvalidSeverity):
		return badRequest(c, err.Error())
	case errors.Is(err, assessment.ErrInvalidDisorderRef):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /assessment
func (h *AssessmentHandler) List(c fiber.Ctx) error {
	assessments, err := h.svc.List(c.Context())
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, newAssessmentList(assessments))
}

// POST /assessment
func (h *AssessmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		SessionID     string   `json:"session_id"`
		Answers       *string  `json:"answers"`
		Result        *string  `json:"result"`
		SeverityScore *float64 `json:"severity_score"`
		DisorderID    *int     `json:"disorder_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Create(c.Context(), assessment.CreateAssessmentRequest{
		SessionID:     body.SessionID,
		Answers:       body.Answers,
		Result:        body.Result,
		SeverityScore: body.SeverityScore,
		DisorderID:    body.DisorderID,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, newAssessmentResponse(a))
}

// GET /assessment/:id
func (h *AssessmentHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	a, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, newAssessmentResponse(a))
}

// PUT/PATCH /assessment/:id
func (h *AssessmentHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	var body struct {
		SessionID     *string  `json:"session_id"`
		Answers       *string  `json:"answers"`
		Result        *string  `json:"result"`
		SeverityScore *float64 `json:"severity_score"`
		DisorderID    *int     `json:"disorder_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Update(c.Context(), id, assessment.UpdateAssessmentRequest{
		SessionID:     body.SessionID,
		Answers:       body.Answers,
		Result:        body.Result,
		SeverityScore: body.SeverityScore,
		DisorderID:    body.DisorderID,
	})
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, newAssessmentResponse(a))
}

// DELETE /assessment/:id
func (h *AssessmentHandler) Delete(c fiber.Ctx) error {
	id, valid := idParam(c)
	if !valid {
		return badRequest(c, "invalid assessment id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, fiber.Map{"message": "assessment deleted"})
}
