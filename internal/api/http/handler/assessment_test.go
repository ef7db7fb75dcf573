package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v3"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mindcare/mindcare_backend/internal/repo"
	"github.com/mindcare/mindcare_backend/internal/repo/enttest"
	"github.com/mindcare/mindcare_backend/internal/service/assessment"
)

func newAssessmentApp(t *testing.T) (*fiber.App, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	h := NewAssessmentHandler(assessment.New(client))

	app := fiber.New()
	g := app.Group("/assessment")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	a := g.Group("/:id")
	a.Get("/", h.Get)
	a.Put("/", h.Update)
	a.Patch("/", h.Update)
	a.Delete("/", h.Delete)
	return app, client
}

type assessmentBody struct {
	ID            int     `json:"id"`
	SessionID     string  `json:"session_id"`
	Answers       string  `json:"answers"`
	Result        string  `json:"result"`
	SeverityScore float64 `json:"severity_score"`
	DisorderID    *int    `json:"disorder_id"`
}

func TestAssessmentCRUDFlow(t *testing.T) {
	app, client := newAssessmentApp(t)

	d := client.Disorder.Create().SetName("Anxiety").SaveX(context.Background())

	resp := doJSON(t, app, fiber.MethodPost, "/assessment", fiber.Map{
		"session_id":     "sess-100",
		"answers":        `{"q1":2}`,
		"severity_score": 3.5,
		"disorder_id":    d.ID,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("POST /assessment status = %d, want 201", resp.StatusCode)
	}
	var created assessmentBody
	decodeData(t, resp, &created)
	if created.DisorderID == nil || *created.DisorderID != d.ID {
		t.Errorf("DisorderID = %v, want %d", created.DisorderID, d.ID)
	}

	resp = doJSON(t, app, fiber.MethodPatch, fmt.Sprintf("/assessment/%d", created.ID), fiber.Map{
		"result": "moderate",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("PATCH /assessment/:id status = %d, want 200", resp.StatusCode)
	}
	var got assessmentBody
	decodeData(t, resp, &got)
	if got.Result != "moderate" {
		t.Errorf("Result = %q, want %q", got.Result, "moderate")
	}
	if got.SessionID != "sess-100" {
		t.Errorf("SessionID = %q, want unchanged", got.SessionID)
	}

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/assessment/%d", created.ID), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("DELETE /assessment/:id status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/assessment/%d", created.ID), nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("GET after delete status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAssessmentResponseKeys(t *testing.T) {
	app, _ := newAssessmentApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/assessment", fiber.Map{
		"session_id": "sess-keys",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("POST /assessment status = %d, want 201", resp.StatusCode)
	}

	wantKeys := map[string]bool{
		"id":             true,
		"created_at":     true,
		"session_id":     true,
		"answers":        true,
		"result":         true,
		"severity_score": true,
		"disorder_id":    true,
	}

	var record map[string]json.RawMessage
	decodeData(t, resp, &record)
	for k := range record {
		if !wantKeys[k] {
			t.Errorf("response carries undeclared key %q", k)
		}
	}
	for k := range wantKeys {
		if _, found := record[k]; !found {
			t.Errorf("response missing declared key %q", k)
		}
	}
}

func TestAssessmentValidationResponses(t *testing.T) {
	app, _ := newAssessmentApp(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{
			name:       "missing session id",
			body:       fiber.Map{"result": "mild"},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "severity out of range",
			body:       fiber.Map{"session_id": "s", "severity_score": 9.0},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "unknown disorder reference",
			body:       fiber.Map{"session_id": "s", "disorder_id": 9999},
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, fiber.MethodPost, "/assessment", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("POST /assessment status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			kind, _ := decodeError(t, resp)
			if kind != "validation_error" {
				t.Errorf("error kind = %q, want %q", kind, "validation_error")
			}
		})
	}
}
