package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mindcare/mindcare_backend/internal/repo/enttest"
	"github.com/mindcare/mindcare_backend/internal/service/disorder"
)

func newDisorderApp(t *testing.T) *fiber.App {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	h := NewDisorderHandler(disorder.New(client))

	app := fiber.New()
	g := app.Group("/disorder")
	g.Get("/", h.List)
	g.Post("/", h.Create)
	d := g.Group("/:id")
	d.Get("/", h.Get)
	d.Put("/", h.Update)
	d.Patch("/", h.Update)
	d.Delete("/", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func decodeError(t *testing.T, resp *http.Response) (kind, message string) {
	t.Helper()
	defer resp.Body.Close()
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error, body.Message
}

type disorderBody struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Symptoms    string `json:"symptoms"`
}

func TestDisorderCRUDFlow(t *testing.T) {
	app := newDisorderApp(t)

	// Create
	resp := doJSON(t, app, fiber.MethodPost, "/disorder", fiber.Map{
		"name":        "Generalized Anxiety Disorder",
		"description": "Persistent and excessive worry",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("POST /disorder status = %d, want 201", resp.StatusCode)
	}
	var created disorderBody
	decodeData(t, resp, &created)
	if created.ID == 0 {
		t.Fatal("created disorder has zero id")
	}

	// Read back
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/disorder/%d", created.ID), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /disorder/:id status = %d, want 200", resp.StatusCode)
	}
	var got disorderBody
	decodeData(t, resp, &got)
	if got.Name != created.Name {
		t.Errorf("Name = %q, want %q", got.Name, created.Name)
	}

	// Partial update leaves other fields alone
	resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/disorder/%d", created.ID), fiber.Map{
		"description": "Chronic worry across many domains",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("PUT /disorder/:id status = %d, want 200", resp.StatusCode)
	}
	decodeData(t, resp, &got)
	if got.Name != "Generalized Anxiety Disorder" {
		t.Errorf("Name after partial update = %q, want unchanged", got.Name)
	}
	if got.Description != "Chronic worry across many domains" {
		t.Errorf("Description = %q, want updated value", got.Description)
	}

	// Delete, then reads must 404
	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/disorder/%d", created.ID), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("DELETE /disorder/:id status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/disorder/%d", created.ID), nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("GET after delete status = %d, want 404", resp.StatusCode)
	}
	kind, _ := decodeError(t, resp)
	if kind != "not_found" {
		t.Errorf("error kind = %q, want %q", kind, "not_found")
	}
}

func TestDisorderListSearch(t *testing.T) {
	app := newDisorderApp(t)

	for _, name := range []string{"Panic Disorder", "Social Anxiety", "Insomnia"} {
		resp := doJSON(t, app, fiber.MethodPost, "/disorder", fiber.Map{"name": name})
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("POST %q status = %d, want 201", name, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp := doJSON(t, app, fiber.MethodGet, "/disorder?search=anxiety", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /disorder?search status = %d, want 200", resp.StatusCode)
	}
	var list []disorderBody
	decodeData(t, resp, &list)
	if len(list) != 1 {
		t.Fatalf("search returned %d results, want 1", len(list))
	}
	if list[0].Name != "Social Anxiety" {
		t.Errorf("search result = %q, want %q", list[0].Name, "Social Anxiety")
	}
}

func TestDisorderResponseKeys(t *testing.T) {
	app := newDisorderApp(t)

	wantKeys := map[string]bool{
		"id":          true,
		"created_at":  true,
		"name":        true,
		"description": true,
		"symptoms":    true,
	}

	assertKeys := func(t *testing.T, record map[string]json.RawMessage) {
		t.Helper()
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

	resp := doJSON(t, app, fiber.MethodPost, "/disorder", fiber.Map{
		"name":        "Anxiety",
		"description": "d",
		"symptoms":    "s",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("POST /disorder status = %d, want 201", resp.StatusCode)
	}
	var record map[string]json.RawMessage
	decodeData(t, resp, &record)
	assertKeys(t, record)

	resp = doJSON(t, app, fiber.MethodGet, "/disorder", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /disorder status = %d, want 200", resp.StatusCode)
	}
	var list []map[string]json.RawMessage
	decodeData(t, resp, &list)
	if len(list) != 1 {
		t.Fatalf("GET /disorder returned %d records, want 1", len(list))
	}
	assertKeys(t, list[0])
}

func TestDisorderErrorResponses(t *testing.T) {
	app := newDisorderApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/disorder", fiber.Map{"name": "Depression"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("POST status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
		wantKind   string
	}{
		{
			name:       "missing name",
			method:     fiber.MethodPost,
			path:       "/disorder",
			body:       fiber.Map{"description": "no name"},
			wantStatus: fiber.StatusBadRequest,
			wantKind:   "validation_error",
		},
		{
			name:       "duplicate name",
			method:     fiber.MethodPost,
			path:       "/disorder",
			body:       fiber.Map{"name": "Depression"},
			wantStatus: fiber.StatusConflict,
			wantKind:   "conflict",
		},
		{
			name:       "non-numeric id",
			method:     fiber.MethodGet,
			path:       "/disorder/abc",
			wantStatus: fiber.StatusBadRequest,
			wantKind:   "validation_error",
		},
		{
			name:       "zero id never issued",
			method:     fiber.MethodGet,
			path:       "/disorder/0",
			wantStatus: fiber.StatusNotFound,
			wantKind:   "not_found",
		},
		{
			name:       "negative id never issued",
			method:     fiber.MethodDelete,
			path:       "/disorder/-5",
			wantStatus: fiber.StatusNotFound,
			wantKind:   "not_found",
		},
		{
			name:       "unknown id",
			method:     fiber.MethodGet,
			path:       "/disorder/9999",
			wantStatus: fiber.StatusNotFound,
			wantKind:   "not_found",
		},
		{
			name:       "delete unknown id",
			method:     fiber.MethodDelete,
			path:       "/disorder/9999",
			wantStatus: fiber.StatusNotFound,
			wantKind:   "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, tt.method, tt.path, tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("%s %s status = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.wantStatus)
			}
			kind, msg := decodeError(t, resp)
			if kind != tt.wantKind {
				t.Errorf("error kind = %q, want %q", kind, tt.wantKind)
			}
			if msg == "" {
				t.Error("error message is empty")
			}
		})
	}
}
