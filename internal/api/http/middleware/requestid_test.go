package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mindcare/mindcare_backend/pkg/reqctx"
)

func newRequestIDApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/ping", func(c fiber.Ctx) error {
		meta, ok := reqctx.RequestMetaFromContext(c.Context())
		if !ok {
			return c.Status(fiber.StatusInternalServerError).SendString("no meta")
		}
		return c.SendString(meta.RequestID)
	})
	return app
}

func TestRequestIDGenerated(t *testing.T) {
	app := newRequestIDApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	rid := resp.Header.Get(HeaderRequestID)
	if rid == "" {
		t.Fatal("response has no X-Request-Id header")
	}
	if _, err := uuid.Parse(rid); err != nil {
		t.Errorf("generated request id %q is not a uuid: %v", rid, err)
	}
}

func TestRequestIDPreserved(t *testing.T) {
	app := newRequestIDApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "client-supplied-id")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get(HeaderRequestID); got != "client-supplied-id" {
		t.Errorf("X-Request-Id = %q, want preserved client value", got)
	}
}
