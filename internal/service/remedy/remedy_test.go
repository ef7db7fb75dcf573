package remedy

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mindcare/mindcare_backend/internal/repo"
	"github.com/mindcare/mindcare_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return New(client), client
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func TestCreateRemedy(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d := client.Disorder.Create().SetName("Anxiety").SaveX(ctx)

	r, err := svc.Create(ctx, CreateRemedyRequest{
		DisorderID:  d.ID,
		Title:       "Breathing exercises",
		Description: strPtr("Slow diaphragmatic breathing"),
		Category:    strPtr("self-help"),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if r.Title != "Breathing exercises" {
		t.Errorf("Title = %q, want %q", r.Title, "Breathing exercises")
	}
	if r.DisorderID != d.ID {
		t.Errorf("DisorderID = %d, want %d", r.DisorderID, d.ID)
	}
}

func TestCreateRemedyErrors(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d := client.Disorder.Create().SetName("Depression").SaveX(ctx)

	t.Run("missing title", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRemedyRequest{DisorderID: d.ID, Title: ""})
		if !errors.Is(err, ErrTitleRequired) {
			t.Errorf("Create() error = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("unknown disorder reference", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRemedyRequest{DisorderID: 9999, Title: "x"})
		if !errors.Is(err, ErrInvalidDisorderRef) {
			t.Errorf("Create() error = %v, want ErrInvalidDisorderRef", err)
		}
	})
}

func TestListRemediesByDisorder(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d1 := client.Disorder.Create().SetName("Anxiety").SaveX(ctx)
	d2 := client.Disorder.Create().SetName("Insomnia").SaveX(ctx)

	for _, req := range []CreateRemedyRequest{
		{DisorderID: d1.ID, Title: "Meditation"},
		{DisorderID: d1.ID, Title: "Exercise"},
		{DisorderID: d2.ID, Title: "Sleep hygiene"},
	} {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Create(%q) error: %v", req.Title, err)
		}
	}

	all, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List(nil) error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List(nil) returned %d remedies, want 3", len(all))
	}

	scoped, err := svc.List(ctx, intPtr(d1.ID))
	if err != nil {
		t.Fatalf("List(d1) error: %v", err)
	}
	if len(scoped) != 2 {
		t.Errorf("List(d1) returned %d remedies, want 2", len(scoped))
	}
	for _, r := range scoped {
		if r.DisorderID != d1.ID {
			t.Errorf("remedy %d has DisorderID %d, want %d", r.ID, r.DisorderID, d1.ID)
		}
	}
}

func TestRemedyCascadeOnDisorderDelete(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d := client.Disorder.Create().SetName("Phobia").SaveX(ctx)
	r, err := svc.Create(ctx, CreateRemedyRequest{DisorderID: d.ID, Title: "Exposure therapy"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Remedies belong to their disorder and go with it.
	client.Disorder.DeleteOneID(d.ID).ExecX(ctx)

	if _, err := svc.GetByID(ctx, r.ID); !errors.Is(err, ErrRemedyNotFound) {
		t.Errorf("GetByID() after disorder delete error = %v, want ErrRemedyNotFound", err)
	}
}

func TestUpdateRemedy(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d := client.Disorder.Create().SetName("OCD").SaveX(ctx)
	r, err := svc.Create(ctx, CreateRemedyRequest{
		DisorderID: d.ID,
		Title:      "Journaling",
		Category:   strPtr("self-help"),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := svc.Update(ctx, r.ID, UpdateRemedyRequest{Title: strPtr("Structured journaling")})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.Title != "Structured journaling" {
		t.Errorf("Title = %q, want updated value", got.Title)
	}
	if got.Category != "self-help" {
		t.Errorf("Category = %q, want unchanged value", got.Category)
	}

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, r.ID, UpdateRemedyRequest{Title: strPtr("")})
		if !errors.Is(err, ErrTitleRequired) {
			t.Errorf("Update() error = %v, want ErrTitleRequired", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, UpdateRemedyRequest{Title: strPtr("x")})
		if !errors.Is(err, ErrRemedyNotFound) {
			t.Errorf("Update() error = %v, want ErrRemedyNotFound", err)
		}
	})
}

func TestDeleteRemedy(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d := client.Disorder.Create().SetName("PTSD").SaveX(ctx)
	r, err := svc.Create(ctx, CreateRemedyRequest{DisorderID: d.ID, Title: "EMDR"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Delete(ctx, r.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := svc.Delete(ctx, r.ID); !errors.Is(err, ErrRemedyNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrRemedyNotFound", err)
	}
}
