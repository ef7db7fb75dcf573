package disorder

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

func TestCreateDisorder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDisorderRequest{
		Name:        "Generalized Anxiety Disorder",
		Description: strPtr("Persistent and excessive worry"),
		Symptoms:    strPtr("restlessness, fatigue"),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if d.ID == 0 {
		t.Error("Create() returned zero id")
	}
	if d.Name != "Generalized Anxiety Disorder" {
		t.Errorf("Name = %q, want %q", d.Name, "Generalized Anxiety Disorder")
	}

	got, err := svc.GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Description != "Persistent and excessive worry" {
		t.Errorf("Description = %q, want %q", got.Description, "Persistent and excessive worry")
	}
}

func TestCreateDisorderValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateDisorderRequest{Name: ""})
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("Create() error = %v, want ErrNameRequired", err)
	}
}

func TestCreateDisorderDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateDisorderRequest{Name: "Depression"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	_, err := svc.Create(ctx, CreateDisorderRequest{Name: "Depression"})
	if !errors.Is(err, ErrDisorderExists) {
		t.Errorf("Create() duplicate error = %v, want ErrDisorderExists", err)
	}
}

func TestListDisordersSearch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seed := []CreateDisorderRequest{
		{Name: "Generalized Anxiety Disorder", Description: strPtr("excessive worry")},
		{Name: "Major Depressive Disorder", Description: strPtr("low mood and anhedonia")},
		{Name: "Panic Disorder", Description: strPtr("sudden anxiety attacks")},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Create(%q) error: %v", req.Name, err)
		}
	}

	tests := []struct {
		name   string
		search string
		want   int
	}{
		{name: "no filter returns all", search: "", want: 3},
		{name: "matches name case-insensitively", search: "ANXIETY", want: 2},
		{name: "matches description", search: "anhedonia", want: 1},
		{name: "no match returns empty", search: "xyz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.search)
			if err != nil {
				t.Fatalf("List(%q) error: %v", tt.search, err)
			}
			if len(got) != tt.want {
				t.Errorf("List(%q) returned %d disorders, want %d", tt.search, len(got), tt.want)
			}
		})
	}
}

func TestListDisordersOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"OCD", "PTSD", "Bipolar"} {
		if _, err := svc.Create(ctx, CreateDisorderRequest{Name: name}); err != nil {
			t.Fatalf("Create(%q) error: %v", name, err)
		}
	}

	got, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].ID <= got[i-1].ID {
			t.Errorf("List() not ordered by id: %d before %d", got[i-1].ID, got[i].ID)
		}
	}
}

func TestUpdateDisorderPartial(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDisorderRequest{
		Name:        "Social Anxiety",
		Description: strPtr("fear of social situations"),
		Symptoms:    strPtr("blushing, sweating"),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Only description is sent; other fields must survive unchanged.
	got, err := svc.Update(ctx, d.ID, UpdateDisorderRequest{
		Description: strPtr("marked fear of social situations"),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.Name != "Social Anxiety" {
		t.Errorf("Name = %q, want unchanged %q", got.Name, "Social Anxiety")
	}
	if got.Description != "marked fear of social situations" {
		t.Errorf("Description = %q, want updated value", got.Description)
	}
	if got.Symptoms != "blushing, sweating" {
		t.Errorf("Symptoms = %q, want unchanged value", got.Symptoms)
	}
}

func TestUpdateDisorderErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDisorderRequest{Name: "Insomnia"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, d.ID, UpdateDisorderRequest{Name: strPtr("")})
		if !errors.Is(err, ErrNameRequired) {
			t.Errorf("Update() error = %v, want ErrNameRequired", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, UpdateDisorderRequest{Name: strPtr("Other")})
		if !errors.Is(err, ErrDisorderNotFound) {
			t.Errorf("Update() error = %v, want ErrDisorderNotFound", err)
		}
	})
}

func TestDeleteDisorder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateDisorderRequest{Name: "Agoraphobia"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	if _, err := svc.GetByID(ctx, d.ID); !errors.Is(err, ErrDisorderNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrDisorderNotFound", err)
	}

	if err := svc.Delete(ctx, d.ID); !errors.Is(err, ErrDisorderNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrDisorderNotFound", err)
	}
}

func TestGetDisorderNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrDisorderNotFound) {
		t.Errorf("GetByID() error = %v, want ErrDisorderNotFound", err)
	}
}
