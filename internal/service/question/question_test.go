package question

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

func boolPtr(b bool) *bool {
	return &b
}

func TestCreateQuestion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, CreateQuestionRequest{
		Text:     "How often have you felt nervous in the last two weeks?",
		Category: strPtr("anxiety"),
		Weight:   intPtr(2),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if q.Weight != 2 {
		t.Errorf("Weight = %d, want 2", q.Weight)
	}
	if !q.IsActive {
		t.Error("IsActive = false, want default true")
	}
	if q.OrderIndex != 0 {
		t.Errorf("OrderIndex = %d, want default 0", q.OrderIndex)
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateQuestionRequest{Text: ""})
	if !errors.Is(err, ErrTextRequired) {
		t.Errorf("Create() error = %v, want ErrTextRequired", err)
	}
}

func TestListQuestionsActiveOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seed := []CreateQuestionRequest{
		{Text: "q-third", OrderIndex: intPtr(3)},
		{Text: "q-first", OrderIndex: intPtr(1)},
		{Text: "q-inactive", OrderIndex: intPtr(0), IsActive: boolPtr(false)},
		{Text: "q-second", OrderIndex: intPtr(2)},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Create(%q) error: %v", req.Text, err)
		}
	}

	all, err := svc.List(ctx, false)
	if err != nil {
		t.Fatalf("List(false) error: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("List(false) returned %d questions, want 4", len(all))
	}

	active, err := svc.List(ctx, true)
	if err != nil {
		t.Fatalf("List(true) error: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("List(true) returned %d questions, want 3", len(active))
	}
	wantOrder := []string{"q-first", "q-second", "q-third"}
	for i, q := range active {
		if q.Text != wantOrder[i] {
			t.Errorf("active[%d].Text = %q, want %q", i, q.Text, wantOrder[i])
		}
	}
}

func TestUpdateQuestion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, CreateQuestionRequest{
		Text:     "Do you have trouble sleeping?",
		Category: strPtr("sleep"),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := svc.Update(ctx, q.ID, UpdateQuestionRequest{
		IsActive: boolPtr(false),
		Weight:   intPtr(3),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.IsActive {
		t.Error("IsActive = true, want false")
	}
	if got.Weight != 3 {
		t.Errorf("Weight = %d, want 3", got.Weight)
	}
	if got.Text != "Do you have trouble sleeping?" {
		t.Errorf("Text = %q, want unchanged value", got.Text)
	}

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, q.ID, UpdateQuestionRequest{Text: strPtr("")})
		if !errors.Is(err, ErrTextRequired) {
			t.Errorf("Update() error = %v, want ErrTextRequired", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, UpdateQuestionRequest{Text: strPtr("x")})
		if !errors.Is(err, ErrQuestionNotFound) {
			t.Errorf("Update() error = %v, want ErrQuestionNotFound", err)
		}
	})
}

func TestDeleteQuestion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	q, err := svc.Create(ctx, CreateQuestionRequest{Text: "temp"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Delete(ctx, q.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := svc.GetByID(ctx, q.ID); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrQuestionNotFound", err)
	}
	if err := svc.Delete(ctx, q.ID); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrQuestionNotFound", err)
	}
}
