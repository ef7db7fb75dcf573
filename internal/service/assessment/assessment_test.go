package assessment

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

func floatPtr(f float64) *float64 {
	return &f
}

func TestCreateAssessment(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d := client.Disorder.Create().SetName("Anxiety").SaveX(ctx)

	a, err := svc.Create(ctx, CreateAssessmentRequest{
		SessionID:     "sess-001",
		Answers:       strPtr(`{"q1":3,"q2":1}`),
		Result:        strPtr("moderate"),
		SeverityScore: floatPtr(2.5),
		DisorderID:    intPtr(d.ID),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if a.SessionID != "sess-001" {
		t.Errorf("SessionID = %q, want %q", a.SessionID, "sess-001")
	}
	if a.SeverityScore != 2.5 {
		t.Errorf("SeverityScore = %v, want 2.5", a.SeverityScore)
	}
	if a.DisorderID == nil || *a.DisorderID != d.ID {
		t.Errorf("DisorderID = %v, want %d", a.DisorderID, d.ID)
	}
}

func TestCreateAssessmentValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateAssessmentRequest
		wantErr error
	}{
		{
			name:    "missing session id",
			req:     CreateAssessmentRequest{SessionID: ""},
			wantErr: ErrSessionIDRequired,
		},
		{
			name:    "severity below range",
			req:     CreateAssessmentRequest{SessionID: "s", SeverityScore: floatPtr(-0.1)},
			wantErr: ErrInvalidSeverity,
		},
		{
			name:    "severity above range",
			req:     CreateAssessmentRequest{SessionID: "s", SeverityScore: floatPtr(5.1)},
			wantErr: ErrInvalidSeverity,
		},
		{
			name:    "unknown disorder reference",
			req:     CreateAssessmentRequest{SessionID: "s", DisorderID: intPtr(9999)},
			wantErr: ErrInvalidDisorderRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateAssessmentWithoutDisorder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAssessmentRequest{SessionID: "sess-free"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if a.DisorderID != nil {
		t.Errorf("DisorderID = %v, want nil", a.DisorderID)
	}
	if a.SeverityScore != 0 {
		t.Errorf("SeverityScore = %v, want default 0", a.SeverityScore)
	}
}

func TestAssessmentSurvivesDisorderDelete(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	d := client.Disorder.Create().SetName("Phobia").SaveX(ctx)

	a, err := svc.Create(ctx, CreateAssessmentRequest{
		SessionID:  "sess-002",
		DisorderID: intPtr(d.ID),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Deleting the referenced disorder must detach, not cascade.
	client.Disorder.DeleteOneID(d.ID).ExecX(ctx)

	got, err := svc.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID() after disorder delete error: %v", err)
	}
	if got.DisorderID != nil {
		t.Errorf("DisorderID = %v after disorder delete, want nil", got.DisorderID)
	}
}

func TestUpdateAssessment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAssessmentRequest{
		SessionID: "sess-003",
		Result:    strPtr("mild"),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := svc.Update(ctx, a.ID, UpdateAssessmentRequest{
		Result:        strPtr("severe"),
		SeverityScore: floatPtr(4.2),
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if got.SessionID != "sess-003" {
		t.Errorf("SessionID = %q, want unchanged %q", got.SessionID, "sess-003")
	}
	if got.Result != "severe" {
		t.Errorf("Result = %q, want %q", got.Result, "severe")
	}
	if got.SeverityScore != 4.2 {
		t.Errorf("SeverityScore = %v, want 4.2", got.SeverityScore)
	}
}

func TestUpdateAssessmentErrors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAssessmentRequest{SessionID: "sess-004"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	t.Run("empty session id rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, a.ID, UpdateAssessmentRequest{SessionID: strPtr("")})
		if !errors.Is(err, ErrSessionIDRequired) {
			t.Errorf("Update() error = %v, want ErrSessionIDRequired", err)
		}
	})

	t.Run("invalid severity rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, a.ID, UpdateAssessmentRequest{SeverityScore: floatPtr(7)})
		if !errors.Is(err, ErrInvalidSeverity) {
			t.Errorf("Update() error = %v, want ErrInvalidSeverity", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, 9999, UpdateAssessmentRequest{Result: strPtr("x")})
		if !errors.Is(err, ErrAssessmentNotFound) {
			t.Errorf("Update() error = %v, want ErrAssessmentNotFound", err)
		}
	})
}

func TestDeleteAssessment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateAssessmentRequest{SessionID: "sess-005"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := svc.GetByID(ctx, a.ID); !errors.Is(err, ErrAssessmentNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrAssessmentNotFound", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, ErrAssessmentNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrAssessmentNotFound", err)
	}
}
