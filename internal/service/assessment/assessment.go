package assessment

import (
	"context"
	"fmt"

	"github.com/mindcare/mindcare_backend/internal/repo"
	entassessment "github.com/mindcare/mindcare_backend/internal/repo/assessment"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateAssessmentRequest struct {
	SessionID     string
	Answers       *string
	Result        *string
	SeverityScore *float64
	DisorderID    *int
}

type UpdateAssessmentRequest struct {
	SessionID     *string
	Answers       *string
	Result        *string
	SeverityScore *float64
	DisorderID    *int
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateAssessmentRequest) (*repo.Assessment, error)
	List(ctx context.Context) ([]*repo.Assessment, error)
	GetByID(ctx context.Context, id int) (*repo.Assessment, error)
	Update(ctx context.Context, id int, req UpdateAssessmentRequest) (*repo.Assessment, error)
	Delete(ctx context.Context, id int) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &service{db: db}
}

func validSeverity(s *float64) bool {
	return s == nil || (*s >= 0 && *s <= 5)
}

func (s *service) Create(ctx context.Context, req CreateAssessmentRequest) (*repo.Assessment, error) {
	if req.SessionID == "" {
		return nil, ErrSessionIDRequired
	}
	if !validSeverity(req.SeverityScore) {
		return nil, ErrInvalidSeverity
	}

	a, err := s.db.Assessment.Create().
		SetSessionID(req.SessionID).
		SetNillableAnswers(req.Answers).
		SetNillableResult(req.Result).
		SetNillableSeverityScore(req.SeverityScore).
		SetNillableDisorderID(req.DisorderID).
		Save(ctx)
	if err != nil {
		// The disorder edge is the only constraint on this table.
		if repo.IsConstraintError(err) {
			return nil, ErrInvalidDisorderRef
		}
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	return a, nil
}

func (s *service) List(ctx context.Context) ([]*repo.Assessment, error) {
	return s.db.Assessment.Query().
		Order(entassessment.ByID()).
		All(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*repo.Assessment, error) {
	a, err := s.db.Assessment.Query().
		Where(entassessment.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateAssessmentRequest) (*repo.Assessment, error) {
	if req.SessionID != nil && *req.SessionID == "" {
		return nil, ErrSessionIDRequired
	}
	if !validSeverity(req.SeverityScore) {
		return nil, ErrInvalidSeverity
	}

	a, err := s.db.Assessment.UpdateOneID(id).
		SetNillableSessionID(req.SessionID).
		SetNillableAnswers(req.Answers).
		SetNillableResult(req.Result).
		SetNillableSeverityScore(req.SeverityScore).
		SetNillableDisorderID(req.DisorderID).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrAssessmentNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrInvalidDisorderRef
		}
		return nil, fmt.Errorf("update assessment: %w", err)
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.db.Assessment.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrAssessmentNotFound
		}
		return fmt.Errorf("delete assessment: %w", err)
	}
	return nil
}
