package question

import (
	"context"
	"fmt"

	"github.com/mindcare/mindcare_backend/internal/repo"
	entquestion "github.com/mindcare/mindcare_backend/internal/repo/question"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateQuestionRequest struct {
	Text       string
	Category   *string
	Weight     *int
	OrderIndex *int
	IsActive   *bool
}

type UpdateQuestionRequest struct {
	Text       *string
	Category   *string
	Weight     *int
	OrderIndex *int
	IsActive   *bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateQuestionRequest) (*repo.Question, error)
	// List returns all questions ordered by id. With activeOnly, only active
	// questions are returned, ordered by display order.
	List(ctx context.Context, activeOnly bool) ([]*repo.Question, error)
	GetByID(ctx context.Context, id int) (*repo.Question, error)
	Update(ctx context.Context, id int, req UpdateQuestionRequest) (*repo.Question, error)
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

func (s *service) Create(ctx context.Context, req CreateQuestionRequest) (*repo.Question, error) {
	if req.Text == "" {
		return nil, ErrTextRequired
	}

	q, err := s.db.Question.Create().
		SetText(req.Text).
		SetNillableCategory(req.Category).
		SetNillableWeight(req.Weight).
		SetNillableOrderIndex(req.OrderIndex).
		SetNillableIsActive(req.IsActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]*repo.Question, error) {
	q := s.db.Question.Query()
	if activeOnly {
		q = q.Where(entquestion.IsActive(true)).
			Order(entquestion.ByOrderIndex(), entquestion.ByID())
	} else {
		q = q.Order(entquestion.ByID())
	}
	return q.All(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*repo.Question, error) {
	q, err := s.db.Question.Query().
		Where(entquestion.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateQuestionRequest) (*repo.Question, error) {
	if req.Text != nil && *req.Text == "" {
		return nil, ErrTextRequired
	}

	q, err := s.db.Question.UpdateOneID(id).
		SetNillableText(req.Text).
		SetNillableCategory(req.Category).
		SetNillableWeight(req.Weight).
		SetNillableOrderIndex(req.OrderIndex).
		SetNillableIsActive(req.IsActive).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("update question: %w", err)
	}
	return q, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.db.Question.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("delete question: %w", err)
	}
	return nil
}
