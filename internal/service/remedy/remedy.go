package remedy

import (
	"context"
	"fmt"

	"github.com/mindcare/mindcare_backend/internal/repo"
	entremedy "github.com/mindcare/mindcare_backend/internal/repo/remedy"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRemedyRequest struct {
	DisorderID  int
	Title       string
	Description *string
	Category    *string
}

type UpdateRemedyRequest struct {
	DisorderID  *int
	Title       *string
	Description *string
	Category    *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRemedyRequest) (*repo.Remedy, error)
	// List returns all remedies ordered by id, optionally scoped to one disorder.
	List(ctx context.Context, disorderID *int) ([]*repo.Remedy, error)
	GetByID(ctx context.Context, id int) (*repo.Remedy, error)
	Update(ctx context.Context, id int, req UpdateRemedyRequest) (*repo.Remedy, error)
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

func (s *service) Create(ctx context.Context, req CreateRemedyRequest) (*repo.Remedy, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	r, err := s.db.Remedy.Create().
		SetDisorderID(req.DisorderID).
		SetTitle(req.Title).
		SetNillableDescription(req.Description).
		SetNillableCategory(req.Category).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrInvalidDisorderRef
		}
		return nil, fmt.Errorf("create remedy: %w", err)
	}
	return r, nil
}

func (s *service) List(ctx context.Context, disorderID *int) ([]*repo.Remedy, error) {
	q := s.db.Remedy.Query().Order(entremedy.ByID())
	if disorderID != nil {
		q = q.Where(entremedy.DisorderID(*disorderID))
	}
	return q.All(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*repo.Remedy, error) {
	r, err := s.db.Remedy.Query().
		Where(entremedy.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRemedyNotFound
		}
		return nil, fmt.Errorf("get remedy: %w", err)
	}
	return r, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRemedyRequest) (*repo.Remedy, error) {
	if req.Title != nil && *req.Title == "" {
		return nil, ErrTitleRequired
	}

	r, err := s.db.Remedy.UpdateOneID(id).
		SetNillableDisorderID(req.DisorderID).
		SetNillableTitle(req.Title).
		SetNillableDescription(req.Description).
		SetNillableCategory(req.Category).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrRemedyNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrInvalidDisorderRef
		}
		return nil, fmt.Errorf("update remedy: %w", err)
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.db.Remedy.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrRemedyNotFound
		}
		return fmt.Errorf("delete remedy: %w", err)
	}
	return nil
}
