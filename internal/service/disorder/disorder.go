package disorder

import (
	"context"
	"fmt"

	"github.com/mindcare/mindcare_backend/internal/repo"
	entdisorder "github.com/mindcare/mindcare_backend/internal/repo/disorder"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateDisorderRequest struct {
	Name        string
	Description *string
	Symptoms    *string
}

type UpdateDisorderRequest struct {
	Name        *string
	Description *string
	Symptoms    *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateDisorderRequest) (*repo.Disorder, error)
	// List returns all disorders ordered by id. A non-empty search term
	// filters by case-insensitive substring match on name and description.
	List(ctx context.Context, search string) ([]*repo.Disorder, error)
	GetByID(ctx context.Context, id int) (*repo.Disorder, error)
	Update(ctx context.Context, id int, req UpdateDisorderRequest) (*repo.Disorder, error)
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

func (s *service) Create(ctx context.Context, req CreateDisorderRequest) (*repo.Disorder, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	// Check uniqueness
	exists, err := s.db.Disorder.Query().
		Where(entdisorder.Name(req.Name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check disorder: %w", err)
	}
	if exists {
		return nil, ErrDisorderExists
	}

	d, err := s.db.Disorder.Create().
		SetName(req.Name).
		SetNillableDescription(req.Description).
		SetNillableSymptoms(req.Symptoms).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDisorderExists
		}
		return nil, fmt.Errorf("create disorder: %w", err)
	}
	return d, nil
}

func (s *service) List(ctx context.Context, search string) ([]*repo.Disorder, error) {
	q := s.db.Disorder.Query().Order(entdisorder.ByID())
	if search != "" {
		q = q.Where(entdisorder.Or(
			entdisorder.NameContainsFold(search),
			entdisorder.DescriptionContainsFold(search),
		))
	}
	return q.All(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*repo.Disorder, error) {
	d, err := s.db.Disorder.Query().
		Where(entdisorder.ID(id)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDisorderNotFound
		}
		return nil, fmt.Errorf("get disorder: %w", err)
	}
	return d, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateDisorderRequest) (*repo.Disorder, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, ErrNameRequired
	}

	d, err := s.db.Disorder.UpdateOneID(id).
		SetNillableName(req.Name).
		SetNillableDescription(req.Description).
		SetNillableSymptoms(req.Symptoms).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDisorderNotFound
		}
		if repo.IsConstraintError(err) {
			return nil, ErrDisorderExists
		}
		return nil, fmt.Errorf("update disorder: %w", err)
	}
	return d, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	err := s.db.Disorder.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrDisorderNotFound
		}
		return fmt.Errorf("delete disorder: %w", err)
	}
	return nil
}
