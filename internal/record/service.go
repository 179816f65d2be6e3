package record

import (
	"context"
	"fmt"

	"covidjournal/internal/platform/validation"
)

// Service provides the saved-records journal.
type Service struct {
	repo Repository
}

// NewService creates a new record service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates rec and stores it, returning the assigned id.
func (s *Service) Create(ctx context.Context, rec NewRecord) (int64, error) {
	if errs := validation.Struct(rec); errs != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidForm, validation.Join(errs))
	}
	return s.repo.Insert(ctx, rec)
}

// List returns all saved records.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Get returns the record with id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (Record, error) {
	if !inIDRange(id) {
		return Record{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Delete removes the record with id whether or not it exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if !inIDRange(id) {
		return nil
	}
	return s.repo.Delete(ctx, id)
}
