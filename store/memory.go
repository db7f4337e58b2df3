package store

import (
	"context"

	"civicpulse/fixtures"
	"civicpulse/models"
)

// MemoryStore serves a validated fixture dataset. It is never written after
// construction, so concurrent readers need no locking.
type MemoryStore struct {
	complaints []models.Complaint
	workers    []models.Worker
	projects   []models.Project
}

func NewMemoryStore(ds *fixtures.Dataset) *MemoryStore {
	return &MemoryStore{
		complaints: clone(ds.Complaints),
		workers:    clone(ds.Workers),
		projects:   clone(ds.Projects),
	}
}

func (s *MemoryStore) Complaints(ctx context.Context) ([]models.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return clone(s.complaints), nil
}

func (s *MemoryStore) Complaint(ctx context.Context, id string) (models.Complaint, bool, error) {
	return lookup(ctx, s.complaints, id, func(c models.Complaint) string { return c.ID })
}

func (s *MemoryStore) Workers(ctx context.Context) ([]models.Worker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return clone(s.workers), nil
}

func (s *MemoryStore) Worker(ctx context.Context, id string) (models.Worker, bool, error) {
	return lookup(ctx, s.workers, id, func(w models.Worker) string { return w.ID })
}

func (s *MemoryStore) Projects(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return clone(s.projects), nil
}

func (s *MemoryStore) Project(ctx context.Context, id string) (models.Project, bool, error) {
	return lookup(ctx, s.projects, id, func(p models.Project) string { return p.ID })
}

func clone[T any](list []T) []T {
	return append(make([]T, 0, len(list)), list...)
}

func lookup[T any](ctx context.Context, list []T, id string, key func(T) string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	for _, v := range list {
		if key(v) == id {
			return v, true, nil
		}
	}
	return zero, false, nil
}
