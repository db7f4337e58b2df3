// Package store is the read-only Record Store the triage views are computed from.
package store

import (
	"context"
	"errors"

	"civicpulse/models"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Repository hands out ordered, caller-owned copies of the records. Lookups
// report a missing record with ok=false and a nil error.
type Repository interface {
	Complaints(ctx context.Context) ([]models.Complaint, error)
	Complaint(ctx context.Context, id string) (models.Complaint, bool, error)
	Workers(ctx context.Context) ([]models.Worker, error)
	Worker(ctx context.Context, id string) (models.Worker, bool, error)
	Projects(ctx context.Context) ([]models.Project, error)
	Project(ctx context.Context, id string) (models.Project, bool, error)
}
