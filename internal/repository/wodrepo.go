// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gaegulzip/wowa/internal/model"
)

// WodRepository provides access to workout rows.
type WodRepository interface {
	// Create inserts a new WOD and fills ID/CreatedAt/UpdatedAt.
	// Returns errs.ErrConflict if the partial unique index rejects a
	// second Base for the same (box, date).
	Create(ctx context.Context, w *model.Wod) error

	// GetByID loads a WOD by ID.
	GetByID(ctx context.Context, id int64) (*model.Wod, error)

	// GetBase loads the Base WOD for (boxID, date), errs.ErrNotFound if none.
	GetBase(ctx context.Context, boxID int64, date string) (*model.Wod, error)

	// ListPersonal returns all non-Base WODs for (boxID, date).
	ListPersonal(ctx context.Context, boxID int64, date string) ([]model.Wod, error)
}
