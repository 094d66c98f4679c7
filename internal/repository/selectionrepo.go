package repository

import (
	"context"

	"github.com/gaegulzip/wowa/internal/model"
)

// SelectionRepository stores users' daily WOD choices.
type SelectionRepository interface {
	// Upsert inserts the selection or, if one already exists for
	// (UserID, BoxID, Date), overwrites its WodID/SnapshotData and
	// refreshes CreatedAt. Fills ID/CreatedAt on return.
	Upsert(ctx context.Context, s *model.WodSelection) error

	// ListByUser returns a user's selections, optionally bounded by an
	// inclusive date range. Empty strings mean unbounded.
	ListByUser(ctx context.Context, userID int64, startDate, endDate string) ([]model.WodSelection, error)
}
