package service

import (
	"context"
	"fmt"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
	"github.com/gaegulzip/wowa/internal/repository"
)

// SelectionService records which WOD a user picked for a day.
type SelectionService interface {
	// Select snapshots the chosen WOD's program and upserts the user's
	// selection for that (box, date).
	Select(ctx context.Context, in model.SelectWodInput) (*model.WodSelection, error)
	// Selections returns the user's selection history, optionally bounded
	// by an inclusive date range (empty strings mean unbounded).
	Selections(ctx context.Context, userID int64, startDate, endDate string) ([]model.WodSelection, error)
}

type SelectionServiceImpl struct {
	selections repository.SelectionRepository
	wods       repository.WodRepository
}

// NewSelectionService constructs SelectionService.
func NewSelectionService(selections repository.SelectionRepository, wods repository.WodRepository) *SelectionServiceImpl {
	return &SelectionServiceImpl{selections: selections, wods: wods}
}

// Select loads the chosen WOD and stores a deep-copied snapshot of its
// program. Later Base swaps or edits to the source WOD never alter what the
// user is recorded as having chosen.
func (s *SelectionServiceImpl) Select(ctx context.Context, in model.SelectWodInput) (*model.WodSelection, error) {
	if in.UserID <= 0 || in.WodID <= 0 || in.BoxID <= 0 {
		return nil, fmt.Errorf("%w: userId, wodId and boxId must be positive", errs.ErrValidation)
	}
	if !validDate(in.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", errs.ErrValidation)
	}

	w, err := s.wods.GetByID(ctx, in.WodID)
	if err != nil {
		return nil, fmt.Errorf("wod %d: %w", in.WodID, err)
	}

	sel := &model.WodSelection{
		UserID:       in.UserID,
		WodID:        in.WodID,
		BoxID:        in.BoxID,
		Date:         in.Date,
		SnapshotData: w.ProgramData.Clone(),
	}
	if err := s.selections.Upsert(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// Selections validates the range and queries.
func (s *SelectionServiceImpl) Selections(ctx context.Context, userID int64, startDate, endDate string) ([]model.WodSelection, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userId must be positive", errs.ErrValidation)
	}
	if startDate != "" && !validDate(startDate) {
		return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", errs.ErrValidation)
	}
	if endDate != "" && !validDate(endDate) {
		return nil, fmt.Errorf("%w: endDate must be YYYY-MM-DD", errs.ErrValidation)
	}
	return s.selections.ListByUser(ctx, userID, startDate, endDate)
}
