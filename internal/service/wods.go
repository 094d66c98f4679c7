// Package service contains application services for WOD registration,
// proposals and selections.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gaegulzip/wowa/internal/errs"
	"github.com/gaegulzip/wowa/internal/model"
	"github.com/gaegulzip/wowa/internal/repository"
	"github.com/gaegulzip/wowa/internal/wod"
)

// WodService defines workout registration and per-day lookup.
type WodService interface {
	// Register stores a submitted workout. The first submission for a
	// (box, date) becomes Base; later ones are compared against it and may
	// spawn a change proposal.
	Register(ctx context.Context, in model.RegisterWodInput) (*model.WodWithComparison, error)
	// WodsByDate returns the day's Base (if any) plus all Personal
	// variants with their comparison results.
	WodsByDate(ctx context.Context, boxID int64, date string) (*model.WodsByDateResult, error)
}

type WodServiceImpl struct {
	wods      repository.WodRepository
	proposals repository.ProposalRepository
	log       *zap.Logger
}

// NewWodService constructs WodService.
func NewWodService(wods repository.WodRepository, proposals repository.ProposalRepository, log *zap.Logger) *WodServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &WodServiceImpl{wods: wods, proposals: proposals, log: log}
}

// Register validates the submission, then check-then-insert: look up the
// existing Base and insert the new row accordingly. The lookup and insert are
// not one transaction; two concurrent first submissions can both see "no Base",
// and the partial unique index is the backstop that rejects the loser with
// errs.ErrConflict.
func (s *WodServiceImpl) Register(ctx context.Context, in model.RegisterWodInput) (*model.WodWithComparison, error) {
	if in.BoxID <= 0 || in.CreatedBy <= 0 {
		return nil, fmt.Errorf("%w: boxId and createdBy must be positive", errs.ErrValidation)
	}
	if !validDate(in.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", errs.ErrValidation)
	}
	if in.RawText == "" {
		return nil, fmt.Errorf("%w: raw text is required", errs.ErrValidation)
	}
	if err := in.ProgramData.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.wods.GetBase(ctx, in.BoxID, in.Date)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	newWod := &model.Wod{
		BoxID:       in.BoxID,
		Date:        in.Date,
		ProgramData: in.ProgramData,
		RawText:     in.RawText,
		IsBase:      existing == nil,
		CreatedBy:   in.CreatedBy,
	}
	if err := s.wods.Create(ctx, newWod); err != nil {
		return nil, err
	}

	if existing == nil {
		// First WOD of the day defines the standard; nothing to compare.
		s.log.Info("wod_registered",
			zap.Int64("wodId", newWod.ID),
			zap.Int64("boxId", in.BoxID),
			zap.String("date", in.Date),
			zap.Bool("isBase", true),
		)
		return &model.WodWithComparison{Wod: *newWod, ComparisonResult: model.ComparisonIdentical}, nil
	}

	result := wod.Compare(existing.ProgramData, in.ProgramData)

	if result == model.ComparisonDifferent {
		if _, err := s.proposals.Create(ctx, existing.ID, newWod.ID); err != nil {
			return nil, err
		}
		s.log.Info("wod_difference_detected",
			zap.Int64("baseWodId", existing.ID),
			zap.Int64("proposedWodId", newWod.ID),
			zap.Int64("boxId", in.BoxID),
			zap.String("date", in.Date),
		)
	}

	return &model.WodWithComparison{Wod: *newWod, ComparisonResult: result}, nil
}

// WodsByDate loads the Base and Personal WODs for a day. Comparison results
// are computed on read so they always reflect the current Base.
func (s *WodServiceImpl) WodsByDate(ctx context.Context, boxID int64, date string) (*model.WodsByDateResult, error) {
	if boxID <= 0 {
		return nil, fmt.Errorf("%w: boxId must be positive", errs.ErrValidation)
	}
	if !validDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", errs.ErrValidation)
	}

	base, err := s.wods.GetBase(ctx, boxID, date)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	personals, err := s.wods.ListPersonal(ctx, boxID, date)
	if err != nil {
		return nil, err
	}

	out := &model.WodsByDateResult{BaseWod: base, PersonalWods: make([]model.WodWithComparison, 0, len(personals))}
	for _, p := range personals {
		result := model.ComparisonIdentical
		if base != nil {
			result = wod.Compare(base.ProgramData, p.ProgramData)
		}
		out.PersonalWods = append(out.PersonalWods, model.WodWithComparison{Wod: p, ComparisonResult: result})
	}
	return out, nil
}

// validDate reports whether s is a calendar date in YYYY-MM-DD form.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil && len(s) == 10
}
