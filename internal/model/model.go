// Package model defines domain entities used by services and repositories.
package model

import (
	"fmt"
	"time"

	"github.com/gaegulzip/wowa/internal/errs"
)

// WodType is the closed set of program kinds. Custom is the escape hatch for
// programs that fit none of the named formats.
type WodType string

const (
	WodTypeAMRAP    WodType = "AMRAP"
	WodTypeForTime  WodType = "ForTime"
	WodTypeEMOM     WodType = "EMOM"
	WodTypeStrength WodType = "Strength"
	WodTypeCustom   WodType = "Custom"
)

// Valid reports whether t is one of the known program kinds.
func (t WodType) Valid() bool {
	switch t {
	case WodTypeAMRAP, WodTypeForTime, WodTypeEMOM, WodTypeStrength, WodTypeCustom:
		return true
	}
	return false
}

// WeightUnit qualifies a movement's prescribed load. "bw" means bodyweight.
type WeightUnit string

const (
	UnitKg WeightUnit = "kg"
	UnitLb WeightUnit = "lb"
	UnitBw WeightUnit = "bw"
)

// Valid reports whether u is a known weight unit.
func (u WeightUnit) Valid() bool {
	switch u {
	case UnitKg, UnitLb, UnitBw:
		return true
	}
	return false
}

// ComparisonResult classifies how a candidate program relates to the Base.
type ComparisonResult string

const (
	ComparisonIdentical ComparisonResult = "identical"
	ComparisonSimilar   ComparisonResult = "similar"
	ComparisonDifferent ComparisonResult = "different"
)

// ProposalStatus is the state of a Base-change proposal. Approved and
// rejected are terminal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

// Valid reports whether s is a known proposal status.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalPending, ProposalApproved, ProposalRejected:
		return true
	}
	return false
}

// Movement is a single prescribed exercise within a program. Order matters:
// comparison is positional.
type Movement struct {
	Name         string     `json:"name"`
	Reps         *int       `json:"reps,omitempty"`
	Weight       *float64   `json:"weight,omitempty"`
	Unit         WeightUnit `json:"unit,omitempty"`
	Distance     *float64   `json:"distance,omitempty"`
	DistanceUnit string     `json:"distanceUnit,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// ProgramData is the structured form of a workout, stored as jsonb alongside
// the raw text the member typed.
type ProgramData struct {
	Type      WodType    `json:"type"`
	TimeCap   *int       `json:"timeCap,omitempty"`
	Rounds    *int       `json:"rounds,omitempty"`
	Movements []Movement `json:"movements"`
	Notes     string     `json:"notes,omitempty"`
}

// Validate checks the structural rules for a submitted program. All failures
// wrap errs.ErrValidation so callers can map them uniformly.
func (p *ProgramData) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown wod type %q", errs.ErrValidation, p.Type)
	}
	if p.TimeCap != nil && *p.TimeCap <= 0 {
		return fmt.Errorf("%w: timeCap must be positive", errs.ErrValidation)
	}
	if p.Rounds != nil && *p.Rounds <= 0 {
		return fmt.Errorf("%w: rounds must be positive", errs.ErrValidation)
	}
	if len(p.Movements) == 0 {
		return fmt.Errorf("%w: at least one movement required", errs.ErrValidation)
	}
	for i := range p.Movements {
		if err := p.Movements[i].validate(); err != nil {
			return fmt.Errorf("movement[%d]: %w", i, err)
		}
	}
	return nil
}

func (m *Movement) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: movement name is required", errs.ErrValidation)
	}
	if m.Reps != nil && *m.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", errs.ErrValidation)
	}
	if m.Weight != nil && *m.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", errs.ErrValidation)
	}
	if m.Unit != "" && !m.Unit.Valid() {
		return fmt.Errorf("%w: unknown weight unit %q", errs.ErrValidation, m.Unit)
	}
	if m.Distance != nil && *m.Distance <= 0 {
		return fmt.Errorf("%w: distance must be positive", errs.ErrValidation)
	}
	if m.Duration != nil && *m.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", errs.ErrValidation)
	}
	return nil
}

// Clone returns a deep copy sharing no mutable substructure with p.
// Selection snapshots rely on this to stay immune to later edits of the
// source WOD.
func (p *ProgramData) Clone() ProgramData {
	out := ProgramData{
		Type:    p.Type,
		TimeCap: cloneInt(p.TimeCap),
		Rounds:  cloneInt(p.Rounds),
		Notes:   p.Notes,
	}
	if p.Movements != nil {
		out.Movements = make([]Movement, len(p.Movements))
		for i := range p.Movements {
			m := p.Movements[i]
			m.Reps = cloneInt(m.Reps)
			m.Weight = cloneFloat(m.Weight)
			m.Distance = cloneFloat(m.Distance)
			m.Duration = cloneInt(m.Duration)
			out.Movements[i] = m
		}
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Wod is a dated workout prescription within a box. The first submission for
// a (box, date) becomes Base; later ones are Personal variants. The IsBase
// flag flips in both directions during proposal approval, never by deletion.
type Wod struct {
	ID          int64
	BoxID       int64
	Date        string // YYYY-MM-DD, day granularity
	ProgramData ProgramData
	RawText     string
	IsBase      bool
	CreatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WodWithComparison is a Wod annotated with how it relates to its day's Base.
type WodWithComparison struct {
	Wod
	ComparisonResult ComparisonResult
}

// RegisterWodInput is a member's workout submission.
type RegisterWodInput struct {
	BoxID       int64
	Date        string
	ProgramData ProgramData
	RawText     string
	CreatedBy   int64
}

// WodsByDateResult groups a day's Base WOD (if any) with all Personal
// variants, each annotated with its comparison against the Base.
type WodsByDateResult struct {
	BaseWod      *Wod
	PersonalWods []WodWithComparison
}

// ProposedChange is a pending request to swap a Personal WOD into the Base
// slot. Created automatically when a submission diverges from the Base.
type ProposedChange struct {
	ID            int64
	BaseWodID     int64
	ProposedWodID int64
	Status        ProposalStatus
	ProposedAt    time.Time
	ResolvedAt    *time.Time
	ResolvedBy    *int64
}

// ProposalFilter narrows ListProposals. Zero values mean "no filter".
type ProposalFilter struct {
	BaseWodID int64
	Status    ProposalStatus
}

// WodSelection records which WOD a user picked for a day, with a frozen
// snapshot of its program at selection time. One row per (user, box, date).
type WodSelection struct {
	ID           int64
	UserID       int64
	WodID        int64
	BoxID        int64
	Date         string
	SnapshotData ProgramData
	CreatedAt    time.Time
}

// SelectWodInput is a user's daily WOD choice.
type SelectWodInput struct {
	UserID int64
	WodID  int64
	BoxID  int64
	Date   string
}
