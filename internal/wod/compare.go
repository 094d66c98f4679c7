package wod

import (
	"math"

	"github.com/gaegulzip/wowa/internal/model"
)

// Tolerance bands for numeric fields, relative to the base value. Strictly
// greater-than: a delta of exactly the band does not count as a difference.
const (
	timeCapTolerance = 0.10
	repsTolerance    = 0.10
	weightTolerance  = 0.05
)

// Compare classifies candidate against base. The result is asymmetric:
// tolerance bands are computed relative to base, so Compare(a, b) and
// Compare(b, a) may disagree near a band edge.
//
// Hard gates (any failure short-circuits to different): program type,
// one-sided timeCap or >10% timeCap delta, movement count, normalized
// movement name at each position, one-sided reps or weight. Reps within
// both sides but off by more than 10% (weight: 5%) only flag the pair as
// similar.
func Compare(base, candidate model.ProgramData) model.ComparisonResult {
	if base.Type != candidate.Type {
		return model.ComparisonDifferent
	}

	if base.TimeCap != nil && candidate.TimeCap != nil {
		diff := math.Abs(float64(*base.TimeCap) - float64(*candidate.TimeCap))
		if diff > float64(*base.TimeCap)*timeCapTolerance {
			return model.ComparisonDifferent
		}
	} else if (base.TimeCap == nil) != (candidate.TimeCap == nil) {
		return model.ComparisonDifferent
	}

	if len(base.Movements) != len(candidate.Movements) {
		return model.ComparisonDifferent
	}

	// Positional comparison: movement i of base against movement i of
	// candidate, no reordering heuristic.
	softDifference := false
	for i := range base.Movements {
		bm := &base.Movements[i]
		cm := &candidate.Movements[i]

		if NormalizeExerciseName(bm.Name) != NormalizeExerciseName(cm.Name) {
			return model.ComparisonDifferent
		}

		if bm.Reps != nil && cm.Reps != nil {
			diff := math.Abs(float64(*bm.Reps) - float64(*cm.Reps))
			if diff > float64(*bm.Reps)*repsTolerance {
				softDifference = true
			}
		} else if (bm.Reps == nil) != (cm.Reps == nil) {
			return model.ComparisonDifferent
		}

		if bm.Weight != nil && cm.Weight != nil {
			diff := math.Abs(*bm.Weight - *cm.Weight)
			if diff > *bm.Weight*weightTolerance {
				softDifference = true
			}
		} else if (bm.Weight == nil) != (cm.Weight == nil) {
			return model.ComparisonDifferent
		}
	}

	if softDifference {
		return model.ComparisonSimilar
	}
	return model.ComparisonIdentical
}
