package wod

import (
	"testing"

	"github.com/gaegulzip/wowa/internal/model"
)

func ip(v int) *int         { return &v }
func fp(v float64) *float64 { return &v }

func amrap(timeCap int, movements ...model.Movement) model.ProgramData {
	return model.ProgramData{Type: model.WodTypeAMRAP, TimeCap: ip(timeCap), Movements: movements}
}

func TestCompare_TypeMismatch(t *testing.T) {
	t.Parallel()
	base := model.ProgramData{Type: model.WodTypeAMRAP, Movements: []model.Movement{{Name: "burpee"}}}
	cand := model.ProgramData{Type: model.WodTypeForTime, Movements: []model.Movement{{Name: "burpee"}}}
	if got := Compare(base, cand); got != model.ComparisonDifferent {
		t.Fatalf("type mismatch: got %s, want different", got)
	}
}

func TestCompare_TimeCap(t *testing.T) {
	t.Parallel()
	mv := model.Movement{Name: "burpee"}
	cases := []struct {
		name string
		base model.ProgramData
		cand model.ProgramData
		want model.ComparisonResult
	}{
		{
			// 33% over the base cap.
			name: "far apart",
			base: amrap(15, mv), cand: amrap(20, mv),
			want: model.ComparisonDifferent,
		},
		{
			// Exactly 10% of base: the band is strictly greater-than.
			name: "boundary exact",
			base: amrap(20, mv), cand: amrap(22, mv),
			want: model.ComparisonIdentical,
		},
		{
			name: "just over boundary",
			base: amrap(20, mv), cand: amrap(23, mv),
			want: model.ComparisonDifferent,
		},
		{
			name: "only base has cap",
			base: amrap(15, mv),
			cand: model.ProgramData{Type: model.WodTypeAMRAP, Movements: []model.Movement{mv}},
			want: model.ComparisonDifferent,
		},
		{
			name: "only candidate has cap",
			base: model.ProgramData{Type: model.WodTypeAMRAP, Movements: []model.Movement{mv}},
			cand: amrap(15, mv),
			want: model.ComparisonDifferent,
		},
		{
			name: "neither has cap",
			base: model.ProgramData{Type: model.WodTypeStrength, Movements: []model.Movement{mv}},
			cand: model.ProgramData{Type: model.WodTypeStrength, Movements: []model.Movement{mv}},
			want: model.ComparisonIdentical,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.base, tc.cand); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCompare_MovementCountMismatch(t *testing.T) {
	t.Parallel()
	base := amrap(15, model.Movement{Name: "burpee"}, model.Movement{Name: "row"})
	cand := amrap(15, model.Movement{Name: "burpee"})
	if got := Compare(base, cand); got != model.ComparisonDifferent {
		t.Fatalf("count mismatch: got %s, want different", got)
	}
}

// A normalized-name mismatch at any position is a hard gate: the result is
// different no matter how close everything else is.
func TestCompare_NameHardGate(t *testing.T) {
	t.Parallel()
	base := amrap(15,
		model.Movement{Name: "pull-up", Reps: ip(10)},
		model.Movement{Name: "thruster", Reps: ip(10)},
	)
	cand := amrap(15,
		model.Movement{Name: "pull-up", Reps: ip(10)},
		model.Movement{Name: "deadlift", Reps: ip(10)},
	)
	if got := Compare(base, cand); got != model.ComparisonDifferent {
		t.Fatalf("name mismatch: got %s, want different", got)
	}
}

func TestCompare_NamesEqualAfterNormalization(t *testing.T) {
	t.Parallel()
	// Worked example: "Pull-up" vs "pull up" normalize equal, no numeric
	// difference anywhere.
	base := amrap(15, model.Movement{Name: "Pull-up", Reps: ip(10)})
	cand := amrap(15, model.Movement{Name: "pull up", Reps: ip(10)})
	if got := Compare(base, cand); got != model.ComparisonIdentical {
		t.Fatalf("got %s, want identical", got)
	}
}

func TestCompare_RepsSoftBand(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		baseReps int
		candReps int
		want     model.ComparisonResult
	}{
		// Worked example: 10 vs 15 is a 50% delta, soft flag only.
		{"well over band", 10, 15, model.ComparisonSimilar},
		// Exactly 10% of base does not trigger.
		{"boundary exact", 20, 22, model.ComparisonIdentical},
		{"just over boundary", 20, 23, model.ComparisonSimilar},
		{"equal", 10, 10, model.ComparisonIdentical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := amrap(15, model.Movement{Name: "pull-up", Reps: ip(tc.baseReps)})
			cand := amrap(15, model.Movement{Name: "pull-up", Reps: ip(tc.candReps)})
			if got := Compare(base, cand); got != tc.want {
				t.Fatalf("reps %d vs %d: got %s, want %s", tc.baseReps, tc.candReps, got, tc.want)
			}
		})
	}
}

func TestCompare_RepsPresenceMismatch(t *testing.T) {
	t.Parallel()
	base := amrap(15, model.Movement{Name: "pull-up", Reps: ip(10)})
	cand := amrap(15, model.Movement{Name: "pull-up"})
	if got := Compare(base, cand); got != model.ComparisonDifferent {
		t.Fatalf("one-sided reps: got %s, want different", got)
	}
}

func TestCompare_WeightSoftBand(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		baseWeight float64
		candWeight float64
		want       model.ComparisonResult
	}{
		// 5% band on weight, strictly greater-than.
		{"boundary exact", 100, 105, model.ComparisonIdentical},
		{"just over boundary", 100, 105.5, model.ComparisonSimilar},
		{"scaled load", 60, 40, model.ComparisonSimilar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := amrap(15, model.Movement{Name: "deadlift", Weight: fp(tc.baseWeight), Unit: model.UnitKg})
			cand := amrap(15, model.Movement{Name: "deadlift", Weight: fp(tc.candWeight), Unit: model.UnitKg})
			if got := Compare(base, cand); got != tc.want {
				t.Fatalf("weight %v vs %v: got %s, want %s", tc.baseWeight, tc.candWeight, got, tc.want)
			}
		})
	}
}

func TestCompare_WeightPresenceMismatch(t *testing.T) {
	t.Parallel()
	base := amrap(15, model.Movement{Name: "deadlift", Weight: fp(100)})
	cand := amrap(15, model.Movement{Name: "deadlift"})
	if got := Compare(base, cand); got != model.ComparisonDifferent {
		t.Fatalf("one-sided weight: got %s, want different", got)
	}
}

// Bands are computed relative to base, so the comparison is directional.
// 20 -> 22 is exactly 10% of base 20 (within band) but 22 -> 20 is ~9.1%
// of base 22 (also within); pick values where direction matters.
func TestCompare_Asymmetry(t *testing.T) {
	t.Parallel()
	a := amrap(15, model.Movement{Name: "pull-up", Reps: ip(10)})
	b := amrap(15, model.Movement{Name: "pull-up", Reps: ip(11)})
	// 10 -> 11: delta 1 == 10% of 10, within band.
	if got := Compare(a, b); got != model.ComparisonIdentical {
		t.Fatalf("Compare(a,b) = %s, want identical", got)
	}
	// 11 -> 10: delta 1 < 10% of 11? 1.1 > 1, also within. Use timeCap.
	x := amrap(10, model.Movement{Name: "row"})
	y := amrap(11, model.Movement{Name: "row"})
	// 10 -> 11: delta 1 == 10% of 10, within band.
	if got := Compare(x, y); got != model.ComparisonIdentical {
		t.Fatalf("Compare(x,y) = %s, want identical", got)
	}
	// 11 -> 10 is within band too; a genuinely asymmetric pair:
	p := amrap(9, model.Movement{Name: "row"})
	q := amrap(10, model.Movement{Name: "row"})
	// 9 -> 10: delta 1 > 0.9, different.
	if got := Compare(p, q); got != model.ComparisonDifferent {
		t.Fatalf("Compare(p,q) = %s, want different", got)
	}
	// 10 -> 9: delta 1 == 10% of 10, within band.
	if got := Compare(q, p); got != model.ComparisonIdentical {
		t.Fatalf("Compare(q,p) = %s, want identical", got)
	}
}

// Soft flags from reps/weight never upgrade a later hard gate, and a hard
// gate anywhere wins over accumulated soft flags.
func TestCompare_HardGateBeatsSoftFlags(t *testing.T) {
	t.Parallel()
	base := amrap(15,
		model.Movement{Name: "wall ball", Reps: ip(10)},
		model.Movement{Name: "row", Reps: ip(20)},
	)
	cand := amrap(15,
		model.Movement{Name: "wall ball", Reps: ip(20)}, // soft difference
		model.Movement{Name: "run", Reps: ip(20)},       // hard gate
	)
	if got := Compare(base, cand); got != model.ComparisonDifferent {
		t.Fatalf("got %s, want different", got)
	}
}
