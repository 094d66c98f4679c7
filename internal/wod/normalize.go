// Package wod holds the pure comparison core: exercise-name normalization
// and the structural diff between two workout programs. Nothing in this
// package touches the database.
package wod

import "strings"

// exerciseSynonyms maps spelling/abbreviation variants to one canonical
// hyphenated slug per exercise. Read-only, fixed at build time.
var exerciseSynonyms = map[string]string{
	// Pull-up variants
	"pullup":          "pull-up",
	"pull up":         "pull-up",
	"kipping pull-up": "pull-up",
	"kipping pullup":  "pull-up",

	// Clean & Jerk variants
	"c&j":            "clean-and-jerk",
	"c and j":        "clean-and-jerk",
	"c & j":          "clean-and-jerk",
	"clean and jerk": "clean-and-jerk",
	"clean & jerk":   "clean-and-jerk",

	// Snatch variants
	"sq snatch":    "squat-snatch",
	"squat snatch": "squat-snatch",

	// Box Jump variants
	"box jump": "box-jump",
	"boxjump":  "box-jump",

	// Push-up variants
	"pushup":  "push-up",
	"push up": "push-up",

	// Air Squat variants
	"air squat": "air-squat",
	"airsquat":  "air-squat",

	// Double Under variants
	"double under": "double-under",
	"doubleunder":  "double-under",
	"du":           "double-under",

	// Handstand Push-up variants
	"hspu":              "handstand-push-up",
	"handstand pushup":  "handstand-push-up",
	"handstand push up": "handstand-push-up",

	// Muscle Up variants
	"muscle up": "muscle-up",
	"muscleup":  "muscle-up",
	"mu":        "muscle-up",

	// Toes to Bar variants
	"toes to bar": "toes-to-bar",
	"ttb":         "toes-to-bar",

	// Knees to Elbow variants
	"knees to elbow": "knees-to-elbow",
	"k2e":            "knees-to-elbow",

	// Chest to Bar variants
	"chest to bar": "chest-to-bar",
	"c2b":          "chest-to-bar",

	// Wall Ball variants
	"wall ball": "wall-ball",
	"wallball":  "wall-ball",

	// Kettlebell Swing variants
	"kb swing":         "kettlebell-swing",
	"kettlebell swing": "kettlebell-swing",

	// Burpee variants
	"burpees": "burpee",
	"burpie":  "burpee",

	// Deadlift variants
	"dl":        "deadlift",
	"dead lift": "deadlift",

	// Back Squat variants
	"back squat": "back-squat",
	"backsquat":  "back-squat",
	"bs":         "back-squat",

	// Front Squat variants
	"front squat": "front-squat",
	"frontsquat":  "front-squat",
	"fs":          "front-squat",

	// Overhead Squat variants
	"overhead squat": "overhead-squat",
	"ohs":            "overhead-squat",

	// Bench Press variants
	"bench press": "bench-press",
	"benchpress":  "bench-press",
	"bp":          "bench-press",

	// Shoulder Press variants
	"shoulder press": "shoulder-press",
	"shoulderpress":  "shoulder-press",
	"press":          "shoulder-press",

	// Power Clean variants
	"power clean": "power-clean",
	"powerclean":  "power-clean",
	"pc":          "power-clean",

	// Power Snatch variants
	"power snatch": "power-snatch",
	"powersnatch":  "power-snatch",
	"ps":           "power-snatch",

	// Thruster variants
	"thrusters": "thruster",

	// Row variants
	"rowing": "row",
	"rower":  "row",

	// Run variants
	"running": "run",
}

// NormalizeExerciseName maps a free-text exercise name to its canonical
// hyphenated slug. Unknown names get a generic normalization: whitespace
// runs and underscores become hyphens. Every input yields a deterministic
// result; the function never fails.
func NormalizeExerciseName(name string) string {
	lowered := strings.TrimSpace(strings.ToLower(name))

	if canonical, ok := exerciseSynonyms[lowered]; ok {
		return canonical
	}

	generic := strings.Join(strings.Fields(lowered), "-")
	return strings.ReplaceAll(generic, "_", "-")
}
