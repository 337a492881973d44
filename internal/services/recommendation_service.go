package services

import "strings"

// Recommendation holds the canned guidance computed from a saved profile.
// BMI is nil when the height is missing or zero.
type Recommendation struct {
	BMI      *float64      `json:"bmi"`
	Guidance GuidanceTexts `json:"recommendation"`
}

type GuidanceTexts struct {
	Training    string `json:"training"`
	Reps        string `json:"reps"`
	Cardio      string `json:"cardio"`
	BiotypeNote string `json:"biotype_note"`
}

// Recommend maps a body profile to a BMI value and fixed advice texts.
// Goal and biotype are matched by case-insensitive substring; the numeric
// inputs only affect the BMI, never which texts fire.
func Recommend(heightCM, weightKG float64, biotype, goal string) Recommendation {
	heightM := heightCM / 100.0

	var bmi *float64
	if heightM > 0 {
		value := weightKG / (heightM * heightM)
		bmi = &value
	}

	goalLower := strings.ToLower(goal)
	biotypeLower := strings.ToLower(biotype)

	var guidance GuidanceTexts
	switch {
	case strings.Contains(goalLower, "hiper") || strings.Contains(goalLower, "massa"):
		guidance.Training = "4-6x/week (Upper/Lower or Push/Pull/Legs) with progressive overload"
		guidance.Reps = "6-12 on main lifts, 12-20 on accessories"
		guidance.Cardio = "2x light/week for health, nothing excessive"
	case strings.Contains(goalLower, "emag") || strings.Contains(goalLower, "defin") || strings.Contains(goalLower, "cut"):
		guidance.Training = "3-5x/week (Full body or Upper/Lower), consistency first"
		guidance.Reps = "8-15 with moderate volume"
		guidance.Cardio = "2-4x/week (20-35min) plus daily steps"
	default:
		guidance.Training = "3-4x/week (Full body or Upper/Lower), perfect technique"
		guidance.Reps = "8-12 as the default range"
		guidance.Cardio = "2x light/week"
	}

	switch {
	case strings.Contains(biotypeLower, "ecto"):
		guidance.BiotypeNote = "Focus on eating enough plus heavy basics. Keep cardio low."
	case strings.Contains(biotypeLower, "endo"):
		guidance.BiotypeNote = "Focus on a light-to-moderate deficit, daily steps and sleep."
	case strings.Contains(biotypeLower, "meso"):
		guidance.BiotypeNote = "Responds well to volume plus progression. Recovery rules."
	default:
		guidance.BiotypeNote = "Biotype is a reference. Consistency, progression and diet decide."
	}

	return Recommendation{BMI: bmi, Guidance: guidance}
}
