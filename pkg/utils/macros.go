package utils

import "math"

// Fixed calorie share per meal slot of the daily target.
var SlotCalorieShares = map[string]float64{
	"breakfast": 0.25,
	"lunch":     0.35,
	"dinner":    0.30,
	"snacks":    0.10,
}

type MacroRatio struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// Macro split per dietary goal. Weight Loss and Muscle Gain share a
// split; Maintenance leans heavier on carbs.
var GoalMacroRatios = map[string]MacroRatio{
	"Weight Loss": {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
	"Muscle Gain": {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
	"Maintenance": {Protein: 0.25, Carbs: 0.45, Fat: 0.30},
}

// SlotEnvelope is the calorie/macro target for a single meal slot.
// Gram targets use 4 kcal/g for protein and carbs, 9 kcal/g for fat.
type SlotEnvelope struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

func ComputeSlotEnvelope(goal string, dailyCalories int, slot string) (SlotEnvelope, bool) {
	share, ok := SlotCalorieShares[slot]
	if !ok {
		return SlotEnvelope{}, false
	}
	ratio, ok := GoalMacroRatios[goal]
	if !ok {
		return SlotEnvelope{}, false
	}

	mealCalories := float64(dailyCalories) * share
	return SlotEnvelope{
		Calories: int(math.Round(mealCalories)),
		Protein:  int(math.Round(mealCalories * ratio.Protein / 4)),
		Carbs:    int(math.Round(mealCalories * ratio.Carbs / 4)),
		Fat:      int(math.Round(mealCalories * ratio.Fat / 9)),
	}, true
}
