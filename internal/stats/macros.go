package stats

import "math"

// MacroPercentages is a meal's macro split in whole percent. The three
// components are rounded independently and need not sum to exactly 100.
type MacroPercentages struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MacroBreakdown computes each macro's share of the combined gram total.
// A zero total yields 0/0/0 rather than dividing by zero.
func MacroBreakdown(protein, carbs, fat float64) MacroPercentages {
	total := protein + carbs + fat
	if total == 0 {
		return MacroPercentages{}
	}
	return MacroPercentages{
		Protein: int(math.Round(protein / total * 100)),
		Carbs:   int(math.Round(carbs / total * 100)),
		Fat:     int(math.Round(fat / total * 100)),
	}
}
