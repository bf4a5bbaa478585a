package stats

import "runnerspro/internal/training"

// Nutrition is a summed nutrition estimate.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// DailyNutrition sums the nutrition of all meals dated date. Meals without
// nutrition info, and unparsable figures, count as zero.
func DailyNutrition(meals []training.Meal, date string) Nutrition {
	var n Nutrition
	for _, m := range meals {
		if m.Date != date || m.NutritionInfo == nil {
			continue
		}
		n.Calories += atoiOrZero(m.NutritionInfo.Calories)
		n.Protein += atoiOrZero(m.NutritionInfo.Protein)
		n.Carbs += atoiOrZero(m.NutritionInfo.Carbs)
		n.Fat += atoiOrZero(m.NutritionInfo.Fat)
	}
	return n
}
