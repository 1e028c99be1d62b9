package response_models

import "encoding/json"

// MacroTotals are the four leaf values every aggregation reduces over.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type DraftMeal struct {
	RecipeName  string  `json:"recipe_name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	ImageURL    string  `json:"image_url"`
}

// UnmarshalJSON accepts both "fats" and "fat"; the model is not
// consistent about the key.
func (m *DraftMeal) UnmarshalJSON(data []byte) error {
	type alias DraftMeal
	aux := struct {
		*alias
		Fat float64 `json:"fat"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if m.Fats == 0 {
		m.Fats = aux.Fat
	}
	return nil
}

type DayMeals struct {
	Breakfast DraftMeal   `json:"breakfast"`
	Lunch     DraftMeal   `json:"lunch"`
	Dinner    DraftMeal   `json:"dinner"`
	Snacks    []DraftMeal `json:"snacks"`
}

type DayPlan struct {
	Day    int         `json:"day"`
	Meals  DayMeals    `json:"meals"`
	Totals MacroTotals `json:"totals"`
}

type DraftGroceryItem struct {
	IngredientName string  `json:"ingredient_name"`
	Quantity       string  `json:"quantity"`
	Category       string  `json:"category"`
	EstimatedPrice float64 `json:"estimated_price"`
	// RecipeRef is the documented join key back to the meal that
	// introduced the item. Matching is exact-string, best effort.
	RecipeRef string `json:"recipe_ref,omitempty"`
}

// WeeklyPlanDraft is the parsed generation result. The same shape
// serves the unauthenticated draft path and the persistence input.
type WeeklyPlanDraft struct {
	Days        []DayPlan          `json:"days"`
	GroceryList []DraftGroceryItem `json:"grocery_list"`
}

// MealOption is one of the three swap candidates.
type MealOption struct {
	RecipeName   string             `json:"recipe_name"`
	Description  string             `json:"description"`
	Calories     float64            `json:"calories"`
	Protein      float64            `json:"protein"`
	Carbs        float64            `json:"carbs"`
	Fats         float64            `json:"fats"`
	ImageURL     string             `json:"image_url"`
	GroceryItems []DraftGroceryItem `json:"grocery_items"`
}

// RecomputeTotals rebuilds every day's totals from the slot macros,
// snacks summed first. Idempotent; missing fields count as zero.
func (p *WeeklyPlanDraft) RecomputeTotals() {
	for i := range p.Days {
		day := &p.Days[i]
		totals := MacroTotals{}
		for _, m := range []DraftMeal{day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner} {
			totals.Calories += m.Calories
			totals.Protein += m.Protein
			totals.Carbs += m.Carbs
			totals.Fats += m.Fats
		}
		for _, s := range day.Meals.Snacks {
			totals.Calories += s.Calories
			totals.Protein += s.Protein
			totals.Carbs += s.Carbs
			totals.Fats += s.Fats
		}
		day.Totals = totals
	}
}

// WeeklyTotals reduces day totals into the plan-header aggregates.
func (p *WeeklyPlanDraft) WeeklyTotals() MacroTotals {
	out := MacroTotals{}
	for _, d := range p.Days {
		out.Calories += d.Totals.Calories
		out.Protein += d.Totals.Protein
		out.Carbs += d.Totals.Carbs
		out.Fats += d.Totals.Fats
	}
	return out
}
