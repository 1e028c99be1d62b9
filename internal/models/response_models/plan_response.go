package response_models

import (
	"mealweek/internal/models/db_models"
)

const (
	PlanSourcePersisted = "persisted"
	PlanSourceDraft     = "draft"
)

// PlanGenerationResponse is the POST /api/meal-plan body. Source tags
// whether the plan landed in the database or stays a browser draft.
// SaveError is set on the degraded path: generation succeeded but the
// save did not, and the plan is still returned.
type PlanGenerationResponse struct {
	Source     string           `json:"source"`
	PlanID     string           `json:"plan_id,omitempty"`
	Plan       *WeeklyPlanDraft `json:"plan"`
	Unassigned int              `json:"unassigned_groceries,omitempty"`
	SaveError  string           `json:"save_error,omitempty"`
}

// FullMealPlan is the reconstructed persisted shape: header plus meals
// ordered by day and groceries ordered by category.
type FullMealPlan struct {
	Plan      db_models.MealPlan      `json:"plan"`
	Meals     []db_models.Meal        `json:"meals"`
	Groceries []db_models.GroceryItem `json:"groceries"`
}

type SwapResult struct {
	Meal      db_models.Meal          `json:"meal"`
	Groceries []db_models.GroceryItem `json:"groceries"`
}

// SummaryReport is the dashboard view over the latest plan.
type SummaryReport struct {
	PlanID         string      `json:"plan_id"`
	StartDate      string      `json:"start_date"`
	WeeklyTotals   MacroTotals `json:"weekly_totals"`
	WeeklyBudget   float64     `json:"weekly_budget"`
	ItemsBought    int         `json:"items_bought"`
	ItemsRemaining int         `json:"items_remaining"`
	SwappedMeals   int         `json:"swapped_meals"`
}
