package db_models

import (
	"github.com/google/uuid"
)

const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeDinner    = "Dinner"
	MealTypeSnack     = "Snack"
)

// Meal is one slot of one day of a plan. A day has at most one row per
// slot except Snack, which may repeat. Swaps mutate content in place
// and keep the row's identity.
type Meal struct {
	BaseModel
	MealPlanID  uuid.UUID `gorm:"type:uuid;index" json:"meal_plan_id"`
	Day         int       `json:"day"` // 1..7
	MealType    string    `json:"meal_type"`
	RecipeName  string    `json:"recipe_name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	IsSwapped   bool      `json:"is_swapped"`
}
