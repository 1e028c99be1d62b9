package db_models

import (
	"github.com/google/uuid"
)

// MealPlan is the header row of one 7-day generation. Weekly totals
// are fixed at creation from the sum of the contained meals.
type MealPlan struct {
	BaseModel
	AccountID          uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	StartDate          string    `json:"start_date"` // YYYY-MM-DD
	TotalWeeklyCals    float64   `gorm:"column:total_weekly_calories" json:"total_weekly_calories"`
	TotalWeeklyProtein float64   `json:"total_weekly_protein"`
	TotalWeeklyCarbs   float64   `json:"total_weekly_carbs"`
	TotalWeeklyFat     float64   `json:"total_weekly_fat"`

	Meals        []Meal        `gorm:"foreignKey:MealPlanID" json:"-"`
	GroceryItems []GroceryItem `gorm:"foreignKey:MealPlanID" json:"-"`
}
