package db_models

import (
	"github.com/google/uuid"
)

// GroceryItem belongs to a plan. MealID is a non-owning back-reference
// to the meal that introduced the item; it is NULL when the generated
// recipe_ref did not match any meal of the plan. Swap-scoped deletion
// goes through MealID only.
type GroceryItem struct {
	BaseModel
	MealPlanID     uuid.UUID  `gorm:"type:uuid;index" json:"meal_plan_id"`
	MealID         *uuid.UUID `gorm:"type:uuid;index" json:"meal_id,omitempty"`
	IngredientName string     `json:"ingredient_name"`
	Quantity       string     `json:"quantity"`
	Category       string     `json:"category"`
	EstimatedPrice float64    `json:"estimated_price"`
	IsBought       bool       `json:"is_bought"`
}
