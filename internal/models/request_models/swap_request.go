package request_models

// SwapOptionsRequest asks the model for 3 alternatives for one slot.
type SwapOptionsRequest struct {
	Preference         string   `json:"preference"`
	MealType           string   `json:"meal_type"` // breakfast | lunch | dinner | snacks
	Goal               string   `json:"dietary_goals"`
	DailyCalories      int      `json:"daily_calories"`
	DietType           string   `json:"diet_type"`
	Allergies          []string `json:"allergies"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	Dislikes           []string `json:"dislikes"`
}

type SwapMealContent struct {
	RecipeName  string  `json:"recipe_name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

type NewGroceryItem struct {
	IngredientName string  `json:"ingredient_name"`
	Quantity       string  `json:"quantity"`
	Category       string  `json:"category"`
	EstimatedPrice float64 `json:"estimated_price"`
}

// ApplySwapRequest replaces one meal's content and its grocery items.
type ApplySwapRequest struct {
	MealID       string           `json:"meal_id"`
	MealPlanID   string           `json:"meal_plan_id"`
	NewMeal      SwapMealContent  `json:"new_meal"`
	GroceryItems []NewGroceryItem `json:"grocery_items"`
}

type RevertSwapRequest struct {
	MealID string `json:"meal_id"`
}
