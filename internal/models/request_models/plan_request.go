package request_models

// PlanPreferences is the preference context used both for generation
// and for the stored dietary profile.
type PlanPreferences struct {
	Goal               string   `json:"dietary_goals"`
	DietType           string   `json:"diet_type"`
	CaloriesTarget     int      `json:"calories_target"`
	Allergies          []string `json:"allergies"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	Dislikes           []string `json:"dislikes"`
}

type GeneratePlanRequest struct {
	PlanPreferences
}
