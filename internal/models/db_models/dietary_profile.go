package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DietaryProfile holds the preference context a plan is generated
// from. At most one row per account; saves are upserts.
type DietaryProfile struct {
	BaseModel
	AccountID          uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	Goal               string         `json:"dietary_goals"`
	DietType           string         `json:"diet_type"`
	CaloriesTarget     int            `json:"calories_target"`
	Allergies          pq.StringArray `gorm:"type:text[]" json:"allergies"`
	CuisinePreferences pq.StringArray `gorm:"type:text[]" json:"cuisine_preferences"`
	Dislikes           pq.StringArray `gorm:"type:text[]" json:"dislikes"`
}
