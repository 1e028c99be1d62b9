package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "mealweek/internal/models/db_models"
)

// SwapContent is the replacement content for a swapped meal. Identity
// fields (id, plan, day, slot) are never touched.
type SwapContent struct {
	RecipeName  string
	Description string
	ImageURL    string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
}

type MealRepository interface {
	SwapMeal(ctx context.Context, mealID string, planID string, content SwapContent, newItems []GroceryRow) (*dbm.Meal, error)
	RevertSwap(ctx context.Context, mealID string) error
	GetMealById(ctx context.Context, mealID string) (*dbm.Meal, error)
	ListByPlanId(ctx context.Context, planID string) ([]dbm.Meal, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

// SwapMeal updates the meal content in place with is_swapped set,
// drops the grocery rows the meal introduced, and inserts the
// replacement rows, all in one transaction. Grocery rows of other
// meals in the plan are untouched.
func (r *mealRepository) SwapMeal(
	ctx context.Context,
	mealID string,
	planID string,
	content SwapContent,
	newItems []GroceryRow,
) (*dbm.Meal, error) {

	var updated dbm.Meal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal dbm.Meal
		if err := tx.First(&meal, "id = ? AND meal_plan_id = ?", mealID, planID).Error; err != nil {
			return err
		}

		meal.RecipeName = content.RecipeName
		meal.Description = content.Description
		meal.ImageURL = content.ImageURL
		meal.Calories = content.Calories
		meal.Protein = content.Protein
		meal.Carbs = content.Carbs
		meal.Fat = content.Fat
		meal.IsSwapped = true

		if err := tx.Save(&meal).Error; err != nil {
			return err
		}

		if err := tx.Where("meal_id = ?", meal.ID).
			Delete(&dbm.GroceryItem{}).Error; err != nil {
			return err
		}

		if len(newItems) > 0 {
			rows := make([]dbm.GroceryItem, 0, len(newItems))
			for _, g := range newItems {
				id := meal.ID
				rows = append(rows, dbm.GroceryItem{
					MealPlanID:     meal.MealPlanID,
					MealID:         &id,
					IngredientName: g.IngredientName,
					Quantity:       g.Quantity,
					Category:       g.Category,
					EstimatedPrice: g.EstimatedPrice,
					IsBought:       false,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		updated = meal
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RevertSwap clears the swapped flag only. Prior content is not
// retained anywhere, so this is a display reset, not an undo.
func (r *mealRepository) RevertSwap(ctx context.Context, mealID string) error {
	result := r.db.WithContext(ctx).
		Model(&dbm.Meal{}).
		Where("id = ?", mealID).
		Update("is_swapped", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mealRepository) GetMealById(ctx context.Context, mealID string) (*dbm.Meal, error) {

	var meal dbm.Meal
	err := r.db.WithContext(ctx).First(&meal, "id = ?", mealID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &meal, nil
}

func (r *mealRepository) ListByPlanId(ctx context.Context, planID string) ([]dbm.Meal, error) {

	var meals []dbm.Meal
	err := r.db.WithContext(ctx).
		Where("meal_plan_id = ?", planID).
		Order("day ASC").
		Find(&meals).Error

	if err != nil {
		return nil, err
	}

	return meals, nil
}
