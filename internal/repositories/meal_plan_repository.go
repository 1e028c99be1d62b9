package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "mealweek/internal/models/db_models"
)

// GroceryRow is the persistence input for one generated grocery item.
// RecipeRef is the explicit join key back to the originating meal;
// resolution is exact-string and best effort.
type GroceryRow struct {
	IngredientName string
	Quantity       string
	Category       string
	EstimatedPrice float64
	RecipeRef      string
}

// PlanTotals are the weekly aggregates stored on the plan header.
type PlanTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type MealPlanRepository interface {
	CreateFullPlan(ctx context.Context, plan *dbm.MealPlan, meals []dbm.Meal, groceries []GroceryRow) (uuid.UUID, int, error)
	GetPlanById(ctx context.Context, planID string) (*dbm.MealPlan, error)
	GetLatestByAccountId(ctx context.Context, accountID string) (*dbm.MealPlan, error)
	ListByAccountId(ctx context.Context, accountID string) ([]dbm.MealPlan, error)
	UpdateTotals(ctx context.Context, planID string, totals PlanTotals) error
	DeletePlan(ctx context.Context, planID string) error
}

type mealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

// CreateFullPlan inserts the header, all meals and all grocery rows in
// one transaction. Returns the new plan id and the number of grocery
// rows whose recipe_ref matched no inserted meal (persisted with NULL
// meal_id, still plan-scoped).
func (r *mealPlanRepository) CreateFullPlan(
	ctx context.Context,
	plan *dbm.MealPlan,
	meals []dbm.Meal,
	groceries []GroceryRow,
) (uuid.UUID, int, error) {

	var outID uuid.UUID
	unassigned := 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		outID = plan.ID

		for i := range meals {
			meals[i].MealPlanID = plan.ID
		}
		if len(meals) > 0 {
			if err := tx.Create(&meals).Error; err != nil {
				return err
			}
		}

		mealIDByRecipe := make(map[string]uuid.UUID, len(meals))
		for _, m := range meals {
			mealIDByRecipe[m.RecipeName] = m.ID
		}

		rows := make([]dbm.GroceryItem, 0, len(groceries))
		for _, g := range groceries {
			item := dbm.GroceryItem{
				MealPlanID:     plan.ID,
				IngredientName: g.IngredientName,
				Quantity:       g.Quantity,
				Category:       g.Category,
				EstimatedPrice: g.EstimatedPrice,
				IsBought:       false,
			}
			if mealID, ok := mealIDByRecipe[g.RecipeRef]; ok {
				id := mealID
				item.MealID = &id
			} else {
				unassigned++
			}
			rows = append(rows, item)
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return uuid.Nil, 0, err
	}
	return outID, unassigned, nil
}

func (r *mealPlanRepository) GetPlanById(ctx context.Context, planID string) (*dbm.MealPlan, error) {

	var plan dbm.MealPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *mealPlanRepository) GetLatestByAccountId(ctx context.Context, accountID string) (*dbm.MealPlan, error) {

	var plan dbm.MealPlan
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		First(&plan).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *mealPlanRepository) ListByAccountId(ctx context.Context, accountID string) ([]dbm.MealPlan, error) {

	var plans []dbm.MealPlan
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *mealPlanRepository) UpdateTotals(ctx context.Context, planID string, totals PlanTotals) error {
	result := r.db.WithContext(ctx).
		Model(&dbm.MealPlan{}).
		Where("id = ?", planID).
		Updates(map[string]interface{}{
			"total_weekly_calories": totals.Calories,
			"total_weekly_protein":  totals.Protein,
			"total_weekly_carbs":    totals.Carbs,
			"total_weekly_fat":      totals.Fat,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePlan removes the plan and everything it owns.
func (r *mealPlanRepository) DeletePlan(ctx context.Context, planID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", planID).
			Delete(&dbm.GroceryItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_plan_id = ?", planID).
			Delete(&dbm.Meal{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", planID).Delete(&dbm.MealPlan{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
