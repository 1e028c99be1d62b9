package repositories

import (
	"context"

	"gorm.io/gorm"
	dbm "mealweek/internal/models/db_models"
)

type GroceryRepository interface {
	ListByPlanId(ctx context.Context, planID string) ([]dbm.GroceryItem, error)
	ListByMealId(ctx context.Context, mealID string) ([]dbm.GroceryItem, error)
	ToggleBought(ctx context.Context, groceryID string) error
	DeleteItem(ctx context.Context, groceryID string) error
	WeeklyBudget(ctx context.Context, planID string) (float64, error)
}

type groceryRepository struct {
	db *gorm.DB
}

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) ListByPlanId(ctx context.Context, planID string) ([]dbm.GroceryItem, error) {

	var items []dbm.GroceryItem
	err := r.db.WithContext(ctx).
		Where("meal_plan_id = ?", planID).
		Order("category ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *groceryRepository) ListByMealId(ctx context.Context, mealID string) ([]dbm.GroceryItem, error) {

	var items []dbm.GroceryItem
	err := r.db.WithContext(ctx).
		Where("meal_id = ?", mealID).
		Order("category ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

// ToggleBought flips the purchased flag in place; two toggles are a
// round trip back to the original state.
func (r *groceryRepository) ToggleBought(ctx context.Context, groceryID string) error {
	result := r.db.WithContext(ctx).
		Model(&dbm.GroceryItem{}).
		Where("id = ?", groceryID).
		Update("is_bought", gorm.Expr("NOT is_bought"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groceryRepository) DeleteItem(ctx context.Context, groceryID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", groceryID).
		Delete(&dbm.GroceryItem{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groceryRepository) WeeklyBudget(ctx context.Context, planID string) (float64, error) {

	var total float64
	err := r.db.WithContext(ctx).
		Model(&dbm.GroceryItem{}).
		Where("meal_plan_id = ?", planID).
		Select("COALESCE(SUM(estimated_price), 0)").
		Scan(&total).Error

	if err != nil {
		return 0, err
	}

	return total, nil
}
