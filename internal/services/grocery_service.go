package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "mealweek/internal/models/db_models"
	"mealweek/internal/repositories"
	"mealweek/pkg/utils"
)

type GroceryServiceInterface interface {
	GetGroceryList(ctx context.Context, planID string) ([]dbm.GroceryItem, error)
	ToggleBought(ctx context.Context, groceryID string) error
	DeleteItem(ctx context.Context, groceryID string) error
	WeeklyBudget(ctx context.Context, planID string) (float64, error)
}

type GroceryService struct {
	groceryRepo repositories.GroceryRepository
}

func NewGroceryService(groceryRepo repositories.GroceryRepository) GroceryServiceInterface {
	return &GroceryService{groceryRepo: groceryRepo}
}

func (g *GroceryService) GetGroceryList(ctx context.Context, planID string) ([]dbm.GroceryItem, error) {

	items, err := g.groceryRepo.ListByPlanId(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return items, nil
}

func (g *GroceryService) ToggleBought(ctx context.Context, groceryID string) error {
	if groceryID == "" {
		return utils.ErrInvalidInput
	}

	err := g.groceryRepo.ToggleBought(ctx, groceryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrGroceryItemNotFound
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (g *GroceryService) DeleteItem(ctx context.Context, groceryID string) error {
	if groceryID == "" {
		return utils.ErrInvalidInput
	}

	err := g.groceryRepo.DeleteItem(ctx, groceryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrGroceryItemNotFound
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (g *GroceryService) WeeklyBudget(ctx context.Context, planID string) (float64, error) {

	total, err := g.groceryRepo.WeeklyBudget(ctx, planID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	return total, nil
}
