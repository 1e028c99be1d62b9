package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "mealweek/internal/models/db_models"
	"mealweek/internal/models/request_models"
	resp "mealweek/internal/models/response_models"
	"mealweek/internal/repositories"
	"mealweek/pkg/utils"
)

type SwapServiceInterface interface {
	GenerateSwapOptions(ctx context.Context, req request_models.SwapOptionsRequest) ([]resp.MealOption, error)
	ApplySwap(ctx context.Context, req request_models.ApplySwapRequest) (*resp.SwapResult, error)
	RevertSwap(ctx context.Context, mealID string) error
	GetMealsByPlanId(ctx context.Context, planID string) ([]dbm.Meal, error)
	GetMealById(ctx context.Context, mealID string) (*dbm.Meal, error)
}

type SwapService struct {
	generation  GenerationServiceInterface
	mealRepo    repositories.MealRepository
	groceryRepo repositories.GroceryRepository
}

func NewSwapService(
	generation GenerationServiceInterface,
	mealRepo repositories.MealRepository,
	groceryRepo repositories.GroceryRepository,
) SwapServiceInterface {
	return &SwapService{
		generation:  generation,
		mealRepo:    mealRepo,
		groceryRepo: groceryRepo,
	}
}

func (s *SwapService) GenerateSwapOptions(ctx context.Context, req request_models.SwapOptionsRequest) ([]resp.MealOption, error) {
	return s.generation.GenerateSwapOptions(ctx, req)
}

// ApplySwap replaces the meal's content in place (identity preserved,
// swapped flag set) and swaps its grocery items for the new set.
func (s *SwapService) ApplySwap(ctx context.Context, req request_models.ApplySwapRequest) (*resp.SwapResult, error) {
	if req.MealID == "" || req.MealPlanID == "" || req.NewMeal.RecipeName == "" {
		return nil, utils.ErrInvalidInput
	}

	content := repositories.SwapContent{
		RecipeName:  req.NewMeal.RecipeName,
		Description: req.NewMeal.Description,
		ImageURL:    req.NewMeal.ImageURL,
		Calories:    req.NewMeal.Calories,
		Protein:     req.NewMeal.Protein,
		Carbs:       req.NewMeal.Carbs,
		Fat:         req.NewMeal.Fat,
	}

	items := make([]repositories.GroceryRow, 0, len(req.GroceryItems))
	for _, g := range req.GroceryItems {
		items = append(items, repositories.GroceryRow{
			IngredientName: g.IngredientName,
			Quantity:       g.Quantity,
			Category:       orDefault(g.Category, "Other"),
			EstimatedPrice: g.EstimatedPrice,
		})
	}

	meal, err := s.mealRepo.SwapMeal(ctx, req.MealID, req.MealPlanID, content, items)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrMealNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	groceries, err := s.groceryRepo.ListByMealId(ctx, req.MealID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.SwapResult{
		Meal:      *meal,
		Groceries: groceries,
	}, nil
}

// RevertSwap resets the swapped flag only; the pre-swap content is
// gone and stays gone.
func (s *SwapService) RevertSwap(ctx context.Context, mealID string) error {
	if mealID == "" {
		return utils.ErrInvalidInput
	}

	err := s.mealRepo.RevertSwap(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrMealNotFound
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *SwapService) GetMealsByPlanId(ctx context.Context, planID string) ([]dbm.Meal, error) {

	meals, err := s.mealRepo.ListByPlanId(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return meals, nil
}

func (s *SwapService) GetMealById(ctx context.Context, mealID string) (*dbm.Meal, error) {

	meal, err := s.mealRepo.GetMealById(ctx, mealID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if meal == nil {
		return nil, utils.ErrMealNotFound
	}

	return meal, nil
}
