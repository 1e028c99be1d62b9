package services

import (
	"context"

	resp "mealweek/internal/models/response_models"
	"mealweek/internal/repositories"
	"mealweek/pkg/utils"
)

type SummaryServiceInterface interface {
	BuildSummary(ctx context.Context, accountID string) (*resp.SummaryReport, error)
}

type SummaryService struct {
	planRepo    repositories.MealPlanRepository
	mealRepo    repositories.MealRepository
	groceryRepo repositories.GroceryRepository
}

func NewSummaryService(
	planRepo repositories.MealPlanRepository,
	mealRepo repositories.MealRepository,
	groceryRepo repositories.GroceryRepository,
) SummaryServiceInterface {
	return &SummaryService{
		planRepo:    planRepo,
		mealRepo:    mealRepo,
		groceryRepo: groceryRepo,
	}
}

// BuildSummary aggregates the account's latest plan: header totals,
// grocery budget and purchase progress, swap count.
func (s *SummaryService) BuildSummary(ctx context.Context, accountID string) (*resp.SummaryReport, error) {

	plan, err := s.planRepo.GetLatestByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	planID := plan.ID.String()

	budget, err := s.groceryRepo.WeeklyBudget(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items, err := s.groceryRepo.ListByPlanId(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	bought := 0
	for _, item := range items {
		if item.IsBought {
			bought++
		}
	}

	meals, err := s.mealRepo.ListByPlanId(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	swapped := 0
	for _, meal := range meals {
		if meal.IsSwapped {
			swapped++
		}
	}

	return &resp.SummaryReport{
		PlanID:    planID,
		StartDate: plan.StartDate,
		WeeklyTotals: resp.MacroTotals{
			Calories: plan.TotalWeeklyCals,
			Protein:  plan.TotalWeeklyProtein,
			Carbs:    plan.TotalWeeklyCarbs,
			Fats:     plan.TotalWeeklyFat,
		},
		WeeklyBudget:   budget,
		ItemsBought:    bought,
		ItemsRemaining: len(items) - bought,
		SwappedMeals:   swapped,
	}, nil
}
