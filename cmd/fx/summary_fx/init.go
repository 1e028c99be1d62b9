package summary_fx

import (
	"go.uber.org/fx"

	"mealweek/internal/repositories"
	"mealweek/internal/services"
)

var Module = fx.Provide(provideSummaryService)

func provideSummaryService(
	planRepo repositories.MealPlanRepository,
	mealRepo repositories.MealRepository,
	groceryRepo repositories.GroceryRepository,
) services.SummaryServiceInterface {
	return services.NewSummaryService(planRepo, mealRepo, groceryRepo)
}
