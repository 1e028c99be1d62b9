package swap_fx

import (
	"go.uber.org/fx"

	"mealweek/internal/repositories"
	"mealweek/internal/services"
)

var Module = fx.Provide(provideSwapService)

func provideSwapService(
	generation services.GenerationServiceInterface,
	mealRepo repositories.MealRepository,
	groceryRepo repositories.GroceryRepository,
) services.SwapServiceInterface {
	return services.NewSwapService(generation, mealRepo, groceryRepo)
}
