package grocery_fx

import (
	"go.uber.org/fx"

	"mealweek/internal/repositories"
	"mealweek/internal/services"
)

var Module = fx.Provide(provideGroceryService)

func provideGroceryService(groceryRepo repositories.GroceryRepository) services.GroceryServiceInterface {
	return services.NewGroceryService(groceryRepo)
}
