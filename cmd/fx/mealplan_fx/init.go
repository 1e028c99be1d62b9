package mealplan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"mealweek/internal/repositories"
	"mealweek/internal/services"
)

var Module = fx.Provide(
	provideMealPlanRepo, provideMealRepo, provideGroceryRepo, providePlanService)

func provideMealPlanRepo(db *gorm.DB) repositories.MealPlanRepository {
	return repositories.NewMealPlanRepository(db)
}

func provideMealRepo(db *gorm.DB) repositories.MealRepository {
	return repositories.NewMealRepository(db)
}

func provideGroceryRepo(db *gorm.DB) repositories.GroceryRepository {
	return repositories.NewGroceryRepository(db)
}

func providePlanService(
	generation services.GenerationServiceInterface,
	planRepo repositories.MealPlanRepository,
	mealRepo repositories.MealRepository,
	groceryRepo repositories.GroceryRepository,
	profileRepo repositories.ProfileRepository,
) services.PlanServiceInterface {
	return services.NewPlanService(generation, planRepo, mealRepo, groceryRepo, profileRepo)
}
