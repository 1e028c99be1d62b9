package controllers_fx

import (
	"go.uber.org/fx"

	"mealweek/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewMealPlanController),
	fx.Provide(controllers.NewPrepController),
	fx.Provide(controllers.NewSwapController),
	fx.Provide(controllers.NewGroceryController),
	fx.Provide(controllers.NewSummaryController))
