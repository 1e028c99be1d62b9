package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"mealweek/cmd/fx/account_fx"
	"mealweek/cmd/fx/controllers_fx"
	"mealweek/cmd/fx/db_fx"
	"mealweek/cmd/fx/generation_fx"
	"mealweek/cmd/fx/grocery_fx"
	"mealweek/cmd/fx/mealplan_fx"
	"mealweek/cmd/fx/profile_fx"
	"mealweek/cmd/fx/summary_fx"
	"mealweek/cmd/fx/swap_fx"
	"mealweek/internal/api/controllers"
	"mealweek/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		generation_fx.Module,
		account_fx.Module,
		profile_fx.Module,
		mealplan_fx.Module,
		swap_fx.Module,
		grocery_fx.Module,
		summary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	mealPlanController *controllers.MealPlanController,
	prepController *controllers.PrepController,
	swapController *controllers.SwapController,
	groceryController *controllers.GroceryController,
	summaryController *controllers.SummaryController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		mealPlanController,
		prepController,
		swapController,
		groceryController,
		summaryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	mealPlanController *controllers.MealPlanController,
	prepController *controllers.PrepController,
	swapController *controllers.SwapController,
	groceryController *controllers.GroceryController,
	summaryController *controllers.SummaryController) {

	api := r.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	// Generation works without a token; the plan is just not saved.
	mealPlan := api.Group("/meal-plan")
	mealPlan.POST("", middleware.OptionalJWTAuthMiddleware(), mealPlanController.GeneratePlan)
	mealPlan.GET("", middleware.JWTAuthMiddleware(), mealPlanController.GetLatestPlan)
	mealPlan.GET("/all", middleware.JWTAuthMiddleware(), mealPlanController.GetAllPlans)
	mealPlan.GET("/:id", middleware.JWTAuthMiddleware(), mealPlanController.GetPlanById)
	mealPlan.DELETE("", middleware.JWTAuthMiddleware(), mealPlanController.DeletePlan)

	prepPlan := api.Group("/prep-plan", middleware.JWTAuthMiddleware())
	prepPlan.POST("", prepController.SaveProfile)
	prepPlan.GET("", prepController.GetProfile)
	prepPlan.DELETE("", prepController.DeleteProfile)

	swap := api.Group("/swap-meal")
	swap.POST("", swapController.GetSwapOptions)
	swap.PATCH("", middleware.JWTAuthMiddleware(), swapController.ApplySwap)
	swap.POST("/revert", middleware.JWTAuthMiddleware(), swapController.RevertSwap)
	swap.GET("/meals", middleware.JWTAuthMiddleware(), swapController.GetMealsByPlan)

	grocery := api.Group("/grocery", middleware.JWTAuthMiddleware())
	grocery.GET("", groceryController.GetGroceryList)
	grocery.PATCH("", groceryController.ToggleBought)
	grocery.DELETE("", groceryController.DeleteItem)
	grocery.GET("/budget", groceryController.WeeklyBudget)

	api.GET("/summary", middleware.JWTAuthMiddleware(), summaryController.GetSummary)
}
