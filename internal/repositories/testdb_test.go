package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbm "mealweek/internal/models/db_models"
)

// newTestDB opens a per-test in-memory sqlite database. DietaryProfile
// is postgres-only (text[] columns) and is not migrated here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&dbm.Account{}, &dbm.MealPlan{}, &dbm.Meal{}, &dbm.GroceryItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

type seededPlan struct {
	planID     uuid.UUID
	accountID  uuid.UUID
	unassigned int
	meals      []dbm.Meal
}

// seedPlan creates one plan with a breakfast and a lunch, two groceries
// joined by recipe_ref and one grocery with an unmatched ref.
func seedPlan(t *testing.T, db *gorm.DB) seededPlan {
	t.Helper()

	repo := NewMealPlanRepository(db)
	accountID := uuid.New()

	plan := &dbm.MealPlan{
		AccountID:          accountID,
		StartDate:          "2026-08-24",
		TotalWeeklyCals:    14000,
		TotalWeeklyProtein: 700,
		TotalWeeklyCarbs:   1400,
		TotalWeeklyFat:     400,
	}
	meals := []dbm.Meal{
		{Day: 1, MealType: dbm.MealTypeBreakfast, RecipeName: "Congee", Calories: 450},
		{Day: 1, MealType: dbm.MealTypeLunch, RecipeName: "Bun Cha", Calories: 700},
	}
	groceries := []GroceryRow{
		{IngredientName: "Rice", Quantity: "500gr", Category: "Pantry", EstimatedPrice: 2, RecipeRef: "Congee"},
		{IngredientName: "Pork", Quantity: "300gr", Category: "Protein", EstimatedPrice: 6, RecipeRef: "Bun Cha"},
		{IngredientName: "Fish Sauce", Quantity: "100ml", Category: "Pantry", EstimatedPrice: 3, RecipeRef: "No Such Recipe"},
	}

	planID, unassigned, err := repo.CreateFullPlan(context.Background(), plan, meals, groceries)
	if err != nil {
		t.Fatalf("CreateFullPlan: %v", err)
	}

	return seededPlan{planID: planID, accountID: accountID, unassigned: unassigned, meals: meals}
}
