package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "mealweek/internal/models/db_models"
)

func TestCreateFullPlanJoinsGroceriesByRecipeRef(t *testing.T) {
	db := newTestDB(t)
	seeded := seedPlan(t, db)

	if seeded.unassigned != 1 {
		t.Errorf("unassigned = %d, want 1", seeded.unassigned)
	}

	var items []dbm.GroceryItem
	if err := db.Where("meal_plan_id = ?", seeded.planID).Find(&items).Error; err != nil {
		t.Fatalf("load groceries: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("groceries = %d, want 3", len(items))
	}

	nullRefs := 0
	for _, item := range items {
		if item.MealID == nil {
			nullRefs++
			if item.IngredientName != "Fish Sauce" {
				t.Errorf("unmatched item = %q, want Fish Sauce", item.IngredientName)
			}
		}
	}
	if nullRefs != 1 {
		t.Errorf("items with NULL meal_id = %d, want 1", nullRefs)
	}
}

func TestGetPlanById(t *testing.T) {
	db := newTestDB(t)
	seeded := seedPlan(t, db)
	repo := NewMealPlanRepository(db)

	plan, err := repo.GetPlanById(context.Background(), seeded.planID.String())
	if err != nil {
		t.Fatalf("GetPlanById: %v", err)
	}
	if plan == nil {
		t.Fatal("plan not found")
	}
	if plan.AccountID != seeded.accountID {
		t.Errorf("account = %v, want %v", plan.AccountID, seeded.accountID)
	}

	missing, err := repo.GetPlanById(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("GetPlanById(missing): %v", err)
	}
	if missing != nil {
		t.Error("missing plan should yield nil, nil")
	}
}

func TestGetLatestByAccountIdPrefersNewest(t *testing.T) {
	db := newTestDB(t)
	repo := NewMealPlanRepository(db)
	accountID := uuid.New()

	older := &dbm.MealPlan{AccountID: accountID, StartDate: "2026-08-10"}
	newer := &dbm.MealPlan{AccountID: accountID, StartDate: "2026-08-17"}
	if _, _, err := repo.CreateFullPlan(context.Background(), older, nil, nil); err != nil {
		t.Fatalf("create older: %v", err)
	}
	if _, _, err := repo.CreateFullPlan(context.Background(), newer, nil, nil); err != nil {
		t.Fatalf("create newer: %v", err)
	}

	// Both rows land in the same second; force distinct timestamps.
	if err := db.Model(&dbm.MealPlan{}).Where("id = ?", newer.ID).
		UpdateColumn("created_at", older.CreatedAt+60).Error; err != nil {
		t.Fatalf("bump created_at: %v", err)
	}

	latest, err := repo.GetLatestByAccountId(context.Background(), accountID.String())
	if err != nil {
		t.Fatalf("GetLatestByAccountId: %v", err)
	}
	if latest == nil || latest.ID != newer.ID {
		t.Errorf("latest = %v, want %v", latest, newer.ID)
	}

	none, err := repo.GetLatestByAccountId(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("GetLatestByAccountId(empty): %v", err)
	}
	if none != nil {
		t.Error("account without plans should yield nil, nil")
	}
}

func TestListByAccountIdScopesToAccount(t *testing.T) {
	db := newTestDB(t)
	repo := NewMealPlanRepository(db)

	mine := seedPlan(t, db)
	seedPlan(t, db) // someone else's plan

	plans, err := repo.ListByAccountId(context.Background(), mine.accountID.String())
	if err != nil {
		t.Fatalf("ListByAccountId: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("plans = %d, want 1", len(plans))
	}
	if plans[0].ID != mine.planID {
		t.Errorf("plan = %v, want %v", plans[0].ID, mine.planID)
	}
}

func TestUpdateTotals(t *testing.T) {
	db := newTestDB(t)
	seeded := seedPlan(t, db)
	repo := NewMealPlanRepository(db)

	totals := PlanTotals{Calories: 15000, Protein: 750, Carbs: 1500, Fat: 420}
	if err := repo.UpdateTotals(context.Background(), seeded.planID.String(), totals); err != nil {
		t.Fatalf("UpdateTotals: %v", err)
	}

	plan, err := repo.GetPlanById(context.Background(), seeded.planID.String())
	if err != nil || plan == nil {
		t.Fatalf("reload plan: %v", err)
	}
	if plan.TotalWeeklyCals != 15000 || plan.TotalWeeklyFat != 420 {
		t.Errorf("totals not applied: %+v", plan)
	}

	err = repo.UpdateTotals(context.Background(), uuid.New().String(), totals)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing plan: err = %v, want ErrRecordNotFound", err)
	}
}

func TestDeletePlanCascades(t *testing.T) {
	db := newTestDB(t)
	seeded := seedPlan(t, db)
	repo := NewMealPlanRepository(db)

	if err := repo.DeletePlan(context.Background(), seeded.planID.String()); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}

	plan, err := repo.GetPlanById(context.Background(), seeded.planID.String())
	if err != nil {
		t.Fatalf("GetPlanById: %v", err)
	}
	if plan != nil {
		t.Error("deleted plan still readable")
	}

	var mealCount, groceryCount int64
	db.Model(&dbm.Meal{}).Where("meal_plan_id = ?", seeded.planID).Count(&mealCount)
	db.Model(&dbm.GroceryItem{}).Where("meal_plan_id = ?", seeded.planID).Count(&groceryCount)
	if mealCount != 0 || groceryCount != 0 {
		t.Errorf("leftovers after delete: meals=%d groceries=%d", mealCount, groceryCount)
	}

	err = repo.DeletePlan(context.Background(), uuid.New().String())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing plan: err = %v, want ErrRecordNotFound", err)
	}
}
