package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	dbm "mealweek/internal/models/db_models"
	"mealweek/internal/models/request_models"
	resp "mealweek/internal/models/response_models"
	"mealweek/internal/repositories"
	"mealweek/pkg/utils"
)

type stubPlanRepo struct {
	createErr     error
	createdPlan   *dbm.MealPlan
	createdMeals  []dbm.Meal
	createdItems  []repositories.GroceryRow
	returnID      uuid.UUID
	unassigned    int
	plansByID     map[string]*dbm.MealPlan
	latest        *dbm.MealPlan
	deletedPlanID string
}

func (s *stubPlanRepo) CreateFullPlan(_ context.Context, plan *dbm.MealPlan, meals []dbm.Meal, groceries []repositories.GroceryRow) (uuid.UUID, int, error) {
	if s.createErr != nil {
		return uuid.Nil, 0, s.createErr
	}
	s.createdPlan = plan
	s.createdMeals = meals
	s.createdItems = groceries
	return s.returnID, s.unassigned, nil
}

func (s *stubPlanRepo) GetPlanById(_ context.Context, planID string) (*dbm.MealPlan, error) {
	return s.plansByID[planID], nil
}

func (s *stubPlanRepo) GetLatestByAccountId(_ context.Context, _ string) (*dbm.MealPlan, error) {
	return s.latest, nil
}

func (s *stubPlanRepo) ListByAccountId(_ context.Context, _ string) ([]dbm.MealPlan, error) {
	return nil, nil
}

func (s *stubPlanRepo) UpdateTotals(_ context.Context, _ string, _ repositories.PlanTotals) error {
	return nil
}

func (s *stubPlanRepo) DeletePlan(_ context.Context, planID string) error {
	s.deletedPlanID = planID
	return nil
}

type stubMealRepo struct{}

func (s *stubMealRepo) SwapMeal(_ context.Context, _, _ string, _ repositories.SwapContent, _ []repositories.GroceryRow) (*dbm.Meal, error) {
	return nil, nil
}
func (s *stubMealRepo) RevertSwap(_ context.Context, _ string) error { return nil }
func (s *stubMealRepo) GetMealById(_ context.Context, _ string) (*dbm.Meal, error) {
	return nil, nil
}
func (s *stubMealRepo) ListByPlanId(_ context.Context, _ string) ([]dbm.Meal, error) {
	return nil, nil
}

type stubGroceryRepo struct{}

func (s *stubGroceryRepo) ListByPlanId(_ context.Context, _ string) ([]dbm.GroceryItem, error) {
	return nil, nil
}
func (s *stubGroceryRepo) ListByMealId(_ context.Context, _ string) ([]dbm.GroceryItem, error) {
	return nil, nil
}
func (s *stubGroceryRepo) ToggleBought(_ context.Context, _ string) error { return nil }
func (s *stubGroceryRepo) DeleteItem(_ context.Context, _ string) error { return nil }
func (s *stubGroceryRepo) WeeklyBudget(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

type stubProfileRepo struct {
	upserted *dbm.DietaryProfile
}

func (s *stubProfileRepo) Upsert(_ context.Context, profile *dbm.DietaryProfile) (*dbm.DietaryProfile, error) {
	s.upserted = profile
	return profile, nil
}
func (s *stubProfileRepo) GetByAccountId(_ context.Context, _ uuid.UUID) (*dbm.DietaryProfile, error) {
	return s.upserted, nil
}
func (s *stubProfileRepo) DeleteByAccountId(_ context.Context, _ uuid.UUID) error { return nil }

func newPlanServiceForTest(t *testing.T, client utils.GenerationClientInterface, planRepo *stubPlanRepo, profileRepo *stubProfileRepo) PlanServiceInterface {
	t.Helper()
	return NewPlanService(
		NewGenerationService(client),
		planRepo,
		&stubMealRepo{},
		&stubGroceryRepo{},
		profileRepo,
	)
}

func validGenerateRequest() request_models.GeneratePlanRequest {
	return request_models.GeneratePlanRequest{
		PlanPreferences: request_models.PlanPreferences{
			Goal:           "Maintenance",
			CaloriesTarget: 2000,
		},
	}
}

func TestGenerateAndStoreAnonymousReturnsDraft(t *testing.T) {
	planRepo := &stubPlanRepo{}
	svc := newPlanServiceForTest(t, &fakeGenerationClient{reply: weeklyPlanJSON(t, 7)}, planRepo, &stubProfileRepo{})

	result, err := svc.GenerateAndStore(context.Background(), "", validGenerateRequest())
	if err != nil {
		t.Fatalf("GenerateAndStore: %v", err)
	}

	if result.Source != resp.PlanSourceDraft {
		t.Errorf("source = %q, want %q", result.Source, resp.PlanSourceDraft)
	}
	if result.PlanID != "" {
		t.Errorf("plan id = %q, want empty for draft", result.PlanID)
	}
	if planRepo.createdPlan != nil {
		t.Error("anonymous generation must not persist anything")
	}
}

func TestGenerateAndStorePersistsForAuthenticatedAccount(t *testing.T) {
	planID := uuid.New()
	planRepo := &stubPlanRepo{returnID: planID, unassigned: 1}
	profileRepo := &stubProfileRepo{}
	svc := newPlanServiceForTest(t, &fakeGenerationClient{reply: weeklyPlanJSON(t, 7)}, planRepo, profileRepo)

	accountID := uuid.New().String()
	result, err := svc.GenerateAndStore(context.Background(), accountID, validGenerateRequest())
	if err != nil {
		t.Fatalf("GenerateAndStore: %v", err)
	}

	if result.Source != resp.PlanSourcePersisted {
		t.Errorf("source = %q, want %q", result.Source, resp.PlanSourcePersisted)
	}
	if result.PlanID != planID.String() {
		t.Errorf("plan id = %q, want %q", result.PlanID, planID.String())
	}
	if result.Unassigned != 1 {
		t.Errorf("unassigned = %d, want 1", result.Unassigned)
	}
	if profileRepo.upserted == nil {
		t.Error("generation preferences should be saved as the profile")
	}

	// 7 days x (breakfast + lunch + dinner + 1 snack)
	if len(planRepo.createdMeals) != 28 {
		t.Errorf("meals = %d, want 28", len(planRepo.createdMeals))
	}
	if planRepo.createdPlan.TotalWeeklyCals != 2000*7 {
		t.Errorf("weekly calories = %v, want %v", planRepo.createdPlan.TotalWeeklyCals, 2000*7)
	}
}

func TestGenerateAndStoreDegradesOnSaveFailure(t *testing.T) {
	planRepo := &stubPlanRepo{createErr: errors.New("connection refused")}
	svc := newPlanServiceForTest(t, &fakeGenerationClient{reply: weeklyPlanJSON(t, 7)}, planRepo, &stubProfileRepo{})

	result, err := svc.GenerateAndStore(context.Background(), uuid.New().String(), validGenerateRequest())
	if err != nil {
		t.Fatalf("save failure must not surface as an error: %v", err)
	}

	if result.Source != resp.PlanSourceDraft {
		t.Errorf("source = %q, want %q", result.Source, resp.PlanSourceDraft)
	}
	if result.SaveError == "" {
		t.Error("degraded result should carry the save error")
	}
	if result.Plan == nil || len(result.Plan.Days) != 7 {
		t.Error("generated plan must survive the failed save")
	}
}

func TestGenerateAndStoreRejectsMalformedAccountId(t *testing.T) {
	svc := newPlanServiceForTest(t, &fakeGenerationClient{reply: weeklyPlanJSON(t, 7)}, &stubPlanRepo{}, &stubProfileRepo{})

	_, err := svc.GenerateAndStore(context.Background(), "not-a-uuid", validGenerateRequest())
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGenerateAndStoreAbortsOnGenerationFailure(t *testing.T) {
	planRepo := &stubPlanRepo{}
	svc := newPlanServiceForTest(t, &fakeGenerationClient{err: errors.New("quota exceeded")}, planRepo, &stubProfileRepo{})

	_, err := svc.GenerateAndStore(context.Background(), uuid.New().String(), validGenerateRequest())
	if !errors.Is(err, utils.ErrGenerationFailed) {
		t.Errorf("err = %v, want ErrGenerationFailed", err)
	}
	if planRepo.createdPlan != nil {
		t.Error("nothing should be persisted when generation fails")
	}
}

func TestFlattenDraftMealsSkipsEmptySlots(t *testing.T) {
	draft := &resp.WeeklyPlanDraft{
		Days: []resp.DayPlan{
			{
				Day: 1,
				Meals: resp.DayMeals{
					Breakfast: resp.DraftMeal{RecipeName: "Pho"},
					// Lunch intentionally empty.
					Dinner: resp.DraftMeal{RecipeName: "Banh Mi"},
					Snacks: []resp.DraftMeal{
						{RecipeName: "Fruit"},
						{RecipeName: "Yogurt"},
					},
				},
			},
		},
	}

	meals := FlattenDraftMeals(draft)
	if len(meals) != 4 {
		t.Fatalf("meals = %d, want 4", len(meals))
	}

	snacks := 0
	for _, m := range meals {
		if m.Day != 1 {
			t.Errorf("day = %d, want 1", m.Day)
		}
		if m.MealType == dbm.MealTypeSnack {
			snacks++
		}
		if m.MealType == dbm.MealTypeLunch {
			t.Error("empty lunch slot should be skipped")
		}
	}
	if snacks != 2 {
		t.Errorf("snack rows = %d, want 2", snacks)
	}
}

func TestDeletePlanEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	plan := &dbm.MealPlan{AccountID: owner}
	plan.ID = uuid.New()

	planRepo := &stubPlanRepo{plansByID: map[string]*dbm.MealPlan{plan.ID.String(): plan}}
	svc := newPlanServiceForTest(t, &fakeGenerationClient{}, planRepo, &stubProfileRepo{})

	err := svc.DeletePlan(context.Background(), plan.ID.String(), uuid.New().String())
	if !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("foreign plan: err = %v, want ErrPlanNotFound", err)
	}
	if planRepo.deletedPlanID != "" {
		t.Error("foreign plan must not be deleted")
	}

	if err := svc.DeletePlan(context.Background(), plan.ID.String(), owner.String()); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if planRepo.deletedPlanID != plan.ID.String() {
		t.Error("owner delete did not reach the repository")
	}
}
