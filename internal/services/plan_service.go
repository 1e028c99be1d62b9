package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	dbm "mealweek/internal/models/db_models"
	"mealweek/internal/models/request_models"
	resp "mealweek/internal/models/response_models"
	"mealweek/internal/repositories"
	"mealweek/pkg/utils"
)

type PlanServiceInterface interface {
	GenerateAndStore(ctx context.Context, accountID string, req request_models.GeneratePlanRequest) (*resp.PlanGenerationResponse, error)
	GetFullMealPlan(ctx context.Context, planID string) (*resp.FullMealPlan, error)
	GetLatestFullPlan(ctx context.Context, accountID string) (*resp.FullMealPlan, error)
	ListPlans(ctx context.Context, accountID string) ([]dbm.MealPlan, error)
	DeletePlan(ctx context.Context, planID string, accountID string) error
}

type PlanService struct {
	generation  GenerationServiceInterface
	planRepo    repositories.MealPlanRepository
	mealRepo    repositories.MealRepository
	groceryRepo repositories.GroceryRepository
	profileRepo repositories.ProfileRepository
}

func NewPlanService(
	generation GenerationServiceInterface,
	planRepo repositories.MealPlanRepository,
	mealRepo repositories.MealRepository,
	groceryRepo repositories.GroceryRepository,
	profileRepo repositories.ProfileRepository,
) PlanServiceInterface {
	return &PlanService{
		generation:  generation,
		planRepo:    planRepo,
		mealRepo:    mealRepo,
		groceryRepo: groceryRepo,
		profileRepo: profileRepo,
	}
}

// GenerateAndStore runs one generation and, when a caller identity is
// present, persists the result. Generation failure aborts; persistence
// failure after a successful generation degrades to the draft path so
// the user never loses the generated plan.
func (s *PlanService) GenerateAndStore(ctx context.Context, accountID string, req request_models.GeneratePlanRequest) (*resp.PlanGenerationResponse, error) {

	draft, err := s.generation.GeneratePlan(ctx, req)
	if err != nil {
		return nil, err
	}

	if accountID == "" {
		return &resp.PlanGenerationResponse{
			Source: resp.PlanSourceDraft,
			Plan:   draft,
		}, nil
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	planID, unassigned, err := s.persistDraft(ctx, accountUUID, req, draft)
	if err != nil {
		log.Printf("Generated plan could not be saved for account %s: %v", accountID, err)
		return &resp.PlanGenerationResponse{
			Source:    resp.PlanSourceDraft,
			Plan:      draft,
			SaveError: err.Error(),
		}, nil
	}

	return &resp.PlanGenerationResponse{
		Source:     resp.PlanSourcePersisted,
		PlanID:     planID.String(),
		Plan:       draft,
		Unassigned: unassigned,
	}, nil
}

func (s *PlanService) persistDraft(ctx context.Context, accountID uuid.UUID, req request_models.GeneratePlanRequest, draft *resp.WeeklyPlanDraft) (uuid.UUID, int, error) {

	// The preference context that produced the plan becomes the saved
	// dietary profile (upsert).
	profile := &dbm.DietaryProfile{
		AccountID:          accountID,
		Goal:               req.Goal,
		DietType:           req.DietType,
		CaloriesTarget:     req.CaloriesTarget,
		Allergies:          req.Allergies,
		CuisinePreferences: req.CuisinePreferences,
		Dislikes:           req.Dislikes,
	}
	if _, err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return uuid.Nil, 0, err
	}

	totals := draft.WeeklyTotals()
	plan := &dbm.MealPlan{
		AccountID:          accountID,
		StartDate:          time.Now().Format("2006-01-02"),
		TotalWeeklyCals:    totals.Calories,
		TotalWeeklyProtein: totals.Protein,
		TotalWeeklyCarbs:   totals.Carbs,
		TotalWeeklyFat:     totals.Fats,
	}

	meals := FlattenDraftMeals(draft)

	groceries := make([]repositories.GroceryRow, 0, len(draft.GroceryList))
	for _, g := range draft.GroceryList {
		groceries = append(groceries, repositories.GroceryRow{
			IngredientName: g.IngredientName,
			Quantity:       g.Quantity,
			Category:       orDefault(g.Category, "Other"),
			EstimatedPrice: g.EstimatedPrice,
			RecipeRef:      g.RecipeRef,
		})
	}

	return s.planRepo.CreateFullPlan(ctx, plan, meals, groceries)
}

// FlattenDraftMeals turns the nested day/slot draft into Meal rows.
// Empty slots (no recipe name) are skipped; every snack becomes its
// own Snack row on the same day.
func FlattenDraftMeals(draft *resp.WeeklyPlanDraft) []dbm.Meal {
	var meals []dbm.Meal

	appendMeal := func(day int, mealType string, m resp.DraftMeal) {
		if m.RecipeName == "" {
			return
		}
		meals = append(meals, dbm.Meal{
			Day:         day,
			MealType:    mealType,
			RecipeName:  m.RecipeName,
			Description: m.Description,
			ImageURL:    m.ImageURL,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fat:         m.Fats,
			IsSwapped:   false,
		})
	}

	for _, day := range draft.Days {
		appendMeal(day.Day, dbm.MealTypeBreakfast, day.Meals.Breakfast)
		appendMeal(day.Day, dbm.MealTypeLunch, day.Meals.Lunch)
		appendMeal(day.Day, dbm.MealTypeDinner, day.Meals.Dinner)
		for _, snack := range day.Meals.Snacks {
			appendMeal(day.Day, dbm.MealTypeSnack, snack)
		}
	}

	return meals
}

// GetFullMealPlan reconstructs header + meals (day ascending) +
// groceries (category ascending) for display.
func (s *PlanService) GetFullMealPlan(ctx context.Context, planID string) (*resp.FullMealPlan, error) {

	plan, err := s.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	meals, err := s.mealRepo.ListByPlanId(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	groceries, err := s.groceryRepo.ListByPlanId(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.FullMealPlan{
		Plan:      *plan,
		Meals:     meals,
		Groceries: groceries,
	}, nil
}

// GetLatestFullPlan returns (nil, nil) when the account has no saved
// plan yet; the endpoint renders that as data: null.
func (s *PlanService) GetLatestFullPlan(ctx context.Context, accountID string) (*resp.FullMealPlan, error) {

	latest, err := s.planRepo.GetLatestByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if latest == nil {
		return nil, nil
	}

	return s.GetFullMealPlan(ctx, latest.ID.String())
}

func (s *PlanService) ListPlans(ctx context.Context, accountID string) ([]dbm.MealPlan, error) {

	plans, err := s.planRepo.ListByAccountId(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return plans, nil
}

// DeletePlan cascades to the plan's meals and grocery items. Plans of
// other accounts are reported as not found.
func (s *PlanService) DeletePlan(ctx context.Context, planID string, accountID string) error {

	plan, err := s.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil || plan.AccountID.String() != accountID {
		return utils.ErrPlanNotFound
	}

	if err := s.planRepo.DeletePlan(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
