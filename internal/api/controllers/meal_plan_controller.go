package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealweek/internal/models/request_models"
	"mealweek/internal/services"
	"mealweek/pkg/utils"
)

type MealPlanController struct {
	planService services.PlanServiceInterface
}

func NewMealPlanController(planService services.PlanServiceInterface) *MealPlanController {
	return &MealPlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a weekly meal plan
// @Description Generate a 7-day plan from dietary preferences. Saved when a valid token is present, returned as a draft otherwise.
// @Tags MealPlans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Plan preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /meal-plan [post]
func (m *MealPlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID := ""
	if v, ok := c.Get("user_id"); ok {
		accountID, _ = v.(string)
	}

	result, err := m.planService.GenerateAndStore(context.Background(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result)
}

// GetLatestPlan godoc
// @Summary Get the latest meal plan
// @Description Fetch the authenticated account's most recent plan with meals and groceries. Data is null when no plan exists.
// @Tags MealPlans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /meal-plan [get]
func (m *MealPlanController) GetLatestPlan(c *gin.Context) {
	accountID := c.GetString("user_id")

	plan, err := m.planService.GetLatestFullPlan(context.Background(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan)
}

// GetPlanById godoc
// @Summary Get a meal plan by id
// @Description Fetch a single plan with its meals and grocery items
// @Tags MealPlans
// @Produce json
// @Param id path string true "Meal plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /meal-plan/{id} [get]
func (m *MealPlanController) GetPlanById(c *gin.Context) {
	planID := c.Param("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing plan id")
		return
	}

	plan, err := m.planService.GetFullMealPlan(context.Background(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan)
}

// GetAllPlans godoc
// @Summary List meal plans
// @Description Fetch all plan headers of the authenticated account, newest first
// @Tags MealPlans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /meal-plan/all [get]
func (m *MealPlanController) GetAllPlans(c *gin.Context) {
	accountID := c.GetString("user_id")

	plans, err := m.planService.ListPlans(context.Background(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans)
}

// DeletePlan godoc
// @Summary Delete a meal plan
// @Description Remove a plan together with its meals and grocery items
// @Tags MealPlans
// @Produce json
// @Param id query string true "Meal plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /meal-plan [delete]
func (m *MealPlanController) DeletePlan(c *gin.Context) {
	planID := c.Query("id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing plan id")
		return
	}

	accountID := c.GetString("user_id")

	if err := m.planService.DeletePlan(context.Background(), planID, accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": true})
}
