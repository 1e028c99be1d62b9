package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealweek/internal/models/request_models"
	"mealweek/internal/services"
	"mealweek/pkg/utils"
)

type SwapController struct {
	swapService services.SwapServiceInterface
}

func NewSwapController(swapService services.SwapServiceInterface) *SwapController {
	return &SwapController{
		swapService: swapService,
	}
}

// GetSwapOptions godoc
// @Summary Generate swap options for a meal slot
// @Description Return three alternative meals matching the slot's calorie and macro envelope
// @Tags Swaps
// @Accept json
// @Produce json
// @Param request body request_models.SwapOptionsRequest true "Swap preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /swap-meal [post]
func (s *SwapController) GetSwapOptions(c *gin.Context) {
	var req request_models.SwapOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	options, err := s.swapService.GenerateSwapOptions(context.Background(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"meal_options": options})
}

// ApplySwap godoc
// @Summary Apply a meal swap
// @Description Replace a meal's content with the chosen option and rewrite its grocery items
// @Tags Swaps
// @Accept json
// @Produce json
// @Param request body request_models.ApplySwapRequest true "Swap payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /swap-meal [patch]
func (s *SwapController) ApplySwap(c *gin.Context) {
	var req request_models.ApplySwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.swapService.ApplySwap(context.Background(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result)
}

// RevertSwap godoc
// @Summary Clear the swapped flag on a meal
// @Tags Swaps
// @Accept json
// @Produce json
// @Param request body request_models.RevertSwapRequest true "Revert payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /swap-meal/revert [post]
func (s *SwapController) RevertSwap(c *gin.Context) {
	var req request_models.RevertSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.swapService.RevertSwap(context.Background(), req.MealID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reverted": true})
}

// GetMealsByPlan godoc
// @Summary List the meals of a plan
// @Tags Swaps
// @Produce json
// @Param meal_plan_id query string true "Meal plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /swap-meal/meals [get]
func (s *SwapController) GetMealsByPlan(c *gin.Context) {
	planID := c.Query("meal_plan_id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing meal_plan_id")
		return
	}

	meals, err := s.swapService.GetMealsByPlanId(context.Background(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meals)
}
