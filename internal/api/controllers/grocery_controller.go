package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealweek/internal/models/request_models"
	"mealweek/internal/services"
	"mealweek/pkg/utils"
)

type GroceryController struct {
	groceryService services.GroceryServiceInterface
}

func NewGroceryController(groceryService services.GroceryServiceInterface) *GroceryController {
	return &GroceryController{
		groceryService: groceryService,
	}
}

// GetGroceryList godoc
// @Summary Get the grocery list of a plan
// @Description Fetch all grocery items of the given plan, grouped by category
// @Tags Groceries
// @Produce json
// @Param meal_plan_id query string true "Meal plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grocery [get]
func (g *GroceryController) GetGroceryList(c *gin.Context) {
	planID := c.Query("meal_plan_id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing meal_plan_id")
		return
	}

	items, err := g.groceryService.GetGroceryList(context.Background(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items)
}

// ToggleBought godoc
// @Summary Toggle the purchased flag on a grocery item
// @Description Flip is_bought. Calling twice returns the item to its original state.
// @Tags Groceries
// @Accept json
// @Produce json
// @Param request body request_models.ToggleGroceryRequest true "Toggle payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grocery [patch]
func (g *GroceryController) ToggleBought(c *gin.Context) {
	var req request_models.ToggleGroceryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := g.groceryService.ToggleBought(context.Background(), req.GroceryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"toggled": true})
}

// DeleteItem godoc
// @Summary Delete a grocery item
// @Tags Groceries
// @Produce json
// @Param id query string true "Grocery item id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grocery [delete]
func (g *GroceryController) DeleteItem(c *gin.Context) {
	groceryID := c.Query("id")
	if groceryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing grocery id")
		return
	}

	if err := g.groceryService.DeleteItem(context.Background(), groceryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": true})
}

// WeeklyBudget godoc
// @Summary Get the estimated weekly grocery budget
// @Description Sum the estimated prices of all grocery items on the plan
// @Tags Groceries
// @Produce json
// @Param meal_plan_id query string true "Meal plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /grocery/budget [get]
func (g *GroceryController) WeeklyBudget(c *gin.Context) {
	planID := c.Query("meal_plan_id")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing meal_plan_id")
		return
	}

	total, err := g.groceryService.WeeklyBudget(context.Background(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"weekly_budget": total})
}
