package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealweek/internal/models/request_models"
	"mealweek/internal/services"
	"mealweek/pkg/utils"
)

// PrepController serves the dietary profile the plan generator reads
// its defaults from.
type PrepController struct {
	profileService services.ProfileServiceInterface
}

func NewPrepController(profileService services.ProfileServiceInterface) *PrepController {
	return &PrepController{
		profileService: profileService,
	}
}

// SaveProfile godoc
// @Summary Save the dietary profile
// @Description Create or replace the authenticated account's dietary profile
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.PlanPreferences true "Dietary preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prep-plan [post]
func (p *PrepController) SaveProfile(c *gin.Context) {
	var req request_models.PlanPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID := c.GetString("user_id")

	profile, err := p.profileService.SaveProfile(context.Background(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile)
}

// GetProfile godoc
// @Summary Get the dietary profile
// @Description Fetch the authenticated account's dietary profile. Data is null when none has been saved.
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prep-plan [get]
func (p *PrepController) GetProfile(c *gin.Context) {
	accountID := c.GetString("user_id")

	profile, err := p.profileService.GetProfile(context.Background(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile)
}

// DeleteProfile godoc
// @Summary Delete the dietary profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prep-plan [delete]
func (p *PrepController) DeleteProfile(c *gin.Context) {
	accountID := c.GetString("user_id")

	if err := p.profileService.DeleteProfile(context.Background(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": true})
}
