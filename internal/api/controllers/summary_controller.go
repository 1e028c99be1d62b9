package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"mealweek/internal/services"
	"mealweek/pkg/utils"
)

type SummaryController struct {
	summaryService services.SummaryServiceInterface
}

func NewSummaryController(summaryService services.SummaryServiceInterface) *SummaryController {
	return &SummaryController{
		summaryService: summaryService,
	}
}

// GetSummary godoc
// @Summary Weekly summary of the latest plan
// @Description Macro totals, grocery budget, purchase progress and swap count for the account's most recent plan
// @Tags Summary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /summary [get]
func (s *SummaryController) GetSummary(c *gin.Context) {
	accountID := c.GetString("user_id")

	report, err := s.summaryService.BuildSummary(context.Background(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report)
}
