package controllers

import (
	"github.com/gin-gonic/gin"

	"ildanga/internal/models/response_models"
	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

type PromptController struct {
	promptService services.PromptServiceInterface
	tripService   services.TripServiceInterface
}

func NewPromptController(promptService services.PromptServiceInterface, tripService services.TripServiceInterface) *PromptController {
	return &PromptController{
		promptService: promptService,
		tripService:   tripService,
	}
}

// GetPrompt godoc
// @Summary Build the copyable planning prompt for the current trip
// @Tags Prompt
// @Produce json
// @Success 200 {object} response_models.PromptResponse
// @Failure 400 {object} utils.APIResponse
// @Router /prompt [get]
func (p *PromptController) GetPrompt(c *gin.Context) {
	prompt, err := p.promptService.BuildPrompt(p.tripService.Snapshot())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.PromptResponse{Prompt: prompt}, "Prompt built successfully")
}
