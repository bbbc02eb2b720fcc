package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

// PlanController fronts the AI plan generation endpoint. Like the other proxy
// surfaces it keeps the {success, plan} reply shape.
type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a trip plan with the configured AI provider
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Destination, duration and selections"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} response_models.PlanResponse
// @Router /api/generate-plan [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response_models.PlanResponse{
			Success: false,
			Error:   "여행 정보가 올바르지 않습니다",
			Details: err.Error(),
		})
		return
	}

	resp, err := p.planService.GeneratePlanText(c.Request.Context(), req)
	if err != nil {
		respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func respondPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrMissingAPIKey):
		c.JSON(http.StatusBadRequest, response_models.PlanResponse{
			Success: false,
			Error:   "Gemini API 키가 설정되지 않았습니다",
			Guide:   &services.GeminiKeyGuide,
		})
	default:
		c.JSON(http.StatusInternalServerError, response_models.PlanResponse{
			Success: false,
			Error:   "여행 계획 생성 중 오류가 발생했습니다",
			Details: err.Error(),
		})
	}
}
