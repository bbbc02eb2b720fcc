package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ildanga/internal/models/request_models"
	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

// StartWizard godoc
// @Summary Start a planning flow for a region
// @Description Resets the trip session and sets the chosen region as destination
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.SetDestinationRequest true "Region ID"
// @Success 200 {object} response_models.WizardStateResponse
// @Failure 404 {object} utils.APIResponse
// @Router /wizard/start [post]
func (w *WizardController) StartWizard(c *gin.Context) {
	var req request_models.SetDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Region ID is required")
		return
	}

	state, err := w.wizardService.Start(c.Request.Context(), req.RegionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Wizard started successfully")
}

// GetWizardState godoc
// @Summary Get the current wizard state
// @Tags Wizard
// @Produce json
// @Success 200 {object} response_models.WizardStateResponse
// @Router /wizard [get]
func (w *WizardController) GetWizardState(c *gin.Context) {
	state := w.wizardService.State()
	utils.RespondSuccess(c, state, "Wizard state fetched successfully")
}

// NextStep godoc
// @Summary Advance the wizard to the next step
// @Description Loads the step's candidate pool on first entry
// @Tags Wizard
// @Produce json
// @Success 200 {object} response_models.WizardStateResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /wizard/next [post]
func (w *WizardController) NextStep(c *gin.Context) {
	state, err := w.wizardService.Next(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Wizard advanced successfully")
}

// PrevStep godoc
// @Summary Move the wizard back one step
// @Tags Wizard
// @Produce json
// @Success 200 {object} response_models.WizardStateResponse
// @Router /wizard/prev [post]
func (w *WizardController) PrevStep(c *gin.Context) {
	state, err := w.wizardService.Prev(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Wizard moved back successfully")
}

// LoadMoreRestaurants godoc
// @Summary Append the next page of restaurant candidates
// @Tags Wizard
// @Produce json
// @Success 200 {object} response_models.WizardStateResponse
// @Failure 409 {object} utils.APIResponse
// @Router /wizard/restaurants/load-more [post]
func (w *WizardController) LoadMoreRestaurants(c *gin.Context) {
	state, err := w.wizardService.LoadMoreRestaurants(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Restaurants loaded successfully")
}

// ReloadStep godoc
// @Summary Retry the current step's candidate load
// @Tags Wizard
// @Produce json
// @Success 200 {object} response_models.WizardStateResponse
// @Failure 502 {object} utils.APIResponse
// @Router /wizard/reload [post]
func (w *WizardController) ReloadStep(c *gin.Context) {
	state, err := w.wizardService.Reload(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Wizard state reloaded successfully")
}
