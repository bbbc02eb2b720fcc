package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ildanga/internal/models/db_models"
	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

type TripController struct {
	tripService   services.TripServiceInterface
	regionService services.RegionServiceInterface
}

func NewTripController(tripService services.TripServiceInterface, regionService services.RegionServiceInterface) *TripController {
	return &TripController{
		tripService:   tripService,
		regionService: regionService,
	}
}

func (t *TripController) snapshotResponse() response_models.TripResponse {
	resp := response_models.TripResponse{
		Session: t.tripService.Snapshot(),
	}
	if savedAt := t.tripService.SavedAt(); !savedAt.IsZero() {
		resp.SavedAt = utils.FormatRFC3339KST(savedAt)
	}
	return resp
}

// GetTrip godoc
// @Summary Get the current trip session
// @Tags Trip
// @Produce json
// @Success 200 {object} response_models.TripResponse
// @Router /trip [get]
func (t *TripController) GetTrip(c *gin.Context) {
	utils.RespondSuccess(c, t.snapshotResponse(), "Trip fetched successfully")
}

// SetDestination godoc
// @Summary Set the trip destination
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SetDestinationRequest true "Region ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trip/destination [post]
func (t *TripController) SetDestination(c *gin.Context) {
	var req request_models.SetDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Region ID is required")
		return
	}

	region, err := t.regionService.GetRegionByID(c.Request.Context(), req.RegionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	t.tripService.SetDestination(c.Request.Context(), region)
	utils.RespondSuccess(c, t.snapshotResponse(), "Destination set successfully")
}

// SetDuration godoc
// @Summary Set the trip duration in days
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SetDurationRequest true "Days"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/duration [post]
func (t *TripController) SetDuration(c *gin.Context) {
	var req request_models.SetDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Days must be a number")
		return
	}

	t.tripService.SetDuration(c.Request.Context(), req.Days)
	utils.RespondSuccess(c, t.snapshotResponse(), "Duration set successfully")
}

// SetStartDate godoc
// @Summary Set the trip start date
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SetStartDateRequest true "Start date (YYYY-MM-DD)"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/start-date [post]
func (t *TripController) SetStartDate(c *gin.Context) {
	var req request_models.SetStartDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t.tripService.SetStartDate(c.Request.Context(), req.Date)
	utils.RespondSuccess(c, t.snapshotResponse(), "Start date set successfully")
}

// SetTripStyle godoc
// @Summary Set the trip style
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SetTripStyleRequest true "Style: RELAXED, NORMAL or PACKED"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/style [post]
func (t *TripController) SetTripStyle(c *gin.Context) {
	var req request_models.SetTripStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Style must be RELAXED, NORMAL or PACKED")
		return
	}

	t.tripService.SetTripStyle(c.Request.Context(), db_models.TripStyle(req.Style))
	utils.RespondSuccess(c, t.snapshotResponse(), "Trip style set successfully")
}

// AddAttraction godoc
// @Summary Add an attraction to the trip
// @Description Adding an already selected attraction is a no-op
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.AddAttractionRequest true "Attraction"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/attractions [post]
func (t *TripController) AddAttraction(c *gin.Context) {
	var req request_models.AddAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Attraction.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction with an ID is required")
		return
	}

	t.tripService.AddAttraction(c.Request.Context(), req.Attraction)
	utils.RespondSuccess(c, t.snapshotResponse(), "Attraction added successfully")
}

// RemoveAttraction godoc
// @Summary Remove an attraction from the trip
// @Tags Trip
// @Produce json
// @Param attractionId path string true "Attraction ID"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/attractions/{attractionId} [delete]
func (t *TripController) RemoveAttraction(c *gin.Context) {
	id := c.Param("attractionId")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction ID is required")
		return
	}

	t.tripService.RemoveAttraction(c.Request.Context(), id)
	utils.RespondSuccess(c, t.snapshotResponse(), "Attraction removed successfully")
}

// ClearAttractions godoc
// @Summary Remove every selected attraction
// @Tags Trip
// @Produce json
// @Success 200 {object} response_models.TripResponse
// @Router /trip/attractions [delete]
func (t *TripController) ClearAttractions(c *gin.Context) {
	t.tripService.ClearAttractions(c.Request.Context())
	utils.RespondSuccess(c, t.snapshotResponse(), "Attractions cleared successfully")
}

// AddRestaurant godoc
// @Summary Add a restaurant to the trip
// @Description Adding an already selected restaurant is a no-op
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.AddRestaurantRequest true "Restaurant"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/restaurants [post]
func (t *TripController) AddRestaurant(c *gin.Context) {
	var req request_models.AddRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Restaurant.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Restaurant with an ID is required")
		return
	}

	t.tripService.AddRestaurant(c.Request.Context(), req.Restaurant)
	utils.RespondSuccess(c, t.snapshotResponse(), "Restaurant added successfully")
}

// RemoveRestaurant godoc
// @Summary Remove a restaurant from the trip
// @Tags Trip
// @Produce json
// @Param restaurantId path string true "Restaurant ID"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/restaurants/{restaurantId} [delete]
func (t *TripController) RemoveRestaurant(c *gin.Context) {
	id := c.Param("restaurantId")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Restaurant ID is required")
		return
	}

	t.tripService.RemoveRestaurant(c.Request.Context(), id)
	utils.RespondSuccess(c, t.snapshotResponse(), "Restaurant removed successfully")
}

// ClearRestaurants godoc
// @Summary Remove every selected restaurant
// @Tags Trip
// @Produce json
// @Success 200 {object} response_models.TripResponse
// @Router /trip/restaurants [delete]
func (t *TripController) ClearRestaurants(c *gin.Context) {
	t.tripService.ClearRestaurants(c.Request.Context())
	utils.RespondSuccess(c, t.snapshotResponse(), "Restaurants cleared successfully")
}

// SetSchedule godoc
// @Summary Replace the whole schedule
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SetScheduleRequest true "Schedule"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/schedule [put]
func (t *TripController) SetSchedule(c *gin.Context) {
	var req request_models.SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t.tripService.SetSchedule(c.Request.Context(), req.Schedule)
	utils.RespondSuccess(c, t.snapshotResponse(), "Schedule set successfully")
}

// UpdateDaySchedule godoc
// @Summary Replace the items of one schedule day
// @Description A day outside the current schedule is ignored
// @Tags Trip
// @Accept json
// @Produce json
// @Param day path int true "Day number (1-based)"
// @Param request body request_models.UpdateDayScheduleRequest true "Items"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/schedule/{day} [put]
func (t *TripController) UpdateDaySchedule(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return
	}

	var req request_models.UpdateDayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t.tripService.UpdateDaySchedule(c.Request.Context(), day, req.Items)
	utils.RespondSuccess(c, t.snapshotResponse(), "Day schedule updated successfully")
}

// GenerateSchedule godoc
// @Summary Generate the schedule from the current selections
// @Description Distributes selected attractions then restaurants over the trip days
// @Tags Trip
// @Produce json
// @Success 200 {object} response_models.TripResponse
// @Router /trip/schedule/generate [post]
func (t *TripController) GenerateSchedule(c *gin.Context) {
	t.tripService.GenerateSchedule(c.Request.Context())
	utils.RespondSuccess(c, t.snapshotResponse(), "Schedule generated successfully")
}

// SetTransport godoc
// @Summary Set the transport info
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.SetTransportRequest true "Transport"
// @Success 200 {object} response_models.TripResponse
// @Router /trip/transport [post]
func (t *TripController) SetTransport(c *gin.Context) {
	var req request_models.SetTransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t.tripService.SetTransport(c.Request.Context(), req.Transport)
	utils.RespondSuccess(c, t.snapshotResponse(), "Transport set successfully")
}

// ResetTrip godoc
// @Summary Reset the trip session to its initial state
// @Tags Trip
// @Produce json
// @Success 200 {object} response_models.TripResponse
// @Router /trip/reset [post]
func (t *TripController) ResetTrip(c *gin.Context) {
	t.tripService.ResetTrip(c.Request.Context())
	utils.RespondSuccess(c, t.snapshotResponse(), "Trip reset successfully")
}
