package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

type RegionsController struct {
	regionService services.RegionServiceInterface
}

func NewRegionsController(regionService services.RegionServiceInterface) *RegionsController {
	return &RegionsController{
		regionService: regionService,
	}
}

// GetAllRegions godoc
// @Summary Get all regions
// @Description Fetch a paginated list of travel regions
// @Tags Regions
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 20, max: 100)"
// @Success 200 {array} response_models.RegionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /regions/list-all [get]
func (r *RegionsController) GetAllRegions(c *gin.Context) {

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	regions, err := r.regionService.GetAllRegions(page, pageSize, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, regions, "Regions fetched successfully")
}

// GetRegionByID godoc
// @Summary Get region by ID
// @Description Fetch one region from the catalog
// @Tags Regions
// @Accept json
// @Produce json
// @Param regionId path int true "Region ID"
// @Success 200 {object} db_models.Region
// @Failure 404 {object} utils.APIResponse
// @Router /regions/{regionId} [get]
func (r *RegionsController) GetRegionByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("regionId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid region ID")
		return
	}

	region, err := r.regionService.GetRegionByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, region, "Region fetched successfully")
}

// SearchRegions godoc
// @Summary Search regions
// @Description Search regions by name or province, capped at 8 results
// @Tags Regions
// @Accept json
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} response_models.RegionResponse
// @Router /regions/search [get]
func (r *RegionsController) SearchRegions(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		utils.RespondSuccess(c, []interface{}{}, "Regions fetched successfully")
		return
	}

	regions, err := r.regionService.SearchRegions(c.Request.Context(), keyword)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, regions, "Regions fetched successfully")
}

// GetRandomRegion godoc
// @Summary Get a random region
// @Description Pick a random destination from the catalog
// @Tags Regions
// @Accept json
// @Produce json
// @Success 200 {object} db_models.Region
// @Router /regions/random [get]
func (r *RegionsController) GetRandomRegion(c *gin.Context) {
	region, err := r.regionService.RandomRegion(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, region, "Region fetched successfully")
}
