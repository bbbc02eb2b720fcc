package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ildanga/internal/models/db_models"
	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

// PlacesController proxies the Kakao Local search actions. Replies keep the
// upstream-derived {success, items, meta} shape instead of the standard API
// envelope so failures stay distinguishable from empty results.
type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

// SearchPlaces godoc
// @Summary Search places via Kakao Local
// @Description Dispatches on the action parameter: searchKeyword, searchCategory, searchAddress or coord2Address
// @Tags Places
// @Produce json
// @Param action query string false "Action (default: searchKeyword)"
// @Param query query string false "Search keyword or address"
// @Param category query string false "Category group code (default: FD6)"
// @Param x query string false "Longitude"
// @Param y query string false "Latitude"
// @Param radius query string false "Search radius in meters (default: 5000)"
// @Param page query string false "Page number (default: 1)"
// @Param size query string false "Page size (default: 15)"
// @Success 200 {object} response_models.PlaceSearchResponse
// @Failure 400 {object} response_models.PlaceSearchResponse
// @Router /api/places [get]
func (p *PlacesController) SearchPlaces(c *gin.Context) {
	action := c.DefaultQuery("action", "searchKeyword")
	ctx := c.Request.Context()

	var (
		resp *response_models.PlaceSearchResponse
		err  error
	)

	switch action {
	case "searchKeyword":
		resp, err = p.placesService.SearchPlacesByKeyword(ctx, request_models.PlaceKeywordQuery{
			Query:  c.Query("query"),
			X:      c.Query("x"),
			Y:      c.Query("y"),
			Radius: c.DefaultQuery("radius", "5000"),
			Page:   c.DefaultQuery("page", "1"),
			Size:   c.DefaultQuery("size", "15"),
			Sort:   c.DefaultQuery("sort", "accuracy"),
		})
	case "searchCategory":
		resp, err = p.placesService.SearchPlacesByCategory(ctx, request_models.PlaceCategoryQuery{
			Category: c.DefaultQuery("category", "FD6"),
			X:        c.Query("x"),
			Y:        c.Query("y"),
			Radius:   c.DefaultQuery("radius", "5000"),
			Page:     c.DefaultQuery("page", "1"),
			Size:     c.DefaultQuery("size", "15"),
			Sort:     c.DefaultQuery("sort", "distance"),
		})
	case "searchAddress":
		resp, err = p.placesService.SearchAddress(ctx, c.Query("query"))
	case "coord2Address":
		resp, err = p.placesService.Coord2Address(ctx, c.Query("x"), c.Query("y"))
	default:
		err = utils.ErrUnsupportedAction
	}

	if err != nil {
		respondPlacesError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func respondPlacesError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrMissingAPIKey):
		c.JSON(http.StatusBadRequest, response_models.PlaceSearchResponse{
			Success: false,
			Error:   "카카오 API 키가 설정되지 않았습니다",
			Items:   []db_models.Restaurant{},
			Guide:   &services.KakaoKeyGuide,
		})
	case errors.Is(err, utils.ErrMissingCoordinates):
		c.JSON(http.StatusBadRequest, response_models.PlaceSearchResponse{
			Success: false,
			Error:   "좌표(x, y)가 필요합니다",
			Items:   []db_models.Restaurant{},
		})
	case errors.Is(err, utils.ErrUnsupportedAction):
		c.JSON(http.StatusBadRequest, response_models.PlaceSearchResponse{
			Success: false,
			Error:   "지원하지 않는 action입니다",
			Items:   []db_models.Restaurant{},
		})
	default:
		c.JSON(http.StatusInternalServerError, response_models.PlaceSearchResponse{
			Success: false,
			Error:   "API 호출 중 오류가 발생했습니다",
			Details: err.Error(),
			Items:   []db_models.Restaurant{},
		})
	}
}
