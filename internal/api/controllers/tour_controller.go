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

// TourController proxies the TourAPI attraction listings, keeping the
// {success, items, totalCount} shape of the upstream-derived replies.
type TourController struct {
	tourService services.TourServiceInterface
}

func NewTourController(tourService services.TourServiceInterface) *TourController {
	return &TourController{
		tourService: tourService,
	}
}

// SearchAttractions godoc
// @Summary Query TourAPI attraction data
// @Description Dispatches on the action parameter: areaBasedList, locationBasedList, searchKeyword, detailCommon or areaCode
// @Tags Tour
// @Produce json
// @Param action query string false "Action (default: areaBasedList)"
// @Param areaCode query string false "TourAPI area code"
// @Param sigunguCode query string false "TourAPI sigungu code"
// @Param contentTypeId query string false "Content type (default: 12, attractions)"
// @Param contentId query string false "Content ID for detailCommon"
// @Param mapX query string false "Longitude for locationBasedList"
// @Param mapY query string false "Latitude for locationBasedList"
// @Param radius query string false "Search radius in meters (default: 10000)"
// @Param keyword query string false "Keyword for searchKeyword"
// @Param numOfRows query string false "Rows per page (default: 20)"
// @Param pageNo query string false "Page number (default: 1)"
// @Success 200 {object} response_models.TourListResponse
// @Failure 400 {object} response_models.TourListResponse
// @Router /api/tour [get]
func (t *TourController) SearchAttractions(c *gin.Context) {
	action := c.DefaultQuery("action", "areaBasedList")
	ctx := c.Request.Context()

	var (
		resp *response_models.TourListResponse
		err  error
	)

	switch action {
	case "areaBasedList":
		resp, err = t.tourService.ListAttractionsByArea(ctx, request_models.TourQuery{
			AreaCode:      c.Query("areaCode"),
			SigunguCode:   c.Query("sigunguCode"),
			ContentTypeID: c.DefaultQuery("contentTypeId", "12"),
			NumOfRows:     c.DefaultQuery("numOfRows", "20"),
			PageNo:        c.DefaultQuery("pageNo", "1"),
		})
	case "locationBasedList":
		resp, err = t.tourService.ListAttractionsNearLocation(ctx, request_models.TourQuery{
			MapX:          c.Query("mapX"),
			MapY:          c.Query("mapY"),
			Radius:        c.DefaultQuery("radius", "10000"),
			ContentTypeID: c.DefaultQuery("contentTypeId", "12"),
			NumOfRows:     c.DefaultQuery("numOfRows", "30"),
		})
	case "searchKeyword":
		resp, err = t.tourService.SearchAttractionsByKeyword(ctx, request_models.TourQuery{
			Keyword:       c.Query("keyword"),
			ContentTypeID: c.Query("contentTypeId"),
			NumOfRows:     c.DefaultQuery("numOfRows", "20"),
		})
	case "detailCommon":
		resp, err = t.tourService.GetAttractionDetail(ctx, c.Query("contentId"))
	case "areaCode":
		resp, err = t.tourService.ListAreaCodes(ctx, c.Query("areaCode"))
	default:
		err = utils.ErrUnsupportedAction
	}

	if err != nil {
		respondTourError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func respondTourError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrMissingAPIKey):
		c.JSON(http.StatusBadRequest, response_models.TourListResponse{
			Success: false,
			Error:   "TourAPI 서비스 키가 설정되지 않았습니다",
			Items:   []db_models.Attraction{},
			Guide:   &services.TourKeyGuide,
		})
	case errors.Is(err, utils.ErrUnsupportedAction):
		c.JSON(http.StatusBadRequest, response_models.TourListResponse{
			Success: false,
			Error:   "지원하지 않는 action입니다",
			Items:   []db_models.Attraction{},
		})
	default:
		c.JSON(http.StatusInternalServerError, response_models.TourListResponse{
			Success: false,
			Error:   "API 호출 중 오류가 발생했습니다",
			Items:   []db_models.Attraction{},
		})
	}
}
