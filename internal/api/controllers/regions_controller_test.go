package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ildanga/internal/repositories"
	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

func regionsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewRegionsController(services.NewRegionService(repositories.NewRegionRepository()))

	r := gin.New()
	group := r.Group("/regions")
	group.GET("/list-all", controller.GetAllRegions)
	group.GET("/search", controller.SearchRegions)
	group.GET("/random", controller.GetRandomRegion)
	group.GET("/:regionId", controller.GetRegionByID)
	return r
}

func TestListAllRegions(t *testing.T) {
	router := regionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/regions/list-all?page=1&pageSize=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)

	data, ok := body.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 5)
}

func TestListAllRegionsRejectsBadPaging(t *testing.T) {
	router := regionsRouter()

	for _, target := range []string{
		"/regions/list-all?page=0",
		"/regions/list-all?page=abc",
		"/regions/list-all?pageSize=101",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestGetRegionById(t *testing.T) {
	router := regionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/regions/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	region, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "강릉", region["name"])
}

func TestGetRegionByIdNotFound(t *testing.T) {
	router := regionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/regions/9999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRegionsCapsResults(t *testing.T) {
	router := regionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/regions/search?keyword=도", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data, ok := body.Data.([]interface{})
	require.True(t, ok)
	assert.LessOrEqual(t, len(data), 8)
}

func TestSearchRegionsEmptyKeyword(t *testing.T) {
	router := regionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/regions/search?keyword=", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data, ok := body.Data.([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestRandomRegionComesFromCatalog(t *testing.T) {
	router := regionsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/regions/random", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	region, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, region["name"])
}
