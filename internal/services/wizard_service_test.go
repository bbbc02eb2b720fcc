package services

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ildanga/internal/models/db_models"
	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/internal/repositories"
	mem "ildanga/pkg/memcache"
	"ildanga/pkg/utils"
)

// fakeTourService serves a fixed attraction pool and counts upstream hits.
type fakeTourService struct {
	calls int
	items []db_models.Attraction
	fail  bool
}

func (f *fakeTourService) ListAttractionsNearLocation(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error) {
	f.calls++
	if f.fail {
		return nil, fmt.Errorf("%w: connection refused", utils.ErrUpstreamRequest)
	}
	return &response_models.TourListResponse{Success: true, TotalCount: len(f.items), Items: f.items}, nil
}

func (f *fakeTourService) ListAttractionsByArea(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error) {
	return &response_models.TourListResponse{Success: true, Items: []db_models.Attraction{}}, nil
}

func (f *fakeTourService) SearchAttractionsByKeyword(ctx context.Context, q request_models.TourQuery) (*response_models.TourListResponse, error) {
	return &response_models.TourListResponse{Success: true, Items: []db_models.Attraction{}}, nil
}

func (f *fakeTourService) GetAttractionDetail(ctx context.Context, contentID string) (*response_models.TourListResponse, error) {
	return &response_models.TourListResponse{Success: true, Items: []db_models.Attraction{}}, nil
}

func (f *fakeTourService) ListAreaCodes(ctx context.Context, areaCode string) (*response_models.TourListResponse, error) {
	return &response_models.TourListResponse{Success: true, Items: []db_models.Attraction{}}, nil
}

// fakePlacesService pages through a fixed restaurant list the way the Kakao
// keyword search does.
type fakePlacesService struct {
	calls       int
	restaurants []db_models.Restaurant
	fail        bool
	lastQuery   request_models.PlaceKeywordQuery
}

func (f *fakePlacesService) SearchPlacesByKeyword(ctx context.Context, q request_models.PlaceKeywordQuery) (*response_models.PlaceSearchResponse, error) {
	f.calls++
	f.lastQuery = q
	if f.fail {
		return nil, fmt.Errorf("%w: connection refused", utils.ErrUpstreamRequest)
	}

	page, _ := strconv.Atoi(q.Page)
	size, _ := strconv.Atoi(q.Size)
	start := (page - 1) * size
	if start >= len(f.restaurants) {
		return &response_models.PlaceSearchResponse{Success: true, Items: []db_models.Restaurant{}}, nil
	}
	end := start + size
	if end > len(f.restaurants) {
		end = len(f.restaurants)
	}
	return &response_models.PlaceSearchResponse{Success: true, Items: f.restaurants[start:end]}, nil
}

func (f *fakePlacesService) SearchPlacesByCategory(ctx context.Context, q request_models.PlaceCategoryQuery) (*response_models.PlaceSearchResponse, error) {
	return &response_models.PlaceSearchResponse{Success: true, Items: []db_models.Restaurant{}}, nil
}

func (f *fakePlacesService) SearchAddress(ctx context.Context, query string) (*response_models.PlaceSearchResponse, error) {
	return &response_models.PlaceSearchResponse{Success: true, Items: []db_models.Restaurant{}}, nil
}

func (f *fakePlacesService) Coord2Address(ctx context.Context, x, y string) (*response_models.PlaceSearchResponse, error) {
	return &response_models.PlaceSearchResponse{Success: true, Items: []db_models.Restaurant{}}, nil
}

func manyRestaurants(n int) []db_models.Restaurant {
	out := make([]db_models.Restaurant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, restaurantFixture(fmt.Sprintf("r%d", i+1), fmt.Sprintf("맛집 %d", i+1)))
	}
	return out
}

type wizardFixture struct {
	wizard WizardServiceInterface
	trip   TripServiceInterface
	tour   *fakeTourService
	places *fakePlacesService
}

func newWizardFixture(t *testing.T) *wizardFixture {
	t.Helper()

	trip := NewTripService(newFakeTripRepo())
	tour := &fakeTourService{items: []db_models.Attraction{
		attractionFixture("a1", "경포대"),
		attractionFixture("a2", "오죽헌"),
	}}
	places := &fakePlacesService{restaurants: manyRestaurants(20)}

	wizard := NewWizardService(trip, tour, places, repositories.NewRegionRepository(), mem.NewCandidatePools())
	return &wizardFixture{wizard: wizard, trip: trip, tour: tour, places: places}
}

func TestStepTransitions(t *testing.T) {
	assert.Equal(t, StepAttractions, NextStep(StepInfo))
	assert.Equal(t, StepRestaurants, NextStep(StepAttractions))
	assert.Equal(t, StepResult, NextStep(StepRestaurants))
	assert.Equal(t, StepResult, NextStep(StepResult))

	assert.Equal(t, StepRestaurants, PrevStep(StepResult))
	assert.Equal(t, StepAttractions, PrevStep(StepRestaurants))
	assert.Equal(t, StepInfo, PrevStep(StepAttractions))
	assert.Equal(t, StepInfo, PrevStep(StepInfo))
}

func TestStartResetsTripAndSetsDestination(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	f.trip.SetDuration(ctx, 5)
	f.trip.AddAttraction(ctx, attractionFixture("old", "이전 선택"))

	state, err := f.wizard.Start(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, string(StepInfo), state.Step)
	session := f.trip.Snapshot()
	require.NotNil(t, session.Destination)
	assert.Equal(t, 1, session.Destination.ID)
	assert.Equal(t, 1, session.Duration)
	assert.Empty(t, session.SelectedAttractions)
}

func TestStartWithUnknownRegionFails(t *testing.T) {
	f := newWizardFixture(t)

	_, err := f.wizard.Start(context.Background(), 9999)
	assert.ErrorIs(t, err, utils.ErrRegionNotFound)
}

func TestNextWithoutDestinationFails(t *testing.T) {
	f := newWizardFixture(t)

	_, err := f.wizard.Next(context.Background())
	assert.ErrorIs(t, err, utils.ErrNoDestination)
}

func TestNextLoadsAttractionPoolOncePerRegion(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.Start(ctx, 1)
	require.NoError(t, err)

	state, err := f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(StepAttractions), state.Step)
	assert.Len(t, state.Attractions, 2)
	assert.Equal(t, 1, f.tour.calls)

	// Leaving and re-entering the step serves the cached pool.
	_, err = f.wizard.Prev(ctx)
	require.NoError(t, err)
	state, err = f.wizard.Next(ctx)
	require.NoError(t, err)

	assert.Len(t, state.Attractions, 2)
	assert.Equal(t, 1, f.tour.calls)
}

func TestRestaurantStepSearchesRegionFood(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)

	state, err := f.wizard.Next(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(StepRestaurants), state.Step)
	assert.Equal(t, "강릉 맛집", f.places.lastQuery.Query)
	assert.Equal(t, "accuracy", f.places.lastQuery.Sort)
	assert.Len(t, state.Restaurants, 15)
	assert.Equal(t, 1, state.RestaurantPage)
	assert.True(t, state.HasMoreRestaurants)
}

func TestLoadMoreRestaurantsAppendsAndExhausts(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)

	state, err := f.wizard.LoadMoreRestaurants(ctx)
	require.NoError(t, err)

	// 20 restaurants total: page 2 returns 5, which marks the pool exhausted.
	assert.Len(t, state.Restaurants, 20)
	assert.Equal(t, 2, state.RestaurantPage)
	assert.False(t, state.HasMoreRestaurants)

	callsBefore := f.places.calls
	state, err = f.wizard.LoadMoreRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Restaurants, 20)
	assert.Equal(t, callsBefore, f.places.calls)
}

func TestAttractionLoadFailureKeepsStepForRetry(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.Start(ctx, 1)
	require.NoError(t, err)

	f.tour.fail = true
	state, err := f.wizard.Next(ctx)
	assert.ErrorIs(t, err, utils.ErrUpstreamRequest)
	require.NotNil(t, state)
	assert.Equal(t, string(StepAttractions), state.Step)
	assert.Empty(t, state.Attractions)

	f.tour.fail = false
	state, err = f.wizard.Reload(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Attractions, 2)
}

func TestReloadRestaurantsResetsToFirstPage(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	_, err = f.wizard.LoadMoreRestaurants(ctx)
	require.NoError(t, err)

	state, err := f.wizard.Reload(ctx)
	require.NoError(t, err)

	assert.Len(t, state.Restaurants, 15)
	assert.Equal(t, 1, state.RestaurantPage)
	assert.True(t, state.HasMoreRestaurants)
}

func TestStartClearsCachedPoolForRegion(t *testing.T) {
	f := newWizardFixture(t)
	ctx := context.Background()

	_, err := f.wizard.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.tour.calls)

	_, err = f.wizard.Start(ctx, 1)
	require.NoError(t, err)
	_, err = f.wizard.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.tour.calls)
}
