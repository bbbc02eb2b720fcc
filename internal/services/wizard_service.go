package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"ildanga/internal/models/db_models"
	"ildanga/internal/models/request_models"
	"ildanga/internal/models/response_models"
	"ildanga/internal/repositories"
	mem "ildanga/pkg/memcache"
	"ildanga/pkg/utils"
)

// WizardStep is one screen of the planning flow.
type WizardStep string

const (
	StepInfo        WizardStep = "info"
	StepAttractions WizardStep = "attractions"
	StepRestaurants WizardStep = "restaurants"
	StepResult      WizardStep = "result"
)

// Candidate loading parameters. Attractions come from one wide
// location-based query per region; restaurants page through keyword search.
const (
	attractionSearchRadius  = "20000"
	attractionSearchRows    = "100"
	attractionContentTypeID = "12"
	restaurantPageSize      = 15
)

// NextStep returns the step after s, or s itself when already at the end.
func NextStep(s WizardStep) WizardStep {
	switch s {
	case StepInfo:
		return StepAttractions
	case StepAttractions:
		return StepRestaurants
	case StepRestaurants:
		return StepResult
	default:
		return s
	}
}

// PrevStep returns the step before s, or s itself when already at the start.
func PrevStep(s WizardStep) WizardStep {
	switch s {
	case StepResult:
		return StepRestaurants
	case StepRestaurants:
		return StepAttractions
	case StepAttractions:
		return StepInfo
	default:
		return s
	}
}

// WizardServiceInterface drives the step-by-step planning flow on top of the
// trip session: it advances steps, loads candidate pools on first entry, and
// pages through restaurant results.
type WizardServiceInterface interface {
	Start(ctx context.Context, regionID int) (*response_models.WizardStateResponse, error)
	State() response_models.WizardStateResponse
	Next(ctx context.Context) (*response_models.WizardStateResponse, error)
	Prev(ctx context.Context) (*response_models.WizardStateResponse, error)
	LoadMoreRestaurants(ctx context.Context) (*response_models.WizardStateResponse, error)
	Reload(ctx context.Context) (*response_models.WizardStateResponse, error)
}

type WizardService struct {
	tripService  TripServiceInterface
	tourService  TourServiceInterface
	placeService PlacesServiceInterface
	regionRepo   repositories.RegionRepository
	pools        mem.CandidatePoolStore

	mu                 sync.Mutex
	step               WizardStep
	loading            bool
	attractions        []db_models.Attraction
	restaurants        []db_models.Restaurant
	restaurantPage     int
	hasMoreRestaurants bool
}

func NewWizardService(
	tripService TripServiceInterface,
	tourService TourServiceInterface,
	placeService PlacesServiceInterface,
	regionRepo repositories.RegionRepository,
	pools mem.CandidatePoolStore,
) WizardServiceInterface {
	return &WizardService{
		tripService:  tripService,
		tourService:  tourService,
		placeService: placeService,
		regionRepo:   regionRepo,
		pools:        pools,
		step:         StepInfo,
	}
}

func attractionPoolKey(regionID int) string {
	return fmt.Sprintf("attractions:%d", regionID)
}

// Start begins a fresh flow for the given region: the previous trip is wiped,
// the destination is set, and the wizard returns to the info step.
func (w *WizardService) Start(ctx context.Context, regionID int) (*response_models.WizardStateResponse, error) {
	region, err := w.regionRepo.GetByID(regionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if region == nil {
		return nil, utils.ErrRegionNotFound
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.loading {
		return nil, utils.ErrRequestInFlight
	}

	w.tripService.ResetTrip(ctx)
	w.tripService.SetDestination(ctx, region)
	w.pools.Delete(attractionPoolKey(regionID))

	w.step = StepInfo
	w.attractions = nil
	w.restaurants = nil
	w.restaurantPage = 0
	w.hasMoreRestaurants = false

	state := w.stateLocked()
	return &state, nil
}

func (w *WizardService) State() response_models.WizardStateResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *WizardService) stateLocked() response_models.WizardStateResponse {
	out := response_models.WizardStateResponse{
		Step:               string(w.step),
		Loading:            w.loading,
		Attractions:        append([]db_models.Attraction{}, w.attractions...),
		Restaurants:        append([]db_models.Restaurant{}, w.restaurants...),
		RestaurantPage:     w.restaurantPage,
		HasMoreRestaurants: w.hasMoreRestaurants,
	}
	return out
}

// Next advances to the following step, loading that step's candidate pool on
// first entry. A load failure keeps the advanced step so Reload can retry.
func (w *WizardService) Next(ctx context.Context) (*response_models.WizardStateResponse, error) {
	session := w.tripService.Snapshot()
	if session.Destination == nil {
		return nil, utils.ErrNoDestination
	}
	if session.Duration < 1 {
		return nil, utils.ErrDurationRequired
	}

	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return nil, utils.ErrRequestInFlight
	}
	next := NextStep(w.step)
	if next == w.step {
		state := w.stateLocked()
		w.mu.Unlock()
		return &state, nil
	}
	w.step = next
	w.mu.Unlock()

	var loadErr error
	switch next {
	case StepAttractions:
		loadErr = w.ensureAttractions(ctx, session.Destination)
	case StepRestaurants:
		loadErr = w.ensureRestaurants(ctx, session.Destination)
	}

	state := w.State()
	if loadErr != nil {
		return &state, loadErr
	}
	return &state, nil
}

// Prev steps back without touching candidate pools or selections.
func (w *WizardService) Prev(ctx context.Context) (*response_models.WizardStateResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.loading {
		return nil, utils.ErrRequestInFlight
	}
	w.step = PrevStep(w.step)
	state := w.stateLocked()
	return &state, nil
}

// Reload re-runs the current step's candidate load, bypassing the cache.
func (w *WizardService) Reload(ctx context.Context) (*response_models.WizardStateResponse, error) {
	session := w.tripService.Snapshot()
	if session.Destination == nil {
		return nil, utils.ErrNoDestination
	}

	w.mu.Lock()
	step := w.step
	w.mu.Unlock()

	var loadErr error
	switch step {
	case StepAttractions:
		w.pools.Delete(attractionPoolKey(session.Destination.ID))
		loadErr = w.ensureAttractions(ctx, session.Destination)
	case StepRestaurants:
		loadErr = w.reloadRestaurants(ctx, session.Destination)
	}

	state := w.State()
	if loadErr != nil {
		return &state, loadErr
	}
	return &state, nil
}

// LoadMoreRestaurants fetches the next restaurant page and appends it. The
// pool is considered exhausted when a page comes back short.
func (w *WizardService) LoadMoreRestaurants(ctx context.Context) (*response_models.WizardStateResponse, error) {
	session := w.tripService.Snapshot()
	if session.Destination == nil {
		return nil, utils.ErrNoDestination
	}

	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return nil, utils.ErrRequestInFlight
	}
	if !w.hasMoreRestaurants {
		state := w.stateLocked()
		w.mu.Unlock()
		return &state, nil
	}
	page := w.restaurantPage + 1
	w.loading = true
	w.mu.Unlock()

	batch, err := w.fetchRestaurantPage(ctx, session.Destination.Name, page)

	w.mu.Lock()
	w.loading = false
	if err == nil {
		w.restaurants = append(w.restaurants, batch...)
		w.restaurantPage = page
		w.hasMoreRestaurants = len(batch) == restaurantPageSize
	}
	state := w.stateLocked()
	w.mu.Unlock()

	if err != nil {
		return &state, err
	}
	return &state, nil
}

// ensureAttractions fills the attraction pool for the region, fetching from
// upstream only when the cache has nothing.
func (w *WizardService) ensureAttractions(ctx context.Context, region *db_models.Region) error {
	key := attractionPoolKey(region.ID)
	if cached, ok := w.pools.Get(key); ok {
		w.mu.Lock()
		w.attractions = cached
		w.mu.Unlock()
		return nil
	}

	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return utils.ErrRequestInFlight
	}
	w.loading = true
	w.mu.Unlock()

	resp, err := w.tourService.ListAttractionsNearLocation(ctx, request_models.TourQuery{
		MapX:          strconv.FormatFloat(region.Lng, 'f', -1, 64),
		MapY:          strconv.FormatFloat(region.Lat, 'f', -1, 64),
		Radius:        attractionSearchRadius,
		ContentTypeID: attractionContentTypeID,
		NumOfRows:     attractionSearchRows,
	})

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false

	if err != nil {
		return err
	}
	if !resp.Success {
		log.Printf("Attraction pool load failed for region %d: %s", region.ID, resp.Error)
		return fmt.Errorf("%w: %s", utils.ErrUpstreamRequest, resp.Error)
	}

	w.pools.Set(key, resp.Items, 0)
	w.attractions = resp.Items
	return nil
}

func (w *WizardService) ensureRestaurants(ctx context.Context, region *db_models.Region) error {
	w.mu.Lock()
	if len(w.restaurants) > 0 {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()
	return w.reloadRestaurants(ctx, region)
}

// reloadRestaurants resets the restaurant list back to page one.
func (w *WizardService) reloadRestaurants(ctx context.Context, region *db_models.Region) error {
	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return utils.ErrRequestInFlight
	}
	w.loading = true
	w.mu.Unlock()

	batch, err := w.fetchRestaurantPage(ctx, region.Name, 1)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false

	if err != nil {
		return err
	}
	w.restaurants = batch
	w.restaurantPage = 1
	w.hasMoreRestaurants = len(batch) == restaurantPageSize
	return nil
}

func (w *WizardService) fetchRestaurantPage(ctx context.Context, regionName string, page int) ([]db_models.Restaurant, error) {
	resp, err := w.placeService.SearchPlacesByKeyword(ctx, request_models.PlaceKeywordQuery{
		Query: regionName + " 맛집",
		Page:  strconv.Itoa(page),
		Size:  strconv.Itoa(restaurantPageSize),
		Sort:  "accuracy",
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		log.Printf("Restaurant search failed for %s page %d: %s", regionName, page, resp.Error)
		return nil, fmt.Errorf("%w: %s", utils.ErrUpstreamRequest, resp.Error)
	}
	return resp.Items, nil
}
