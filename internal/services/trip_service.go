package services

import (
	"context"
	"log"
	"sync"
	"time"

	"ildanga/internal/models/db_models"
	"ildanga/internal/repositories"
)

// TripStorageKey is the fixed namespace under which the whole session is
// persisted. Only an explicit reset clears the stored record.
const TripStorageKey = "ildanga-trip-storage"

// Stay estimates per place kind, in minutes. Policy constants, not
// user-configurable.
const (
	attractionStayMinutes = 90
	restaurantStayMinutes = 60
)

// TripServiceInterface is the sole owner of the in-progress trip. Every
// mutation is written through to durable storage.
type TripServiceInterface interface {
	Snapshot() db_models.TripSession
	SavedAt() time.Time

	SetDestination(ctx context.Context, region *db_models.Region)
	SetDuration(ctx context.Context, days int)
	SetStartDate(ctx context.Context, date string)
	SetTripStyle(ctx context.Context, style db_models.TripStyle)

	AddAttraction(ctx context.Context, attraction db_models.Attraction)
	RemoveAttraction(ctx context.Context, id string)
	ClearAttractions(ctx context.Context)

	AddRestaurant(ctx context.Context, restaurant db_models.Restaurant)
	RemoveRestaurant(ctx context.Context, id string)
	ClearRestaurants(ctx context.Context)

	SetSchedule(ctx context.Context, schedule []db_models.DaySchedule)
	UpdateDaySchedule(ctx context.Context, day int, items []db_models.ScheduleItem)
	GenerateSchedule(ctx context.Context) []db_models.DaySchedule

	SetTransport(ctx context.Context, transport *db_models.TransportInfo)
	ResetTrip(ctx context.Context)
}

type TripService struct {
	tripRepo repositories.TripRepository

	mu      sync.RWMutex
	session *db_models.TripSession
	savedAt time.Time
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	s := &TripService{
		tripRepo: tripRepo,
		session:  db_models.NewTripSession(),
	}

	stored, savedAt, err := tripRepo.Load(context.Background(), TripStorageKey)
	if err != nil {
		log.Printf("Failed to rehydrate trip session, starting empty: %v", err)
		return s
	}
	if stored != nil {
		normalizeSession(stored)
		s.session = stored
		s.savedAt = savedAt
	}
	return s
}

// normalizeSession re-establishes invariants on a rehydrated session.
func normalizeSession(session *db_models.TripSession) {
	if session.Duration < 1 {
		session.Duration = 1
	}
	if session.SelectedAttractions == nil {
		session.SelectedAttractions = []db_models.Attraction{}
	}
	if session.SelectedRestaurants == nil {
		session.SelectedRestaurants = []db_models.Restaurant{}
	}
	if session.Schedule == nil {
		session.Schedule = []db_models.DaySchedule{}
	}
}

// persist writes the session through to storage. Persistence is
// fire-and-forget: a failed write is logged, never surfaced to the mutation.
func (s *TripService) persist(ctx context.Context) {
	if err := s.tripRepo.Save(ctx, TripStorageKey, s.session); err != nil {
		log.Printf("Failed to persist trip session: %v", err)
		return
	}
	s.savedAt = time.Now()
}

func (s *TripService) Snapshot() db_models.TripSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

func (s *TripService) SavedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.savedAt
}

func copySession(session *db_models.TripSession) db_models.TripSession {
	out := *session

	if session.Destination != nil {
		dest := *session.Destination
		dest.Highlights = append([]string(nil), session.Destination.Highlights...)
		out.Destination = &dest
	}
	if session.Transport != nil {
		transport := *session.Transport
		out.Transport = &transport
	}

	out.SelectedAttractions = append([]db_models.Attraction{}, session.SelectedAttractions...)
	out.SelectedRestaurants = append([]db_models.Restaurant{}, session.SelectedRestaurants...)

	out.Schedule = make([]db_models.DaySchedule, len(session.Schedule))
	for i, day := range session.Schedule {
		day.Items = append([]db_models.ScheduleItem{}, day.Items...)
		out.Schedule[i] = day
	}
	return out
}

func (s *TripService) SetDestination(ctx context.Context, region *db_models.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Destination = region
	s.persist(ctx)
}

func (s *TripService) SetDuration(ctx context.Context, days int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if days < 1 {
		days = 1
	}
	s.session.Duration = days
	s.persist(ctx)
}

func (s *TripService) SetStartDate(ctx context.Context, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.StartDate = date
	s.persist(ctx)
}

func (s *TripService) SetTripStyle(ctx context.Context, style db_models.TripStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.TripStyle = style
	s.persist(ctx)
}

func (s *TripService) AddAttraction(ctx context.Context, attraction db_models.Attraction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.session.SelectedAttractions {
		if existing.ID == attraction.ID {
			return
		}
	}
	s.session.SelectedAttractions = append(s.session.SelectedAttractions, attraction)
	s.persist(ctx)
}

func (s *TripService) RemoveAttraction(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.session.SelectedAttractions[:0]
	for _, existing := range s.session.SelectedAttractions {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.session.SelectedAttractions = kept
	s.persist(ctx)
}

func (s *TripService) ClearAttractions(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SelectedAttractions = []db_models.Attraction{}
	s.persist(ctx)
}

func (s *TripService) AddRestaurant(ctx context.Context, restaurant db_models.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.session.SelectedRestaurants {
		if existing.ID == restaurant.ID {
			return
		}
	}
	s.session.SelectedRestaurants = append(s.session.SelectedRestaurants, restaurant)
	s.persist(ctx)
}

func (s *TripService) RemoveRestaurant(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.session.SelectedRestaurants[:0]
	for _, existing := range s.session.SelectedRestaurants {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.session.SelectedRestaurants = kept
	s.persist(ctx)
}

func (s *TripService) ClearRestaurants(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SelectedRestaurants = []db_models.Restaurant{}
	s.persist(ctx)
}

func (s *TripService) SetSchedule(ctx context.Context, schedule []db_models.DaySchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if schedule == nil {
		schedule = []db_models.DaySchedule{}
	}
	s.session.Schedule = schedule
	s.persist(ctx)
}

// UpdateDaySchedule replaces the items of the matching day. A missing day is a
// silent no-op, not an error.
func (s *TripService) UpdateDaySchedule(ctx context.Context, day int, items []db_models.ScheduleItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.session.Schedule {
		if s.session.Schedule[i].Day == day {
			s.session.Schedule[i].Items = items
			s.persist(ctx)
			return
		}
	}
}

// GenerateSchedule derives the daily itinerary from the current selections:
// attractions first in selection order, then restaurants, bucket-filled over
// the trip days with any remainder landing in the last day. It is not a route
// optimizer; item order is preserved as-is.
func (s *TripService) GenerateSchedule(ctx context.Context) []db_models.DaySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	duration := s.session.Duration
	schedule := make([]db_models.DaySchedule, 0, duration)
	for day := 1; day <= duration; day++ {
		schedule = append(schedule, db_models.DaySchedule{Day: day, Items: []db_models.ScheduleItem{}})
	}

	allPlaces := make([]db_models.ScheduleItem, 0,
		len(s.session.SelectedAttractions)+len(s.session.SelectedRestaurants))
	for _, a := range s.session.SelectedAttractions {
		allPlaces = append(allPlaces, db_models.ScheduleItem{
			ID:       "attraction-" + a.ID,
			Type:     db_models.ScheduleItemAttraction,
			Name:     a.Title,
			Address:  a.Addr1,
			Lat:      a.MapY,
			Lng:      a.MapX,
			Image:    a.FirstImage,
			Duration: attractionStayMinutes,
		})
	}
	for _, r := range s.session.SelectedRestaurants {
		allPlaces = append(allPlaces, db_models.ScheduleItem{
			ID:       "restaurant-" + r.ID,
			Type:     db_models.ScheduleItemRestaurant,
			Name:     r.PlaceName,
			Address:  r.AddressName,
			Lat:      r.Y,
			Lng:      r.X,
			Duration: restaurantStayMinutes,
		})
	}

	placesPerDay := (len(allPlaces) + duration - 1) / duration
	for idx, place := range allPlaces {
		dayIndex := idx / placesPerDay
		if dayIndex > duration-1 {
			dayIndex = duration - 1
		}
		schedule[dayIndex].Items = append(schedule[dayIndex].Items, place)
	}

	s.session.Schedule = schedule
	s.persist(ctx)
	return copySession(s.session).Schedule
}

func (s *TripService) SetTransport(ctx context.Context, transport *db_models.TransportInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Transport = transport
	s.persist(ctx)
}

func (s *TripService) ResetTrip(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = db_models.NewTripSession()
	s.persist(ctx)
}
