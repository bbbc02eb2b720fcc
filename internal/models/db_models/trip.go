package db_models

type TripStyle string

const (
	TripStyleRelaxed TripStyle = "RELAXED"
	TripStyleNormal  TripStyle = "NORMAL"
	TripStylePacked  TripStyle = "PACKED"
)

type ScheduleItemType string

const (
	ScheduleItemAttraction ScheduleItemType = "attraction"
	ScheduleItemRestaurant ScheduleItemType = "restaurant"
	ScheduleItemTransport  ScheduleItemType = "transport"
)

// ScheduleItem is derived from a selected place. Its ID is namespaced by the
// source kind so an attraction and a restaurant sharing a raw id never collide.
type ScheduleItem struct {
	ID       string           `json:"id"`
	Type     ScheduleItemType `json:"type"`
	Name     string           `json:"name"`
	Address  string           `json:"address"`
	Lat      float64          `json:"lat"`
	Lng      float64          `json:"lng"`
	Image    string           `json:"image,omitempty"`
	Duration int              `json:"duration"`
	Memo     string           `json:"memo,omitempty"`
}

type DaySchedule struct {
	Day   int            `json:"day"`
	Date  string         `json:"date,omitempty"`
	Items []ScheduleItem `json:"items"`
}

type TransportType string

const (
	TransportCar    TransportType = "car"
	TransportPublic TransportType = "public"
	TransportWalk   TransportType = "walk"
)

type TransportInfo struct {
	Type        TransportType `json:"type"`
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Distance    float64       `json:"distance,omitempty"`
	Duration    int           `json:"duration,omitempty"`
	Cost        int           `json:"cost,omitempty"`
}

// TripSession is the central aggregate of one in-progress trip. It is owned by
// the trip service and serialized as a whole on every mutation.
type TripSession struct {
	Destination         *Region        `json:"destination"`
	Duration            int            `json:"duration"`
	StartDate           string         `json:"startDate,omitempty"`
	TripStyle           TripStyle      `json:"tripStyle,omitempty"`
	SelectedAttractions []Attraction   `json:"selectedAttractions"`
	SelectedRestaurants []Restaurant   `json:"selectedRestaurants"`
	Schedule            []DaySchedule  `json:"schedule"`
	Transport           *TransportInfo `json:"transport"`
}

// NewTripSession returns the initial empty state: no destination, one day,
// empty selections.
func NewTripSession() *TripSession {
	return &TripSession{
		Duration:            1,
		SelectedAttractions: []Attraction{},
		SelectedRestaurants: []Restaurant{},
		Schedule:            []DaySchedule{},
	}
}
