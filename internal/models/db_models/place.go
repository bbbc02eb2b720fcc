package db_models

// Attraction is a TourAPI item normalized at the proxy boundary. Optional
// upstream fields are always materialized as empty strings, never omitted.
type Attraction struct {
	ID            string  `json:"id"`
	ContentID     string  `json:"contentId"`
	ContentTypeID string  `json:"contentTypeId"`
	Title         string  `json:"title"`
	Addr1         string  `json:"addr1"`
	Addr2         string  `json:"addr2"`
	Tel           string  `json:"tel"`
	FirstImage    string  `json:"firstImage"`
	FirstImage2   string  `json:"firstImage2"`
	MapX          float64 `json:"mapx"`
	MapY          float64 `json:"mapy"`
	Overview      string  `json:"overview"`
}

// Restaurant is a Kakao Local document normalized at the proxy boundary.
type Restaurant struct {
	ID                string  `json:"id"`
	PlaceName         string  `json:"placeName"`
	CategoryName      string  `json:"categoryName"`
	CategoryGroupCode string  `json:"categoryGroupCode"`
	CategoryGroupName string  `json:"categoryGroupName"`
	Phone             string  `json:"phone"`
	AddressName       string  `json:"addressName"`
	RoadAddressName   string  `json:"roadAddressName"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	PlaceURL          string  `json:"placeUrl"`
	Distance          string  `json:"distance"`
}
