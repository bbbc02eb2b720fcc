package request_models

// PlaceKeywordQuery carries the parameters of a Kakao keyword search. All
// values are already defaulted by the controller.
type PlaceKeywordQuery struct {
	Query  string
	X      string
	Y      string
	Radius string
	Page   string
	Size   string
	Sort   string
}

type PlaceCategoryQuery struct {
	Category string
	X        string
	Y        string
	Radius   string
	Page     string
	Size     string
	Sort     string
}

// TourQuery covers the parameter surface of the TourAPI actions; each action
// reads the subset it needs.
type TourQuery struct {
	AreaCode      string
	SigunguCode   string
	ContentTypeID string
	NumOfRows     string
	PageNo        string
	MapX          string
	MapY          string
	Radius        string
	Keyword       string
	ContentID     string
}
