package request_models

// GeneratePlanRequest mirrors the body the result screen posts to the AI plan
// endpoint: destination summary plus the user's selections.
type GeneratePlanRequest struct {
	Destination PlanDestination  `json:"destination" binding:"required"`
	Duration    int              `json:"duration" binding:"required,min=1"`
	Attractions []PlanAttraction `json:"attractions"`
	Restaurants []PlanRestaurant `json:"restaurants"`
}

type PlanDestination struct {
	Name       string   `json:"name" binding:"required"`
	Province   string   `json:"province"`
	Slogan     string   `json:"slogan"`
	Highlights []string `json:"highlights"`
}

type PlanAttraction struct {
	Title string `json:"title"`
	Addr1 string `json:"addr1"`
}

type PlanRestaurant struct {
	PlaceName    string `json:"placeName"`
	CategoryName string `json:"categoryName"`
	AddressName  string `json:"addressName"`
}
