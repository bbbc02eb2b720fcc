package response_models

type RegionResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Province   string   `json:"province"`
	Slogan     string   `json:"slogan"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Thumbnail  string   `json:"thumbnail"`
	Highlights []string `json:"highlights"`
}
