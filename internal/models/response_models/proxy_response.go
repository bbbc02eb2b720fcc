package response_models

import "ildanga/internal/models/db_models"

// KeyGuide is the remediation guide returned alongside a missing-credential
// error. Callers display it verbatim.
type KeyGuide struct {
	Title string   `json:"title"`
	Steps []string `json:"steps"`
	URL   string   `json:"url"`
}

// PlaceSearchMeta is the subset of Kakao's meta block passed through to
// callers.
type PlaceSearchMeta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

// PlaceSearchResponse is the uniform shape of every Kakao proxy reply. Items
// is never nil, so a failure still carries an empty list.
type PlaceSearchResponse struct {
	Success bool                   `json:"success"`
	Meta    *PlaceSearchMeta       `json:"meta,omitempty"`
	Items   []db_models.Restaurant `json:"items"`
	Error   string                 `json:"error,omitempty"`
	Details string                 `json:"details,omitempty"`
	Guide   *KeyGuide              `json:"guide,omitempty"`
}

// TourListResponse is the uniform shape of every TourAPI proxy reply.
type TourListResponse struct {
	Success    bool                   `json:"success"`
	TotalCount int                    `json:"totalCount"`
	Items      []db_models.Attraction `json:"items"`
	Error      string                 `json:"error,omitempty"`
	Guide      *KeyGuide              `json:"guide,omitempty"`
}

// PlanResponse wraps the generated plan text. Success only asserts that the
// model returned any non-empty text.
type PlanResponse struct {
	Success bool      `json:"success"`
	Plan    string    `json:"plan,omitempty"`
	Error   string    `json:"error,omitempty"`
	Details string    `json:"details,omitempty"`
	Guide   *KeyGuide `json:"guide,omitempty"`
}
