package response_models

import "ildanga/internal/models/db_models"

// WizardStateResponse is the wizard's visible state: the current step plus the
// candidate pools the step renders from.
type WizardStateResponse struct {
	Step               string                 `json:"step"`
	Loading            bool                   `json:"loading"`
	Attractions        []db_models.Attraction `json:"attractions"`
	Restaurants        []db_models.Restaurant `json:"restaurants"`
	RestaurantPage     int                    `json:"restaurantPage"`
	HasMoreRestaurants bool                   `json:"hasMoreRestaurants"`
}
