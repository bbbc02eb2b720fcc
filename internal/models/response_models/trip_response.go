package response_models

import "ildanga/internal/models/db_models"

// TripResponse is the session snapshot plus the time of the last durable
// write, formatted in KST.
type TripResponse struct {
	Session db_models.TripSession `json:"session"`
	SavedAt string                `json:"saved_at,omitempty"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}
