package places_fx

import (
	"os"

	"go.uber.org/fx"

	"ildanga/internal/services"
)

var Module = fx.Provide(ProvidePlacesService)

// ProvidePlacesService builds the Kakao Local proxy. An empty key is allowed;
// the missing-credential error surfaces per request with the setup guide.
func ProvidePlacesService() services.PlacesServiceInterface {
	return services.NewPlacesService(os.Getenv("KAKAO_API_KEY"))
}
