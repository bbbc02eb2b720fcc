package tour_fx

import (
	"os"

	"go.uber.org/fx"

	"ildanga/internal/services"
)

var Module = fx.Provide(ProvideTourService)

func ProvideTourService() services.TourServiceInterface {
	return services.NewTourService(os.Getenv("TOUR_API_KEY"))
}
