package wizard_fx

import (
	"go.uber.org/fx"

	"ildanga/internal/repositories"
	"ildanga/internal/services"
	mem "ildanga/pkg/memcache"
)

var Module = fx.Provide(ProvideWizardService)

func ProvideWizardService(
	tripService services.TripServiceInterface,
	tourService services.TourServiceInterface,
	placesService services.PlacesServiceInterface,
	regionRepo repositories.RegionRepository,
	pools mem.CandidatePoolStore,
) services.WizardServiceInterface {
	return services.NewWizardService(tripService, tourService, placesService, regionRepo, pools)
}
