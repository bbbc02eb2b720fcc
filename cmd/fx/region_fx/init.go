package region_fx

import (
	"go.uber.org/fx"

	"ildanga/internal/repositories"
	"ildanga/internal/services"
)

var Module = fx.Provide(
	NewRegionService, NewRegionRepo)

func NewRegionService(repo repositories.RegionRepository) services.RegionServiceInterface {
	return services.NewRegionService(repo)
}

func NewRegionRepo() repositories.RegionRepository {
	return repositories.NewRegionRepository()
}
