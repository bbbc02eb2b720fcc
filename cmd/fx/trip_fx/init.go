package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ildanga/internal/repositories"
	"ildanga/internal/services"
)

var Module = fx.Provide(
	NewTripService, NewTripRepo)

func NewTripService(repo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(repo)
}

func NewTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}
