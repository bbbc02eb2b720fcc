package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ildanga/cmd/fx/controllers_fx"
	"ildanga/cmd/fx/db_fx"
	"ildanga/cmd/fx/memcache_fx"
	"ildanga/cmd/fx/places_fx"
	"ildanga/cmd/fx/plan_fx"
	"ildanga/cmd/fx/prompt_fx"
	"ildanga/cmd/fx/region_fx"
	"ildanga/cmd/fx/tour_fx"
	"ildanga/cmd/fx/trip_fx"
	"ildanga/cmd/fx/wizard_fx"
	"ildanga/internal/api/controllers"
	"ildanga/internal/infra"
	"ildanga/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		region_fx.Module,
		trip_fx.Module,
		places_fx.Module,
		tour_fx.Module,
		plan_fx.Module,
		prompt_fx.Module,
		wizard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	regionsController *controllers.RegionsController,
	tripController *controllers.TripController,
	placesController *controllers.PlacesController,
	tourController *controllers.TourController,
	planController *controllers.PlanController,
	promptController *controllers.PromptController,
	wizardController *controllers.WizardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		regionsController,
		tripController,
		placesController,
		tourController,
		planController,
		promptController,
		wizardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	regionsController *controllers.RegionsController,
	tripController *controllers.TripController,
	placesController *controllers.PlacesController,
	tourController *controllers.TourController,
	planController *controllers.PlanController,
	promptController *controllers.PromptController,
	wizardController *controllers.WizardController) {

	api := r.Group("/api")
	api.GET("/places", placesController.SearchPlaces)
	api.GET("/tour", tourController.SearchAttractions)
	api.POST("/generate-plan", planController.GeneratePlan)

	regionsGroup := r.Group("/regions")
	regionsGroup.GET("/list-all", regionsController.GetAllRegions)
	regionsGroup.GET("/search", regionsController.SearchRegions)
	regionsGroup.GET("/random", regionsController.GetRandomRegion)
	regionsGroup.GET("/:regionId", regionsController.GetRegionByID)

	tripGroup := r.Group("/trip")
	tripGroup.GET("", tripController.GetTrip)
	tripGroup.POST("/destination", tripController.SetDestination)
	tripGroup.POST("/duration", tripController.SetDuration)
	tripGroup.POST("/start-date", tripController.SetStartDate)
	tripGroup.POST("/style", tripController.SetTripStyle)
	tripGroup.POST("/attractions", tripController.AddAttraction)
	tripGroup.DELETE("/attractions", tripController.ClearAttractions)
	tripGroup.DELETE("/attractions/:attractionId", tripController.RemoveAttraction)
	tripGroup.POST("/restaurants", tripController.AddRestaurant)
	tripGroup.DELETE("/restaurants", tripController.ClearRestaurants)
	tripGroup.DELETE("/restaurants/:restaurantId", tripController.RemoveRestaurant)
	tripGroup.PUT("/schedule", tripController.SetSchedule)
	tripGroup.POST("/schedule/generate", tripController.GenerateSchedule)
	tripGroup.PUT("/schedule/:day", tripController.UpdateDaySchedule)
	tripGroup.POST("/transport", tripController.SetTransport)
	tripGroup.POST("/reset", tripController.ResetTrip)

	wizardGroup := r.Group("/wizard")
	wizardGroup.GET("", wizardController.GetWizardState)
	wizardGroup.POST("/start", wizardController.StartWizard)
	wizardGroup.POST("/next", wizardController.NextStep)
	wizardGroup.POST("/prev", wizardController.PrevStep)
	wizardGroup.POST("/reload", wizardController.ReloadStep)
	wizardGroup.POST("/restaurants/load-more", wizardController.LoadMoreRestaurants)

	r.GET("/prompt", promptController.GetPrompt)
}
