package controllers_fx

import (
	"go.uber.org/fx"

	"ildanga/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRegionsController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewTourController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewPromptController),
	fx.Provide(controllers.NewWizardController))
