package prompt_fx

import (
	"go.uber.org/fx"

	"ildanga/internal/services"
)

var Module = fx.Provide(NewPromptService)

func NewPromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}
