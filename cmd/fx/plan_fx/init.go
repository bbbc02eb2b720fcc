package plan_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"ildanga/internal/services"
	"ildanga/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlanClient,
	ProvidePlanService)

// PlanConfig holds configuration for the AI plan provider
type PlanConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvidePlanClient creates a plan client based on environment variables
func ProvidePlanClient() (utils.PlanClientInterface, error) {
	config := getPlanConfig()

	log.Printf("Initializing %s plan client with model: %s", config.Provider, config.Model)

	return utils.NewPlanClient(config.Provider, config.APIKey, config.Model)
}

func ProvidePlanService(planClient utils.PlanClientInterface) services.PlanServiceInterface {
	return services.NewPlanService(planClient)
}

// getPlanConfig reads configuration from environment variables
func getPlanConfig() PlanConfig {
	provider := getEnvWithDefault("PLAN_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	default:
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
	}

	return PlanConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
