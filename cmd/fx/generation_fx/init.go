package generation_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"mealweek/internal/services"
	"mealweek/pkg/utils"
)

var Module = fx.Provide(
	provideGenerationClient, provideGenerationService)

// provideGenerationClient picks the LLM backend from AI_PROVIDER.
// Gemini is the default; set AI_PROVIDER=openai to switch.
func provideGenerationClient() utils.GenerationClientInterface {
	switch os.Getenv("AI_PROVIDER") {
	case "openai":
		return utils.NewOpenAIGenerationClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	default:
		client, err := utils.NewGeminiGenerationClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		return client
	}
}

func provideGenerationService(client utils.GenerationClientInterface) services.GenerationServiceInterface {
	return services.NewGenerationService(client)
}
