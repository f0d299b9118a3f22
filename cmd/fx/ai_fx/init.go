package ai_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tobugo/pkg/utils"
)

var Module = fx.Provide(
	providePlannerAI, provideEmbeddingClient)

func providePlannerAI() utils.PlannerAIInterface {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewPlannerAIClient(
		provider,
		apiKey,
		os.Getenv("AI_PLAN_MODEL"),
		os.Getenv("AI_CHAT_MODEL"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize AI client: %v", err)
	}
	return client
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewOpenAIEmbeddingClient(
		os.Getenv("OPENAI_API_KEY"),
		os.Getenv("OPENAI_EMBEDDING_MODEL"),
	)
}
