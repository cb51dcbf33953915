package factory

import (
	"context"
	"fmt"

	"agri-assistant-be/pkg/llm"
	"agri-assistant-be/pkg/llm/gemini"
	"agri-assistant-be/pkg/llm/ollama"
)

func NewLLMProvider(ctx context.Context, providerType, modelName, ollamaBaseURL, geminiAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(ctx, geminiAPIKey, modelName)
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
