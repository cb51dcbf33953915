package gemini

import (
	"context"
	"errors"
	"fmt"

	"agri-assistant-be/pkg/llm"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &GeminiProvider{client: client, modelName: modelName}, nil
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := applyOptions(opts)

	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		// Gemini knows only "user" and "model" turns
		if role != genai.RoleModel {
			role = genai.RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	return p.generateContent(ctx, contents, options)
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	options := applyOptions(opts)
	return p.generateContent(ctx, genai.Text(prompt), options)
}

func (p *GeminiProvider) generateContent(ctx context.Context, contents []*genai.Content, options *llm.Options) (string, error) {
	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	var cfg *genai.GenerateContentConfig
	if options.Temperature != 0 {
		temp := float32(options.Temperature)
		cfg = &genai.GenerateContentConfig{Temperature: &temp}
	}

	res, err := p.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	text := ""
	for _, part := range res.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}

func applyOptions(opts []llm.Option) *llm.Options {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
