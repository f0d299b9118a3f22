package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlannerClient is the alternate PlannerAIInterface implementation,
// selected with AI_PROVIDER=openai.
type OpenAIPlannerClient struct {
	client    *openai.Client
	planModel string
	chatModel string
}

func NewOpenAIPlannerClient(apiKey, planModel, chatModel string) *OpenAIPlannerClient {
	if planModel == "" {
		planModel = openai.GPT4o
	}
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &OpenAIPlannerClient{
		client:    openai.NewClient(apiKey),
		planModel: planModel,
		chatModel: chatModel,
	}
}

func (c *OpenAIPlannerClient) GenerateJSON(ctx context.Context, systemInstruction, userContent string) (string, error) {
	return c.generate(ctx, c.planModel, systemInstruction, userContent)
}

func (c *OpenAIPlannerClient) GenerateChatJSON(ctx context.Context, systemInstruction, userContent string) (string, error) {
	return c.generate(ctx, c.chatModel, systemInstruction, userContent)
}

func (c *OpenAIPlannerClient) generate(ctx context.Context, model, systemInstruction, userContent string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// EmbeddingClientInterface produces vector embeddings for community
// similar-trip search.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey, model string) *OpenAIEmbeddingClient {
	embeddingModel := openai.SmallEmbedding3
	if model != "" {
		embeddingModel = openai.EmbeddingModel(model)
	}
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  embeddingModel,
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

// NewPlannerAIClient builds the provider selected by configuration.
func NewPlannerAIClient(provider, apiKey, planModel, chatModel string) (PlannerAIInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, planModel, chatModel), nil
	case "gemini", "":
		return NewGeminiPlannerClient(apiKey, planModel, chatModel)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
