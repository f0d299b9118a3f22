package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// PlannerAIInterface is the generative collaborator the planner core talks
// to: one JSON-mode invocation per call. GenerateJSON uses the heavyweight
// planning model; GenerateChatJSON uses the fast conversational one.
type PlannerAIInterface interface {
	GenerateJSON(ctx context.Context, systemInstruction string, userContent string) (string, error)
	GenerateChatJSON(ctx context.Context, systemInstruction string, userContent string) (string, error)
}

// GeminiPlannerClient implements PlannerAIInterface on Google's Gemini models.
type GeminiPlannerClient struct {
	client    *genai.Client
	planModel string
	chatModel string
}

func NewGeminiPlannerClient(apiKey, planModel, chatModel string) (*GeminiPlannerClient, error) {
	if planModel == "" {
		planModel = "gemini-2.5-pro"
	}
	if chatModel == "" {
		chatModel = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client:    client,
		planModel: planModel,
		chatModel: chatModel,
	}, nil
}

func (c *GeminiPlannerClient) GenerateJSON(ctx context.Context, systemInstruction, userContent string) (string, error) {
	return c.generate(ctx, c.planModel, systemInstruction, userContent)
}

func (c *GeminiPlannerClient) GenerateChatJSON(ctx context.Context, systemInstruction, userContent string) (string, error) {
	return c.generate(ctx, c.chatModel, systemInstruction, userContent)
}

func (c *GeminiPlannerClient) generate(ctx context.Context, modelName, systemInstruction, userContent string) (string, error) {
	model := c.client.GenerativeModel(modelName)
	// Force JSON-only output so downstream parsing rarely sees prose.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)
	model.SetTopP(0.8)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userContent))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini: no text content in response")
	}
	return out.String(), nil
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}
