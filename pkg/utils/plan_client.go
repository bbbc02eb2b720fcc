package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// PlanClientInterface generates free-form plan text from a fully built
// instruction. The text is returned verbatim; callers only check for presence.
type PlanClientInterface interface {
	GeneratePlan(ctx context.Context, prompt string) (string, error)
}

const (
	planTemperature     = 0.7
	planMaxOutputTokens = 4096
)

// GeminiPlanClient talks to the Gemini generateContent API.
type GeminiPlanClient struct {
	apiKey string
	model  string
	client *genai.Client
}

func NewGeminiPlanClient(apiKey, model string) *GeminiPlanClient {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiPlanClient{apiKey: apiKey, model: model}
}

func (c *GeminiPlanClient) GeneratePlan(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	if c.client == nil {
		client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
		if err != nil {
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		c.client = client
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(planTemperature)
	m.SetMaxOutputTokens(planMaxOutputTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyPlan
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPlan
	}
	return text, nil
}

// OpenAIPlanClient is the chat-completion fallback provider.
type OpenAIPlanClient struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewOpenAIPlanClient(apiKey, model string) *OpenAIPlanClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPlanClient{apiKey: apiKey, model: model}
}

func (c *OpenAIPlanClient) GeneratePlan(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	if c.client == nil {
		c.client = openai.NewClient(c.apiKey)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: planTemperature,
		MaxTokens:   planMaxOutputTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyPlan
	}
	return resp.Choices[0].Message.Content, nil
}

// NewPlanClient picks the provider by name. An empty key is allowed here; the
// missing-credential error surfaces per request so the caller can attach the
// setup guide.
func NewPlanClient(provider, apiKey, model string) (PlanClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "gemini":
		return NewGeminiPlanClient(apiKey, model), nil
	case "openai":
		return NewOpenAIPlanClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported plan provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
