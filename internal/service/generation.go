package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/timmy/brandkit/internal/prompts"
)

const anthropicVersion = "2023-06-01"

// GenerationService produces brand kit text from an assembled retrieval
// context using the Anthropic messages API.
type GenerationService struct {
	client      *resty.Client
	model       string
	endpoint    string
	maxTokens   int
	temperature float32
}

// GenerationServiceConfig holds configuration for the generation service.
type GenerationServiceConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature float32
}

// NewGenerationService creates a new generation service.
func NewGenerationService(cfg *GenerationServiceConfig) *GenerationService {
	client := resty.New()
	client.SetHeader("x-api-key", cfg.APIKey)
	client.SetHeader("anthropic-version", anthropicVersion)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(60 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	endpoint := strings.TrimSuffix(baseURL, "/") + "/v1/messages"

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	return &GenerationService{
		client:      client,
		model:       cfg.Model,
		endpoint:    endpoint,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
	}
}

// GetModel returns the model name being used.
func (s *GenerationService) GetModel() string {
	return s.model
}

// Anthropic messages API request/response structures
type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float32            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the assembled context, framed by the context header and
// the fixed instruction template, to the model and returns the raw kit text
// trimmed of surrounding whitespace. No normalization beyond the trim
// happens here; the parser works on the text as generated.
func (s *GenerationService) Generate(ctx context.Context, combinedContext string) (string, error) {
	prompt := prompts.BrandKitContextHeader + "\n\n" + combinedContext + "\n\n" + prompts.BrandKitInstruction

	req := anthropicRequest{
		Model:       s.model,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	var resp anthropicResponse
	httpResp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post(s.endpoint)

	if err != nil {
		return "", fmt.Errorf("failed to call generation API: %w", err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		if resp.Error != nil {
			return "", fmt.Errorf("generation API error: %s: %s", resp.Error.Type, resp.Error.Message)
		}
		return "", fmt.Errorf("generation API error: status %d: %s", httpResp.StatusCode(), string(httpResp.Body()))
	}

	if resp.Error != nil {
		return "", fmt.Errorf("generation API error: %s", resp.Error.Message)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no content in generation response")
	}

	return strings.TrimSpace(resp.Content[0].Text), nil
}
