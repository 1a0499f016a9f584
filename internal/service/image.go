package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ImageService requests logo images from an OpenAI-compatible image
// generation API. Each Generate call produces a single image; the pipeline
// issues one call per logo slot so a failed call never poisons the others.
type ImageService struct {
	client   *resty.Client
	model    string
	endpoint string
	size     string
}

// ImageServiceConfig holds configuration for the image service.
type ImageServiceConfig struct {
	Model   string
	APIKey  string
	BaseURL string
	Size    string
}

// NewImageService creates a new image generation service.
func NewImageService(cfg *ImageServiceConfig) *ImageService {
	client := resty.New()
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")
	// Image generation is slow; allow well over the text-model timeout.
	client.SetTimeout(120 * time.Second)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	endpoint := strings.TrimSuffix(baseURL, "/") + "/images/generations"

	size := cfg.Size
	if size == "" {
		size = "1024x1024"
	}

	return &ImageService{
		client:   client,
		model:    cfg.Model,
		endpoint: endpoint,
		size:     size,
	}
}

// GetModel returns the model name being used.
func (s *ImageService) GetModel() string {
	return s.model
}

// OpenAI images API request/response structures
type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate requests one image for the prompt and returns its URL.
func (s *ImageService) Generate(ctx context.Context, prompt string) (string, error) {
	req := imageRequest{
		Model:  s.model,
		Prompt: prompt,
		N:      1,
		Size:   s.size,
	}

	var resp imageResponse
	httpResp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post(s.endpoint)

	if err != nil {
		return "", fmt.Errorf("failed to call image API: %w", err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		if resp.Error != nil {
			return "", fmt.Errorf("image API error: %s", resp.Error.Message)
		}
		return "", fmt.Errorf("image API error: status %d: %s", httpResp.StatusCode(), string(httpResp.Body()))
	}

	if resp.Error != nil {
		return "", fmt.Errorf("image API error: %s", resp.Error.Message)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("no image in response")
	}

	return resp.Data[0].URL, nil
}
