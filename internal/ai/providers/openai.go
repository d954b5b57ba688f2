package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phravins/pagecraft/internal/ai"
	"github.com/phravins/pagecraft/internal/config"
)

// OpenAIProvider talks to any chat-completions compatible endpoint.
type OpenAIProvider struct {
	BaseURL    string
	APIKey     string
	modelName  string
	IsLMStudio bool
	httpClient *http.Client
}

func (p *OpenAIProvider) Name() string {
	if p.IsLMStudio {
		return "LM Studio"
	}
	return "OpenAI compatible"
}

func (p *OpenAIProvider) Model() string {
	return p.modelName
}

func (p *OpenAIProvider) Configure(cfg *config.Config) error {
	if p.BaseURL == "" {
		p.BaseURL = "https://api.openai.com/v1"
	}
	p.modelName = "gpt-4o-mini"
	p.APIKey = cfg.AIAPIKey

	if cfg.AIBackend == "lmstudio" {
		p.IsLMStudio = true
		p.BaseURL = "http://localhost:1234/v1"
		p.modelName = "local-model"
	}

	if cfg.AIBaseURL != "" {
		p.BaseURL = cfg.AIBaseURL
	}
	if cfg.AIModel != "" {
		p.modelName = cfg.AIModel
	}

	p.httpClient = newClient(cfg.RequestTimeout, 90*time.Second)
	return nil
}

func (p *OpenAIProvider) IsLocal() bool {
	return p.IsLMStudio
}

type openAIRequest struct {
	Model       string       `json:"model"`
	Messages    []ai.Message `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message ai.Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *OpenAIProvider) Send(ctx context.Context, messages []ai.Message) (string, error) {
	headers := map[string]string{}
	if !p.IsLMStudio && p.APIKey != "" {
		headers["Authorization"] = "Bearer " + p.APIKey
	}

	if p.httpClient == nil {
		p.httpClient = newClient(0, 90*time.Second)
	}

	reqBody := openAIRequest{Model: p.modelName, Messages: messages, Temperature: 0.8}
	body, status, err := postJSON(ctx, p.httpClient, p.BaseURL+"/chat/completions", headers, reqBody)
	if err != nil {
		return "", fmt.Errorf("API connection failed: %w", err)
	}

	var parsed openAIResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if !isSuccess(status) {
		switch status {
		case http.StatusUnauthorized:
			return "", fmt.Errorf("%s: invalid API key", p.Name())
		case http.StatusNotFound:
			return "", fmt.Errorf("%s: model '%s' not found or not accessible", p.Name(), p.modelName)
		case http.StatusTooManyRequests:
			return "", fmt.Errorf("%s: rate limit exceeded or insufficient quota", p.Name())
		}
		if decodeErr == nil && parsed.Error != nil {
			return "", fmt.Errorf("%s error (%d): %s", p.Name(), status, parsed.Error.Message)
		}
		return "", fmt.Errorf("%s API error (%d): %s", p.Name(), status, string(body))
	}

	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}
	return parsed.Choices[0].Message.Content, nil
}
