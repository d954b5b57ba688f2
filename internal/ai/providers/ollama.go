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

type OllamaProvider struct {
	BaseURL    string
	modelName  string
	httpClient *http.Client
}

func (p *OllamaProvider) Name() string {
	return "Ollama"
}

func (p *OllamaProvider) Model() string {
	return p.modelName
}

func (p *OllamaProvider) Configure(cfg *config.Config) error {
	p.BaseURL = "http://localhost:11434"
	if cfg.AIBaseURL != "" {
		p.BaseURL = cfg.AIBaseURL
	}
	p.modelName = "mistral"
	if cfg.AIModel != "" {
		p.modelName = cfg.AIModel
	}
	p.httpClient = newClient(cfg.RequestTimeout, 90*time.Second)
	return nil
}

func (p *OllamaProvider) IsLocal() bool {
	return true
}

type ollamaRequest struct {
	Model    string         `json:"model"`
	Messages []ai.Message   `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Message ai.Message `json:"message"`
	Done    bool       `json:"done"`
	Error   string     `json:"error,omitempty"`
}

func (p *OllamaProvider) Send(ctx context.Context, messages []ai.Message) (string, error) {
	reqBody := ollamaRequest{
		Model:    p.modelName,
		Messages: messages,
		Options: map[string]any{
			"num_predict": 256,
			"temperature": 0.8,
			"top_p":       0.95,
		},
	}

	if p.httpClient == nil {
		p.httpClient = newClient(0, 90*time.Second)
	}

	body, status, err := postJSON(ctx, p.httpClient, p.BaseURL+"/api/chat", nil, reqBody)
	if err != nil {
		return "", fmt.Errorf("Ollama: connection to %s failed: %w", p.BaseURL, err)
	}
	if status == http.StatusNotFound {
		return "", fmt.Errorf("Ollama: model '%s' not found. Have you run 'ollama pull %s'?", p.modelName, p.modelName)
	}
	if !isSuccess(status) {
		return "", fmt.Errorf("Ollama API error (%d): %s", status, string(body))
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("Ollama: %s", parsed.Error)
	}
	return parsed.Message.Content, nil
}
