package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phravins/pagecraft/internal/ai"
	"github.com/phravins/pagecraft/internal/config"
)

// ErrUnexpectedShape means the endpoint answered with JSON we do not understand.
var ErrUnexpectedShape = errors.New("unexpected response shape")

type HFProvider struct {
	BaseURL    string
	APIKey     string
	modelName  string
	httpClient *http.Client
}

func (p *HFProvider) Name() string {
	return "Hugging Face API"
}

func (p *HFProvider) Model() string {
	return p.modelName
}

func (p *HFProvider) Configure(cfg *config.Config) error {
	p.modelName = "google/flan-t5-base"
	if cfg.AIModel != "" {
		p.modelName = cfg.AIModel
	}
	// URL: https://router.huggingface.co/models/%s
	p.BaseURL = fmt.Sprintf("https://router.huggingface.co/models/%s", p.modelName)
	if cfg.AIBaseURL != "" {
		p.BaseURL = cfg.AIBaseURL
	}

	p.APIKey = cfg.AIAPIKey
	if cfg.HFAccessToken != "" {
		p.APIKey = cfg.HFAccessToken
	}

	p.httpClient = newClient(cfg.RequestTimeout, 60*time.Second)
	return nil
}

func (p *HFProvider) IsLocal() bool {
	return false
}

type hfParameters struct {
	MaxLength          int     `json:"max_length"`
	NumReturnSequences int     `json:"num_return_sequences"`
	Temperature        float64 `json:"temperature"`
	TopP               float64 `json:"top_p"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

func (p *HFProvider) Send(ctx context.Context, messages []ai.Message) (string, error) {
	// Text-to-text models take one flat input, so the conversation is joined.
	var prompt strings.Builder
	for _, m := range messages {
		if m.Role == "assistant" {
			continue
		}
		if prompt.Len() > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString(m.Content)
	}

	reqBody := hfRequest{
		Inputs: prompt.String(),
		Parameters: hfParameters{
			MaxLength:          256,
			NumReturnSequences: 1,
			Temperature:        0.8,
			TopP:               0.95,
		},
	}

	headers := map[string]string{}
	if p.APIKey != "" {
		headers["Authorization"] = "Bearer " + p.APIKey
	}

	if p.httpClient == nil {
		p.httpClient = newClient(0, 60*time.Second)
	}

	body, status, err := postJSON(ctx, p.httpClient, p.BaseURL, headers, reqBody)
	if err != nil {
		return "", fmt.Errorf("HF API connection failed: %w", err)
	}
	if !isSuccess(status) {
		return "", fmt.Errorf("HF API error (%d) for model '%s': %s", status, p.modelName, string(body))
	}

	return DecodeGeneratedText(body)
}

// DecodeGeneratedText accepts the payload shapes text generation endpoints
// return: ["text"], [{"generated_text": "text"}], {"generated_text": "text"}
// and "text". {"error": ...} and anything else is an error.
func DecodeGeneratedText(body []byte) (string, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	switch v := data.(type) {
	case string:
		return v, nil
	case []any:
		if len(v) == 0 {
			return "", fmt.Errorf("empty response from HF API")
		}
		switch first := v[0].(type) {
		case string:
			return first, nil
		case map[string]any:
			return generatedText(first)
		}
	case map[string]any:
		return generatedText(v)
	}
	return "", ErrUnexpectedShape
}

func generatedText(obj map[string]any) (string, error) {
	if e, ok := obj["error"]; ok && e != nil {
		return "", fmt.Errorf("HF API error: %v", e)
	}
	if text, ok := obj["generated_text"].(string); ok {
		return text, nil
	}
	return "", ErrUnexpectedShape
}
