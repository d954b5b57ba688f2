package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phravins/pagecraft/internal/ai"
	"github.com/phravins/pagecraft/internal/config"
)

func TestDecodeGeneratedText(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"array of strings", `["Title\nTagline\nCTA"]`, "Title\nTagline\nCTA", false},
		{"array of objects", `[{"generated_text":"A\nB\nC"}]`, "A\nB\nC", false},
		{"object", `{"generated_text":"only one"}`, "only one", false},
		{"bare string", `"plain text"`, "plain text", false},
		{"error object", `{"error":"Model is loading"}`, "", true},
		{"error in array", `[{"error":"overloaded"}]`, "", true},
		{"empty array", `[]`, "", true},
		{"number", `42`, "", true},
		{"object without text", `{"foo":"bar"}`, "", true},
		{"array of numbers", `[1,2]`, "", true},
		{"not json", `<html>`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeGeneratedText([]byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeGeneratedText(%s) error = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DecodeGeneratedText(%s) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestDecodeGeneratedText_UnexpectedShape(t *testing.T) {
	_, err := DecodeGeneratedText([]byte(`{"foo":"bar"}`))
	if !errors.Is(err, ErrUnexpectedShape) {
		t.Errorf("expected ErrUnexpectedShape, got %v", err)
	}
}

func TestHFProvider_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer hf_test" {
			t.Errorf("Authorization = %q, want Bearer hf_test", got)
		}

		var req hfRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		if !strings.Contains(req.Inputs, "vegan bakery") {
			t.Errorf("prompt not embedded in inputs: %q", req.Inputs)
		}
		if req.Parameters.MaxLength != 256 || req.Parameters.NumReturnSequences != 1 {
			t.Errorf("unexpected parameters: %+v", req.Parameters)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text":"Rise Up\nBaked With Love\nOrder Today"}]`))
	}))
	defer server.Close()

	p := &HFProvider{}
	if err := p.Configure(&config.Config{AIBaseURL: server.URL, HFAccessToken: "hf_test"}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	resp, err := p.Send(context.Background(), []ai.Message{{Role: "user", Content: "Write copy for a vegan bakery"}})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if resp != "Rise Up\nBaked With Love\nOrder Today" {
		t.Errorf("unexpected response %q", resp)
	}
}

func TestHFProvider_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Model google/flan-t5-base is currently loading"}`))
	}))
	defer server.Close()

	p := &HFProvider{}
	p.Configure(&config.Config{AIBaseURL: server.URL})

	_, err := p.Send(context.Background(), []ai.Message{{Role: "user", Content: "x"}})
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected a 503 error, got %v", err)
	}
}

func TestHFProvider_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`"late"`))
	}))
	defer server.Close()

	p := &HFProvider{}
	p.Configure(&config.Config{AIBaseURL: server.URL, RequestTimeout: 20 * time.Millisecond})

	if _, err := p.Send(context.Background(), []ai.Message{{Role: "user", Content: "x"}}); err == nil {
		t.Fatal("expected a timeout error")
	}
}

func TestGetProvider(t *testing.T) {
	tests := []struct {
		backend string
		want    string
	}{
		{"", "Hugging Face API"},
		{"huggingface", "Hugging Face API"},
		{"ollama", "Ollama"},
		{"lmstudio", "LM Studio"},
		{"something-else", "OpenAI compatible"},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			p, err := GetProvider(&config.Config{AIBackend: tt.backend})
			if err != nil {
				t.Fatalf("GetProvider failed: %v", err)
			}
			if p.Name() != tt.want {
				t.Errorf("GetProvider(%q).Name() = %q, want %q", tt.backend, p.Name(), tt.want)
			}
		})
	}
}
