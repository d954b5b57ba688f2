package ai

import (
	"context"

	"github.com/phravins/pagecraft/internal/config"
)

type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

type Provider interface {
	Name() string

	Model() string

	Configure(cfg *config.Config) error

	Send(ctx context.Context, messages []Message) (string, error)

	IsLocal() bool
}
