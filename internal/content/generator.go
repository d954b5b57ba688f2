// Package content fills title, tagline and CTA copy from a brand description.
// Generate never fails: anything the backend does not deliver is replaced by
// keyword-based defaults.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phravins/pagecraft/internal/ai"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/pkg/logger"
)

// ErrEmptyPrompt is returned by ValidatePrompt for blank input.
var ErrEmptyPrompt = errors.New("prompt is empty")

// Source says where the copy in a Result came from.
type Source string

const (
	SourceGenerated Source = "generated" // all three fields from the backend
	SourcePartial   Source = "partial"   // some fields filled from defaults
	SourceFallback  Source = "fallback"  // backend failed; all defaults
)

type Result struct {
	Title           string       `json:"title"`
	Tagline         string       `json:"tagline"`
	CTA             string       `json:"cta"`
	BackgroundImage string       `json:"backgroundImage,omitempty"`
	Brand           layout.Brand `json:"brandType,omitempty"`
	Source          Source       `json:"source"`
}

// Patch converts the result into a configuration update.
func (r Result) Patch(prompt string) layout.Patch {
	p := layout.Patch{
		Content: &layout.ContentPatch{
			Title:      layout.Str(r.Title),
			Tagline:    layout.Str(r.Tagline),
			CTA:        layout.Str(r.CTA),
			PromptText: layout.Str(prompt),
		},
	}
	if r.BackgroundImage != "" {
		p.Content.BackgroundImage = layout.Str(r.BackgroundImage)
	}
	if r.Brand != "" {
		b := r.Brand
		p.Brand = &b
	}
	return p
}

const instructionTemplate = `Create brand-focused website content for this description: %s. ` +
	`Consider the target audience, brand personality, and industry trends. ` +
	`Generate a compelling title, emotional tagline, persuasive call-to-action, ` +
	`and suggest a color palette that matches the brand's personality. ` +
	`Format the response as separate lines: title, tagline, CTA, colors ` +
	`(comma-separated hex codes for primary, secondary, accent).`

// Instruction embeds prompt in the request sent to the backend.
func Instruction(prompt string) string {
	return fmt.Sprintf(instructionTemplate, strings.TrimSpace(prompt))
}

// ValidatePrompt trims prompt and rejects it when nothing is left.
func ValidatePrompt(prompt string) (string, error) {
	p := strings.TrimSpace(prompt)
	if p == "" {
		return "", ErrEmptyPrompt
	}
	return p, nil
}

type Generator struct {
	provider ai.Provider
	log      *slog.Logger
}

// NewGenerator wraps provider. A nil provider makes every call use defaults.
func NewGenerator(provider ai.Provider, log *slog.Logger) *Generator {
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{provider: provider, log: log.With(logger.Scope("content"))}
}

// Generate makes one request for prompt. Callers validate the prompt first;
// Generate itself does not fail.
func (g *Generator) Generate(ctx context.Context, prompt string) Result {
	text, err := g.request(ctx, prompt)
	if err != nil {
		g.log.Warn("content generation failed, using defaults",
			slog.String("prompt", prompt), logger.Error(err))
		return fallback(prompt)
	}

	res := Parse(prompt, text)
	g.log.Debug("content generated",
		slog.String("source", string(res.Source)),
		slog.String("title", res.Title))
	return res
}

func (g *Generator) request(ctx context.Context, prompt string) (string, error) {
	if g.provider == nil {
		return "", errors.New("no text generation provider configured")
	}
	messages := []ai.Message{{Role: "user", Content: Instruction(prompt)}}
	return g.provider.Send(ctx, messages)
}

// Parse reads the first three non-empty lines of text as title, tagline and
// CTA. Missing fields are filled from the defaults for prompt.
func Parse(prompt, text string) Result {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
		if len(parts) == 3 {
			break
		}
	}

	defaults := Defaults(prompt)
	res := Result{Brand: Classify(prompt), Source: SourceGenerated}
	fields := []struct {
		dst *string
		def string
	}{
		{&res.Title, defaults.Title},
		{&res.Tagline, defaults.Tagline},
		{&res.CTA, defaults.CTA},
	}
	for i, f := range fields {
		if i < len(parts) {
			*f.dst = parts[i]
			continue
		}
		*f.dst = f.def
		res.Source = SourcePartial
	}
	if len(parts) == 0 {
		res.Source = SourceFallback
	}
	return res
}

func fallback(prompt string) Result {
	d := Defaults(prompt)
	return Result{
		Title:   d.Title,
		Tagline: d.Tagline,
		CTA:     d.CTA,
		Brand:   Classify(prompt),
		Source:  SourceFallback,
	}
}
