package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/pkg/logger"
)

func testApp() *app {
	return &app{
		log:    logger.Discard(),
		gen:    content.NewGenerator(nil, nil),
		format: export.FormatReact,
	}
}

func TestLayoutFlagsBuildOrder(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "dress.png")
	require.NoError(t, os.WriteFile(img, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0644))

	f := layoutFlags{
		prompt:      "a cozy restaurant",
		title:       "Nonna's Table",
		primary:     "#B91C1C",
		headingFont: "lora",
		animation:   "slide-up",
		images:      []string{img, filepath.Join(dir, "missing.png")},
	}
	cfg, err := f.build(context.Background(), testApp())
	require.NoError(t, err)

	// flags override generated copy, generated copy overrides defaults
	assert.Equal(t, "Nonna's Table", cfg.Content.Title)
	assert.Equal(t, "Where Every Flavor Tells a Story", cfg.Content.Tagline)
	assert.Equal(t, "a cozy restaurant", cfg.Content.PromptText)
	assert.Equal(t, layout.BrandFood, cfg.Brand)
	assert.Equal(t, "#B91C1C", cfg.ColorTheme.Primary)
	assert.Equal(t, "#333333", cfg.ColorTheme.Secondary)
	assert.Equal(t, "Lora", cfg.FontStyle.Heading)
	assert.Equal(t, layout.SlideUp, cfg.Animation.Style)
	assert.Len(t, cfg.Content.ProductImages, 1)
	assert.Equal(t, []string{"dress"}, cfg.Content.ProductCaptions)
}

func TestLayoutFlagsDefaults(t *testing.T) {
	var f layoutFlags
	cfg, err := f.build(context.Background(), testApp())
	require.NoError(t, err)
	assert.Equal(t, layout.Default(), cfg)
}

func TestLayoutFlagsBlankPrompt(t *testing.T) {
	f := layoutFlags{prompt: "   "}
	_, err := f.build(context.Background(), testApp())
	assert.ErrorIs(t, err, content.ErrEmptyPrompt)
}
