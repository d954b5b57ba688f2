package tui

import (
	"fmt"
	"strings"

	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/layout"
)

// Summary describes cfg as markdown, including where the copy came from when
// res is set.
func Summary(cfg layout.Configuration, res *content.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cfg.Content.Title)
	fmt.Fprintf(&b, "_%s_\n\n", cfg.Content.Tagline)
	fmt.Fprintf(&b, "**Call to action:** %s\n\n", cfg.Content.CTA)
	if res != nil {
		fmt.Fprintf(&b, "**Copy source:** %s\n\n", res.Source)
	}

	b.WriteString("## Style\n\n")
	b.WriteString("| Setting | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Brand", string(cfg.BrandOr(layout.BrandFashion))},
		{"Primary color", cfg.ColorTheme.Primary},
		{"Secondary color", cfg.ColorTheme.Secondary},
		{"Background color", cfg.ColorTheme.Background},
		{"Heading font", cfg.FontStyle.Heading},
		{"Body font", cfg.FontStyle.Body},
		{"Animation", fmt.Sprintf("%s %s %s", cfg.Animation.Preset(), cfg.Animation.Duration, cfg.Animation.Easing)},
		{"Spacing", fmt.Sprintf("%s / %s / %s", cfg.Spacing.Small, cfg.Spacing.Base, cfg.Spacing.Large)},
		{"Product images", fmt.Sprintf("%d", len(cfg.Content.ProductImages))},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | `%s` |\n", r[0], r[1])
	}

	if cfg.Content.PromptText != "" {
		fmt.Fprintf(&b, "\n## Prompt\n\n> %s\n", cfg.Content.PromptText)
	}
	return b.String()
}
