// Package preview renders a layout configuration as live HTML.
package preview

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/phravins/pagecraft/internal/layout"
)

const placeholderImage = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMzAwIiBoZWlnaHQ9IjQwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iMTAwJSIgaGVpZ2h0PSIxMDAlIiBmaWxsPSIjZjBmMGYwIi8+PHRleHQgeD0iNTAlIiB5PSI1MCUiIGZvbnQtc2l6ZT0iMjAiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGR5PSIuM2VtIiBmaWxsPSIjNjY2Ij5ObyBJbWFnZTwvdGV4dD48L3N2Zz4="

const baseCSS = `body { margin: 0; }
.pc-section { box-sizing: border-box; }
.pc-products { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); }
.pc-product img { width: 100%; aspect-ratio: 3 / 4; object-fit: cover; border-radius: 0.5rem; }
`

// Page is a complete preview document.
func Page(cfg layout.Configuration) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(cfg.Content.Title)),
				Link(Rel("stylesheet"), Href(layout.FontStylesheetURL(cfg.FontStyle))),
				StyleEl(g.Raw(baseCSS+AnimationCSS())),
			),
			Body(
				Style(decls("background-color", cfg.ColorTheme.Background)),
				Sections(cfg),
			),
		),
	})
}

// Sections renders Hero, ProductGrid, CTA and Footer, each in a slot that
// plays the enter transition and scopes the theme colors.
func Sections(cfg layout.Configuration) g.Node {
	return Div(
		Class("pc-layout"),
		slot(cfg, "hero", hero(cfg)),
		slot(cfg, "product-grid", productGrid(cfg)),
		slot(cfg, "cta", cta(cfg)),
		slot(cfg, "footer", footer(cfg)),
	)
}

func slot(cfg layout.Configuration, name string, section g.Node) g.Node {
	return Div(
		Class("pc-slot "+AnimationClass(cfg.Animation)),
		Data("section", name),
		Style(decls(
			"animation-duration", cfg.Animation.Duration,
			"animation-timing-function", cfg.Animation.Easing,
			"--primary-color", cfg.ColorTheme.Primary,
			"--secondary-color", cfg.ColorTheme.Secondary,
			"--background-color", cfg.ColorTheme.Background,
		)),
		section,
	)
}

func hero(cfg layout.Configuration) g.Node {
	style := []string{
		"padding", cfg.Spacing.Large,
		"text-align", "center",
		"font-family", cfg.FontStyle.Body,
	}
	if cfg.Content.BackgroundImage != "" {
		style = append(style, "background-size", "cover")
	}
	return Section(
		Class("pc-section pc-hero"),
		Style(decls(style...)+backgroundImage(cfg.Content.BackgroundImage)),
		H1(
			Style(decls("font-family", cfg.FontStyle.Heading, "color", cfg.ColorTheme.Primary)),
			g.Text(cfg.Content.Title),
		),
		P(
			Style(decls("color", cfg.ColorTheme.Secondary)),
			g.Text(cfg.Content.Tagline),
		),
		Button(
			Class("pc-cta-button"),
			Style(decls(
				"background", "linear-gradient(135deg, var(--primary-color), var(--secondary-color))",
				"color", "#ffffff",
				"border", "0",
				"border-radius", cfg.Spacing.Small,
				"padding", cfg.Spacing.Small+" "+cfg.Spacing.Large,
			)),
			g.Text(cfg.Content.CTA),
		),
	)
}

func backgroundImage(src string) string {
	if src == "" {
		return ""
	}
	return " background-image: " + layout.CSSURL(src) + ";"
}

type card struct {
	src, name string
}

func productCards(c layout.Content) []card {
	if len(c.ProductImages) == 0 {
		return []card{{src: placeholderImage, name: "Sample Product"}}
	}
	cards := make([]card, len(c.ProductImages))
	for i, img := range c.ProductImages {
		cards[i] = card{src: img, name: c.ProductCaption(i)}
	}
	return cards
}

func productGrid(cfg layout.Configuration) g.Node {
	return Section(
		Class("pc-section pc-product-grid"),
		Style(decls("padding", cfg.Spacing.Large, "font-family", cfg.FontStyle.Body)),
		Div(
			Class("pc-products"),
			Style(decls("gap", cfg.Spacing.Base)),
			g.Map(productCards(cfg.Content), func(c card) g.Node {
				return Figure(
					Class("pc-product"),
					Img(Src(c.src), Alt(c.name), g.Attr("loading", "lazy")),
					FigCaption(
						Style(decls("font-family", cfg.FontStyle.Heading)),
						g.Text(c.name),
					),
				)
			}),
		),
	)
}

func cta(cfg layout.Configuration) g.Node {
	return Section(
		Class("pc-section pc-cta"),
		Style(decls("padding", cfg.Spacing.Large, "font-family", cfg.FontStyle.Body)),
		Div(
			Style(decls(
				"background-color", cfg.ColorTheme.Primary,
				"color", "#ffffff",
				"text-align", "center",
				"padding", cfg.Spacing.Large,
				"border-radius", cfg.Spacing.Base,
			)),
			H2(Style(decls("font-family", cfg.FontStyle.Heading)), g.Text(cfg.Content.Title)),
			g.If(cfg.Content.PromptText != "", P(g.Text(cfg.Content.PromptText))),
			Button(
				Style(decls("color", cfg.ColorTheme.Primary, "background", "#ffffff", "border", "0")),
				g.Text(cfg.Content.CTA),
			),
		),
	)
}

func footer(cfg layout.Configuration) g.Node {
	return Footer(
		Class("pc-section pc-footer"),
		Style(decls(
			"background-color", cfg.ColorTheme.Secondary,
			"color", "#ffffff",
			"padding", cfg.Spacing.Large,
			"font-family", cfg.FontStyle.Body,
		)),
		H3(Style(decls("font-family", cfg.FontStyle.Heading)), g.Text(cfg.Content.Title)),
		P(g.Text(cfg.Content.Tagline)),
	)
}

// decls joins property/value pairs into an inline style, skipping empty values.
// font-family values are quoted as a single family name.
func decls(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		v := layout.CSSValue(pairs[i+1])
		if pairs[i] == "font-family" {
			v = layout.CSSFontFamily(pairs[i+1])
		}
		if v == "" {
			continue
		}
		parts = append(parts, pairs[i]+": "+v+";")
	}
	return strings.Join(parts, " ")
}
