package export

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/phravins/pagecraft/internal/layout"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"react", FormatReact},
		{"react-source", FormatReact},
		{"TSX", FormatReact},
		{"shopify-liquid", FormatShopify},
		{"liquid", FormatShopify},
		{" static-html ", FormatHTML},
		{"html", FormatHTML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("vue")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatNextCycles(t *testing.T) {
	assert.Equal(t, FormatShopify, FormatReact.Next())
	assert.Equal(t, FormatHTML, FormatShopify.Next())
	assert.Equal(t, FormatReact, FormatHTML.Next())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "GeneratedLayout.tsx", FileName(FormatReact))
	assert.Equal(t, "generated-layout.liquid", FileName(FormatShopify))
	assert.Equal(t, "index.html", FileName(FormatHTML))
	assert.Empty(t, FileName("vue"))
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(layout.Default(), "vue")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, RenderString(layout.Default(), "vue"))
}

func TestRenderIsDeterministic(t *testing.T) {
	cfg := layout.Default()
	cfg.Content.ProductImages = []string{"data:image/png;base64,AAAA"}
	for _, f := range Formats {
		a, err := Render(cfg, f)
		require.NoError(t, err)
		b, err := Render(cfg, f)
		require.NoError(t, err)
		assert.Equal(t, a, b, f)
		assert.NotEmpty(t, a, f)
	}
}

func TestRenderDefaultHTML(t *testing.T) {
	out, err := Render(layout.Default(), FormatHTML)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Shop the Look</title>")
	assert.Contains(t, out, "--primary-color: #4F46E5;")
	assert.Contains(t, out, "--secondary-color: #333333;")
	assert.Contains(t, out, "--background-color: #ffffff;")
	assert.Contains(t, out, `font-family: "Roboto";`)
	assert.Contains(t, out, `font-family: "Playfair Display";`)
	assert.Contains(t, out, "https://fonts.googleapis.com/css2?family=Playfair+Display&amp;family=Roboto&amp;display=swap")
}

func TestRenderFontFamiliesQuoted(t *testing.T) {
	cfg := layout.Default()
	cfg.FontStyle.Body = "Source Sans 3"
	cfg.FontStyle.Heading = `Odd"Name\`

	page, err := Render(cfg, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, page, `font-family: "Source Sans 3";`)
	assert.Contains(t, page, `font-family: "Odd\"Name\\";`)

	hero, err := Render(cfg, FormatReact, WithComponent(ComponentHero))
	require.NoError(t, err)
	assert.Contains(t, hero, `fontFamily: "\"Source Sans 3\""`)

	liquid, err := Render(cfg, FormatShopify)
	require.NoError(t, err)
	assert.Contains(t, liquid, `style="font-family: {{ '&#34;Source Sans 3&#34;' }}">`)
}

func TestRenderShopifyStyleValuesEscapedOnce(t *testing.T) {
	cfg := layout.Default()
	cfg.FontStyle.Body = "Tom & Jerry's"

	out, err := Render(cfg, FormatShopify)
	require.NoError(t, err)
	assert.NotContains(t, out, "| escape")
	assert.Contains(t, out, `{{ '&#34;Tom &amp; Jerry&#39;s&#34;' }}`)
	assert.Contains(t, out, `linear-gradient(135deg, {{ '#4F46E5' }}, {{ '#333333' }})`)
}

func findSection(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "class" && a.Val == class {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findSection(c, class); found != nil {
			return found
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestRenderHTMLHeroOnce(t *testing.T) {
	cfg := layout.Default()
	cfg.Content.Title = "Fresh & Bold <Kitchen>"
	cfg.Content.Tagline = `Say "hello" to flavor`
	cfg.Content.CTA = "Order Now"

	out, err := Render(cfg, FormatHTML)
	require.NoError(t, err)

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	hero := findSection(doc, "hero")
	require.NotNil(t, hero)
	text := textOf(hero)
	for _, s := range []string{cfg.Content.Title, cfg.Content.Tagline, cfg.Content.CTA} {
		assert.Equal(t, 1, strings.Count(text, s), "hero should contain %q once", s)
	}

	cta := findSection(doc, "cta")
	require.NotNil(t, cta)
	assert.Contains(t, textOf(cta), "Order Now")

	assert.NotContains(t, out, "<Kitchen>")
}

func TestRenderHTMLStripsCSSBreakers(t *testing.T) {
	cfg := layout.Default()
	cfg.ColorTheme.Primary = "red;} body{display:none"
	cfg.FontStyle.Body = "Roboto</style><script>"

	out, err := Render(cfg, FormatHTML)
	require.NoError(t, err)

	assert.Contains(t, out, "--primary-color: red body display:none;")
	assert.NotContains(t, out, "</style><script>")
}

var schemaBlock = regexp.MustCompile(`(?s)\{% schema %\}\n(.*)\n\{% endschema %\}`)

func TestRenderShopifySchemaDefaults(t *testing.T) {
	cfg := layout.Default()
	cfg.Content.Title = `Taste "the" {% endschema %} city`

	out, err := Render(cfg, FormatShopify)
	require.NoError(t, err)

	m := schemaBlock.FindStringSubmatch(out)
	require.Len(t, m, 2)
	assert.Equal(t, 1, strings.Count(out, "{% endschema %}"))

	var s struct {
		Name     string `json:"name"`
		Settings []struct {
			Type    string `json:"type"`
			ID      string `json:"id"`
			Label   string `json:"label"`
			Default string `json:"default"`
		} `json:"settings"`
	}
	require.NoError(t, json.Unmarshal([]byte(m[1]), &s))

	assert.Equal(t, "Generated Layout", s.Name)
	require.Len(t, s.Settings, 4)
	assert.Equal(t, "title", s.Settings[0].ID)
	assert.Equal(t, cfg.Content.Title, s.Settings[0].Default)
	assert.Equal(t, "tagline", s.Settings[1].ID)
	assert.Equal(t, "Discover our latest collection", s.Settings[1].Default)
	assert.Equal(t, "cta_text", s.Settings[2].ID)
	assert.Equal(t, "Explore Now", s.Settings[2].Default)
	assert.Equal(t, "cta_link", s.Settings[3].ID)
	assert.Equal(t, "url", s.Settings[3].Type)
	assert.Empty(t, s.Settings[3].Default)
}

func TestRenderShopifyLiterals(t *testing.T) {
	cfg := layout.Default()
	cfg.Content.Tagline = "Chef's {{ table }}"

	out, err := Render(cfg, FormatShopify)
	require.NoError(t, err)

	assert.Contains(t, out, "{% comment %}")
	assert.Contains(t, out, "primary_color: '#4F46E5'")
	assert.Contains(t, out, "{{ section.settings.title | default: 'Shop the Look' }}")
	assert.Contains(t, out, "default: 'Chef&#39;s &#123;&#123; table &#125;&#125;'")
	for _, tag := range []string{"{% section 'product-grid' %}", "{% section 'cta' %}", "{% section 'footer' %}"} {
		assert.Contains(t, out, tag)
	}
}

func TestRenderReactLayout(t *testing.T) {
	cfg := layout.Default()
	out, err := Render(cfg, FormatReact)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "import React from 'react'\n"))
	assert.Contains(t, out, "export const GeneratedLayout = () => {")
	assert.Contains(t, out, `brandType="fashion"`)
	assert.Contains(t, out, "backgroundImage: undefined")
	assert.Contains(t, out, `primaryColor: "#4F46E5"`)

	// sections in fixed order
	last := -1
	for _, name := range []string{"<Navbar", "<Hero", "<ProductGrid", "<CTA", "<Footer"} {
		i := strings.Index(out, name)
		require.Greater(t, i, last, name)
		last = i
	}

	cfg.Brand = layout.BrandFood
	cfg.Content.BackgroundImage = "https://example.com/bg.jpg"
	out, err = Render(cfg, FormatReact)
	require.NoError(t, err)
	assert.Contains(t, out, `brandType="food"`)
	assert.Contains(t, out, `backgroundImage: "https://example.com/bg.jpg"`)
}

func TestRenderReactEscapesStrings(t *testing.T) {
	cfg := layout.Default()
	cfg.Content.Title = "Say \"hi\"\nnow \\ </script>"

	out, err := Render(cfg, FormatReact)
	require.NoError(t, err)
	assert.Contains(t, out, `title: "Say \"hi\"\nnow \\ \u003c/script>"`)
}

func TestRenderReactComponents(t *testing.T) {
	cfg := layout.Default()
	cfg.Content.ProductImages = []string{"data:image/png;base64,AAAA", "data:image/png;base64,BBBB"}

	hero, err := Render(cfg, FormatReact, WithComponent(ComponentHero))
	require.NoError(t, err)
	assert.Contains(t, hero, "export const Hero = () => {")
	assert.Contains(t, hero, `{"Shop the Look"}`)

	grid, err := Render(cfg, FormatReact, WithComponent(ComponentProductGrid))
	require.NoError(t, err)
	assert.Contains(t, grid, "export const ProductGrid = () => {")
	assert.Contains(t, grid, `{ image: "data:image/png;base64,BBBB", name: "Product 2" }`)

	app, err := Render(cfg, FormatReact, WithComponent(ComponentApp))
	require.NoError(t, err)
	assert.Contains(t, app, "import { GeneratedLayout } from '../../../GeneratedLayout'")

	_, err = Render(cfg, FormatReact, WithComponent("sidebar"))
	assert.Error(t, err)

	// the selector only applies to react
	page, err := Render(cfg, FormatHTML, WithComponent(ComponentHero))
	require.NoError(t, err)
	assert.Contains(t, page, "<!DOCTYPE html>")
}

func TestRenderProductCaptions(t *testing.T) {
	cfg := layout.Apply(layout.Default(), layout.AddImages(
		layout.Image{Src: "data:image/png;base64,AAAA", Caption: "summer dress"},
		layout.Image{Src: "data:image/png;base64,BBBB"},
	))

	grid, err := Render(cfg, FormatReact, WithComponent(ComponentProductGrid))
	require.NoError(t, err)
	assert.Contains(t, grid, `{ image: "data:image/png;base64,AAAA", name: "summer dress" }`)
	assert.Contains(t, grid, `{ image: "data:image/png;base64,BBBB", name: "Product 2" }`)
}

func TestComponentFileName(t *testing.T) {
	assert.Equal(t, "components/Layout/Sections/Hero.tsx", ComponentFileName(ComponentHero))
	assert.Equal(t, "components/Layout/Sections/ProductGrid.tsx", ComponentFileName(ComponentProductGrid))
	assert.Equal(t, "components/Layout/Sections/App.tsx", ComponentFileName(ComponentApp))
}
