// Package export renders a layout configuration as React, Shopify Liquid or
// static HTML source.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/phravins/pagecraft/assets"
	"github.com/phravins/pagecraft/internal/layout"
)

type Format string

const (
	FormatReact   Format = "react"
	FormatShopify Format = "shopify"
	FormatHTML    Format = "html"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatReact, FormatShopify, FormatHTML}

var ErrUnknownFormat = errors.New("unknown export format")

var aliases = map[string]Format{
	"react":          FormatReact,
	"react-source":   FormatReact,
	"tsx":            FormatReact,
	"shopify":        FormatShopify,
	"shopify-liquid": FormatShopify,
	"liquid":         FormatShopify,
	"html":           FormatHTML,
	"static-html":    FormatHTML,
}

// ParseFormat accepts a format name or one of its aliases, ignoring case.
func ParseFormat(s string) (Format, error) {
	f, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Next cycles through Formats.
func (f Format) Next() Format {
	for i, x := range Formats {
		if x == f {
			return Formats[(i+1)%len(Formats)]
		}
	}
	return Formats[0]
}

// Label is the human readable name of the format.
func (f Format) Label() string {
	switch f {
	case FormatReact:
		return "React"
	case FormatShopify:
		return "Shopify Liquid"
	case FormatHTML:
		return "Static HTML"
	}
	return string(f)
}

// Lexer names the chroma lexer for highlighting the rendered source.
func (f Format) Lexer() string {
	switch f {
	case FormatReact:
		return "tsx"
	case FormatShopify:
		return "liquid"
	case FormatHTML:
		return "html"
	}
	return "plaintext"
}

// FileName is the archive entry name of the format's primary file.
func FileName(f Format) string {
	switch f {
	case FormatReact:
		return "GeneratedLayout.tsx"
	case FormatShopify:
		return "generated-layout.liquid"
	case FormatHTML:
		return "index.html"
	}
	return ""
}

type Component string

const (
	ComponentLayout      Component = "layout"
	ComponentHero        Component = "hero"
	ComponentProductGrid Component = "productGrid"
	ComponentApp         Component = "app"
)

// SectionComponents are the per-section React files shipped alongside the layout.
var SectionComponents = []Component{ComponentHero, ComponentProductGrid, ComponentApp}

// ComponentFileName is the archive path of a React section component.
func ComponentFileName(c Component) string {
	switch c {
	case ComponentHero:
		return "components/Layout/Sections/Hero.tsx"
	case ComponentProductGrid:
		return "components/Layout/Sections/ProductGrid.tsx"
	case ComponentApp:
		return "components/Layout/Sections/App.tsx"
	}
	return FileName(FormatReact)
}

type options struct {
	component Component
}

type Option func(*options)

// WithComponent selects a single React section instead of the full layout.
// Other formats ignore it.
func WithComponent(c Component) Option {
	return func(o *options) { o.component = c }
}

var templateFiles = map[string]string{
	"react/layout":      "react/layout.tsx.tmpl",
	"react/hero":        "react/hero.tsx.tmpl",
	"react/productGrid": "react/product_grid.tsx.tmpl",
	"react/app":         "react/app.tsx.tmpl",
	"shopify/layout":    "shopify/layout.liquid.tmpl",
	"html/layout":       "html/index.html.tmpl",
}

var (
	parseOnce sync.Once
	parsed    map[string]*template.Template
	parseErr  error
)

func loadTemplates() (map[string]*template.Template, error) {
	parseOnce.Do(func() {
		parsed = make(map[string]*template.Template, len(templateFiles))
		for key, file := range templateFiles {
			tmpl, err := template.New(path.Base(file)).
				Delims("[[", "]]").
				Option("missingkey=error").
				Funcs(funcs).
				ParseFS(assets.Templates(), file)
			if err != nil {
				parseErr = fmt.Errorf("parse template %s: %w", file, err)
				return
			}
			parsed[key] = tmpl
		}
	})
	return parsed, parseErr
}

type product struct {
	Src  string
	Name string
}

type view struct {
	layout.Configuration
	BrandType string
	FontURL   string
	Products  []product
}

func newView(cfg layout.Configuration) view {
	v := view{
		Configuration: cfg,
		BrandType:     string(cfg.BrandOr(layout.BrandFashion)),
		FontURL:       layout.FontStylesheetURL(cfg.FontStyle),
	}
	for i, img := range cfg.Content.ProductImages {
		v.Products = append(v.Products, product{Src: img, Name: cfg.Content.ProductCaption(i)})
	}
	return v
}

// Render produces the source text of cfg in the given format. The output
// depends only on its inputs.
func Render(cfg layout.Configuration, f Format, opts ...Option) (string, error) {
	o := options{component: ComponentLayout}
	for _, opt := range opts {
		opt(&o)
	}

	var key string
	switch f {
	case FormatReact:
		key = "react/" + string(o.component)
	case FormatShopify, FormatHTML:
		key = string(f) + "/layout"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	tmpls, err := loadTemplates()
	if err != nil {
		return "", err
	}
	tmpl, ok := tmpls[key]
	if !ok {
		return "", fmt.Errorf("unknown component %q", o.component)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newView(cfg)); err != nil {
		return "", fmt.Errorf("render %s: %w", key, err)
	}
	return buf.String(), nil
}

// RenderString is Render returning "" for any failure.
func RenderString(cfg layout.Configuration, f Format, opts ...Option) string {
	out, err := Render(cfg, f, opts...)
	if err != nil {
		return ""
	}
	return out
}
