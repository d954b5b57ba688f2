package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/phravins/pagecraft/internal/layout"
)

var funcs = template.FuncMap{
	"js":     jsString,
	"liquid": liquidString,
	"html":   html.EscapeString,
	"attr":   html.EscapeString,
	"css":    layout.CSSValue,
	"font":   layout.CSSFontFamily,
	"schema": shopifySchema,
}

// jsString escapes s for a double-quoted JS/TS string literal.
func jsString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '<':
			b.WriteString(`\u003c`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

var liquidBraces = strings.NewReplacer("{", "&#123;", "}", "&#125;")

// liquidString escapes s for a single-quoted Liquid literal. Liquid literals
// have no escape sequences, so quotes become HTML entities; braces do too,
// which keeps tag delimiters out of the literal.
func liquidString(s string) string {
	return liquidBraces.Replace(html.EscapeString(s))
}

type schemaSetting struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Label   string `json:"label"`
	Default string `json:"default,omitempty"`
}

type schema struct {
	Name     string          `json:"name"`
	Settings []schemaSetting `json:"settings"`
}

var schemaTags = strings.NewReplacer("{%", `\u007b%`, "%}", `%\u007d`)

// shopifySchema renders the section schema JSON with the content fields as
// setting defaults.
func shopifySchema(v view) (string, error) {
	s := schema{
		Name: "Generated Layout",
		Settings: []schemaSetting{
			{Type: "text", ID: "title", Label: "Title", Default: v.Content.Title},
			{Type: "text", ID: "tagline", Label: "Tagline", Default: v.Content.Tagline},
			{Type: "text", ID: "cta_text", Label: "CTA Text", Default: v.Content.CTA},
			{Type: "url", ID: "cta_link", Label: "CTA Link"},
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return schemaTags.Replace(strings.TrimRight(buf.String(), "\n")), nil
}
