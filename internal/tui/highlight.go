package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
)

func highlightCode(code, lexer string) string {
	b := new(strings.Builder)
	if lexer == "" {
		lexer = "text"
	}
	if err := quick.Highlight(b, code, lexer, "terminal256", "dracula"); err != nil {
		return code
	}
	return b.String()
}

// HighlightSource is highlightCode for callers outside the TUI.
func HighlightSource(code, lexer string) string {
	return highlightCode(code, lexer)
}

func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
