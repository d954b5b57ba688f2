package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/history"
	"github.com/phravins/pagecraft/internal/layout"
)

// BackMsg asks the parent to leave the current screen.
type BackMsg struct{}

// Run starts the generator full screen and blocks until the user quits.
func Run(store *layout.Store, gen *content.Generator, format export.Format, outputDir string, log *slog.Logger) error {
	m := NewGeneratorModel(store, gen, format, outputDir, log)
	if h, err := history.Default(); err == nil {
		m = m.WithHistory(h)
	}
	p := tea.NewProgram(Wrap(m), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
