package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phravins/pagecraft/internal/archive"
	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/history"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/pkg/logger"
)

const (
	genStateInput = iota
	genStateGenerating
	genStateResult
	genStateImages
	genStateHelp
)

type generatedMsg struct {
	result content.Result
}

type imagesMsg struct {
	added   int
	skipped []layout.Skipped
}

type savedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type GeneratorModel struct {
	store     *layout.Store
	gen       *content.Generator
	log       *slog.Logger
	outputDir string
	format    export.Format

	prompt  textarea.Model
	paths   textinput.Model
	code    viewport.Model
	help    viewport.Model
	spinner spinner.Model

	state       int
	prevState   int
	result      *content.Result
	showSummary bool
	status      string
	statusErr   bool
	width       int
	height      int

	copy    func(string) error
	history *history.Log
}

// WithHistory records every saved archive in h.
func (m GeneratorModel) WithHistory(h *history.Log) GeneratorModel {
	m.history = h
	return m
}

// NewGeneratorModel builds the generator screen over store.
func NewGeneratorModel(store *layout.Store, gen *content.Generator, format export.Format, outputDir string, log *slog.Logger) GeneratorModel {
	if log == nil {
		log = logger.Discard()
	}

	ta := textarea.New()
	ta.Placeholder = "Describe your brand (e.g., 'a cozy neighbourhood restaurant')..."
	ta.SetWidth(80)
	ta.SetHeight(5)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "images/a.png, images/b.jpg"
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPink)

	return GeneratorModel{
		store:     store,
		gen:       gen,
		log:       log.With(logger.Scope("tui")),
		outputDir: outputDir,
		format:    format,
		prompt:    ta,
		paths:     ti,
		code:      viewport.New(80, 20),
		help:      viewport.New(80, 20),
		spinner:   s,
		state:     genStateInput,
		copy:      clipboard.WriteAll,
	}
}

func (m GeneratorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(max(msg.Width-8, 20))
		m.code.Width = max(msg.Width-6, 20)
		m.code.Height = max(msg.Height-10, 5)
		m.help.Width = m.code.Width
		m.help.Height = max(msg.Height-4, 5)
		if m.state == genStateResult {
			m.refreshCode()
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != genStateGenerating {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generatedMsg:
		res := msg.result
		m.result = &res
		m.state = genStateResult
		m.setStatus(fmt.Sprintf("Content %s for %q", res.Source, res.Title), false)
		m.refreshCode()
		m.code.GotoTop()
		return m, nil

	case imagesMsg:
		m.state = m.prevState
		text := fmt.Sprintf("Added %d image(s)", msg.added)
		if len(msg.skipped) > 0 {
			names := make([]string, len(msg.skipped))
			for i, s := range msg.skipped {
				names[i] = s.Name
			}
			text += ", skipped " + strings.Join(names, ", ")
		}
		m.setStatus(text, len(msg.skipped) > 0)
		m.refreshCode()
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.setStatus("Save failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Saved "+msg.path, false)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus("Copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Copied "+m.format.Label()+" source to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case genStateInput:
			return m.updateInput(msg)
		case genStateResult:
			return m.updateResult(msg)
		case genStateImages:
			return m.updateImages(msg)
		case genStateHelp:
			switch msg.String() {
			case "esc", "q", "?":
				m.state = m.prevState
				return m, nil
			}
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		if m.state == genStateResult {
			m.code, cmd = m.code.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m GeneratorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.prompt.Value() == "" {
			if m.result != nil {
				m.state = genStateResult
				return m, nil
			}
			return m, func() tea.Msg { return BackMsg{} }
		}
		m.prompt.SetValue("")
		return m, nil
	case "ctrl+d":
		return m.startGenerate()
	case "ctrl+o":
		return m.openImages()
	case "ctrl+h":
		return m.openHelp()
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m GeneratorModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.state = genStateInput
		m.prompt.Focus()
		return m, textarea.Blink
	case "q":
		return m, func() tea.Msg { return BackMsg{} }
	case "tab", "f":
		m.format = m.format.Next()
		m.showSummary = false
		m.refreshCode()
		m.code.GotoTop()
		return m, nil
	case "a":
		next := nextAnimation(m.store.Snapshot().Animation.Preset())
		m.store.Update(layout.Patch{Animation: &layout.AnimationPatch{Style: layout.Str(string(next))}})
		m.setStatus("Animation: "+string(next), false)
		m.refreshCode()
		return m, nil
	case "s":
		m.showSummary = !m.showSummary
		m.refreshCode()
		m.code.GotoTop()
		return m, nil
	case "z":
		return m, saveArchive(m.history, m.log, m.outputDir, m.store.Snapshot(), m.format)
	case "c":
		return m, copySource(m.copy, m.store.Snapshot(), m.format)
	case "i":
		return m.openImages()
	case "x":
		m.store.Update(layout.ClearImages())
		m.setStatus("Product images cleared", false)
		m.refreshCode()
		return m, nil
	case "r":
		m.store.Reset()
		m.result = nil
		m.state = genStateInput
		m.prompt.SetValue("")
		m.prompt.Focus()
		m.setStatus("Layout reset to defaults", false)
		return m, textarea.Blink
	case "?":
		return m.openHelp()
	}
	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m GeneratorModel) updateImages(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = m.prevState
		m.paths.Blur()
		return m, nil
	case "enter":
		paths := splitPaths(m.paths.Value())
		m.paths.SetValue("")
		m.paths.Blur()
		if len(paths) == 0 {
			m.state = m.prevState
			return m, nil
		}
		return m, loadImages(m.store, m.log, paths)
	}
	var cmd tea.Cmd
	m.paths, cmd = m.paths.Update(msg)
	return m, cmd
}

func (m GeneratorModel) startGenerate() (tea.Model, tea.Cmd) {
	prompt, err := content.ValidatePrompt(m.prompt.Value())
	if err != nil {
		m.setStatus("Please enter a brand description", true)
		return m, nil
	}
	if err := m.store.TryBeginGenerate(); err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.state = genStateGenerating
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, generate(m.gen, m.store, prompt))
}

func (m GeneratorModel) openImages() (tea.Model, tea.Cmd) {
	m.prevState = m.state
	m.state = genStateImages
	m.paths.Focus()
	return m, textinput.Blink
}

func (m GeneratorModel) openHelp() (tea.Model, tea.Cmd) {
	m.prevState = m.state
	m.state = genStateHelp
	m.help.SetContent(RenderHelp(GeneratorHelp, m.help.Width))
	m.help.GotoTop()
	return m, nil
}

func (m *GeneratorModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *GeneratorModel) refreshCode() {
	cfg := m.store.Snapshot()
	if m.showSummary {
		m.code.SetContent(renderMarkdown(Summary(cfg, m.result), m.code.Width-2))
		return
	}
	src, err := export.Render(cfg, m.format)
	if err != nil {
		m.code.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.code.SetContent(highlightCode(src, m.format.Lexer()))
}

func nextAnimation(cur layout.AnimationStyle) layout.AnimationStyle {
	for i, s := range layout.AnimationStyles {
		if s == cur {
			return layout.AnimationStyles[(i+1)%len(layout.AnimationStyles)]
		}
	}
	return layout.FadeIn
}

func splitPaths(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func generate(gen *content.Generator, store *layout.Store, prompt string) tea.Cmd {
	return func() tea.Msg {
		defer store.EndGenerate()
		res := gen.Generate(context.Background(), prompt)
		store.Update(res.Patch(prompt))
		return generatedMsg{result: res}
	}
}

func loadImages(store *layout.Store, log *slog.Logger, paths []string) tea.Cmd {
	return func() tea.Msg {
		sources := make([]layout.ImageSource, len(paths))
		for i, p := range paths {
			sources[i] = layout.FileImage(p)
		}
		images, skipped := layout.ReadImages(context.Background(), log, sources)
		if len(images) > 0 {
			store.Update(layout.AddImages(images...))
		}
		return imagesMsg{added: len(images), skipped: skipped}
	}
}

func saveArchive(h *history.Log, log *slog.Logger, dir string, cfg layout.Configuration, format export.Format) tea.Cmd {
	return func() tea.Msg {
		path, err := archive.Save(dir, cfg, format)
		if err == nil && h != nil {
			if herr := h.Add(cfg.Content.PromptText, string(format), path); herr != nil {
				log.Warn("could not record export", logger.Error(herr))
			}
		}
		return savedMsg{path: path, err: err}
	}
}

func copySource(copyFn func(string) error, cfg layout.Configuration, format export.Format) tea.Cmd {
	return func() tea.Msg {
		src, err := export.Render(cfg, format)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: copyFn(src)}
	}
}

func (m GeneratorModel) View() string {
	header := titleStyle.Render("PAGECRAFT :: " + strings.ToUpper(m.format.Label()))

	var body, footer string
	switch m.state {
	case genStateInput:
		body = focusedInputBoxStyle.Width(max(m.width-4, 24)).Align(lipgloss.Left).Render(m.prompt.View())
		footer = "Ctrl+D: Generate • Ctrl+O: Add images • Ctrl+H: Help • Esc: Back"

	case genStateGenerating:
		body = lipgloss.JoinVertical(lipgloss.Center,
			m.spinner.View(),
			"",
			loadingStyle.Render("Writing your landing page copy..."),
		)
		if m.width > 0 {
			body = lipgloss.Place(m.width-4, max(m.height-8, 3), lipgloss.Center, lipgloss.Center, body)
		}

	case genStateResult:
		label := m.format.Label() + " • " + export.FileName(m.format)
		if m.showSummary {
			label = "Summary"
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			PreviewHeaderStyle.Render(label),
			AppBorderStyle.Padding(0, 1).Render(m.code.View()),
		)
		footer = "Tab: Format • S: Summary • A: Animation • I: Images • X: Clear images • Z: Save zip • C: Copy • N: New • R: Reset • ?: Help • Q: Quit"

	case genStateImages:
		body = WizardCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			StepStyle.Render("Add product images"),
			m.paths.View(),
		))
		footer = "Enter: Load • Esc: Cancel"

	case genStateHelp:
		body = m.help.View()
		footer = "Esc: Close help"
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = errorStyle.Render(m.status)
		} else {
			status = successStyle.Render(m.status)
		}
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		status,
		subtleStyle.Render(footer),
	))
}
