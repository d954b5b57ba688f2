package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phravins/pagecraft/internal/config"
	"github.com/phravins/pagecraft/internal/export"
)

const (
	fieldBackend = iota
	fieldModel
	fieldKey
	fieldBaseURL
	fieldOutputDir
	fieldFormat
	fieldCount
)

// backends that refuse anonymous requests
var needsKey = []string{"huggingface", "hf", "openai", "mistral", "groq", "deepseek"}

type SettingsModel struct {
	inputs     []textinput.Model
	focusedIdx int
	err        error
	successMsg string
	showHelp   bool
	width      int
	height     int
	helpView   viewport.Model

	save func(map[string]string) error
}

func newInput(prompt, placeholder, value string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 200
	ti.Width = width
	return ti
}

func NewSettingsModel(cfg *config.Config) SettingsModel {
	key := cfg.AIAPIKey
	if isHuggingFace(cfg.AIBackend) && cfg.HFAccessToken != "" {
		key = cfg.HFAccessToken
	}

	inputs := make([]textinput.Model, fieldCount)
	inputs[fieldBackend] = newInput("AI Backend: ", "huggingface / ollama / openai / mistral / groq", cfg.AIBackend, 30)
	inputs[fieldModel] = newInput("AI Model: ", "google/flan-t5-base", cfg.AIModel, 40)
	inputs[fieldKey] = newInput("API Key: ", "hf_... / sk-...", key, 40)
	inputs[fieldKey].EchoMode = textinput.EchoPassword
	inputs[fieldBaseURL] = newInput("Base URL: ", "Optional (e.g. http://localhost:1234/v1)", cfg.AIBaseURL, 50)
	inputs[fieldOutputDir] = newInput("Output Dir: ", ".", cfg.OutputDir, 50)
	inputs[fieldFormat] = newInput("Default Format: ", "react / shopify / html", cfg.DefaultFormat, 20)
	inputs[fieldBackend].Focus()

	hv := viewport.New(80, 30)
	hv.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPurple).
		Padding(1, 2)
	hv.SetContent(renderMarkdown(SettingsHelp, 76))

	return SettingsModel{
		inputs:   inputs,
		helpView: hv,
		width:    100,
		height:   40,
		save:     writeSettings,
	}
}

func isHuggingFace(backend string) bool {
	b := strings.ToLower(strings.TrimSpace(backend))
	return b == "" || b == "huggingface" || b == "hf"
}

func (m SettingsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width - 6
		m.helpView.Height = msg.Height - 10
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "enter":
				m.showHelp = false
				return m, nil
			}
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "?":
			m.showHelp = true
			m.helpView.GotoTop()
			return m, nil
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return BackMsg{} }
		case "ctrl+s":
			m.submit()
			return m, nil
		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()
			if s == "enter" && m.focusedIdx == len(m.inputs)-1 {
				m.submit()
				return m, nil
			}
			if s == "up" || s == "shift+tab" {
				m.focusedIdx--
			} else {
				m.focusedIdx++
			}
			m.focusedIdx = (m.focusedIdx + len(m.inputs)) % len(m.inputs)
			return m, m.focus()
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *SettingsModel) focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focusedIdx {
			cmd = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = lipgloss.NewStyle().Foreground(colorPink)
			m.inputs[i].TextStyle = lipgloss.NewStyle().Foreground(colorPink)
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = subtleStyle
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}
	return cmd
}

func (m SettingsModel) values() map[string]string {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	out := map[string]string{
		"ai_backend":     v(fieldBackend),
		"ai_model":       v(fieldModel),
		"ai_api_key":     v(fieldKey),
		"ai_base_url":    v(fieldBaseURL),
		"output_dir":     v(fieldOutputDir),
		"default_format": v(fieldFormat),
	}
	if isHuggingFace(out["ai_backend"]) {
		out["hf_access_token"] = out["ai_api_key"]
	}
	return out
}

func (m *SettingsModel) submit() {
	values := m.values()
	if err := validateSettings(values); err != nil {
		m.err = err
		m.successMsg = ""
		return
	}
	if f, err := export.ParseFormat(values["default_format"]); err == nil {
		values["default_format"] = string(f)
	}
	if err := m.save(values); err != nil {
		m.err = err
		m.successMsg = ""
		return
	}
	m.err = nil
	m.successMsg = "Configuration saved to " + configPathOrDefault()
}

func validateSettings(values map[string]string) error {
	backend := strings.ToLower(values["ai_backend"])
	if backend == "" {
		return fmt.Errorf("backend cannot be empty")
	}
	for _, b := range needsKey {
		if backend == b && values["ai_api_key"] == "" {
			return fmt.Errorf("API Key is required for %s", b)
		}
	}
	if u := values["ai_base_url"]; u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return fmt.Errorf("base URL must start with http:// or https://")
	}
	if f := values["default_format"]; f != "" {
		if _, err := export.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func writeSettings(values map[string]string) error {
	for k, v := range values {
		config.Set(k, v)
	}
	return config.Write()
}

func configPathOrDefault() string {
	if p, err := config.Path(); err == nil {
		return p
	}
	return "~/.pagecraft.yaml"
}

func (m SettingsModel) View() string {
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				StepStyle.Render("Settings Help"),
				m.helpView.View(),
				subtleStyle.MarginTop(1).Render("Press [Esc] or [?] to go back"),
			),
		)
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPurple).
		Padding(1, 3).
		Width(64)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(58).Align(lipgloss.Center).Render(StepStyle.Render("PAGECRAFT SETTINGS")))
	b.WriteString("\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.focusedIdx == len(m.inputs)-1 {
		b.WriteString(lipgloss.PlaceHorizontal(58, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(colorPurple).Padding(0, 3).Bold(true).Render("SAVE CHANGES")))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(58, lipgloss.Center, subtleStyle.Render("Submit (Enter on last field or Ctrl+S)")))
	}

	if m.successMsg != "" {
		b.WriteString("\n\n" + successStyle.Render(m.successMsg))
	}
	if m.err != nil {
		b.WriteString("\n\n" + errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n\n" + subtleStyle.Render("Esc to Cancel • Tab to Navigate • [?] Help"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card.Render(b.String()))
}

// RunSettings opens the settings form full screen.
func RunSettings(cfg *config.Config) error {
	p := tea.NewProgram(Wrap(NewSettingsModel(cfg)), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
