// Package browse shows a rendered audit report in a scrollable terminal
// viewer.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	groupStyle = lipgloss.NewStyle().Bold(true)
	otherStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	footStyle  = lipgloss.NewStyle().Faint(true)
)

// reserved rows for the header and footer lines.
const chromeHeight = 2

// Model is a bubbletea model over one report.
type Model struct {
	title    string
	report   string
	viewport viewport.Model
	ready    bool
	copied   string // status line after a copy attempt
	copyFn   func(string) error
}

// New returns a viewer for report. copyFn is invoked on "c"; nil disables it.
func New(title, report string, copyFn func(string) error) Model {
	return Model{title: title, report: report, copyFn: copyFn}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - chromeHeight
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, h)
			m.viewport.SetContent(Highlight(m.report))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = h
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c":
			if m.copyFn != nil {
				if err := m.copyFn(m.report); err != nil {
					m.copied = "copy failed: " + err.Error()
				} else {
					m.copied = "copied to clipboard"
				}
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	foot := fmt.Sprintf("%3.f%%  ↑/↓ scroll · c copy · q quit", m.viewport.ScrollPercent()*100)
	if m.copied != "" {
		foot += "  " + m.copied
	}
	return titleStyle.Render(m.title) + "\n" + m.viewport.View() + "\n" + footStyle.Render(foot)
}

// Highlight styles section headings of a report; chain lines are untouched.
func Highlight(report string) string {
	lines := strings.Split(report, "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "Path Group "):
			lines[i] = groupStyle.Render(l)
		case strings.HasPrefix(l, "Other / "):
			lines[i] = otherStyle.Render(l)
		case strings.HasPrefix(l, "==="):
			lines[i] = titleStyle.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// Run blocks until the user quits the viewer.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
