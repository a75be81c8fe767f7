package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jimezsa/eatcli/internal/notify"
)

// Styles holds the look of the search screen.
type Styles struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Row         lipgloss.Style
	Selected    lipgloss.Style
	Action      lipgloss.Style
	Placeholder lipgloss.Style
	Loading     lipgloss.Style
	Help        lipgloss.Style
	Success     lipgloss.Style
	Info        lipgloss.Style
	Danger      lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Row:         lipgloss.NewStyle().PaddingLeft(2),
		Selected:    lipgloss.NewStyle().PaddingLeft(2).Background(lipgloss.Color("238")),
		Action:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Placeholder: lipgloss.NewStyle().PaddingLeft(2).Faint(true).Italic(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Danger:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

func (s *Styles) Notice(level notify.Level) lipgloss.Style {
	switch level {
	case notify.Success:
		return s.Success
	case notify.Danger:
		return s.Danger
	default:
		return s.Info
	}
}
