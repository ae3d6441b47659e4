package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/clamp"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Body      lipgloss.Style
	Heading   lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Code      lipgloss.Style
	Link      lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Indicator lipgloss.Style // trailing "more content" chevron
	ShowLess  lipgloss.Style // expanded-state footer affordance
}

// NewStyles creates Styles from a Theme.
func NewStyles(t clamp.Theme) Styles {
	return Styles{
		Body:      lipgloss.NewStyle().Foreground(ansiColor(t.Body)),
		Heading:   lipgloss.NewStyle().Foreground(ansiColor(t.Heading)).Bold(true),
		Bold:      lipgloss.NewStyle().Bold(true),
		Italic:    lipgloss.NewStyle().Italic(true),
		Code:      lipgloss.NewStyle().Foreground(ansiColor(t.Code)),
		Link:      lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Underline(true),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Error:     lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Indicator: lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		ShowLess:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
