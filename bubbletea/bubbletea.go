// Package bubbletea provides the Bubble Tea presentation layer for clamp
// content: a collapsible, truncating content widget and a host model that
// routes keyboard and mouse input to it.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. The context is used for graceful shutdown — when cancelled, the
// program quits. Mouse reporting is enabled so blocks can be toggled by
// clicking them.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ToggleMsg tells a block to toggle its collapsed state. Sent by the host
// model when the user presses the toggle key on a focused block. Ignored by
// blocks whose content does not exceed their budget.
type ToggleMsg struct{}

// SetCollapsedMsg sets a block's collapsed state directly.
type SetCollapsedMsg struct {
	Collapsed bool
}

// ClickMsg reports a mouse click at a line within a block's rendered view.
// The host model hit-tests viewport coordinates and delivers the click to
// exactly one block, so a click on the show-less footer cannot also trigger
// the content-area toggle.
type ClickMsg struct {
	Line int
}
