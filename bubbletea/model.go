package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fwojciec/clamp"
)

var _ tea.Model = Model{}

// Item pairs a content block with an optional title rendered above it.
type Item struct {
	Title string
	Block *ContentBlock
}

// Model hosts content blocks in a scrollable viewport and routes keyboard
// and mouse input to them.
type Model struct {
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	styles Styles
	items  []Item
	focus  int // index of focused collapsible item (-1 = none)

	// regions maps content line ranges to items for click hit-testing.
	// Rebuilt whenever the viewport content is.
	regions []region
	ready   bool
}

// region covers the lines of one item's block view within the viewport
// content. start is inclusive, end exclusive; the title line is excluded so
// clicks on it don't toggle.
type region struct {
	item  int
	start int
	end   int
}

// New creates a Model hosting the given items. Focus starts on the last
// collapsible item, mirroring where new content appears.
func New(items []Item, theme clamp.Theme) Model {
	m := Model{
		styles: NewStyles(theme),
		items:  items,
	}
	return m.updateFocus()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			return m.handleClick(msg.Y)
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.Viewport.View() + "\n" + m.statusLine()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1 // newline between viewport and status line
	vpHeight := msg.Height - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m.syncContent()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		if m.focus >= 0 {
			block, cmd := m.items[m.focus].Block.Update(ToggleMsg{})
			m.items[m.focus].Block = block
			return m.syncContent(), cmd
		}
		return m, nil

	case tea.KeyShiftTab:
		return m.cycleFocusPrev(), nil
	}

	if msg.String() == "q" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// handleClick maps a click at viewport row y to the block under it and
// delivers a ClickMsg with the line offset within that block's view. At most
// one block receives the click.
func (m Model) handleClick(y int) (tea.Model, tea.Cmd) {
	if !m.ready || y >= m.Viewport.Height {
		return m, nil
	}
	contentLine := m.Viewport.YOffset + y
	for _, reg := range m.regions {
		if contentLine < reg.start || contentLine >= reg.end {
			continue
		}
		block, cmd := m.items[reg.item].Block.Update(ClickMsg{Line: contentLine - reg.start})
		m.items[reg.item].Block = block
		return m.syncContent(), cmd
	}
	return m, nil
}

// syncContent re-renders all blocks into the viewport, preserving scroll
// position, and rebuilds the click regions.
func (m Model) syncContent() Model {
	content, regions := m.renderContent()
	m.regions = regions
	m.Viewport.SetContent(content)
	return m
}

func (m Model) renderContent() (string, []region) {
	if len(m.items) == 0 {
		return "", nil
	}
	width := m.Viewport.Width
	var segs []string
	var regions []region
	line := 0
	for i, it := range m.items {
		var seg strings.Builder
		titleLines := 0
		if it.Title != "" {
			seg.WriteString(m.styles.Muted.Render(it.Title))
			seg.WriteString("\n")
			titleLines = 1
		}
		view := it.Block.View(width)
		viewLines := strings.Count(view, "\n") + 1
		seg.WriteString(view)

		regions = append(regions, region{
			item:  i,
			start: line + titleLines,
			end:   line + titleLines + viewLines,
		})
		segs = append(segs, seg.String())
		line += titleLines + viewLines + 1 // +1 for the blank separator line
	}
	return strings.Join(segs, "\n\n"), regions
}

// updateFocus scans backwards to find the last collapsible item. Only the
// focused item responds to Tab; ShiftTab cycles to the previous one.
func (m Model) updateFocus() Model {
	m.focus = -1
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].Block.Collapsible() {
			m.focus = i
			return m
		}
	}
	return m
}

// cycleFocusPrev moves focus to the previous collapsible item, wrapping
// around.
func (m Model) cycleFocusPrev() Model {
	if len(m.items) == 0 {
		return m
	}
	start := m.focus - 1
	if start < 0 {
		start = len(m.items) - 1
	}
	for i := 0; i < len(m.items); i++ {
		idx := (start - i + len(m.items)) % len(m.items)
		if m.items[idx].Block.Collapsible() {
			m.focus = idx
			return m
		}
	}
	m.focus = -1
	return m
}

func (m Model) statusLine() string {
	if m.focus >= 0 {
		return m.styles.Muted.Render("Tab to toggle · Shift+Tab to cycle · click to expand/collapse · q to quit")
	}
	return m.styles.Muted.Render("q to quit")
}
