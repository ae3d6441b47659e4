package bubbletea

// Focus exports the focused item index for testing.
func Focus(m Model) int { return m.focus }

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	s, _ := m.renderContent()
	return s
}
