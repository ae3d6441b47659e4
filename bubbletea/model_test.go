package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/clamp"
	bt "github.com/fwojciec/clamp/bubbletea"
)

func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func initModel(t *testing.T, items []bt.Item) bt.Model {
	t.Helper()
	m := bt.New(items, clamp.DefaultTheme())
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func leftClick(y int) tea.MouseMsg {
	return tea.MouseMsg{Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("focus starts on the last collapsible item", func(t *testing.T) {
		t.Parallel()
		styles := testStyles()
		items := []bt.Item{
			{Block: bt.NewContentBlock("short", 100, styles)},
			{Block: bt.NewContentBlock("a much longer piece of content", 5, styles)},
			{Block: bt.NewContentBlock("tiny", 100, styles)},
		}
		m := bt.New(items, clamp.DefaultTheme())
		assert.Equal(t, 1, bt.Focus(m))
	})

	t.Run("no collapsible items leaves focus unset", func(t *testing.T) {
		t.Parallel()
		items := []bt.Item{{Block: bt.NewContentBlock("short", 100, testStyles())}}
		m := bt.New(items, clamp.DefaultTheme())
		assert.Equal(t, -1, bt.Focus(m))
	})
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size initializes the view", func(t *testing.T) {
		t.Parallel()
		items := []bt.Item{{Block: bt.NewContentBlock("hello", 100, testStyles())}}
		m := initModel(t, items)
		assert.NotEmpty(t, m.View())
		assert.Equal(t, 80, m.Viewport.Width)
		assert.Equal(t, 22, m.Viewport.Height) // 24 - status(1) - border(1)
	})

	t.Run("tab toggles the focused block", func(t *testing.T) {
		t.Parallel()
		block := bt.NewContentBlock("Hello World", 5, testStyles())
		m := initModel(t, []bt.Item{{Block: block}})
		require.True(t, block.Collapsed())

		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.False(t, block.Collapsed())

		_ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.True(t, block.Collapsed())
	})

	t.Run("tab without a collapsible block is a no-op", func(t *testing.T) {
		t.Parallel()
		block := bt.NewContentBlock("short", 100, testStyles())
		m := initModel(t, []bt.Item{{Block: block}})
		_ = updateModel(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.False(t, block.Collapsed())
	})

	t.Run("shift+tab cycles focus to the previous collapsible item", func(t *testing.T) {
		t.Parallel()
		styles := testStyles()
		first := bt.NewContentBlock("the first long content block here", 5, styles)
		second := bt.NewContentBlock("the second long content block here", 5, styles)
		m := initModel(t, []bt.Item{{Block: first}, {Block: second}})
		require.Equal(t, 1, bt.Focus(m))

		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, 0, bt.Focus(m))

		// Wraps around.
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, 1, bt.Focus(m))
	})

	t.Run("click on a block toggles it", func(t *testing.T) {
		t.Parallel()
		block := bt.NewContentBlock("Hello World", 5, testStyles())
		m := initModel(t, []bt.Item{{Block: block}})
		require.True(t, block.Collapsed())

		_ = updateModel(t, m, leftClick(0))
		assert.False(t, block.Collapsed())
	})

	t.Run("click on a title line does not toggle", func(t *testing.T) {
		t.Parallel()
		block := bt.NewContentBlock("Hello World", 5, testStyles())
		m := initModel(t, []bt.Item{{Title: "notes.md", Block: block}})
		require.True(t, block.Collapsed())

		m = updateModel(t, m, leftClick(0))
		assert.True(t, block.Collapsed())

		// The block itself starts one line below the title.
		_ = updateModel(t, m, leftClick(1))
		assert.False(t, block.Collapsed())
	})

	t.Run("click below the viewport is ignored", func(t *testing.T) {
		t.Parallel()
		block := bt.NewContentBlock("Hello World", 5, testStyles())
		m := initModel(t, []bt.Item{{Block: block}})

		_ = updateModel(t, m, leftClick(23))
		assert.True(t, block.Collapsed())
	})

	t.Run("click routes to the block under the cursor only", func(t *testing.T) {
		t.Parallel()
		styles := testStyles()
		first := bt.NewContentBlock("the first long content block here", 5, styles)
		second := bt.NewContentBlock("the second long content block here", 5, styles)
		m := initModel(t, []bt.Item{{Block: first}, {Block: second}})

		// First block view is one line; blank separator; second starts at 2.
		_ = updateModel(t, m, leftClick(2))
		assert.True(t, first.Collapsed())
		assert.False(t, second.Collapsed())
	})

	t.Run("q quits", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, []bt.Item{{Block: bt.NewContentBlock("x", 100, testStyles())}})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		t.Parallel()
		m := initModel(t, []bt.Item{{Block: bt.NewContentBlock("x", 100, testStyles())}})
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})
}

func TestModel_RenderContent(t *testing.T) {
	t.Parallel()

	t.Run("includes titles and block content", func(t *testing.T) {
		t.Parallel()
		block := bt.NewContentBlock("hello there", 100, testStyles())
		m := initModel(t, []bt.Item{{Title: "notes.md", Block: block}})

		content := stripANSI(bt.RenderContent(m))
		assert.Contains(t, content, "notes.md")
		assert.Contains(t, content, "hello there")
	})

	t.Run("separates items with a blank line", func(t *testing.T) {
		t.Parallel()
		styles := testStyles()
		m := initModel(t, []bt.Item{
			{Block: bt.NewContentBlock("one", 100, styles)},
			{Block: bt.NewContentBlock("two", 100, styles)},
		})

		content := stripANSI(bt.RenderContent(m))
		assert.Contains(t, content, "\n\n")
	})
}
