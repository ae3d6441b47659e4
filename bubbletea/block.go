package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/fwojciec/clamp"
)

const (
	collapsedIndicator = "… ▶"
	showLessLabel      = "▲ show less"
)

// ContentBlock displays content (possibly a nested formatted tree) and
// truncates it past a character budget, with a toggle to expand and
// collapse. Content containing an embedded base64 markdown image is never
// truncated.
//
// The collapsed state is derived when the content's total length changes,
// and only then: changing the budget alone never re-collapses content the
// user has already expanded.
type ContentBlock struct {
	content    clamp.Node
	maxLength  int
	collapsed  bool
	trackedLen int
	hasImage   bool
	styles     Styles

	// footerAt is the view line index of the show-less footer after the
	// last View call, -1 when absent. Used for click hit-testing.
	footerAt int
}

// NewContentBlock creates a ContentBlock with the given content and
// character budget. A budget of zero or less disables truncation.
func NewContentBlock(v any, maxLength int, styles Styles) *ContentBlock {
	b := &ContentBlock{
		maxLength:  maxLength,
		styles:     styles,
		trackedLen: -1,
		footerAt:   -1,
	}
	b.SetContent(v)
	return b
}

// SetContent replaces the block's content. The value is normalized; any
// input is accepted. The collapsed state is recomputed only when the total
// content length differs from the previously observed length, so re-setting
// equal-length content preserves the current expanded/collapsed state.
func (b *ContentBlock) SetContent(v any) {
	b.content = clamp.Normalize(v)
	b.hasImage = clamp.HasBase64Image(b.content)
	if l := clamp.Length(b.content); l != b.trackedLen {
		b.trackedLen = l
		b.collapsed = b.Collapsible()
	}
}

// SetMaxLength replaces the character budget. The collapsed state is
// deliberately not recomputed here; see SetContent.
func (b *ContentBlock) SetMaxLength(max int) {
	b.maxLength = max
}

// Collapsed reports whether the block is showing the truncated view.
func (b *ContentBlock) Collapsed() bool { return b.collapsed }

// MaxLength returns the current character budget.
func (b *ContentBlock) MaxLength() int { return b.maxLength }

// Length returns the total displayable character count of the content.
func (b *ContentBlock) Length() int { return b.trackedLen }

// Collapsible reports whether the content exceeds the budget and may be
// toggled. Always false when the budget is disabled or the content embeds a
// base64 image.
func (b *ContentBlock) Collapsible() bool {
	return b.maxLength > 0 && b.trackedLen > b.maxLength && !b.hasImage
}

func (b *ContentBlock) Update(msg tea.Msg) (*ContentBlock, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		if b.Collapsible() {
			b.collapsed = !b.collapsed
		}

	case SetCollapsedMsg:
		if b.Collapsible() {
			b.collapsed = msg.Collapsed
		}

	case ClickMsg:
		if !b.Collapsible() {
			break
		}
		if !b.collapsed && b.footerAt >= 0 && msg.Line == b.footerAt {
			// Show-less footer. Handled before the content-area case so a
			// single click cannot toggle twice.
			b.collapsed = true
			break
		}
		b.collapsed = !b.collapsed
	}
	return b, nil
}

func (b *ContentBlock) View(width int) string {
	if width <= 0 {
		width = 80
	}
	b.footerAt = -1

	if !b.Collapsible() {
		return Render(b.content, width, b.styles)
	}

	if b.collapsed {
		content := Render(clamp.Truncate(b.content, b.maxLength), width, b.styles)
		return appendIndicator(content, b.styles.Indicator.Render(collapsedIndicator), width)
	}

	content := Render(b.content, width, b.styles)
	view := content + "\n" + b.styles.ShowLess.Render(showLessLabel)
	b.footerAt = strings.Count(view, "\n")
	return view
}

// appendIndicator attaches the collapsed chevron to the last visual line,
// tail-truncating the line first when it would overflow width.
func appendIndicator(content, indicator string, width int) string {
	indWidth := runewidth.StringWidth(collapsedIndicator)
	if width < indWidth+2 {
		return content + "\n" + indicator
	}

	lines := strings.Split(content, "\n")
	last := lines[len(lines)-1]
	if ansi.PrintableRuneWidth(last)+indWidth+1 > width {
		last = truncate.String(last, uint(width-indWidth-1))
	}
	sep := " "
	if last == "" {
		sep = ""
	}
	lines[len(lines)-1] = last + sep + indicator
	return strings.Join(lines, "\n")
}
