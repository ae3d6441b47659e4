package bubbletea

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fwojciec/clamp"
)

// Render converts a node tree to ANSI-styled terminal output. Block-level
// elements (paragraphs, headings, code blocks, lists) each end their own
// line; inline elements style their children in place. Paragraph text is
// word-wrapped to width; code blocks keep their raw lines.
func Render(n clamp.Node, width int, styles Styles) string {
	if width <= 0 {
		width = 80
	}
	r := renderer{styles: styles}
	var buf bytes.Buffer
	r.renderBlock(n, width, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

type renderer struct {
	styles Styles
}

func (r *renderer) renderBlock(n clamp.Node, width int, buf *bytes.Buffer) {
	switch n := n.(type) {
	case clamp.Sequence:
		for _, el := range n {
			r.renderBlock(el, width, buf)
		}

	case clamp.Element:
		switch n.Name {
		case "heading":
			inline := r.styles.Heading.Render(r.renderInlines(n.Children))
			buf.WriteString(wrapTo(inline, width))
			buf.WriteString("\n")

		case "p":
			inline := r.renderInlines(n.Children)
			if inline == "" {
				return
			}
			buf.WriteString(wrapTo(r.styles.Body.Render(inline), width))
			buf.WriteString("\n")

		case "codeblock":
			gutter := r.styles.Muted.Render("│") + " "
			for _, line := range strings.Split(clamp.Flatten(n), "\n") {
				buf.WriteString(gutter + line)
				buf.WriteString("\n")
			}

		case "list":
			for _, item := range n.Children {
				r.renderListItem(item, width, buf)
			}

		default:
			// Inline element at block level.
			buf.WriteString(wrapTo(r.renderInline(n), width))
			buf.WriteString("\n")
		}

	default:
		if s := r.renderInline(n); s != "" {
			buf.WriteString(wrapTo(r.styles.Body.Render(s), width))
			buf.WriteString("\n")
		}
	}
}

// renderListItem writes an item with a "- " marker and continuation-line
// indentation.
func (r *renderer) renderListItem(n clamp.Node, width int, buf *bytes.Buffer) {
	item, ok := n.(clamp.Element)
	if !ok {
		buf.WriteString(wrapTo(r.renderInline(n), width))
		buf.WriteString("\n")
		return
	}

	const marker = "- "
	itemWidth := width - len(marker)
	if itemWidth < 10 {
		itemWidth = 10
	}
	wrapped := wrapTo(r.renderInlines(item.Children), itemWidth)
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(marker + line)
		} else {
			buf.WriteString(strings.Repeat(" ", len(marker)) + line)
		}
		buf.WriteString("\n")
	}
}

func (r *renderer) renderInlines(nodes []clamp.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(r.renderInline(n))
	}
	return b.String()
}

func (r *renderer) renderInline(n clamp.Node) string {
	switch n := n.(type) {
	case clamp.Text:
		return string(n)
	case clamp.Number:
		return n.String()
	case clamp.Sequence:
		var b strings.Builder
		for _, el := range n {
			b.WriteString(r.renderInline(el))
		}
		return b.String()
	case clamp.Element:
		inner := r.renderInlines(n.Children)
		switch n.Name {
		case "strong":
			return r.styles.Bold.Render(inner)
		case "em":
			return r.styles.Italic.Render(inner)
		case "code":
			return r.styles.Code.Render(inner)
		case "link":
			return r.styles.Link.Render(inner)
		case "heading":
			return r.styles.Heading.Render(inner)
		default:
			return inner
		}
	default:
		return ""
	}
}

func wrapTo(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
