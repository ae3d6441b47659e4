// Package markdown parses markdown source into a clamp node tree using
// goldmark. Inline structure (emphasis, code spans, links) is preserved as
// named elements so truncation can shorten content without destroying
// formatting. Images are kept as their literal markdown syntax in a text
// node so detection over the flattened text still sees them.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/fwojciec/clamp"
)

// Parse converts markdown source into a node tree. Empty source parses to an
// empty sequence. Parse never fails; unrecognized constructs degrade to
// their text content.
func Parse(source string) clamp.Node {
	if source == "" {
		return clamp.Sequence{}
	}
	p := goldmark.DefaultParser()
	doc := p.Parse(text.NewReader([]byte(source)))
	return clamp.Sequence(parseBlocks(doc, []byte(source)))
}

func parseBlocks(node ast.Node, source []byte) []clamp.Node {
	var out []clamp.Node
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if n := parseBlock(c, source); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func parseBlock(node ast.Node, source []byte) clamp.Node {
	switch n := node.(type) {
	case *ast.Paragraph:
		return clamp.Element{Name: "p", Children: parseInlines(n, source)}

	case *ast.Heading:
		return clamp.Element{Name: "heading", Children: parseInlines(n, source)}

	case *ast.FencedCodeBlock:
		return clamp.Element{Name: "codeblock", Children: []clamp.Node{
			clamp.Text(blockLines(n.Lines(), source)),
		}}

	case *ast.CodeBlock:
		return clamp.Element{Name: "codeblock", Children: []clamp.Node{
			clamp.Text(blockLines(n.Lines(), source)),
		}}

	case *ast.List:
		var items []clamp.Node
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			item, ok := c.(*ast.ListItem)
			if !ok {
				continue
			}
			items = append(items, clamp.Element{Name: "item", Children: parseBlocks(item, source)})
		}
		return clamp.Element{Name: "list", Children: items}

	case *ast.TextBlock:
		return clamp.Element{Name: "p", Children: parseInlines(n, source)}

	case *ast.ThematicBreak:
		return clamp.Text("---")

	default:
		// Blockquotes and other unrecognized blocks: keep their children.
		children := parseBlocks(node, source)
		if len(children) == 0 {
			return nil
		}
		return clamp.Sequence(children)
	}
}

func parseInlines(node ast.Node, source []byte) []clamp.Node {
	var out []clamp.Node
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if n := parseInline(c, source); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func parseInline(node ast.Node, source []byte) clamp.Node {
	switch n := node.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(source))
		if n.SoftLineBreak() {
			s += " "
		}
		if n.HardLineBreak() {
			s += "\n"
		}
		return clamp.Text(s)

	case *ast.String:
		return clamp.Text(string(n.Value))

	case *ast.Emphasis:
		name := "em"
		if n.Level >= 2 {
			name = "strong"
		}
		return clamp.Element{Name: name, Children: parseInlines(n, source)}

	case *ast.CodeSpan:
		return clamp.Element{Name: "code", Children: parseInlines(n, source)}

	case *ast.Link:
		return clamp.Element{Name: "link", Children: parseInlines(n, source)}

	case *ast.AutoLink:
		return clamp.Element{Name: "link", Children: []clamp.Node{
			clamp.Text(string(n.URL(source))),
		}}

	case *ast.Image:
		// Preserved verbatim: the base64-image detector matches the raw
		// markdown syntax in the flattened text.
		alt := collectText(n, source)
		return clamp.Text("![" + alt + "](" + string(n.Destination) + ")")

	default:
		children := parseInlines(node, source)
		if len(children) == 0 {
			return nil
		}
		return clamp.Sequence(children)
	}
}

// blockLines joins a code block's raw lines, trimming the trailing newline
// so the block's length reflects visible content.
func blockLines(lines *text.Segments, source []byte) string {
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}

// collectText gathers the raw text of a node's inline children.
func collectText(node ast.Node, source []byte) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))
		case *ast.String:
			b.Write(n.Value)
		default:
			b.WriteString(collectText(c, source))
		}
	}
	return b.String()
}
