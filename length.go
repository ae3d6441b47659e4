package clamp

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Length returns the total displayable character count of the node tree.
// Characters are grapheme clusters, so emoji and combining sequences count
// as one. A nil node contributes zero. Terminates on any finite tree; trees
// are assumed acyclic.
func Length(n Node) int {
	switch n := n.(type) {
	case Text:
		return uniseg.GraphemeClusterCount(string(n))
	case Number:
		return uniseg.GraphemeClusterCount(n.String())
	case Sequence:
		total := 0
		for _, el := range n {
			total += Length(el)
		}
		return total
	case Element:
		total := 0
		for _, el := range n.Children {
			total += Length(el)
		}
		return total
	default:
		return 0
	}
}

// Flatten concatenates the text content of the node tree in render order,
// discarding all structure.
func Flatten(n Node) string {
	var b strings.Builder
	flattenInto(n, &b)
	return b.String()
}

func flattenInto(n Node, b *strings.Builder) {
	switch n := n.(type) {
	case Text:
		b.WriteString(string(n))
	case Number:
		b.WriteString(n.String())
	case Sequence:
		for _, el := range n {
			flattenInto(el, b)
		}
	case Element:
		for _, el := range n.Children {
			flattenInto(el, b)
		}
	}
}
