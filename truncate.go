package clamp

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate returns a copy of the node tree shortened to at most max
// displayable characters. Primitives are sliced to the remaining budget (a
// sliced Number becomes Text). Sequences keep whole elements while they fit;
// the overflowing element is itself truncated and later siblings are
// dropped. An Element whose subtree fits the remaining budget is returned
// unchanged. max <= 0 disables truncation and returns n as-is.
func Truncate(n Node, max int) Node {
	if max <= 0 {
		return n
	}
	out, _ := truncateNode(n, max, 0)
	return out
}

// truncateNode threads the budget through the walk as an already-consumed
// character count and returns the new total alongside the truncated node.
func truncateNode(n Node, max, used int) (Node, int) {
	switch n := n.(type) {
	case Text:
		return truncateText(string(n), max, used)
	case Number:
		s := n.String()
		if used+uniseg.GraphemeClusterCount(s) <= max {
			return n, used + uniseg.GraphemeClusterCount(s)
		}
		return truncateText(s, max, used)
	case Sequence:
		children, used := truncateChildren(n, max, used)
		return Sequence(children), used
	case Element:
		if total := Length(n); used+total <= max {
			return n, used + total
		}
		children, used := truncateChildren(n.Children, max, used)
		return Element{Name: n.Name, Children: children}, used
	default:
		return n, used
	}
}

func truncateChildren(nodes []Node, max, used int) ([]Node, int) {
	out := make([]Node, 0, len(nodes))
	for _, el := range nodes {
		if l := Length(el); used+l <= max {
			out = append(out, el)
			used += l
			continue
		}
		// Overflowing element: truncate it and drop later siblings.
		t, u := truncateNode(el, max, used)
		out = append(out, t)
		used = u
		break
	}
	return out, used
}

func truncateText(s string, max, used int) (Node, int) {
	remaining := max - used
	if remaining <= 0 {
		return Text(""), used
	}
	var b strings.Builder
	count := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if count == remaining {
			break
		}
		b.WriteString(g.Str())
		count++
	}
	return Text(b.String()), used + count
}
