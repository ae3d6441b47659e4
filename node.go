// Package clamp models displayable content as a tree of renderable nodes
// and provides length calculation, flattening, and budgeted truncation over
// that tree. Rendering lives in the bubbletea subpackage.
package clamp

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Node is a sealed interface representing a piece of renderable content.
// The unexported marker method prevents external implementations, so the
// length/flatten/truncate walks can match exhaustively.
type Node interface {
	node()
}

// Text is a primitive text node.
type Text string

func (Text) node() {}

// Number is a primitive numeric node. It is stringified for display.
type Number float64

func (Number) node() {}

// String returns the display form of the number. Integral values render
// without a decimal point.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Sequence is an ordered sequence of nodes rendered one after another.
type Sequence []Node

func (Sequence) node() {}

// Element is a structured node: a semantic tag with nested children.
// Names follow markdown semantics ("p", "heading", "strong", "em", "code",
// "link") but the tree algorithms treat the name as opaque.
type Element struct {
	Name     string
	Children []Node
}

func (Element) node() {}

// Normalize coerces an arbitrary value into a Node. Nodes, strings, numeric
// types, and slices pass through to their natural shapes; anything else is
// serialized to JSON text. All inputs are accepted; there is no error path.
func Normalize(v any) Node {
	switch v := v.(type) {
	case nil:
		return Text("")
	case Node:
		return v
	case []Node:
		return Sequence(v)
	case string:
		return Text(v)
	case int:
		return Number(float64(v))
	case int8:
		return Number(float64(v))
	case int16:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint8:
		return Number(float64(v))
	case uint16:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case float32:
		return Number(float64(v))
	case float64:
		return Number(v)
	case []any:
		seq := make(Sequence, 0, len(v))
		for _, el := range v {
			seq = append(seq, Normalize(el))
		}
		return seq
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return Text(fmt.Sprintf("%v", v))
		}
		return Text(string(b))
	}
}

// Interface compliance checks.
var (
	_ Node = Text("")
	_ Node = Number(0)
	_ Node = Sequence(nil)
	_ Node = Element{}
)
