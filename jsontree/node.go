// Package jsontree models a parsed JSON document as an explicit tagged variant tree.
//
// Objects keep their keys in document order, which the extraction code relies on
// for deterministic "first value wins" decisions.
package jsontree

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Node is one value of a JSON document. A nil *Node behaves as null.
type Node struct {
	kind   Kind
	text   string
	items  []*Node
	fields *orderedmap.OrderedMap[string, *Node]
}

func NewNull() *Node {
	return &Node{kind: Null}
}

func NewBool(b bool) *Node {
	if b {
		return &Node{kind: Bool, text: "true"}
	}
	return &Node{kind: Bool, text: "false"}
}

// NewNumber keeps the number as its JSON literal so no precision is lost when it is stringified.
func NewNumber(literal string) *Node {
	return &Node{kind: Number, text: literal}
}

func NewString(s string) *Node {
	return &Node{kind: String, text: s}
}

func NewArray(items ...*Node) *Node {
	return &Node{kind: Array, items: items}
}

func NewObject() *Node {
	return &Node{kind: Object, fields: orderedmap.New[string, *Node]()}
}

// Set adds or replaces a field of an object node. A replaced key keeps its original position.
func (n *Node) Set(key string, value *Node) *Node {
	if n.kind == Object {
		n.fields.Set(key, value)
	}
	return n
}

// Append adds an element to an array node.
func (n *Node) Append(value *Node) *Node {
	if n.kind == Array {
		n.items = append(n.items, value)
	}
	return n
}

// Kind reports the variant of the node.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

// Text returns the string form of a scalar. Null, arrays and objects have none.
func (n *Node) Text() (string, bool) {
	switch n.Kind() {
	case Bool, Number, String:
		return n.text, true
	case Null, Array, Object:
		return "", false
	}
	return "", false
}

// Items returns the elements of an array node.
func (n *Node) Items() []*Node {
	if n.Kind() != Array {
		return nil
	}
	return n.items
}

// Field returns the child stored under key in an object node.
func (n *Node) Field(key string) (*Node, bool) {
	if n.Kind() != Object {
		return nil, false
	}
	return n.fields.Get(key)
}

// Len is the number of elements or fields; scalars have zero.
func (n *Node) Len() int {
	switch n.Kind() {
	case Array:
		return len(n.items)
	case Object:
		return n.fields.Len()
	case Null, Bool, Number, String:
		return 0
	}
	return 0
}

// EachField visits the fields of an object node in document order.
func (n *Node) EachField(fn func(key string, value *Node)) {
	if n.Kind() != Object {
		return
	}
	for pair := n.fields.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Strings flattens the node into display strings: scalars yield their text,
// arrays concatenate the strings of their elements, null and objects yield nothing.
func (n *Node) Strings() []string {
	switch n.Kind() {
	case Bool, Number, String:
		return []string{n.text}
	case Array:
		var out []string
		for _, item := range n.items {
			out = append(out, item.Strings()...)
		}
		return out
	case Null, Object:
		return nil
	}
	return nil
}

// MarshalJSON writes the node back as compact JSON with object keys in document order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	switch n.Kind() {
	case Null:
		buf.WriteString("null")
	case Bool, Number:
		buf.WriteString(n.text)
	case String:
		quoted, err := json.Marshal(n.text)
		if err != nil {
			return err
		}
		buf.Write(quoted)
	case Array:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for pair := n.fields.Oldest(); pair != nil; pair = pair.Next() {
			if pair != n.fields.Oldest() {
				buf.WriteByte(',')
			}
			quoted, err := json.Marshal(pair.Key)
			if err != nil {
				return err
			}
			buf.Write(quoted)
			buf.WriteByte(':')
			if err := pair.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
