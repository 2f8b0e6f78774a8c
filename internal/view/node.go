// Package view maps portfolio data to a render description: a small tree of
// typed nodes that is independent of any concrete document implementation.
package view

import "strings"

// Kind distinguishes the node variants.
type Kind int

const (
	// ElementKind is a tag with attributes and children.
	ElementKind Kind = iota
	// TextKind is escaped character data.
	TextKind
	// RawKind is a trusted, already sanitized HTML fragment.
	RawKind
)

// Attr is one element attribute. Order is preserved on render.
type Attr struct {
	Key string
	Val string
}

// Node is an element, a text run or a raw fragment.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// A builds an attribute.
func A(key, val string) Attr {
	return Attr{Key: key, Val: val}
}

// El builds an element node. Nil children are dropped so optional parts can
// be passed inline.
func El(tag string, attrs []Attr, children ...*Node) *Node {
	n := &Node{Kind: ElementKind, Tag: tag, Attrs: attrs}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Text builds a text node.
func Text(s string) *Node {
	return &Node{Kind: TextKind, Text: s}
}

// Raw builds a node carrying trusted HTML.
func Raw(html string) *Node {
	return &Node{Kind: RawKind, Text: html}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute lists class.
func (n *Node) HasClass(class string) bool {
	v, _ := n.Attr("class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth first. Returning false from fn
// stops descent below that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll collects the descendants (n included) matching pred.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(x *Node) bool {
		if pred(x) {
			out = append(out, x)
		}
		return true
	})
	return out
}

// ByID returns the first element with the given id.
func (n *Node) ByID(id string) *Node {
	found := n.FindAll(func(x *Node) bool {
		v, ok := x.Attr("id")
		return x.Kind == ElementKind && ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// TextContent concatenates the text and raw descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(x *Node) bool {
		if x.Kind != ElementKind {
			b.WriteString(x.Text)
		}
		return true
	})
	return b.String()
}
