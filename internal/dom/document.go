// Package dom materializes view trees into an x/net/html document and
// offers the lookup and mutation primitives the gallery drives.
package dom

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Zachkp/portfolio/internal/view"
)

// ErrNoElement is returned when an id does not resolve to an element.
var ErrNoElement = errors.New("element not found")

const scrollLockStyle = "overflow: hidden"

// Document is a mutable HTML tree.
type Document struct {
	root *html.Node
}

// New materializes a view tree. A tree rooted at <html> becomes a full
// document with a doctype; anything else is held as a fragment.
func New(v *view.Node) *Document {
	root := &html.Node{Type: html.DocumentNode}
	if v != nil && v.Kind == view.ElementKind && v.Tag == "html" {
		root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	}
	for _, n := range Materialize(v) {
		root.AppendChild(n)
	}
	return &Document{root: root}
}

// Materialize converts one view node into html nodes. Raw fragments may
// expand to several siblings.
func Materialize(v *view.Node) []*html.Node {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case view.TextKind:
		return []*html.Node{{Type: html.TextNode, Data: v.Text}}
	case view.RawKind:
		return parseRaw(v.Text)
	}

	n := &html.Node{
		Type:     html.ElementNode,
		Data:     v.Tag,
		DataAtom: atom.Lookup([]byte(v.Tag)),
	}
	for _, a := range v.Attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	for _, c := range v.Children {
		for _, m := range Materialize(c) {
			n.AppendChild(m)
		}
	}
	return []*html.Node{n}
}

func parseRaw(src string) []*html.Node {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), parent)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: src}}
	}
	return nodes
}

// ElementByID finds the first element carrying id.
func (d *Document) ElementByID(id string) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(d.root)
	return found
}

func (d *Document) mustElement(id string) (*html.Node, error) {
	el := d.ElementByID(id)
	if el == nil {
		return nil, fmt.Errorf("%w: #%s", ErrNoElement, id)
	}
	return el, nil
}

// ReplaceChildren swaps the content of an element for the given nodes.
func (d *Document) ReplaceChildren(id string, nodes ...*view.Node) error {
	el, err := d.mustElement(id)
	if err != nil {
		return err
	}
	for c := el.FirstChild; c != nil; c = el.FirstChild {
		el.RemoveChild(c)
	}
	for _, v := range nodes {
		for _, n := range Materialize(v) {
			el.AppendChild(n)
		}
	}
	return nil
}

// SetAttr sets or overwrites an attribute.
func (d *Document) SetAttr(id, key, val string) error {
	el, err := d.mustElement(id)
	if err != nil {
		return err
	}
	setAttr(el, key, val)
	return nil
}

// RemoveAttr drops an attribute if present.
func (d *Document) RemoveAttr(id, key string) error {
	el, err := d.mustElement(id)
	if err != nil {
		return err
	}
	removeAttr(el, key)
	return nil
}

// SetClass adds or removes one class.
func (d *Document) SetClass(id, class string, on bool) error {
	el, err := d.mustElement(id)
	if err != nil {
		return err
	}
	classes := strings.Fields(attr(el, "class"))
	has := slices.Contains(classes, class)
	switch {
	case on && !has:
		classes = append(classes, class)
	case !on && has:
		classes = slices.DeleteFunc(classes, func(c string) bool { return c == class })
	default:
		return nil
	}
	setAttr(el, "class", strings.Join(classes, " "))
	return nil
}

// HasClass reports whether the element lists class. Missing elements report
// false.
func (d *Document) HasClass(id, class string) bool {
	el := d.ElementByID(id)
	if el == nil {
		return false
	}
	return slices.Contains(strings.Fields(attr(el, "class")), class)
}

// SetScrollLocked toggles background scrolling on <body>. Fragments, which
// have no body, are left alone.
func (d *Document) SetScrollLocked(locked bool) {
	body := d.body()
	if body == nil {
		return
	}
	if locked {
		setAttr(body, "style", scrollLockStyle)
		return
	}
	removeAttr(body, "style")
}

// ScrollLocked reports whether <body> currently suppresses scrolling.
func (d *Document) ScrollLocked() bool {
	body := d.body()
	return body != nil && attr(body, "style") == scrollLockStyle
}

func (d *Document) body() *html.Node {
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if b := walk(c); b != nil {
				return b
			}
		}
		return nil
	}
	return walk(d.root)
}

// Render writes the whole document.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderElement writes one element, itself included.
func (d *Document) RenderElement(w io.Writer, id string) error {
	el, err := d.mustElement(id)
	if err != nil {
		return err
	}
	return html.Render(w, el)
}

// RenderChildren writes the content of one element.
func (d *Document) RenderChildren(w io.Writer, id string) error {
	el, err := d.mustElement(id)
	if err != nil {
		return err
	}
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// String renders the document, for logging and tests.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool { return a.Key == key })
}
