// Package htmldom implements the DOM-shaped output of the HTML tree
// constructor (package htmltree): documents, elements, text, comments and
// doctypes, plus HTML5 serialization. It is grounded on
// original_source/dom/document.h's node kinds and on
// chtml/html/node.go's nodeStack/reparentChildren idiom, regenerated
// against kauri's own Node type rather than golang.org/x/net/html.Node.
package htmldom

import "golang.org/x/net/html/atom"

// NodeType discriminates the Node sum type.
type NodeType int

const (
	DocumentNode NodeType = iota
	DoctypeNode
	ElementNode
	TextNode
	CommentNode
)

// Attribute is one element attribute. Namespace is empty for ordinary HTML
// attributes; it is populated for the small set of "xlink:"/"xml:"
// attributes foreign content can carry.
type Attribute struct {
	Namespace string
	Name      string
	Value     string
}

// Namespace identifies which of the three foreign-content namespaces an
// element belongs to, per spec.md §4.5's adjusted-current-node rules.
type Namespace string

const (
	HTMLNamespace Namespace = ""
	SVGNamespace  Namespace = "http://www.w3.org/2000/svg"
	MathMLNamespace Namespace = "http://www.w3.org/1998/Math/MathML"
)

// Node is one node of the constructed tree. As with csstok.Token and
// htmltok.Token, Type discriminates which fields are meaningful; Go has no
// tagged unions, so this is the explicit-discriminant shape spec.md §9
// asks for, not a visitor-based interface hierarchy.
type Node struct {
	Type      NodeType
	Namespace Namespace

	// Element.
	DataAtom   atom.Atom
	Data       string // tag name (Element), or text/comment payload
	Attributes []Attribute

	// Doctype.
	DoctypeName     string
	DoctypePublicID string
	DoctypeSystemID string

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// TagName returns the element's local tag name, preferring the resolved
// atom when one exists.
func (n *Node) TagName() string {
	if n.DataAtom != 0 {
		return n.DataAtom.String()
	}
	return n.Data
}

// Attr returns the first-writer-wins value of the named attribute and
// whether it was present, matching the tokenizer's own dedup rule so a
// reparsed attribute list never silently changes meaning downstream.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AppendChild appends c as n's last child, detaching c from any previous
// parent first.
func (n *Node) AppendChild(c *Node) {
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	c.Parent = n
	if n.LastChild != nil {
		n.LastChild.NextSibling = c
		c.PrevSibling = n.LastChild
	} else {
		n.FirstChild = c
	}
	n.LastChild = c
}

// InsertBefore inserts c as a child of n immediately before old. If old is
// nil, c is appended.
func (n *Node) InsertBefore(c, old *Node) {
	if old == nil {
		n.AppendChild(c)
		return
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	c.Parent = n
	c.NextSibling = old
	c.PrevSibling = old.PrevSibling
	if old.PrevSibling != nil {
		old.PrevSibling.NextSibling = c
	} else {
		n.FirstChild = c
	}
	old.PrevSibling = c
}

// RemoveChild detaches c from n. It panics if c is not currently a child of
// n, matching golang.org/x/net/html.Node's contract.
func (n *Node) RemoveChild(c *Node) {
	if c.Parent != n {
		panic("htmldom: RemoveChild called for non-child node")
	}
	if n.FirstChild == c {
		n.FirstChild = c.NextSibling
	}
	if c.NextSibling != nil {
		c.NextSibling.PrevSibling = c.PrevSibling
	}
	if n.LastChild == c {
		n.LastChild = c.PrevSibling
	}
	if c.PrevSibling != nil {
		c.PrevSibling.NextSibling = c.NextSibling
	}
	c.Parent = nil
	c.PrevSibling = nil
	c.NextSibling = nil
}

// ReparentChildren moves all of src's children to become dst's children, in
// order, per chtml/html/node.go's reparentChildren helper (used by the
// tree constructor's "act as if an end tag" adoption-agency fixups).
func ReparentChildren(dst, src *Node) {
	for {
		child := src.FirstChild
		if child == nil {
			break
		}
		src.RemoveChild(child)
		dst.AppendChild(child)
	}
}

// Document is the root of a parsed tree.
type Document struct {
	Root        *Node // the single <html> element
	QuirksMode  QuirksMode
	Doctype     *Node
}

// QuirksMode is the tree constructor's quirks-mode classification, per
// spec.md §4.5's doctype-driven detection rules.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)
