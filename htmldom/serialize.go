package htmldom

import (
	"fmt"
	"io"
	"strings"
)

// voidElements is the set of HTML elements that never have an end tag,
// per the HTML5 serialization algorithm
// (https://html.spec.whatwg.org/multipage/parsing.html#serialising-html-fragments).
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements never have their text content escaped on serialization.
var rawTextElements = map[string]bool{
	"script": true, "style": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true, "noscript": true,
}

// Serialize writes n and its descendants to w using the HTML5 fragment
// serialization algorithm. This is the "DOMAIN STACK ADDITION: fragment
// serialization" component: it gives the tree constructor's output a
// round-trip story without pulling in a layout/rendering engine.
func Serialize(w io.Writer, n *Node) error {
	s := &serializer{w: w}
	s.node(n)
	return s.err
}

type serializer struct {
	w   io.Writer
	err error
}

func (s *serializer) writeString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

func (s *serializer) node(n *Node) {
	if s.err != nil || n == nil {
		return
	}
	switch n.Type {
	case DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			s.node(c)
		}
	case DoctypeNode:
		s.writeString("<!DOCTYPE ")
		s.writeString(n.DoctypeName)
		s.writeString(">")
	case ElementNode:
		s.element(n)
	case TextNode:
		if n.Parent != nil && rawTextElements[n.Parent.TagName()] {
			s.writeString(n.Data)
		} else {
			s.writeString(escapeText(n.Data))
		}
	case CommentNode:
		s.writeString("<!--")
		s.writeString(n.Data)
		s.writeString("-->")
	}
}

func (s *serializer) element(n *Node) {
	name := n.TagName()
	s.writeString("<")
	s.writeString(name)
	for _, a := range n.Attributes {
		s.writeString(" ")
		if a.Namespace != "" {
			s.writeString(a.Namespace)
			s.writeString(":")
		}
		s.writeString(a.Name)
		s.writeString(`="`)
		s.writeString(escapeAttrValue(a.Value))
		s.writeString(`"`)
	}
	s.writeString(">")
	if voidElements[name] {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.node(c)
	}
	s.writeString("</")
	s.writeString(name)
	s.writeString(">")
}

// textEscaper implements the text-node escaping rules of the HTML5
// serialization algorithm: '&', U+00A0 NO-BREAK SPACE, '<' and '>'.
var textEscaper = strings.NewReplacer("&", "&amp;", " ", "&nbsp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string { return textEscaper.Replace(s) }

// attrEscaper implements the attribute-value escaping rules: '&',
// U+00A0 NO-BREAK SPACE and the double quote.
var attrEscaper = strings.NewReplacer("&", "&amp;", " ", "&nbsp;", `"`, "&quot;")

func escapeAttrValue(s string) string { return attrEscaper.Replace(s) }

// String renders n (and its descendants) as HTML text, panicking only if
// the in-memory strings.Builder write itself fails, which it never does.
func String(n *Node) string {
	var b strings.Builder
	if err := Serialize(&b, n); err != nil {
		panic(fmt.Sprintf("htmldom: in-memory serialize failed: %v", err))
	}
	return b.String()
}
