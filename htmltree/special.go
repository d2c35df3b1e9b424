package htmltree

import (
	"github.com/kauri-engine/kauri/htmldom"
	"golang.org/x/net/html/atom"
)

// isSpecialElement reports whether n's tag is in the "special" category of
// section 12.2.4.2, used by generateImpliedEndTags callers, li/dd/dt
// handling and the adoption agency's furthest-block search.
func isSpecialElement(n *htmldom.Node) bool {
	switch n.Namespace {
	case htmldom.MathMLNamespace:
		switch n.DataAtom {
		case atom.Mi, atom.Mo, atom.Mn, atom.Ms, atom.Mtext, atom.AnnotationXml:
			return true
		}
		return false
	case htmldom.SVGNamespace:
		switch n.DataAtom {
		case atom.Foreignobject, atom.Desc, atom.Title:
			return true
		}
		return false
	case htmldom.HTMLNamespace:
		switch n.DataAtom {
		case atom.Address, atom.Applet, atom.Area, atom.Article, atom.Aside, atom.Base,
			atom.Basefont, atom.Bgsound, atom.Blockquote, atom.Body, atom.Br, atom.Button,
			atom.Caption, atom.Center, atom.Col, atom.Colgroup, atom.Dd, atom.Details,
			atom.Dir, atom.Div, atom.Dl, atom.Dt, atom.Embed, atom.Fieldset, atom.Figcaption,
			atom.Figure, atom.Footer, atom.Form, atom.Frame, atom.Frameset, atom.H1, atom.H2,
			atom.H3, atom.H4, atom.H5, atom.H6, atom.Head, atom.Header, atom.Hgroup, atom.Hr,
			atom.Html, atom.Iframe, atom.Img, atom.Input, atom.Li, atom.Link, atom.Listing,
			atom.Main, atom.Marquee, atom.Menu, atom.Meta, atom.Nav, atom.Noembed,
			atom.Noframes, atom.Noscript, atom.Object, atom.Ol, atom.P, atom.Param,
			atom.Plaintext, atom.Pre, atom.Script, atom.Section, atom.Select, atom.Source,
			atom.Style, atom.Summary, atom.Table, atom.Tbody, atom.Td, atom.Template,
			atom.Textarea, atom.Tfoot, atom.Th, atom.Thead, atom.Title, atom.Tr, atom.Track,
			atom.Ul, atom.Wbr, atom.Xmp:
			return true
		}
	}
	return false
}
