package htmltree

import (
	"github.com/kauri-engine/kauri/htmldom"
	"golang.org/x/net/html/atom"
)

// scope selects one of the "has an element in X scope" tests from
// section 12.2.4.2, grounded on chtml/html/parse.go's popUntil/
// indexOfElementInScope pair.
type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	tableRowScope
	tableBodyScope
	selectScope
)

var defaultScopeStopTags = map[htmldom.Namespace][]atom.Atom{
	htmldom.HTMLNamespace:   {atom.Applet, atom.Caption, atom.Html, atom.Table, atom.Td, atom.Th, atom.Marquee, atom.Object, atom.Template},
	htmldom.MathMLNamespace: {atom.AnnotationXml, atom.Mi, atom.Mn, atom.Mo, atom.Ms, atom.Mtext},
	htmldom.SVGNamespace:    {atom.Desc, atom.Foreignobject, atom.Title},
}

// popUntil pops the open-elements stack down to and including the
// highest element whose tag is in matchTags, provided no higher element
// is one of the scope's stop tags. It reports whether such an element
// was found.
func (p *parser) popUntil(s scope, matchTags ...atom.Atom) bool {
	if i := p.indexOfElementInScope(s, matchTags...); i != -1 {
		p.oe = p.oe[:i]
		p.oeGen++
		return true
	}
	return false
}

func (p *parser) indexOfElementInScope(s scope, matchTags ...atom.Atom) int {
	for i := len(p.oe) - 1; i >= 0; i-- {
		tagAtom := p.oe[i].DataAtom
		if p.oe[i].Namespace == "" {
			for _, t := range matchTags {
				if t == tagAtom {
					return i
				}
			}
			switch s {
			case defaultScope:
			case listItemScope:
				if tagAtom == atom.Ol || tagAtom == atom.Ul {
					return -1
				}
			case buttonScope:
				if tagAtom == atom.Button {
					return -1
				}
			case tableScope:
				if tagAtom == atom.Html || tagAtom == atom.Table || tagAtom == atom.Template {
					return -1
				}
			case tableRowScope:
				if tagAtom == atom.Html || tagAtom == atom.Table || tagAtom == atom.Template {
					return -1
				}
			case tableBodyScope:
				if tagAtom == atom.Html || tagAtom == atom.Table || tagAtom == atom.Template {
					return -1
				}
			case selectScope:
				if tagAtom != atom.Optgroup && tagAtom != atom.Option {
					return -1
				}
			}
		}
		switch s {
		case defaultScope, listItemScope, buttonScope:
			for _, t := range defaultScopeStopTags[p.oe[i].Namespace] {
				if t == tagAtom {
					return -1
				}
			}
		}
	}
	return -1
}

func (p *parser) elementInScope(s scope, matchTags ...atom.Atom) bool {
	return p.indexOfElementInScope(s, matchTags...) != -1
}

// clearStackToContext pops the open-elements stack until the nearest
// table/tbody-family/tr/html/template boundary for s is the current
// node (the boundary itself stays on the stack), per the
// "clear the stack back to a table context" family of steps in section
// 12.2.4.2.
func (p *parser) clearStackToContext(s scope) {
	for i := len(p.oe) - 1; i >= 0; i-- {
		tagAtom := p.oe[i].DataAtom
		switch s {
		case tableScope:
			if tagAtom == atom.Html || tagAtom == atom.Table || tagAtom == atom.Template {
				p.oe = p.oe[:i+1]
				p.oeGen++
				return
			}
		case tableRowScope:
			if tagAtom == atom.Html || tagAtom == atom.Tr || tagAtom == atom.Template {
				p.oe = p.oe[:i+1]
				p.oeGen++
				return
			}
		case tableBodyScope:
			if tagAtom == atom.Html || tagAtom == atom.Tbody || tagAtom == atom.Tfoot || tagAtom == atom.Thead || tagAtom == atom.Template {
				p.oe = p.oe[:i+1]
				p.oeGen++
				return
			}
		}
	}
}

// closePElementInButtonScope implements the "close a p element" steps
// used throughout InBody whenever a new block element is about to open.
func (p *parser) closePElementInButtonScope() {
	if p.elementInScope(buttonScope, atom.P) {
		p.generateImpliedEndTags("p")
		p.popUntil(buttonScope, atom.P)
	}
}
