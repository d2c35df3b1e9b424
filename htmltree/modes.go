package htmltree

import (
	"strings"

	"github.com/kauri-engine/kauri/htmldom"
	"github.com/kauri-engine/kauri/htmltok"
	"golang.org/x/net/html/atom"
)

func isAllWhitespace(s string) bool {
	return strings.TrimLeft(s, " \t\r\n\f") == ""
}

func textOf(tok htmltok.Token) string {
	if tok.Kind != htmltok.CharacterToken {
		return ""
	}
	return string(rune(tok.CodePoint))
}

// setOriginalIM records the mode to return to once textIM finishes, per
// section 12.2.4.1 "using the rules for".
func (p *parser) setOriginalIM() { p.originalIM = p.im }

// ---- 12.2.6.4.1 The "initial" insertion mode -------------------------------

func initialIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			return true
		}
	case htmltok.CommentToken:
		p.insertCommentInto(p.doc, tok.Data)
		return true
	case htmltok.DoctypeToken:
		p.quirks = quirksMode(tok)
		dt := &htmldom.Node{
			Type:            htmldom.DoctypeNode,
			DoctypeName:     tok.Name,
			DoctypePublicID: tok.PublicID,
			DoctypeSystemID: tok.SystemID,
		}
		p.doc.AppendChild(dt)
		p.doctype = dt
		p.im = beforeHTMLIM
		return true
	}
	p.im = beforeHTMLIM
	return false
}

// ---- 12.2.6.4.2 "before html" ----------------------------------------------

func beforeHTMLIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.DoctypeToken:
		return true
	case htmltok.CommentToken:
		p.insertCommentInto(p.doc, tok.Data)
		return true
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			return true
		}
	case htmltok.StartTagToken:
		if tok.Name == "html" {
			p.addHTMLRoot(tok)
			p.im = beforeHeadIM
			return true
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "head", "body", "html", "br":
		default:
			return true
		}
	}
	p.addHTMLRoot(htmltok.Token{Kind: htmltok.StartTagToken, Name: "html"})
	p.im = beforeHeadIM
	return false
}

func (p *parser) addHTMLRoot(tok htmltok.Token) {
	n := &htmldom.Node{
		Type:       htmldom.ElementNode,
		DataAtom:   atom.Html,
		Data:       "html",
		Attributes: convertAttrs(tok.Attributes),
	}
	p.doc.AppendChild(n)
	p.html = n
	p.oe = append(p.oe, n)
	p.oeGen++
}

// ---- 12.2.6.4.3 "before head" -----------------------------------------------

func beforeHeadIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			return true
		}
	case htmltok.CommentToken:
		p.insertComment(tok.Data)
		return true
	case htmltok.DoctypeToken:
		return true
	case htmltok.StartTagToken:
		switch tok.Name {
		case "html":
			return inBodyIM(p, tok)
		case "head":
			n := p.addElement(tok)
			p.im = inHeadIM
			_ = n
			return true
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "head", "body", "html", "br":
		default:
			return true
		}
	}
	p.addElement(htmltok.Token{Kind: htmltok.StartTagToken, Name: "head"})
	p.im = inHeadIM
	return false
}

// ---- 12.2.6.4.4 "in head" --------------------------------------------------

func inHeadIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			p.addText(textOf(tok))
			return true
		}
	case htmltok.CommentToken:
		p.insertComment(tok.Data)
		return true
	case htmltok.DoctypeToken:
		return true
	case htmltok.StartTagToken:
		switch tok.Name {
		case "html":
			return inBodyIM(p, tok)
		case "base", "basefont", "bgsound", "link", "meta":
			p.addElement(tok)
			p.popOE()
			p.acknowledgeSelfClosingTag()
			return true
		case "noscript":
			if p.scriptingEnabled {
				p.addElement(tok)
				p.setOriginalIM()
				p.im = textIM
				p.tok.SetLastStartTagName("noscript")
				p.tok.SetState(htmltok.RAWTEXTState)
				return true
			}
			p.addElement(tok)
			p.im = inHeadNoscriptIM
			return true
		case "script", "title":
			p.addElement(tok)
			p.setOriginalIM()
			p.im = textIM
			if tok.Name == "script" {
				p.tok.SetLastStartTagName("script")
				p.tok.SetState(htmltok.ScriptDataState)
			} else {
				p.tok.SetLastStartTagName("title")
				p.tok.SetState(htmltok.RCDATAState)
			}
			return true
		case "head":
			return true
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "head":
			p.popOE()
			p.im = afterHeadIM
			return true
		case "body", "html", "br":
		default:
			return true
		}
	}
	p.popOE()
	p.im = afterHeadIM
	return false
}

// ---- 12.2.6.4.5 "in head noscript" -----------------------------------------

func inHeadNoscriptIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.DoctypeToken:
		return true
	case htmltok.StartTagToken:
		switch tok.Name {
		case "html":
			return inBodyIM(p, tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return inHeadIM(p, tok)
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "noscript":
			p.popOE()
			p.im = inHeadIM
			return true
		case "br":
		default:
			return true
		}
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			return inHeadIM(p, tok)
		}
	case htmltok.CommentToken:
		return inHeadIM(p, tok)
	}
	p.popOE()
	p.im = inHeadIM
	return false
}

// ---- 12.2.6.4.6 "after head" -----------------------------------------------

func afterHeadIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			p.addText(textOf(tok))
			return true
		}
	case htmltok.CommentToken:
		p.insertComment(tok.Data)
		return true
	case htmltok.DoctypeToken:
		return true
	case htmltok.StartTagToken:
		switch tok.Name {
		case "html":
			return inBodyIM(p, tok)
		case "body":
			p.addElement(tok)
			p.framesetOK = false
			p.im = inBodyIM
			return true
		case "frameset":
			p.addElement(tok)
			p.im = inFramesetIM
			return true
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			p.oe = append(p.oe, p.html)
			p.oeGen++
			defer func() { p.oe.remove(p.html); p.oeGen++ }()
			return inHeadIM(p, tok)
		case "head":
			return true
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "body", "html", "br":
		case "template":
			return true
		default:
			return true
		}
	}
	p.addElement(htmltok.Token{Kind: htmltok.StartTagToken, Name: "body"})
	p.im = inBodyIM
	return false
}

// ---- 12.2.6.4.7 "in body" ---------------------------------------------------

var headingTags = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

var formattingTags = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true, "font": true,
	"i": true, "s": true, "small": true, "strike": true, "strong": true,
	"tt": true, "u": true,
}

func inBodyIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.DoctypeToken:
		return true
	case htmltok.CharacterToken:
		d := textOf(tok)
		if d == "\x00" {
			return true
		}
		p.reconstructActiveFormattingElements()
		p.addText(d)
		if !isAllWhitespace(d) {
			p.framesetOK = false
		}
		return true
	case htmltok.CommentToken:
		p.insertComment(tok.Data)
		return true
	case htmltok.StartTagToken:
		return inBodyStartTag(p, tok)
	case htmltok.EndTagToken:
		return inBodyEndTag(p, tok)
	}
	return true
}

func inBodyStartTag(p *parser, tok htmltok.Token) bool {
	switch tok.Name {
	case "html":
		return true
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
		return inHeadIM(p, tok)
	case "body":
		return true
	case "frameset":
		return true
	case "address", "article", "aside", "blockquote", "center", "details", "dialog",
		"dir", "div", "dl", "fieldset", "figcaption", "figure", "footer", "header",
		"hgroup", "main", "menu", "nav", "ol", "p", "section", "summary", "ul":
		p.closePElementInButtonScope()
		p.addElement(tok)
		return true
	case "h1", "h2", "h3", "h4", "h5", "h6":
		p.closePElementInButtonScope()
		if headingTags[p.top().Data] {
			p.popOE()
		}
		p.addElement(tok)
		return true
	case "pre", "listing":
		p.closePElementInButtonScope()
		p.addElement(tok)
		p.framesetOK = false
		return true
	case "form":
		if p.form != nil && !p.oe.contains(atom.Template) {
			return true
		}
		p.closePElementInButtonScope()
		n := p.addElement(tok)
		if !p.oe.contains(atom.Template) {
			p.form = n
		}
		return true
	case "li":
		p.closeListItem(atom.Li)
		p.closePElementInButtonScope()
		p.addElement(tok)
		return true
	case "dd", "dt":
		p.closeListItem(p.tagAtom(tok.Name))
		p.closePElementInButtonScope()
		p.addElement(tok)
		return true
	case "plaintext":
		p.closePElementInButtonScope()
		p.addElement(tok)
		p.tok.SetState(htmltok.PLAINTEXTState)
		return true
	case "button":
		p.popUntil(defaultScope, atom.Button)
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		p.framesetOK = false
		return true
	case "a":
		for i := len(p.afe) - 1; i >= 0 && !p.afe[i].marker; i-- {
			if n := p.afe[i].node; n.DataAtom == atom.A {
				p.inBodyEndTagFormatting(atom.A, "a")
				p.oe.remove(n)
				p.oeGen++
				p.afe.remove(n)
				break
			}
		}
		p.reconstructActiveFormattingElements()
		p.addFormattingElement(tok)
		return true
	case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
		p.reconstructActiveFormattingElements()
		p.addFormattingElement(tok)
		return true
	case "nobr":
		p.reconstructActiveFormattingElements()
		if p.elementInScope(defaultScope, atom.Nobr) {
			p.inBodyEndTagFormatting(atom.Nobr, "nobr")
			p.reconstructActiveFormattingElements()
		}
		p.addFormattingElement(tok)
		return true
	case "applet", "marquee", "object":
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		p.afe.pushMarker()
		p.framesetOK = false
		return true
	case "table":
		p.closePElementInButtonScope()
		p.addElement(tok)
		p.framesetOK = false
		p.im = inTableIM
		return true
	case "area", "br", "embed", "img", "keygen", "wbr":
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		p.popOE()
		p.acknowledgeSelfClosingTag()
		p.framesetOK = false
		return true
	case "input":
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		p.popOE()
		p.acknowledgeSelfClosingTag()
		if v, ok := findAttr(tok, "type"); !ok || !strings.EqualFold(v, "hidden") {
			p.framesetOK = false
		}
		return true
	case "param", "source", "track":
		p.addElement(tok)
		p.popOE()
		p.acknowledgeSelfClosingTag()
		return true
	case "hr":
		p.closePElementInButtonScope()
		p.addElement(tok)
		p.popOE()
		p.acknowledgeSelfClosingTag()
		p.framesetOK = false
		return true
	case "textarea":
		p.addElement(tok)
		p.framesetOK = false
		p.setOriginalIM()
		p.im = textIM
		p.tok.SetLastStartTagName("textarea")
		p.tok.SetState(htmltok.RCDATAState)
		return true
	case "xmp":
		p.closePElementInButtonScope()
		p.reconstructActiveFormattingElements()
		p.framesetOK = false
		p.addElement(tok)
		p.setOriginalIM()
		p.im = textIM
		p.tok.SetLastStartTagName("xmp")
		p.tok.SetState(htmltok.RAWTEXTState)
		return true
	case "iframe":
		p.framesetOK = false
		p.addElement(tok)
		p.setOriginalIM()
		p.im = textIM
		p.tok.SetLastStartTagName("iframe")
		p.tok.SetState(htmltok.RAWTEXTState)
		return true
	case "noembed":
		p.addElement(tok)
		p.setOriginalIM()
		p.im = textIM
		p.tok.SetLastStartTagName("noembed")
		p.tok.SetState(htmltok.RAWTEXTState)
		return true
	case "noscript":
		if p.scriptingEnabled {
			p.addElement(tok)
			p.setOriginalIM()
			p.im = textIM
			p.tok.SetLastStartTagName("noscript")
			p.tok.SetState(htmltok.RAWTEXTState)
			return true
		}
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		return true
	case "select":
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		p.framesetOK = false
		return true
	case "optgroup", "option":
		if p.top().DataAtom == atom.Option {
			p.popOE()
		}
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		return true
	case "rb", "rtc":
		if p.elementInScope(defaultScope, atom.Ruby) {
			p.generateImpliedEndTags()
		}
		p.addElement(tok)
		return true
	case "rp", "rt":
		if p.elementInScope(defaultScope, atom.Ruby) {
			p.generateImpliedEndTags("rtc")
		}
		p.addElement(tok)
		return true
	case "math":
		p.reconstructActiveFormattingElements()
		n := p.addElement(tok)
		n.Namespace = htmldom.MathMLNamespace
		if tok.SelfClosing {
			p.popOE()
			p.acknowledgeSelfClosingTag()
		}
		return true
	case "svg":
		p.reconstructActiveFormattingElements()
		n := p.addElement(tok)
		n.Namespace = htmldom.SVGNamespace
		if tok.SelfClosing {
			p.popOE()
			p.acknowledgeSelfClosingTag()
		}
		return true
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th", "thead", "tr":
		// Parse error; ignored (these only make sense in table/frameset
		// contexts already handled by their own insertion modes).
		return true
	default:
		p.reconstructActiveFormattingElements()
		p.addElement(tok)
		return true
	}
}

func (p *parser) tagAtom(name string) atom.Atom { return atom.Lookup([]byte(name)) }

func findAttr(tok htmltok.Token, name string) (string, bool) {
	for _, a := range tok.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// closeListItem implements the li/dd/dt "special element" scan from
// section 12.2.6.4.7.
func (p *parser) closeListItem(target atom.Atom) {
	for i := len(p.oe) - 1; i >= 0; i-- {
		node := p.oe[i]
		switch node.DataAtom {
		case target:
			p.oe = p.oe[:i]
			p.oeGen++
		case atom.Address, atom.Div, atom.P:
			continue
		default:
			if !isSpecialElement(node) {
				continue
			}
		}
		break
	}
}

func inBodyEndTag(p *parser, tok htmltok.Token) bool {
	switch tok.Name {
	case "body":
		if p.elementInScope(defaultScope, atom.Body) {
			p.im = afterBodyIM
		}
		return true
	case "html":
		if p.elementInScope(defaultScope, atom.Body) {
			p.im = afterBodyIM
			return false
		}
		return true
	case "address", "article", "aside", "blockquote", "button", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure", "footer",
		"header", "hgroup", "listing", "main", "menu", "nav", "ol", "pre", "section",
		"summary", "ul":
		p.popUntil(defaultScope, p.tagAtom(tok.Name))
		return true
	case "form":
		if p.oe.contains(atom.Template) {
			i := p.indexOfElementInScope(defaultScope, atom.Form)
			if i == -1 {
				return true
			}
			p.generateImpliedEndTags()
			if p.oe[i].DataAtom != atom.Form {
				return true
			}
			p.popUntil(defaultScope, atom.Form)
		} else {
			node := p.form
			p.form = nil
			i := p.indexOfElementInScope(defaultScope, atom.Form)
			if node == nil || i == -1 || p.oe[i] != node {
				return true
			}
			p.generateImpliedEndTags()
			p.oe.remove(node)
			p.oeGen++
		}
		return true
	case "p":
		if !p.elementInScope(buttonScope, atom.P) {
			p.addElement(htmltok.Token{Kind: htmltok.StartTagToken, Name: "p"})
		}
		p.popUntil(buttonScope, atom.P)
		return true
	case "li":
		p.popUntil(listItemScope, atom.Li)
		return true
	case "dd", "dt":
		p.popUntil(defaultScope, p.tagAtom(tok.Name))
		return true
	case "h1", "h2", "h3", "h4", "h5", "h6":
		p.popUntil(defaultScope, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6)
		return true
	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike", "strong", "tt", "u":
		p.inBodyEndTagFormatting(p.tagAtom(tok.Name), tok.Name)
		return true
	case "applet", "marquee", "object":
		if p.popUntil(defaultScope, p.tagAtom(tok.Name)) {
			p.clearActiveFormattingElements()
		}
		return true
	case "br":
		p.reconstructActiveFormattingElements()
		p.addElement(htmltok.Token{Kind: htmltok.StartTagToken, Name: "br"})
		p.popOE()
		p.framesetOK = false
		return true
	default:
		inBodyEndTagOther(p, p.tagAtom(tok.Name), tok.Name)
		return true
	}
}

func inBodyEndTagOther(p *parser, tagAtom atom.Atom, tagName string) {
	for i := len(p.oe) - 1; i >= 0; i-- {
		if p.oe[i].DataAtom == tagAtom && (tagAtom != 0 || p.oe[i].Data == tagName) {
			p.oe = p.oe[:i]
			p.oeGen++
			break
		}
		if isSpecialElement(p.oe[i]) {
			break
		}
	}
}

// inBodyEndTagFormatting is the adoption agency algorithm (section
// 12.2.4.4), directly adapted from chtml/html/parse.go's
// inBodyEndTagFormatting against kauri's afeList/nodeStack.
func (p *parser) inBodyEndTagFormatting(tagAtom atom.Atom, tagName string) {
	if current := p.top(); current.Data == tagName && p.afeIndexOf(current) == -1 {
		p.popOE()
		return
	}

	for i := 0; i < 8; i++ {
		var formattingElement *htmldom.Node
		for j := len(p.afe) - 1; j >= 0; j-- {
			if p.afe[j].marker {
				break
			}
			if p.afe[j].node.DataAtom == tagAtom {
				formattingElement = p.afe[j].node
				break
			}
		}
		if formattingElement == nil {
			inBodyEndTagOther(p, tagAtom, tagName)
			return
		}

		feIndex := p.oe.index(formattingElement)
		if feIndex == -1 {
			p.afe.remove(formattingElement)
			return
		}
		if !p.elementInScope(defaultScope, tagAtom) {
			return
		}

		var furthestBlock *htmldom.Node
		for _, e := range p.oe[feIndex:] {
			if isSpecialElement(e) {
				furthestBlock = e
				break
			}
		}
		if furthestBlock == nil {
			e := p.popOE()
			for e != formattingElement {
				e = p.popOE()
			}
			p.afe.remove(e)
			return
		}

		commonAncestor := p.doc
		if feIndex > 0 {
			commonAncestor = p.oe[feIndex-1]
		}
		bookmark := p.afeIndexOf(formattingElement)

		lastNode := furthestBlock
		node := furthestBlock
		x := p.oe.index(node)
		j := 0
		for {
			j++
			x--
			node = p.oe[x]
			if node == formattingElement {
				break
			}
			if ni := p.afeIndexOf(node); j > 3 && ni > -1 {
				p.afe.remove(node)
				if ni <= bookmark {
					bookmark--
				}
				continue
			}
			if p.afeIndexOf(node) == -1 {
				p.oe.remove(node)
				p.oeGen++
				continue
			}
			clone := cloneNode(node)
			p.afe[p.afeIndexOf(node)].node = clone
			p.oe[p.oe.index(node)] = clone
			node = clone
			if lastNode == furthestBlock {
				bookmark = p.afeIndexOf(node) + 1
			}
			if lastNode.Parent != nil {
				lastNode.Parent.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		if lastNode.Parent != nil {
			lastNode.Parent.RemoveChild(lastNode)
		}
		switch commonAncestor.DataAtom {
		case atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
			p.fosterParent(lastNode)
		default:
			commonAncestor.AppendChild(lastNode)
		}

		clone := cloneNode(formattingElement)
		htmldom.ReparentChildren(clone, furthestBlock)
		furthestBlock.AppendChild(clone)

		if oldLoc := p.afeIndexOf(formattingElement); oldLoc != -1 && oldLoc < bookmark {
			bookmark--
		}
		p.afe.remove(formattingElement)
		p.afe.insert(bookmark, clone)

		p.oe.remove(formattingElement)
		p.oeGen++
		p.oe.insert(p.oe.index(furthestBlock)+1, clone)
		p.oeGen++
	}
}

func (p *parser) afeIndexOf(n *htmldom.Node) int {
	for i, e := range p.afe {
		if e.node == n {
			return i
		}
	}
	return -1
}

func (l *afeList) insert(i int, n *htmldom.Node) {
	*l = append(*l, afeEntry{})
	copy((*l)[i+1:], (*l)[i:])
	(*l)[i] = afeEntry{node: n}
}

// ---- 12.2.6.4.8 "text" -----------------------------------------------------

func textIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CharacterToken:
		p.addText(textOf(tok))
		return true
	case htmltok.EndOfFileToken:
		p.popOE()
	case htmltok.EndTagToken:
		p.popOE()
	}
	p.im = p.originalIM
	p.originalIM = nil
	return tok.Kind != htmltok.EndOfFileToken
}

// ---- 12.2.6.4.9-17 table family (minimal but functional) -------------------

func inTableIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CharacterToken:
		switch p.top().DataAtom {
		case atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
			p.originalIM = p.im
			p.im = inTableTextIM
			return false
		}
	case htmltok.CommentToken:
		p.insertComment(tok.Data)
		return true
	case htmltok.DoctypeToken:
		return true
	case htmltok.StartTagToken:
		switch tok.Name {
		case "caption", "colgroup", "col":
			return inBodyStartTag(p, tok)
		case "tbody", "tfoot", "thead":
			p.clearStackToContext(tableScope)
			p.addElement(tok)
			p.im = inTableBodyIM
			return true
		case "td", "th", "tr":
			p.addElement(htmltok.Token{Kind: htmltok.StartTagToken, Name: "tbody"})
			p.im = inTableBodyIM
			return false
		case "table":
			if p.popUntil(tableScope, atom.Table) {
				p.im = inTableIM
				return false
			}
			return true
		case "style", "script", "template":
			return inHeadIM(p, tok)
		case "input":
			if v, ok := findAttr(tok, "type"); ok && strings.EqualFold(v, "hidden") {
				p.addElement(tok)
				p.popOE()
				return true
			}
		case "form":
			if p.form == nil {
				n := p.addElement(tok)
				p.form = n
				p.popOE()
			}
			return true
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "table":
			p.popUntil(tableScope, atom.Table)
			p.resetInsertionModeFromStack()
			return true
		case "body", "caption", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			return true
		case "template":
			return inHeadIM(p, tok)
		}
	}
	p.fosterParenting = true
	defer func() { p.fosterParenting = false }()
	return inBodyIM(p, tok)
}

func (p *parser) resetInsertionModeFromStack() {
	switch p.top().DataAtom {
	case atom.Table:
		p.im = inTableIM
	case atom.Tbody, atom.Thead, atom.Tfoot:
		p.im = inTableBodyIM
	case atom.Tr:
		p.im = inRowIM
	case atom.Td, atom.Th:
		p.im = inCellIM
	default:
		p.im = inBodyIM
	}
}

func inTableTextIM(p *parser, tok htmltok.Token) bool {
	if tok.Kind == htmltok.CharacterToken {
		if textOf(tok) == "\x00" {
			return true
		}
		p.pendingTableText = append(p.pendingTableText, pendingText{text: textOf(tok)})
		return true
	}
	var sb strings.Builder
	for _, t := range p.pendingTableText {
		sb.WriteString(t.text)
	}
	p.pendingTableText = nil
	text := sb.String()
	if !isAllWhitespace(text) {
		p.fosterParenting = true
		p.reconstructActiveFormattingElements()
		p.addText(text)
		p.framesetOK = false
		p.fosterParenting = false
	} else if text != "" {
		p.addText(text)
	}
	p.im = p.originalIM
	return false
}

func inTableBodyIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.StartTagToken:
		switch tok.Name {
		case "tr":
			p.clearStackToContext(tableBodyScope)
			p.addElement(tok)
			p.im = inRowIM
			return true
		case "th", "td":
			p.clearStackToContext(tableBodyScope)
			p.addElement(htmltok.Token{Kind: htmltok.StartTagToken, Name: "tr"})
			p.im = inRowIM
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !p.popUntil(tableBodyScope, atom.Tbody, atom.Thead, atom.Tfoot) {
				return true
			}
			p.im = inTableIM
			return false
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "tbody", "tfoot", "thead":
			if p.elementInScope(tableBodyScope, p.tagAtom(tok.Name)) {
				p.popUntil(tableBodyScope)
				p.popOE()
				p.im = inTableIM
			}
			return true
		case "table":
			if !p.popUntil(tableBodyScope, atom.Tbody, atom.Thead, atom.Tfoot) {
				return true
			}
			p.im = inTableIM
			return false
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			return true
		}
	}
	return inTableIM(p, tok)
}

func inRowIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.StartTagToken:
		switch tok.Name {
		case "th", "td":
			p.clearStackToContext(tableRowScope)
			p.addElement(tok)
			p.im = inCellIM
			p.afe.pushMarker()
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !p.popUntil(tableRowScope, atom.Tr) {
				return true
			}
			p.im = inTableBodyIM
			return false
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "tr":
			if !p.popUntil(tableRowScope, atom.Tr) {
				return true
			}
			p.im = inTableBodyIM
			return true
		case "table":
			if !p.popUntil(tableRowScope, atom.Tr) {
				return true
			}
			p.im = inTableBodyIM
			return false
		case "tbody", "tfoot", "thead":
			if !p.elementInScope(tableBodyScope, p.tagAtom(tok.Name)) {
				return true
			}
			p.popUntil(tableRowScope, atom.Tr)
			p.im = inTableBodyIM
			return false
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			return true
		}
	}
	return inTableIM(p, tok)
}

func inCellIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.StartTagToken:
		switch tok.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if p.elementInScope(tableScope, atom.Td) || p.elementInScope(tableScope, atom.Th) {
				p.closeTheCell()
				return false
			}
			return true
		}
	case htmltok.EndTagToken:
		switch tok.Name {
		case "td", "th":
			if !p.elementInScope(tableScope, p.tagAtom(tok.Name)) {
				return true
			}
			p.popUntil(tableScope, p.tagAtom(tok.Name))
			p.clearActiveFormattingElements()
			p.im = inRowIM
			return true
		case "body", "caption", "col", "colgroup", "html":
			return true
		case "table", "tbody", "tfoot", "thead", "tr":
			if !p.elementInScope(tableScope, p.tagAtom(tok.Name)) {
				return true
			}
			p.closeTheCell()
			return false
		}
	}
	return inBodyIM(p, tok)
}

func (p *parser) closeTheCell() {
	p.popUntil(tableScope, atom.Td, atom.Th)
	p.clearActiveFormattingElements()
	p.im = inRowIM
}

// ---- 12.2.6.4.18 "in frameset" ----------------------------------------------

func inFramesetIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CommentToken:
		p.insertComment(tok.Data)
		return true
	case htmltok.DoctypeToken:
		return true
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			p.addText(textOf(tok))
		}
		return true
	case htmltok.StartTagToken:
		switch tok.Name {
		case "html":
			return inBodyIM(p, tok)
		case "frameset":
			p.addElement(tok)
			return true
		case "frame":
			p.addElement(tok)
			p.popOE()
			p.acknowledgeSelfClosingTag()
			return true
		case "noframes":
			return inHeadIM(p, tok)
		}
	case htmltok.EndTagToken:
		if tok.Name == "frameset" {
			if len(p.oe) > 1 {
				p.popOE()
			}
			if len(p.oe) > 0 && p.oe.top().DataAtom != atom.Frameset {
				p.im = afterFramesetIM
			}
			return true
		}
	}
	return true
}

func afterFramesetIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CommentToken:
		p.insertComment(tok.Data)
		return true
	case htmltok.DoctypeToken:
		return true
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			p.addText(textOf(tok))
		}
		return true
	case htmltok.StartTagToken:
		switch tok.Name {
		case "html":
			return inBodyIM(p, tok)
		case "noframes":
			return inHeadIM(p, tok)
		}
	case htmltok.EndTagToken:
		if tok.Name == "html" {
			p.im = afterAfterFramesetIM
			return true
		}
	}
	return true
}

// ---- 12.2.6.4.19-22 after body family ---------------------------------------

func afterBodyIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			return inBodyIM(p, tok)
		}
	case htmltok.DoctypeToken:
		return true
	case htmltok.StartTagToken:
		if tok.Name == "html" {
			return inBodyIM(p, tok)
		}
	case htmltok.EndTagToken:
		if tok.Name == "html" {
			p.im = afterAfterBodyIM
			return true
		}
	case htmltok.CommentToken:
		if len(p.oe) > 0 {
			p.insertCommentInto(p.oe[0], tok.Data)
		}
		return true
	case htmltok.EndOfFileToken:
		return true
	}
	p.im = inBodyIM
	return false
}

func afterAfterBodyIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CommentToken:
		p.insertCommentInto(p.doc, tok.Data)
		return true
	case htmltok.DoctypeToken:
		return inBodyIM(p, tok)
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			return inBodyIM(p, tok)
		}
	case htmltok.StartTagToken:
		if tok.Name == "html" {
			return inBodyIM(p, tok)
		}
	case htmltok.EndOfFileToken:
		return true
	}
	p.im = inBodyIM
	return false
}

func afterAfterFramesetIM(p *parser, tok htmltok.Token) bool {
	switch tok.Kind {
	case htmltok.CommentToken:
		p.insertCommentInto(p.doc, tok.Data)
		return true
	case htmltok.DoctypeToken:
		return true
	case htmltok.CharacterToken:
		if isAllWhitespace(textOf(tok)) {
			return inBodyIM(p, tok)
		}
	case htmltok.StartTagToken:
		switch tok.Name {
		case "html":
			return inBodyIM(p, tok)
		case "noframes":
			return inHeadIM(p, tok)
		}
	case htmltok.EndOfFileToken:
		return true
	}
	return true
}
