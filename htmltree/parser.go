// Package htmltree implements the WHATWG HTML tree-construction algorithm
// (https://html.spec.whatwg.org/multipage/parsing.html#tree-construction),
// consuming htmltok.Token values and producing an htmldom.Document. It is
// grounded on chtml/html/parse.go and chtml/html/node.go — the teacher's
// own fork of golang.org/x/net/html's tree-construction parser — rebuilt
// against kauri's own token and node types.
package htmltree

import (
	"io"

	"github.com/kauri-engine/kauri/htmldom"
	"github.com/kauri-engine/kauri/htmltok"
	"golang.org/x/net/html/atom"
)

// Options configures a parse.
type Options struct {
	// FeatureTemplateMode is accepted but not read by the parser. The
	// InTemplate/InSelectInTable/InCaption/InColumnGroup/InSelect
	// insertion modes are not implemented: tokens in those contexts are
	// handled by the implemented modes (mostly InBody, InHead and
	// InTable) whether the field is set or not.
	FeatureTemplateMode bool

	// Scripting sets the tree constructor's scripting flag
	// (https://html.spec.whatwg.org/multipage/parsing.html#scripting-flag).
	// It changes how "noscript" is tokenized: with Scripting true, a
	// noscript element's content is raw text; with it false (the
	// default, matching a user agent with scripting disabled),
	// noscript's content is parsed as ordinary markup.
	Scripting bool

	// IncludeComments controls whether comment tokens are inserted
	// into the tree as CommentNodes. It defaults to false; callers
	// that want comments preserved (e.g. a dumper) must opt in.
	IncludeComments bool
}

type insertionMode func(*parser, htmltok.Token) bool

// parser holds all mutable tree-construction state, mirroring
// chtml/html/parse.go's parser struct field-for-field where the shape
// still applies.
type parser struct {
	tok *htmltok.Tokenizer

	doc     *htmldom.Node
	html    *htmldom.Node
	doctype *htmldom.Node

	oe    nodeStack
	oeGen uint64
	afe   afeList

	form *htmldom.Node

	im         insertionMode
	originalIM insertionMode

	fosterParenting bool

	framesetOK bool

	pendingTableText []pendingText

	quirks htmldom.QuirksMode

	opts Options

	errs []error

	// scriptingEnabled mirrors the tree constructor's scripting flag,
	// set from Options.Scripting at construction time.
	scriptingEnabled bool

	stopped bool
}

type pendingText struct {
	text string
}

// Parse reads r as an HTML document and returns the constructed document
// tree plus any parse errors observed along the way. Parse errors are
// non-fatal: the tree constructor always recovers and produces a tree per
// spec.md §4.5's "never halt" invariant.
func Parse(r io.Reader, opts Options) (*htmldom.Document, []error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, []error{err}
	}
	p := &parser{opts: opts, framesetOK: true, scriptingEnabled: opts.Scripting}
	p.doc = &htmldom.Node{Type: htmldom.DocumentNode}
	p.im = initialIM

	p.tok = htmltok.New(data, p.processToken, p.processError)
	p.tok.Run()

	return &htmldom.Document{Root: p.html, QuirksMode: p.quirks, Doctype: p.doctype}, p.errs
}

// ParseFragment implements a bounded form of
// https://html.spec.whatwg.org/multipage/parsing.html#html-fragment-parsing-algorithm:
// input is parsed as if it were the contents of context, and the
// resulting children of the fake root are returned. The full
// algorithm's form-element-pointer seeding and context-dependent
// "adjusted current node" foreign-content handling are out of scope,
// consistent with the simplified foreign-content handling recorded in
// DESIGN.md's htmltree entry.
func ParseFragment(context *htmldom.Node, r io.Reader, opts Options) ([]*htmldom.Node, []error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, []error{err}
	}

	root := &htmldom.Node{Type: htmldom.ElementNode, DataAtom: atom.Html, Data: "html"}
	p := &parser{opts: opts, framesetOK: true, scriptingEnabled: opts.Scripting}
	p.doc = &htmldom.Node{Type: htmldom.DocumentNode}
	p.doc.AppendChild(root)
	p.html = root
	p.oe = append(p.oe, root)
	p.oeGen++

	switch atomOf(context) {
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

	p.tok = htmltok.New(data, p.processToken, p.processError)
	switch atomOf(context) {
	case atom.Title, atom.Textarea:
		p.tok.SetState(htmltok.RCDATAState)
		p.tok.SetLastStartTagName(context.Data)
	case atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes, atom.Script:
		p.tok.SetState(htmltok.RAWTEXTState)
		p.tok.SetLastStartTagName(context.Data)
	case atom.Noscript:
		if p.scriptingEnabled {
			p.tok.SetState(htmltok.RAWTEXTState)
			p.tok.SetLastStartTagName(context.Data)
		}
	case atom.Plaintext:
		p.tok.SetState(htmltok.PLAINTEXTState)
	}
	p.tok.Run()

	var children []*htmldom.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children, p.errs
}

func atomOf(n *htmldom.Node) atom.Atom {
	if n == nil {
		return 0
	}
	return n.DataAtom
}

func (p *parser) processError(e htmltok.ParseError, pos htmltok.Position) {
	p.errs = append(p.errs, &TokenizeError{Err: e, Position: pos})
}

// TokenizeError wraps a tokenizer-level parse error with its source
// position, implementing the standard Go error interface per the
// teacher's fmt.Errorf/%w convention (see errhandler.go).
type TokenizeError struct {
	Err      htmltok.ParseError
	Position htmltok.Position
}

func (e *TokenizeError) Error() string {
	return e.Err.String() + " at line " + itoa(e.Position.Line) + " column " + itoa(e.Position.Column)
}

func (e *TokenizeError) Unwrap() error { return e.Err }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func (p *parser) processToken(tok htmltok.Token) {
	if p.stopped {
		return
	}
	switch tok.Kind {
	case htmltok.EndOfFileToken:
		p.runEOF()
		p.stopped = true
		return
	}
	for !p.im(p, tok) {
		// insertion modes return false when they want the token
		// reprocessed under a (just-changed) mode, mirroring
		// chtml/html/parse.go's "for !im(p) {}" outer loop.
	}
}

func (p *parser) runEOF() {
	tok := htmltok.Token{Kind: htmltok.EndOfFileToken}
	for !p.im(p, tok) {
	}
}

func (p *parser) popOE() *htmldom.Node {
	n := p.oe.pop()
	p.oeGen++
	return n
}

func (p *parser) top() *htmldom.Node {
	if n := p.oe.top(); n != nil {
		return n
	}
	if p.html != nil {
		return p.html
	}
	return p.doc
}

// nodeStack mirrors chtml/html/node.go's nodeStack exactly, against
// *htmldom.Node instead of *html.Node.
type nodeStack []*htmldom.Node

func (s *nodeStack) pop() *htmldom.Node {
	i := len(*s)
	n := (*s)[i-1]
	*s = (*s)[:i-1]
	return n
}

func (s *nodeStack) top() *htmldom.Node {
	if i := len(*s); i > 0 {
		return (*s)[i-1]
	}
	return nil
}

func (s *nodeStack) index(n *htmldom.Node) int {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i] == n {
			return i
		}
	}
	return -1
}

func (s *nodeStack) contains(a atom.Atom) bool {
	for _, n := range *s {
		if n.DataAtom == a && n.Namespace == htmldom.HTMLNamespace {
			return true
		}
	}
	return false
}

func (s *nodeStack) insert(i int, n *htmldom.Node) {
	*s = append(*s, nil)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = n
}

func (s *nodeStack) remove(n *htmldom.Node) {
	i := s.index(n)
	if i == -1 {
		return
	}
	copy((*s)[i:], (*s)[i+1:])
	(*s)[len(*s)-1] = nil
	*s = (*s)[:len(*s)-1]
}

// addChild adds n to the top element (subject to foster parenting), and
// pushes it onto the open-elements stack if it is an element.
func (p *parser) addChild(n *htmldom.Node) {
	if p.shouldFosterParent() {
		p.fosterParent(n)
	} else {
		p.top().AppendChild(n)
	}
	if n.Type == htmldom.ElementNode {
		p.oe = append(p.oe, n)
		p.oeGen++
	}
}

func (p *parser) shouldFosterParent() bool {
	if !p.fosterParenting {
		return false
	}
	switch p.top().DataAtom {
	case atom.Table, atom.Tbody, atom.Tfoot, atom.Thead, atom.Tr:
		return true
	}
	return false
}

func (p *parser) fosterParent(n *htmldom.Node) {
	var table, parent, prev, template *htmldom.Node
	var i, j int
	for i = len(p.oe) - 1; i >= 0; i-- {
		if p.oe[i].DataAtom == atom.Table {
			table = p.oe[i]
			break
		}
	}
	for j = len(p.oe) - 1; j >= 0; j-- {
		if p.oe[j].DataAtom == atom.Template {
			template = p.oe[j]
			break
		}
	}
	if template != nil && (table == nil || j > i) {
		template.AppendChild(n)
		return
	}
	if table == nil {
		parent = p.oe[0]
	} else {
		parent = table.Parent
	}
	if parent == nil {
		parent = p.oe[i-1]
	}
	if table != nil {
		prev = table.PrevSibling
	} else {
		prev = parent.LastChild
	}
	if prev != nil && prev.Type == htmldom.TextNode && n.Type == htmldom.TextNode {
		prev.Data += n.Data
		return
	}
	parent.InsertBefore(n, table)
}

// insertComment adds a comment node as a child of the current node
// (subject to foster parenting, via addChild), honoring
// Options.IncludeComments.
func (p *parser) insertComment(data string) {
	if !p.opts.IncludeComments {
		return
	}
	p.addChild(&htmldom.Node{Type: htmldom.CommentNode, Data: data})
}

// insertCommentInto adds a comment node directly as a child of target,
// bypassing addChild's foster-parenting/open-elements-stack logic, for
// the insertion modes that append comments to the Document or to the
// bottommost open element rather than the current node. Honors
// Options.IncludeComments.
func (p *parser) insertCommentInto(target *htmldom.Node, data string) {
	if !p.opts.IncludeComments || target == nil {
		return
	}
	target.AppendChild(&htmldom.Node{Type: htmldom.CommentNode, Data: data})
}

func (p *parser) addText(text string) {
	if text == "" {
		return
	}
	if p.shouldFosterParent() {
		p.fosterParent(&htmldom.Node{Type: htmldom.TextNode, Data: text})
		return
	}
	t := p.top()
	if n := t.LastChild; n != nil && n.Type == htmldom.TextNode {
		n.Data += text
		return
	}
	p.addChild(&htmldom.Node{Type: htmldom.TextNode, Data: text})
}

func (p *parser) addElement(tok htmltok.Token) *htmldom.Node {
	n := &htmldom.Node{
		Type:       htmldom.ElementNode,
		DataAtom:   atom.Lookup([]byte(tok.Name)),
		Data:       tok.Name,
		Attributes: convertAttrs(tok.Attributes),
	}
	p.addChild(n)
	return n
}

func convertAttrs(in []htmltok.Attribute) []htmldom.Attribute {
	if len(in) == 0 {
		return nil
	}
	out := make([]htmldom.Attribute, len(in))
	for i, a := range in {
		out[i] = htmldom.Attribute{Name: a.Name, Value: a.Value}
	}
	return out
}

func cloneNode(n *htmldom.Node) *htmldom.Node {
	attrs := make([]htmldom.Attribute, len(n.Attributes))
	copy(attrs, n.Attributes)
	return &htmldom.Node{
		Type:       n.Type,
		Namespace:  n.Namespace,
		DataAtom:   n.DataAtom,
		Data:       n.Data,
		Attributes: attrs,
	}
}

// generateImpliedEndTags pops nodes off the open-elements stack while the
// top node's tag is one of the "implied end tag" set, per spec.md §4.5.
func (p *parser) generateImpliedEndTags(exceptions ...string) {
	var i int
loop:
	for i = len(p.oe) - 1; i >= 0; i-- {
		n := p.oe[i]
		if n.Type != htmldom.ElementNode {
			break
		}
		switch n.DataAtom {
		case atom.Dd, atom.Dt, atom.Li, atom.Optgroup, atom.Option, atom.P, atom.Rb, atom.Rp, atom.Rt, atom.Rtc:
			for _, except := range exceptions {
				if n.Data == except {
					break loop
				}
			}
			continue
		}
		break
	}
	p.oe = p.oe[:i+1]
	p.oeGen++
}

func (p *parser) acknowledgeSelfClosingTag() {}
