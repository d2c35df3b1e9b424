package htmltree

import (
	"strings"
	"testing"

	"github.com/kauri-engine/kauri/htmldom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func mustParse(t *testing.T, src string) *htmldom.Document {
	t.Helper()
	doc, errs := Parse(strings.NewReader(src), Options{})
	require.NotNil(t, doc)
	require.NotNil(t, doc.Root)
	_ = errs
	return doc
}

func findFirst(n *htmldom.Node, tag string) *htmldom.Node {
	if n == nil {
		return nil
	}
	if n.Type == htmldom.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if r := findFirst(c, tag); r != nil {
			return r
		}
	}
	return nil
}

func textContent(n *htmldom.Node) string {
	var sb strings.Builder
	var walk func(*htmldom.Node)
	walk = func(n *htmldom.Node) {
		if n.Type == htmldom.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func TestParseInsertsImpliedHeadAndBody(t *testing.T) {
	doc := mustParse(t, "<p>hello</p>")
	require.NotNil(t, doc.Root)
	assert.Equal(t, "html", doc.Root.Data)
	head := findFirst(doc.Root, "head")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, head)
	require.NotNil(t, body)
	p := findFirst(body, "p")
	require.NotNil(t, p)
	assert.Equal(t, "hello", textContent(p))
}

func TestParseAutoClosesParagraphOnBlock(t *testing.T) {
	doc := mustParse(t, "<p>one<div>two</div>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	require.NotNil(t, body.FirstChild)
	assert.Equal(t, "p", body.FirstChild.Data)
	div := findFirst(body, "div")
	require.NotNil(t, div)
	assert.True(t, div.Parent == body, "div must not remain nested inside p")
}

func TestParseListItemsCloseEachOther(t *testing.T) {
	doc := mustParse(t, "<ul><li>a<li>b<li>c</ul>")
	ul := findFirst(doc.Root, "ul")
	require.NotNil(t, ul)
	var items []string
	for c := ul.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == htmldom.ElementNode && c.Data == "li" {
			items = append(items, textContent(c))
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestParseFormattingElementSurvivesAdoptionAgency(t *testing.T) {
	doc := mustParse(t, "<p>1<b>2<p>3</b>4</p>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	// The misnested <b> must be cloned into the second <p>, per the
	// adoption agency algorithm, rather than simply dropped.
	bs := 0
	var count func(*htmldom.Node)
	count = func(n *htmldom.Node) {
		if n.Type == htmldom.ElementNode && n.Data == "b" {
			bs++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			count(c)
		}
	}
	count(body)
	assert.Equal(t, 2, bs)
}

func TestParseTableTextFosterParented(t *testing.T) {
	doc := mustParse(t, "<table>foo<tr><td>bar</td></tr></table>")
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	table := findFirst(body, "table")
	require.NotNil(t, table)
	// "foo" must be foster-parented out of the table, appearing as a
	// sibling text node before it rather than as a child.
	assert.Contains(t, textContent(body), "foo")
	td := findFirst(table, "td")
	require.NotNil(t, td)
	assert.Equal(t, "bar", textContent(td))
}

func TestParseScriptDataIsNotTokenizedAsMarkup(t *testing.T) {
	doc := mustParse(t, "<script>var x = '<div>';</script>")
	script := findFirst(doc.Root, "script")
	require.NotNil(t, script)
	assert.Equal(t, "var x = '<div>';", textContent(script))
}

func TestParseDoctypeSetsQuirksMode(t *testing.T) {
	doc := mustParse(t, "<!DOCTYPE html><p>x</p>")
	assert.Equal(t, htmldom.NoQuirks, doc.QuirksMode)

	quirky := mustParse(t, `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 3.2 Final//EN"><p>x</p>`)
	assert.Equal(t, htmldom.Quirks, quirky.QuirksMode)
}

func TestParseFragmentBodyContextProducesOrdinaryChildren(t *testing.T) {
	context := &htmldom.Node{Type: htmldom.ElementNode, Data: "body"}
	children, _ := ParseFragment(context, strings.NewReader("<p>hi</p>"), Options{})
	require.Len(t, children, 1)
	assert.Equal(t, "p", children[0].Data)
	assert.Equal(t, "hi", textContent(children[0]))
}

func TestParseFragmentTextareaContextIsRCDATA(t *testing.T) {
	context := &htmldom.Node{Type: htmldom.ElementNode, DataAtom: atom.Textarea, Data: "textarea"}
	children, _ := ParseFragment(context, strings.NewReader("<b>not a tag</b>"), Options{})
	require.Len(t, children, 1)
	assert.Equal(t, htmldom.TextNode, children[0].Type)
	assert.Equal(t, "<b>not a tag</b>", children[0].Data)
}

func TestParseFragmentScriptContextIsRAWTEXT(t *testing.T) {
	context := &htmldom.Node{Type: htmldom.ElementNode, DataAtom: atom.Script, Data: "script"}
	children, _ := ParseFragment(context, strings.NewReader("var x = '<div>';"), Options{})
	require.Len(t, children, 1)
	assert.Equal(t, htmldom.TextNode, children[0].Type)
	assert.Equal(t, "var x = '<div>';", children[0].Data)
}

func TestParseFragmentTableContextProducesRowStructure(t *testing.T) {
	context := &htmldom.Node{Type: htmldom.ElementNode, DataAtom: atom.Table, Data: "table"}
	children, _ := ParseFragment(context, strings.NewReader("foo<tr><td>bar</td></tr>"), Options{})
	require.NotEmpty(t, children)
	// The context element (table) is not itself re-created; a bare "tr"
	// is implicitly wrapped in a "tbody", matching inTableIM's handling
	// of a tr start tag with no enclosing section.
	var sawText bool
	var tbody *htmldom.Node
	for _, c := range children {
		if c.Type == htmldom.TextNode && strings.Contains(c.Data, "foo") {
			sawText = true
		}
		if c.Type == htmldom.ElementNode && c.Data == "tbody" {
			tbody = c
		}
	}
	assert.True(t, sawText)
	require.NotNil(t, tbody)
	td := findFirst(tbody, "td")
	require.NotNil(t, td)
	assert.Equal(t, "bar", textContent(td))
}

func TestParseNoscriptWithScriptingDisabledParsesOrdinaryChildren(t *testing.T) {
	doc, _ := Parse(strings.NewReader("<body><noscript><span>hi</span></noscript></body>"), Options{})
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	noscript := findFirst(body, "noscript")
	require.NotNil(t, noscript)
	span := findFirst(noscript, "span")
	require.NotNil(t, span)
	assert.Equal(t, "hi", textContent(span))
}

func TestParseNoscriptWithScriptingEnabledIsRawText(t *testing.T) {
	doc, _ := Parse(strings.NewReader("<body><noscript><span>hi</span></noscript></body>"), Options{Scripting: true})
	body := findFirst(doc.Root, "body")
	require.NotNil(t, body)
	noscript := findFirst(body, "noscript")
	require.NotNil(t, noscript)
	require.NotNil(t, noscript.FirstChild)
	assert.Equal(t, htmldom.TextNode, noscript.FirstChild.Type)
	assert.Equal(t, "<span>hi</span>", noscript.FirstChild.Data)
}

func TestParseNoscriptInHeadWithScriptingEnabledIsRawText(t *testing.T) {
	doc, _ := Parse(strings.NewReader("<head><noscript><style>p</style></noscript></head>"), Options{Scripting: true})
	head := findFirst(doc.Root, "head")
	require.NotNil(t, head)
	noscript := findFirst(head, "noscript")
	require.NotNil(t, noscript)
	require.NotNil(t, noscript.FirstChild)
	assert.Equal(t, htmldom.TextNode, noscript.FirstChild.Type)
	assert.Equal(t, "<style>p</style>", noscript.FirstChild.Data)
}

func TestParseNoscriptInHeadWithScriptingDisabledParsesOrdinaryChildren(t *testing.T) {
	doc, _ := Parse(strings.NewReader("<head><noscript><meta charset=\"utf-8\"></noscript></head>"), Options{})
	head := findFirst(doc.Root, "head")
	require.NotNil(t, head)
	noscript := findFirst(head, "noscript")
	require.NotNil(t, noscript)
	meta := findFirst(noscript, "meta")
	require.NotNil(t, meta)
}

func TestParseFragmentNoscriptContextIsRawTextWhenScriptingEnabled(t *testing.T) {
	context := &htmldom.Node{Type: htmldom.ElementNode, DataAtom: atom.Noscript, Data: "noscript"}
	children, _ := ParseFragment(context, strings.NewReader("<span>hi</span>"), Options{Scripting: true})
	require.Len(t, children, 1)
	assert.Equal(t, htmldom.TextNode, children[0].Type)
	assert.Equal(t, "<span>hi</span>", children[0].Data)
}

func TestParseFragmentNoscriptContextProducesOrdinaryChildrenWhenScriptingDisabled(t *testing.T) {
	context := &htmldom.Node{Type: htmldom.ElementNode, DataAtom: atom.Noscript, Data: "noscript"}
	children, _ := ParseFragment(context, strings.NewReader("<span>hi</span>"), Options{})
	require.Len(t, children, 1)
	assert.Equal(t, "span", children[0].Data)
}

func TestParseIncludeCommentsDefaultsToOff(t *testing.T) {
	doc := mustParse(t, "<body><!--inline--><p>x</p></body>")
	var sawComment bool
	var walk func(*htmldom.Node)
	walk = func(n *htmldom.Node) {
		if n.Type == htmldom.CommentNode {
			sawComment = true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Root)
	assert.False(t, sawComment)
}

func TestParseIncludeCommentsWhenEnabled(t *testing.T) {
	doc, _ := Parse(strings.NewReader("<body><!--inline--><p>x</p></body>"), Options{IncludeComments: true})
	var comments []string
	var walk func(*htmldom.Node)
	walk = func(n *htmldom.Node) {
		if n.Type == htmldom.CommentNode {
			comments = append(comments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Root)
	assert.Contains(t, comments, "inline")
}

func TestParseVoidElementsDoNotNest(t *testing.T) {
	doc := mustParse(t, "<p>a<br>b<img src=\"x.png\">c</p>")
	p := findFirst(doc.Root, "p")
	require.NotNil(t, p)
	br := findFirst(p, "br")
	require.NotNil(t, br)
	assert.Nil(t, br.FirstChild)
}
