package htmltok

import (
	"testing"

	"github.com/kauri-engine/kauri/runeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) ([]Token, []ParseError) {
	t.Helper()
	var toks []Token
	var errs []ParseError
	tok := New([]byte(input), func(tk Token) { toks = append(toks, tk) }, func(e ParseError, _ Position) { errs = append(errs, e) })
	tok.Run()
	return toks, errs
}

func chars(toks []Token) string {
	var s []rune
	for _, tk := range toks {
		if tk.Kind == CharacterToken {
			s = append(s, rune(tk.CodePoint))
		}
	}
	return string(s)
}

func TestPlainTextEmitsCharacterTokens(t *testing.T) {
	toks, _ := run(t, "hi")
	require.Len(t, toks, 3)
	assert.Equal(t, "hi", chars(toks))
	assert.Equal(t, EndOfFileToken, toks[2].Kind)
}

func TestSimpleStartAndEndTag(t *testing.T) {
	toks, _ := run(t, "<div class=\"a b\">x</div>")
	require.GreaterOrEqual(t, len(toks), 3)
	require.Equal(t, StartTagToken, toks[0].Kind)
	assert.Equal(t, "div", toks[0].Name)
	require.Len(t, toks[0].Attributes, 1)
	assert.Equal(t, "class", toks[0].Attributes[0].Name)
	assert.Equal(t, "a b", toks[0].Attributes[0].Value)
}

func TestSelfClosingStartTag(t *testing.T) {
	toks, _ := run(t, "<br/>")
	require.Equal(t, StartTagToken, toks[0].Kind)
	assert.True(t, toks[0].SelfClosing)
}

func TestDuplicateAttributeDropsSecond(t *testing.T) {
	toks, errs := run(t, `<a href="1" href="2">`)
	require.Contains(t, errs, DuplicateAttribute)
	require.Len(t, toks[0].Attributes, 1)
	assert.Equal(t, "1", toks[0].Attributes[0].Value)
}

func TestEndTagWithAttributesDropsThem(t *testing.T) {
	toks, errs := run(t, `</div class="a">`)
	require.Contains(t, errs, EndTagWithAttributes)
	assert.Empty(t, toks[0].Attributes)
}

func TestCommentToken(t *testing.T) {
	toks, _ := run(t, "<!-- hello -->")
	require.Equal(t, CommentToken, toks[0].Kind)
	assert.Equal(t, " hello ", toks[0].Data)
}

func TestAbruptClosingOfEmptyComment(t *testing.T) {
	toks, errs := run(t, "<!-->")
	require.Contains(t, errs, AbruptClosingOfEmptyComment)
	require.Equal(t, CommentToken, toks[0].Kind)
	assert.Equal(t, "", toks[0].Data)
}

func TestBogusCommentFromMarkupDeclaration(t *testing.T) {
	toks, errs := run(t, "<!whatever>")
	require.Contains(t, errs, IncorrectlyOpenedComment)
	require.Equal(t, CommentToken, toks[0].Kind)
	assert.Equal(t, "whatever", toks[0].Data)
}

func TestDoctypeBasic(t *testing.T) {
	toks, _ := run(t, "<!DOCTYPE html>")
	require.Equal(t, DoctypeToken, toks[0].Kind)
	assert.Equal(t, "html", toks[0].Name)
	assert.False(t, toks[0].ForceQuirks)
}

func TestDoctypeWithPublicAndSystem(t *testing.T) {
	toks, _ := run(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	require.Equal(t, DoctypeToken, toks[0].Kind)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", toks[0].PublicID)
	assert.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", toks[0].SystemID)
}

func TestNamedCharacterReferenceWithSemicolon(t *testing.T) {
	toks, _ := run(t, "&amp;")
	require.Len(t, toks, 2)
	assert.Equal(t, int32('&'), toks[0].CodePoint)
}

func TestAmbiguousAmpersandInAttribute(t *testing.T) {
	toks, errs := run(t, `<a href="?a=1&b=2">`)
	require.Empty(t, errs)
	assert.Equal(t, "?a=1&b=2", toks[0].Attributes[0].Value)
}

func TestNumericCharacterReferenceDecimal(t *testing.T) {
	toks, _ := run(t, "&#65;")
	require.Len(t, toks, 2)
	assert.Equal(t, int32('A'), toks[0].CodePoint)
}

func TestNumericCharacterReferenceHex(t *testing.T) {
	toks, _ := run(t, "&#x41;")
	require.Len(t, toks, 2)
	assert.Equal(t, int32('A'), toks[0].CodePoint)
}

func TestNumericCharacterReferenceWindows1252Remap(t *testing.T) {
	toks, errs := run(t, "&#128;")
	require.Contains(t, errs, ControlCharacterReference)
	require.Len(t, toks, 2)
	assert.Equal(t, int32(0x20AC), toks[0].CodePoint)
}

func TestNumericCharacterReferenceNull(t *testing.T) {
	toks, errs := run(t, "&#0;")
	require.Contains(t, errs, NullCharacterReference)
	assert.Equal(t, runeutil.ReplacementCharacter, toks[0].CodePoint)
}

func TestRawtextModeSwitch(t *testing.T) {
	var toks []Token
	var tok *Tokenizer
	tok = New([]byte("<style>a<b</style>"), func(tk Token) {
		toks = append(toks, tk)
		// Mimic the tree constructor switching lexical modes the moment
		// it opens a rawtext element.
		if tk.Kind == StartTagToken && tk.Name == "style" {
			tok.SetLastStartTagName("style")
			tok.SetState(RAWTEXTState)
		}
	}, nil)
	tok.Run()
	require.Equal(t, StartTagToken, toks[0].Kind)
	assert.Equal(t, "style", toks[0].Name)
	assert.Equal(t, "a<b", chars(toks[1:len(toks)-1]))
	require.Equal(t, EndTagToken, toks[len(toks)-2].Kind)
}

func TestUnexpectedNullInData(t *testing.T) {
	toks, errs := run(t, "a\x00b")
	require.Contains(t, errs, UnexpectedNullCharacter)
	assert.Equal(t, "a\x00b", chars(toks))
}

func TestCDATASectionRequiresForeignContent(t *testing.T) {
	var toks []Token
	var errs []ParseError
	tok := New([]byte("<![CDATA[hi]]>"), func(tk Token) { toks = append(toks, tk) }, func(e ParseError, _ Position) { errs = append(errs, e) })
	tok.AllowCDATA = true
	tok.Run()
	assert.Equal(t, "hi", chars(toks))

	toks, errs = run(t, "<![CDATA[hi]]>")
	require.Contains(t, errs, CdataInHTMLContent)
	require.Equal(t, CommentToken, toks[0].Kind)
}
