package csstok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, input string) ([]Token, []Error) {
	t.Helper()
	var toks []Token
	var errs []Error
	tok := New([]byte(input), func(tk Token) { toks = append(toks, tk) }, func(e Error, _ Position) { errs = append(errs, e) })
	tok.Run()
	return toks, errs
}

func TestWhitespaceCollapses(t *testing.T) {
	toks, _ := tokenize(t, "a   \t\nb")
	require.Len(t, toks, 4) // Ident(a), Whitespace, Ident(b), EOF
	assert.Equal(t, Whitespace, toks[1].Kind)
}

func TestStringNewlineIsBadString(t *testing.T) {
	toks, errs := tokenize(t, "'abc\ndef'")
	require.Contains(t, errs, NewlineInString)
	require.Equal(t, BadString, toks[0].Kind)
}

func TestStringEscape(t *testing.T) {
	toks, _ := tokenize(t, `"a\41 b"`)
	require.Equal(t, String, toks[0].Kind)
	assert.Equal(t, "aAb", toks[0].Value)
}

func TestNumberDimensionWithEscapedUnit(t *testing.T) {
	// spec.md scenario 9: "5e\23 " tokenizes as one Dimension token,
	// data=5, unit="e#" (the \23 escape decodes to '#' and is absorbed
	// into the unit name, not reinterpreted as an exponent).
	toks, _ := tokenize(t, `5e\23 `)
	require.Len(t, toks, 2)
	require.Equal(t, Dimension, toks[0].Kind)
	assert.Equal(t, Integer, toks[0].NumberForm)
	assert.Equal(t, float64(5), toks[0].NumberValue)
	assert.Equal(t, "e#", toks[0].Unit)
}

func TestPercentageToken(t *testing.T) {
	toks, _ := tokenize(t, "12.5%")
	require.Equal(t, Percentage, toks[0].Kind)
	assert.Equal(t, Float, toks[0].NumberForm)
	assert.InDelta(t, 12.5, toks[0].NumberValue, 1e-9)
}

func TestIntegerSaturatesToInt32Range(t *testing.T) {
	toks, _ := tokenize(t, "99999999999999")
	require.Equal(t, Number, toks[0].Kind)
	assert.Equal(t, int32(1<<31-1), toks[0].IntValue)
}

func TestFunctionVsIdent(t *testing.T) {
	toks, _ := tokenize(t, "calc(1 + 2)")
	require.Equal(t, Function, toks[0].Kind)
	assert.Equal(t, "calc", toks[0].Value)
}

func TestURLToken(t *testing.T) {
	toks, _ := tokenize(t, "url(foo.png)")
	require.Equal(t, URL, toks[0].Kind)
	assert.Equal(t, "foo.png", toks[0].Value)
}

func TestURLWithStringArgumentBecomesFunction(t *testing.T) {
	toks, _ := tokenize(t, `url("foo.png")`)
	require.Equal(t, Function, toks[0].Kind)
	require.Equal(t, String, toks[1].Kind)
	assert.Equal(t, "foo.png", toks[1].Value)
}

func TestBadURLOnDisallowedCharacter(t *testing.T) {
	toks, errs := tokenize(t, "url(a'b)")
	require.Equal(t, BadURL, toks[0].Kind)
	assert.Contains(t, errs, DisallowedCharacterInURL)
}

func TestCommentsAreSkipped(t *testing.T) {
	toks, _ := tokenize(t, "a/* comment */b")
	require.Len(t, toks, 3) // Ident(a), Ident(b), EOF
	assert.Equal(t, "a", toks[0].Value)
	assert.Equal(t, "b", toks[1].Value)
}

func TestEOFInCommentReportsError(t *testing.T) {
	_, errs := tokenize(t, "a/* unterminated")
	assert.Contains(t, errs, EOFInComment)
}

func TestCDOCDC(t *testing.T) {
	toks, _ := tokenize(t, "<!---->")
	require.Equal(t, CDO, toks[0].Kind)
	require.Equal(t, CDC, toks[1].Kind)
}

func TestHashTokenIDVsUnrestricted(t *testing.T) {
	toks, _ := tokenize(t, "#foo #1bar")
	require.Equal(t, Hash, toks[0].Kind)
	assert.Equal(t, HashID, toks[0].HashType)
	require.Equal(t, Hash, toks[2].Kind)
	assert.Equal(t, HashUnrestricted, toks[2].HashType)
}

func TestBracketsAndPunctuation(t *testing.T) {
	toks, _ := tokenize(t, "[]{}():,;")
	kinds := make([]Kind, 0, len(toks))
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []Kind{
		LeftSquare, RightSquare, LeftCurly, RightCurly, LeftParen, RightParen,
		Colon, Comma, Semicolon, EOF,
	}, kinds)
}
