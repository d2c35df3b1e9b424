package jsonval

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, input string) Value {
	t.Helper()
	v, err := Parse([]byte(input))
	require.NoError(t, err)
	return v
}

func TestParsePrimitives(t *testing.T) {
	assert.Equal(t, Value{Kind: NullKind}, parseOK(t, "null"))
	assert.Equal(t, Value{Kind: BoolKind, Bool: true}, parseOK(t, "true"))
	assert.Equal(t, Value{Kind: BoolKind, Bool: false}, parseOK(t, "false"))
	assert.Equal(t, Value{Kind: StringKind, String: "hi"}, parseOK(t, `"hi"`))
}

func TestParseIntegerVsFloatDistinction(t *testing.T) {
	v := parseOK(t, "42")
	assert.Equal(t, IntKind, v.Kind)
	assert.Equal(t, int64(42), v.Int)

	v = parseOK(t, "42.0")
	assert.Equal(t, FloatKind, v.Kind)
	assert.Equal(t, 42.0, v.Float)

	v = parseOK(t, "1e10")
	assert.Equal(t, FloatKind, v.Kind)

	v = parseOK(t, "-7")
	assert.Equal(t, IntKind, v.Kind)
	assert.Equal(t, int64(-7), v.Int)
}

func TestParseStringEscapes(t *testing.T) {
	v := parseOK(t, `"a\nb\tc\"d"`)
	assert.Equal(t, "a\nb\tc\"d", v.String)

	v = parseOK(t, `"é"`)
	assert.Equal(t, "é", v.String)

	v = parseOK(t, `"😀"`)
	assert.Equal(t, "😀", v.String)
}

func TestParseArrayAndObject(t *testing.T) {
	v := parseOK(t, `[1, 2, 3]`)
	require.Equal(t, ArrayKind, v.Kind)
	require.Len(t, v.Array, 3)
	assert.Equal(t, int64(2), v.Array[1].Int)

	v = parseOK(t, `{"a": 1, "b": [true, null]}`)
	require.Equal(t, ObjectKind, v.Kind)
	a, ok := v.Object.Get("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), a.Int)
}

func TestParseObjectPreservesDuplicateKeys(t *testing.T) {
	v := parseOK(t, `{"a": 1, "a": 2}`)
	require.Len(t, v.Object.Members, 2)

	first, _ := v.Object.Get("a")
	assert.Equal(t, int64(1), first.Int)

	last, _ := v.Object.Last("a")
	assert.Equal(t, int64(2), last.Int)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse([]byte(`1 2`))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, TrailingGarbage, pe.Err)
}

func TestParseRejectsControlCharacterInString(t *testing.T) {
	_, err := Parse([]byte("\"a\tb\""))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedControlCharacter, pe.Err)
}

func TestParseRejectsUnpairedSurrogate(t *testing.T) {
	_, err := Parse([]byte(`"\uD800"`))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnpairedSurrogate, pe.Err)
}

func TestParseEnforcesNestingLimit(t *testing.T) {
	deep := strings.Repeat("[", 300) + strings.Repeat("]", 300)
	_, err := Parse([]byte(deep))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, NestingLimitReached, pe.Err)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := Parse([]byte(""))
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, UnexpectedEOF, pe.Err)
}

func TestParseNestedObjectPreservesOrderAndDuplicates(t *testing.T) {
	v := parseOK(t, `{"a": 1, "b": [true, null], "a": 2}`)
	want := Value{
		Kind: ObjectKind,
		Object: Object{Members: []Member{
			{Key: "a", Value: Value{Kind: IntKind, Int: 1}},
			{Key: "b", Value: Value{Kind: ArrayKind, Array: []Value{
				{Kind: BoolKind, Bool: true},
				{Kind: NullKind},
			}}},
			{Key: "a", Value: Value{Kind: IntKind, Int: 2}},
		}},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("parsed value mismatch (-want +got):\n%s", diff)
	}
}
