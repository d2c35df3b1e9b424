package runeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF8RoundTrip(t *testing.T) {
	for cp := int32(0); cp <= MaxCodePoint; cp += 997 {
		if IsSurrogate(cp) {
			continue
		}
		encoded := ToUTF8(cp)
		require.NotEmpty(t, encoded)
		decoded := UTF8ToUTF32(encoded)
		assert.Equal(t, cp, decoded, "round trip for U+%X", cp)
	}
}

func TestToUTF8OutOfRange(t *testing.T) {
	assert.Nil(t, ToUTF8(MaxCodePoint+1))
	assert.Nil(t, ToUTF8(-1))
}

func TestUTF8LengthTruncated(t *testing.T) {
	_, ok := UTF8Length([]byte{0xE2, 0x82})
	assert.False(t, ok)

	n, ok := UTF8Length([]byte("hié"))
	require.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestSurrogatePair(t *testing.T) {
	cp, ok := UTF16SurrogatePairToCodePoint(0xD83D, 0xDE00)
	require.True(t, ok)
	assert.Equal(t, int32(0x1F600), cp)

	_, ok = UTF16SurrogatePairToCodePoint(0x0041, 0xDE00)
	assert.False(t, ok)
}

func TestNoncharacterClassification(t *testing.T) {
	assert.True(t, IsNoncharacter(0xFDD0))
	assert.True(t, IsNoncharacter(0xFDEF))
	assert.True(t, IsNoncharacter(0xFFFE))
	assert.True(t, IsNoncharacter(0x10FFFF))
	assert.False(t, IsNoncharacter(0xFDEF+1))
	assert.False(t, IsNoncharacter('a'))
}

func TestCodePointIter(t *testing.T) {
	it := NewCodePointIter([]byte("aé中\U0001F600"))
	var got []int32
	for {
		cp, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, cp)
	}
	assert.Equal(t, []int32{'a', 0x00e9, 0x4e2d, 0x1F600}, got)
}

func TestASCIIClassifiers(t *testing.T) {
	assert.True(t, IsASCIIWhitespace(' '))
	assert.True(t, IsASCIIWhitespace('\t'))
	assert.False(t, IsASCIIWhitespace('a'))
	assert.True(t, IsASCIIHexDigit('f'))
	assert.True(t, IsASCIIHexDigit('F'))
	assert.False(t, IsASCIIHexDigit('g'))
	assert.True(t, IsASCIIOctalDigit('7'))
	assert.False(t, IsASCIIOctalDigit('8'))
}
