package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentEncodeFragmentSet(t *testing.T) {
	assert.Equal(t, "a%20b%3C", percentEncode("a b<", fragmentPercentEncodeSet, false))
}

func TestPercentEncodeComponentSetIsBroadest(t *testing.T) {
	encoded := percentEncode("a+b", componentPercentEncodeSet, false)
	assert.Equal(t, "a%2Bb", encoded)
}

func TestPercentDecodeRoundTrip(t *testing.T) {
	decoded := percentDecode("a%20b%3C")
	assert.Equal(t, "a b<", string(decoded))
}

func TestPercentDecodeLeavesMalformedEscapesLiteral(t *testing.T) {
	decoded := percentDecode("100%25 not %zz hex")
	assert.Equal(t, "100% not %zz hex", string(decoded))
}

func TestPercentEncodeSetsAreNested(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := byte(b)
		if c0ControlPercentEncodeSet(c) {
			assert.True(t, fragmentPercentEncodeSet(c))
		}
		if fragmentPercentEncodeSet(c) {
			assert.True(t, queryPercentEncodeSet(c) || c == '"' || c == '`')
		}
		if queryPercentEncodeSet(c) {
			assert.True(t, pathPercentEncodeSet(c))
		}
		if pathPercentEncodeSet(c) {
			assert.True(t, userinfoPercentEncodeSet(c))
		}
		if userinfoPercentEncodeSet(c) {
			assert.True(t, componentPercentEncodeSet(c))
		}
	}
}
