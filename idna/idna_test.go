package idna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToASCIIPassesThroughPlainASCII(t *testing.T) {
	out, err := ToASCII("example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", out)
}

func TestToASCIILowercases(t *testing.T) {
	out, err := ToASCII("ExAmple.COM")
	require.NoError(t, err)
	assert.Equal(t, "example.com", out)
}

func TestToASCIIEncodesUnicodeLabel(t *testing.T) {
	out, err := ToASCII("bücher.example")
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Contains(t, out, ACEPrefix)
	assert.Contains(t, out, ".example")
}

func TestPunycodeRoundTrip(t *testing.T) {
	for _, label := range []string{"bücher", "münchen", "日本語"} {
		encoded, err := punycodeEncode(label)
		require.NoError(t, err)
		decoded, err := punycodeDecode(encoded)
		require.NoError(t, err)
		assert.Equal(t, label, decoded)
	}
}
