package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPv4Standard(t *testing.T) {
	v4, err := parseIPv4("192.168.1.1")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", serializeIPv4(v4))
}

func TestParseIPv4ShorthandForms(t *testing.T) {
	v4, err := parseIPv4("0x7f.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", serializeIPv4(v4))
}

func TestParseIPv4RejectsTooManyParts(t *testing.T) {
	_, err := parseIPv4("1.2.3.4.5")
	require.Error(t, err)
}

func TestParseIPv6Loopback(t *testing.T) {
	addr, err := parseIPv6("::1")
	require.NoError(t, err)
	assert.Equal(t, "::1", serializeIPv6(addr))
}

func TestParseIPv6FullForm(t *testing.T) {
	addr, err := parseIPv6("2001:db8:0:0:0:0:2:1")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::2:1", serializeIPv6(addr))
}

func TestParseIPv6RejectsUnclosedCompression(t *testing.T) {
	_, err := parseIPv6(":::")
	require.Error(t, err)
}

func TestParseHostDomainLowercasesViaIDNA(t *testing.T) {
	h, err := parseHost("ExAmple.COM", true, func(ValidationError) {})
	require.NoError(t, err)
	assert.Equal(t, DomainHost, h.Type)
	assert.Equal(t, "example.com", h.Domain)
}

func TestParseHostOpaqueForNonSpecialScheme(t *testing.T) {
	h, err := parseHost("SomeHost", false, func(ValidationError) {})
	require.NoError(t, err)
	assert.Equal(t, OpaqueHost, h.Type)
	assert.Equal(t, "SomeHost", h.Opaque)
}

func TestParseHostRejectsForbiddenCodePoint(t *testing.T) {
	var got ValidationError
	_, err := parseHost("exa mple.com", true, func(e ValidationError) { got = e })
	require.Error(t, err)
	assert.Equal(t, DomainInvalidCodePoint, got)
}
