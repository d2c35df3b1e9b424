package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginHTTP(t *testing.T) {
	u, err := Parse("https://example.com/a", nil)
	require.NoError(t, err)
	origin := u.Origin()
	assert.False(t, origin.Opaque)
	assert.Equal(t, "https://example.com", origin.Serialize())
}

func TestOriginFileIsOpaque(t *testing.T) {
	u, err := Parse("file:///etc/passwd", nil)
	require.NoError(t, err)
	origin := u.Origin()
	assert.True(t, origin.Opaque)
	assert.Equal(t, "null", origin.Serialize())
}

func TestOriginSameComparesSchemeHostPort(t *testing.T) {
	a, err := Parse("https://example.com/a", nil)
	require.NoError(t, err)
	b, err := Parse("https://example.com/b", nil)
	require.NoError(t, err)
	assert.True(t, a.Origin().Same(b.Origin()))

	c, err := Parse("https://example.org/a", nil)
	require.NoError(t, err)
	assert.False(t, a.Origin().Same(c.Origin()))
}

func TestBlobURLCreateEmbedsOrigin(t *testing.T) {
	u, err := Parse("https://example.com/", nil)
	require.NoError(t, err)
	blob := BlobURLCreate(u.Origin())
	assert.Contains(t, blob, "blob:https://example.com/")
}
