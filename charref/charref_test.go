package charref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupWithSemicolon(t *testing.T) {
	m, ok := Lookup([]byte("amp;rest"))
	require.True(t, ok)
	assert.Equal(t, "amp;", m.Name)
	assert.Equal(t, int32('&'), m.First)
	assert.Zero(t, m.Second)
}

func TestLookupLegacyWithoutSemicolon(t *testing.T) {
	m, ok := Lookup([]byte("lt3"))
	require.True(t, ok)
	assert.Equal(t, "lt", m.Name)
	assert.Equal(t, int32('<'), m.First)
}

func TestLookupPrefersLongestMatch(t *testing.T) {
	// "notin;" is a distinct, longer reference than the legacy-form "not".
	m, ok := Lookup([]byte("notin;"))
	require.True(t, ok)
	assert.Equal(t, "notin;", m.Name)
}

func TestLookupSupplementalEntries(t *testing.T) {
	m, ok := Lookup([]byte("bigcup;"))
	require.True(t, ok)
	assert.Equal(t, int32(0x22C3), m.First)

	m, ok = Lookup([]byte("supset;"))
	require.True(t, ok)
	assert.Equal(t, int32(0x2283), m.First)

	m, ok = Lookup([]byte("Dopf;"))
	require.True(t, ok)
	assert.Equal(t, int32(0x1D53B), m.First)
}

func TestLookupNoMatch(t *testing.T) {
	_, ok := Lookup([]byte("zzzznotarealref;"))
	assert.False(t, ok)
}

func TestLookupEmpty(t *testing.T) {
	_, ok := Lookup(nil)
	assert.False(t, ok)
}
