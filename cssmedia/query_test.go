package cssmedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleFeature(t *testing.T) {
	q, err := Parse("(width: 800px)")
	require.NoError(t, err)
	assert.True(t, q.Eval(Features{Width: 800}))
	assert.False(t, q.Eval(Features{Width: 801}))
}

func TestParseComparisonOperators(t *testing.T) {
	q, err := Parse("(width >= 800px)")
	require.NoError(t, err)
	assert.True(t, q.Eval(Features{Width: 800}))
	assert.True(t, q.Eval(Features{Width: 900}))
	assert.False(t, q.Eval(Features{Width: 799}))
}

func TestParseAndCombinesFeatures(t *testing.T) {
	q, err := Parse("(width >= 400px) and (height <= 900px)")
	require.NoError(t, err)
	assert.True(t, q.Eval(Features{Width: 500, Height: 700}))
	assert.False(t, q.Eval(Features{Width: 300, Height: 700}))
	assert.False(t, q.Eval(Features{Width: 500, Height: 1000}))
}

func TestParseOrCombinesFeatures(t *testing.T) {
	q, err := Parse("(width < 100px) or (width > 900px)")
	require.NoError(t, err)
	assert.True(t, q.Eval(Features{Width: 50}))
	assert.True(t, q.Eval(Features{Width: 1000}))
	assert.False(t, q.Eval(Features{Width: 500}))
}

func TestParseNotNegates(t *testing.T) {
	q, err := Parse("not (width: 100px)")
	require.NoError(t, err)
	assert.False(t, q.Eval(Features{Width: 100}))
	assert.True(t, q.Eval(Features{Width: 200}))
}

func TestParseParenthesizedGroup(t *testing.T) {
	q, err := Parse("((width > 100px) and (width < 200px)) or (height: 50px)")
	require.NoError(t, err)
	assert.True(t, q.Eval(Features{Width: 150}))
	assert.True(t, q.Eval(Features{Width: 0, Height: 50}))
	assert.False(t, q.Eval(Features{Width: 0, Height: 0}))
}

func TestParseRejectsUnsupportedFeature(t *testing.T) {
	_, err := Parse("(color: 8)")
	require.Error(t, err)
}

func TestParseRejectsMalformedQuery(t *testing.T) {
	_, err := Parse("(width:")
	require.Error(t, err)
}
