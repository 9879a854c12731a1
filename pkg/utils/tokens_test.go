package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounterCount(t *testing.T) {
	counter, err := NewTokenCounter("gpt-4o")
	require.NoError(t, err)

	assert.Equal(t, 0, counter.Count(""))
	assert.Greater(t, counter.Count("hello world, this is a test"), 0)
}

func TestTokenCounterFallsBackForUnknownModel(t *testing.T) {
	counter, err := NewTokenCounter("gemini-2.5-flash")
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", counter.GetModel())
	assert.Greater(t, counter.Count("some text"), 0)
}

func TestTokenCounterTruncate(t *testing.T) {
	counter, err := NewTokenCounter("gpt-4o")
	require.NoError(t, err)

	short, cut := counter.Truncate("hello", 100)
	assert.Equal(t, "hello", short)
	assert.False(t, cut)

	long := ""
	for i := 0; i < 200; i++ {
		long += "word "
	}
	truncated, cut := counter.Truncate(long, 10)
	assert.True(t, cut)
	assert.Less(t, counter.Count(truncated), counter.Count(long))
	assert.LessOrEqual(t, counter.Count(truncated), 10)
}
