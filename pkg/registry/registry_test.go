package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	r := NewBaseRegistry[string]()

	require.NoError(t, r.Register("a", "alpha"))

	got, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "alpha", got)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewBaseRegistry[int]()
	assert.Error(t, r.Register("", 1))
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewBaseRegistry[int]()

	require.NoError(t, r.Register("a", 1))
	assert.Error(t, r.Register("a", 2))

	got, _ := r.Get("a")
	assert.Equal(t, 1, got, "original registration must be preserved")
}

func TestListPreservesRegistrationOrder(t *testing.T) {
	r := NewBaseRegistry[int]()

	require.NoError(t, r.Register("c", 3))
	require.NoError(t, r.Register("a", 1))
	require.NoError(t, r.Register("b", 2))

	assert.Equal(t, []string{"c", "a", "b"}, r.Names())
	assert.Equal(t, []int{3, 1, 2}, r.List())
	assert.Equal(t, 3, r.Count())
}
