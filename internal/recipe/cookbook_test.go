package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookbook(t *testing.T) {
	cb := NewCookbook()
	assert.Empty(t, cb.List())

	for _, name := range []string{"Pancakes", "Omelette", "Pancakes"} {
		r, err := New(name)
		require.NoError(t, err)
		cb.Add(r)
	}

	list := cb.List()
	require.Len(t, list, 3, "recipes with the same name are not deduplicated")
	assert.Equal(t, "Pancakes", list[0].Name)
	assert.Equal(t, "Omelette", list[1].Name)

	found, ok := cb.Find("omelette")
	require.True(t, ok)
	assert.Same(t, list[1], found)

	found, ok = cb.Find("PANCAKES")
	require.True(t, ok)
	assert.Same(t, list[0], found)

	_, ok = cb.Find("Waffles")
	assert.False(t, ok)
}
