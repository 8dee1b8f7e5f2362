package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	t.Run("Root has no value or parent", func(t *testing.T) {
		root := newRoot[rune]()
		_, ok := root.Value()
		assert.False(t, ok)
		assert.Nil(t, root.Parent())
		assert.False(t, root.IsTerminating())
		assert.Equal(t, 0, root.Len())
	})

	t.Run("add creates a child", func(t *testing.T) {
		root := newRoot[rune]()
		root.add('x')

		child, ok := root.Child('x')
		require.True(t, ok)
		v, ok := child.Value()
		assert.True(t, ok)
		assert.Equal(t, 'x', v)
		assert.Same(t, root, child.Parent())
		assert.False(t, child.IsTerminating())
	})

	t.Run("add is idempotent", func(t *testing.T) {
		root := newRoot[rune]()
		root.add('x')
		first, _ := root.Child('x')
		first.terminating = true
		first.add('y')

		root.add('x')
		second, ok := root.Child('x')
		require.True(t, ok)
		assert.Same(t, first, second)
		assert.True(t, second.IsTerminating())
		assert.Equal(t, 1, second.Len())
		assert.Equal(t, 1, root.Len())
	})

	t.Run("Missing child", func(t *testing.T) {
		root := newRoot[rune]()
		child, ok := root.Child('q')
		assert.False(t, ok)
		assert.Nil(t, child)
	})

	t.Run("Other label types", func(t *testing.T) {
		root := newRoot[string]()
		root.add("ab")
		root.add("cd")
		assert.Equal(t, 2, root.Len())
		child, ok := root.Child("cd")
		require.True(t, ok)
		assert.Same(t, root, child.Parent())
	})
}
