package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomata(t *testing.T) {
	alphabet := []rune{'a', 'b'}
	automata := &Automata{}

	t.Run("MakeEmpty", func(t *testing.T) {
		a, err := automata.MakeEmpty(alphabet)
		require.NoError(t, err)
		assert.Equal(t, 1, a.NumStates())
		for _, w := range allStrings(alphabet, 3) {
			assert.False(t, Run(a, w))
		}
	})

	t.Run("MakeEmptyString", func(t *testing.T) {
		a, err := automata.MakeEmptyString(alphabet)
		require.NoError(t, err)
		assert.True(t, Run(a, ""))
		assert.False(t, Run(a, "a"))
		assert.False(t, Run(a, "ba"))
	})

	t.Run("MakeAnyString", func(t *testing.T) {
		a, err := automata.MakeAnyString(alphabet)
		require.NoError(t, err)
		for _, w := range allStrings(alphabet, 3) {
			assert.True(t, Run(a, w))
		}
		assert.False(t, Run(a, "c"))
	})

	t.Run("MinimizeEmptyString", func(t *testing.T) {
		a, err := automata.MakeEmptyString(alphabet)
		require.NoError(t, err)
		m, err := Minimize(a)
		require.NoError(t, err)
		assert.Equal(t, 2, m.NumStates())
	})
}
