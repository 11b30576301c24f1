package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChoice(t *testing.T) {
	t.Run("always returns a member", func(t *testing.T) {
		r := NewRand(7)
		items := []int{3, 5, 8}
		for i := 0; i < 100; i++ {
			require.Contains(t, items, Choice(r, items))
		}
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		items := []string{"a", "b", "c", "d"}
		r1, r2 := NewRand(42), NewRand(42)
		for i := 0; i < 20; i++ {
			require.Equal(t, Choice(r1, items), Choice(r2, items))
		}
	})

	t.Run("panics on empty slice", func(t *testing.T) {
		require.Panics(t, func() {
			Choice(NewRand(1), []int{})
		})
	})
}
