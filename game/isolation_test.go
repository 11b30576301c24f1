package game

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsolationOpening(t *testing.T) {
	t.Run("first player can place anywhere", func(t *testing.T) {
		s := NewIsolation()

		require.Equal(t, Player(0), s.Player())
		require.Equal(t, 0, s.PlyCount())
		require.Len(t, s.Actions(), Size, "Every square should be open")
		require.False(t, s.IsTerminal())
	})

	t.Run("second player cannot place on the first player's square", func(t *testing.T) {
		s := NewIsolation()
		next, err := s.Result(At(5, 4))
		require.NoError(t, err)

		require.Equal(t, Player(1), next.Player())
		require.Equal(t, 1, next.PlyCount())
		require.Equal(t, At(5, 4), next.Location(0))
		require.Equal(t, NoLocation, next.Location(1))
		require.Len(t, next.Actions(), Size-1)
		require.NotContains(t, next.Actions(), At(5, 4))
	})
}

func TestIsolationResult(t *testing.T) {
	t.Run("knight jumps from a corner", func(t *testing.T) {
		s, err := NewPosition(2, [2]Location{At(0, 0), At(10, 8)})
		require.NoError(t, err)

		require.ElementsMatch(t, []Location{At(1, 2), At(2, 1)}, s.Actions())
	})

	t.Run("moving blocks the destination and keeps the origin blocked", func(t *testing.T) {
		s, err := NewPosition(2, [2]Location{At(0, 0), At(10, 8)})
		require.NoError(t, err)

		next, err := s.Result(At(2, 1))
		require.NoError(t, err)

		iso := next.(Isolation)
		require.False(t, iso.board.isOpen(At(0, 0)), "Origin should stay blocked")
		require.False(t, iso.board.isOpen(At(2, 1)), "Destination should be blocked")
		require.Equal(t, At(2, 1), next.Location(0))
		require.Equal(t, Player(1), next.Player())
	})

	t.Run("does not mutate the input state", func(t *testing.T) {
		s, err := NewPosition(2, [2]Location{At(0, 0), At(10, 8)})
		require.NoError(t, err)
		before := s.String()

		_, err = s.Result(At(1, 2))
		require.NoError(t, err)

		require.Equal(t, before, s.String())
		require.Equal(t, At(0, 0), s.Location(0))
		require.Equal(t, 2, s.PlyCount())
	})

	t.Run("rejects an illegal action", func(t *testing.T) {
		s, err := NewPosition(2, [2]Location{At(0, 0), At(10, 8)})
		require.NoError(t, err)

		_, err = s.Result(At(5, 5))

		var invalid *InvalidActionError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, At(5, 5), invalid.Action)
		require.Equal(t, Player(0), invalid.Player)
	})
}

func TestIsolationTerminal(t *testing.T) {
	// Player 0 in the corner with both jumps blocked
	s, err := NewPosition(2, [2]Location{At(0, 0), At(10, 8)}, At(1, 2), At(2, 1))
	require.NoError(t, err)

	require.True(t, s.IsTerminal())
	require.Empty(t, s.Actions())
	require.Equal(t, math.Inf(-1), s.Utility(0), "Player to move has lost")
	require.Equal(t, math.Inf(1), s.Utility(1), "Opponent has won")
}

func TestIsolationUtilityNonTerminal(t *testing.T) {
	s := NewIsolation()

	require.Equal(t, 0.0, s.Utility(0))
	require.Equal(t, 0.0, s.Utility(1))
}

func TestNewPosition(t *testing.T) {
	t.Run("derives the player to move from the ply count", func(t *testing.T) {
		s, err := NewPosition(5, [2]Location{At(3, 3), At(7, 7)})
		require.NoError(t, err)
		require.Equal(t, Player(1), s.Player())
	})

	t.Run("rejects off-board locations", func(t *testing.T) {
		_, err := NewPosition(2, [2]Location{Location(Size), At(1, 1)})
		require.Error(t, err)
	})

	t.Run("rejects negative ply", func(t *testing.T) {
		_, err := NewPosition(-1, [2]Location{NoLocation, NoLocation})
		require.Error(t, err)
	})
}

func TestMobility(t *testing.T) {
	// Player 0 has 2 jumps from the corner, player 1 has 8 from the middle
	s, err := NewPosition(2, [2]Location{At(0, 0), At(5, 4)})
	require.NoError(t, err)

	require.Equal(t, -6.0, Mobility(s, 0))
	require.Equal(t, 6.0, Mobility(s, 1))
}

func TestIsolationString(t *testing.T) {
	s, err := NewPosition(2, [2]Location{At(0, 0), At(1, 0)}, At(2, 0))
	require.NoError(t, err)

	rows := s.String()
	require.Equal(t, "12#........\n", rows[:Width+1])
}
