package game

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// Isolation is a knight's Isolation position. Every square a piece has
// occupied stays blocked for the rest of the game. The player to move loses
// when their piece has no open knight jump.
type Isolation struct {
	board board
	locs  [2]Location
	ply   int
}

// NewIsolation returns the empty starting position
func NewIsolation() Isolation {
	return Isolation{
		board: fullBoard(),
		locs:  [2]Location{NoLocation, NoLocation},
	}
}

// NewPosition sets up an arbitrary position. Player locations and blocked
// squares are closed on the board; the player to move is derived from ply.
func NewPosition(ply int, locs [2]Location, blocked ...Location) (Isolation, error) {
	if ply < 0 {
		return Isolation{}, fmt.Errorf("negative ply count %d", ply)
	}
	s := NewIsolation()
	s.ply = ply
	for _, loc := range append([]Location{locs[0], locs[1]}, blocked...) {
		if loc == NoLocation {
			continue
		}
		if loc < 0 || loc >= Size {
			return Isolation{}, fmt.Errorf("location %d is off the board", int(loc))
		}
		s.board = s.board.block(loc)
	}
	s.locs = locs
	return s, nil
}

func (s Isolation) Player() Player {
	return Player(s.ply % 2)
}

func (s Isolation) PlyCount() int {
	return s.ply
}

func (s Isolation) Location(p Player) Location {
	return s.locs[p]
}

// Liberties lists the open squares reachable from loc. An unplaced piece can
// reach every open square.
func (s Isolation) Liberties(loc Location) []Location {
	if loc == NoLocation {
		return s.board.openSquares()
	}
	return s.board.jumpsFrom(loc)
}

func (s Isolation) Actions() []Action {
	return s.Liberties(s.locs[s.Player()])
}

func (s Isolation) IsTerminal() bool {
	return !s.hasLiberties(s.Player())
}

func (s Isolation) hasLiberties(p Player) bool {
	return len(s.Liberties(s.locs[p])) > 0
}

func (s Isolation) Result(a Action) (State, error) {
	if !slices.Contains(s.Actions(), a) {
		return nil, &InvalidActionError{Action: a, Player: s.Player(), Ply: s.ply}
	}
	next := s
	next.board = s.board.block(a)
	next.locs[s.Player()] = a
	next.ply++
	return next, nil
}

// Utility is +Inf when p has won, -Inf when p has lost and 0 while the game
// is still going.
func (s Isolation) Utility(p Player) float64 {
	if !s.IsTerminal() {
		return 0
	}
	if p == s.Player() {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// String renders the board with rows top to bottom: '1' and '2' for the
// pieces, '#' for blocked squares and '.' for open squares.
func (s Isolation) String() string {
	var sb strings.Builder
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			loc := At(col, row)
			switch {
			case loc == s.locs[0]:
				sb.WriteByte('1')
			case loc == s.locs[1]:
				sb.WriteByte('2')
			case s.board.isOpen(loc):
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
