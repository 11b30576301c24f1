package game

import "fmt"

// Player identifies one of the two players. Player 0 moves first.
type Player int

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p)+1)
}

// Location is a square on the board, or NoLocation for a piece not yet placed
type Location int

const NoLocation Location = -1

// Action is the square the player to move occupies next: a placement square
// during the opening plies, a knight jump destination afterwards.
type Action = Location

// State should be immutable - operations on State always return a new copy
type State interface {
	Actions() []Action
	IsTerminal() bool
	Result(Action) (State, error)
	Player() Player
	PlyCount() int
	Location(Player) Location
	Liberties(Location) []Location
	// Utility is only meaningful on terminal states, it returns 0 otherwise
	Utility(Player) float64
}

// Evaluates a non-terminal state from the perspective of a fixed player.
type Evaluate func(state State, player Player) float64

// InvalidActionError is returned by State.Result for an action that is not
// in State.Actions().
type InvalidActionError struct {
	Action Action
	Player Player
	Ply    int
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %v for %v at ply %d", e.Action, e.Player, e.Ply)
}
