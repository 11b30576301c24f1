// meta/meta.go
package meta

import "time"

// ITERATIONS is the default UCT iteration budget per decision.
const ITERATIONS = 25

// DEPTH is the default iterative deepening depth of the minimax engine.
const DEPTH = 3

// OPENING_PLIES are played at random without searching.
const OPENING_PLIES = 2

// TIME_LIMIT is the default per-move time limit enforced by the engine.
const TIME_LIMIT = 150 * time.Millisecond

// MAX_PLIES bounds a game; a knight's Isolation game never exceeds the board size.
const MAX_PLIES = 99
