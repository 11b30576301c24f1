package game

// Mobility scores a state by the difference between the player's liberties and
// the opponent's liberties. The player is fixed by the caller, not taken from
// the state's player to move.
func Mobility(s State, player Player) float64 {
	own := s.Liberties(s.Location(player))
	opp := s.Liberties(s.Location(player.Opponent()))
	return float64(len(own) - len(opp))
}
