package engine

import (
	"context"
	"errors"
	"fmt"
	"isolation/agent"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// LocalEngine plays two in-process agents against each other. Agents[i]
// plays game.Player(i).
type LocalEngine struct {
	State  game.State
	Agents [2]agent.Agent
	Limit  time.Duration // Per move
}

func NewLocalEngine(agents [2]agent.Agent, limit time.Duration) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if limit <= 0 {
		limit = meta.TIME_LIMIT
	}
	return &LocalEngine{
		State:  game.NewIsolation(),
		Agents: agents,
		Limit:  limit,
	}
}

// submission is the last action an agent submitted for one move
type submission struct {
	mu     sync.Mutex
	action game.Action
	ok     bool
}

func (s *submission) submit(action game.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.action = action
	s.ok = true
}

func (s *submission) last() (game.Action, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.action, s.ok
}

func (e *LocalEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric
	var loser game.Player

	log.Debug().Stringer("player", e.State.Player()).Msg("game starting")

	for move := 0; ; move++ {
		player := e.State.Player()
		if e.State.IsTerminal() {
			loser = player
			break
		}
		if move >= MaxMoves {
			// Unreachable on an Isolation board, but the mover loses as with no liberties
			log.Warn().Int("moves", move).Msg("game stopped at the move limit")
			loser = player
			break
		}

		start := time.Now()
		action, completed, err := e.request(ctx, e.Agents[player], e.State)
		if ctx.Err() != nil {
			return "", gameMetric, moveMetrics, ctx.Err()
		}
		forfeit := ""
		if err != nil {
			forfeit = ForfeitError
			if errors.Is(err, ErrNoSubmission) {
				forfeit = ForfeitTimeout
			}
		}

		// Reporters are only asked once Decide has returned, a search still
		// running holds the agent's lock
		var moveMetric metrics.MoveMetric
		if reporter, ok := e.Agents[player].(agent.Reporter); ok && completed && err == nil {
			moveMetric = reporter.LastMetric()
		}
		switch {
		case forfeit != "":
			moveMetric.Decision = forfeit
		case !completed:
			moveMetric.Decision = ForfeitTimeout // Played the last submission
		}
		moveMetric.Step = e.State.PlyCount() + 1
		moveMetric.Player = int(player)
		moveMetric.Action = int(action)
		moveMetric.Elapsed = time.Since(start)
		moveMetrics = append(moveMetrics, moveMetric)

		if forfeit != "" {
			gameMetric.Forfeit = forfeit
			log.Info().Err(err).Stringer("player", player).Int("ply", e.State.PlyCount()).Msg("player forfeits")
			loser = player
			break
		}

		next, err := e.State.Result(action)
		if err != nil {
			gameMetric.Forfeit = ForfeitIllegal
			log.Info().Err(err).Stringer("player", player).Int("ply", e.State.PlyCount()).Msg("player forfeits")
			loser = player
			break
		}
		e.State = next

		log.Debug().
			Stringer("player", player).
			Stringer("action", action).
			Str("decision", moveMetric.Decision).
			Dur("elapsed", moveMetric.Elapsed).
			Msg("move played")
		if s, ok := e.State.(fmt.Stringer); ok {
			log.Debug().Msg("\n" + s.String())
		}
	}

	winner := loser.Opponent().String()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Str("winner", winner).Int("moves", gameMetric.TotalMoves).Str("forfeit", gameMetric.Forfeit).Msg("game over")
	return winner, gameMetric, moveMetrics, nil
}

// request runs Decide in its own goroutine and returns the last action
// submitted before Decide returned or the time limit passed, whichever comes
// first. completed reports whether Decide returned in time. A search that
// overruns the limit is not cancelled, it finishes in the background.
func (e *LocalEngine) request(ctx context.Context, a agent.Agent, state game.State) (action game.Action, completed bool, err error) {
	s := &submission{action: game.NoLocation}
	done := make(chan error, 1)
	go func() {
		done <- a.Decide(state, s.submit)
	}()

	timer := time.NewTimer(e.Limit)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return game.NoLocation, true, fmt.Errorf("%w: %w", ErrDecide, err)
		}
		completed = true
	case <-timer.C:
	case <-ctx.Done():
		return game.NoLocation, false, ctx.Err()
	}

	action, ok := s.last()
	if !ok {
		return game.NoLocation, completed, ErrNoSubmission
	}
	return action, completed, nil
}
