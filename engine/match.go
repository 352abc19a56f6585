package engine

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/minaorangina/lostcities/deck"
	"github.com/minaorangina/lostcities/game"
	"github.com/minaorangina/lostcities/protocol"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// DefaultMaxAttempts is how many times a player is asked for a decision
// before the turn is abandoned
const DefaultMaxAttempts = 3

var (
	ErrTooManyAttempts = errors.New("too many failed attempts")
	ErrMissingPlayer   = errors.New("a player is required for each side")
	ErrNoSource        = errors.New("a random source or a starting game is required")
	ErrNothingToUndo   = errors.New("no turn to undo")
)

// TooManyAttemptsError is returned by Step when a player has run out of
// attempts. It matches ErrTooManyAttempts and unwraps to the last failure.
type TooManyAttemptsError struct {
	Player   string
	Attempts int
	Err      error
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("%s failed %d attempts: %s", e.Player, e.Attempts, e.Err)
}

func (e *TooManyAttemptsError) Unwrap() error { return e.Err }

func (e *TooManyAttemptsError) Is(target error) bool {
	return target == ErrTooManyAttempts
}

// NewID constructs a match ID
func NewID() string {
	return uuid.NewV4().String()
}

// MatchOpts configures a Match. Either Source or Game must be set; Game
// wins when both are.
type MatchOpts struct {
	ID          string
	Up          protocol.Player
	Down        protocol.Player
	Source      deck.Source
	Game        *game.Game
	Logger      hclog.Logger
	MaxAttempts int
}

// Match drives a game between two players, one turn at a time, and keeps
// every position it has been through.
type Match struct {
	id          string
	players     [game.NumSides]protocol.Player
	history     []*game.Game
	starts      []int // index in history of the position each turn began from
	logger      hclog.Logger
	maxAttempts int
}

func NewMatch(opts MatchOpts) (*Match, error) {
	if opts.Up == nil || opts.Down == nil {
		return nil, ErrMissingPlayer
	}

	start := opts.Game
	if start == nil {
		if opts.Source == nil {
			return nil, ErrNoSource
		}
		start = game.New(opts.Source)
	}

	id := opts.ID
	if id == "" {
		id = NewID()
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Match{
		id:          id,
		players:     [game.NumSides]protocol.Player{opts.Up, opts.Down},
		history:     []*game.Game{start},
		logger:      logger.Named("match").With("match", id),
		maxAttempts: maxAttempts,
	}, nil
}

func (m *Match) ID() string {
	return m.id
}

// Game returns the current position
func (m *Match) Game() *game.Game {
	return m.history[len(m.history)-1]
}

func (m *Match) Player(side game.Side) protocol.Player {
	return m.players[side]
}

// Turns returns the number of completed turns
func (m *Match) Turns() int {
	return len(m.starts)
}

// History returns every position so far, oldest first. A completed turn
// adds the position after the play and, unless the game ended, the
// position after the turn passed.
func (m *Match) History() []*game.Game {
	return append([]*game.Game{}, m.history...)
}

// Step plays one turn. The current player is asked for a decision until
// one applies cleanly or MaxAttempts is reached. A failure to read from
// the player ends the turn at once.
func (m *Match) Step() (*game.Game, error) {
	current := m.Game()
	if current.IsOver() {
		return nil, game.ErrGameOver
	}

	side := current.Turn()
	player := m.players[side]
	logger := m.logger.With("side", side.String(), "player", player.Name())

	var lastErr error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		decision, err := player.MakeDecision(current)
		if err == nil {
			var played *game.Game
			played, err = decision.ApplyTo(current)
			if err == nil {
				return m.record(played, decision, logger)
			}
			err = &protocol.CannotPlayError{Err: err}
		}

		var ioErr *protocol.IOError
		if errors.As(err, &ioErr) {
			logger.Error("cannot reach player", "error", err)
			return nil, errors.Wrapf(err, "waiting for %s", player.Name())
		}

		logger.Warn("cannot play", "attempt", attempt, "error", err)
		lastErr = err
	}

	return nil, &TooManyAttemptsError{Player: player.Name(), Attempts: m.maxAttempts, Err: lastErr}
}

func (m *Match) record(played *game.Game, decision protocol.PlayDecision, logger hclog.Logger) (*game.Game, error) {
	m.starts = append(m.starts, len(m.history)-1)
	m.history = append(m.history, played)
	logger.Info("played", "decision", decision.String(), "deck", played.Deck().RemainingCount())

	if played.IsOver() {
		logger.Info("deck exhausted", "turns", m.Turns())
		return played, nil
	}

	next, err := played.EndTurn()
	if err != nil {
		return nil, err
	}
	m.history = append(m.history, next)
	return next, nil
}

// Run steps until the deck runs out and returns the final position
func (m *Match) Run() (*game.Game, error) {
	m.logger.Info("match started",
		"up", m.players[game.Up].Name(),
		"down", m.players[game.Down].Name(),
		"deck", m.Game().Deck().RemainingCount())

	for !m.Game().IsOver() {
		if _, err := m.Step(); err != nil {
			m.logger.Error("match stopped", "turns", m.Turns(), "error", err)
			return m.Game(), err
		}
	}

	m.logger.Info("match over", "turns", m.Turns())
	return m.Game(), nil
}

// Undo returns to the position the last completed turn began from
func (m *Match) Undo() (*game.Game, error) {
	if len(m.starts) == 0 {
		return nil, ErrNothingToUndo
	}
	last := m.starts[len(m.starts)-1]
	m.starts = m.starts[:len(m.starts)-1]
	m.history = m.history[:last+1]

	m.logger.Info("undo", "turns", m.Turns())
	return m.Game(), nil
}
