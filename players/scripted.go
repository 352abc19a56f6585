package players

import (
	"github.com/minaorangina/lostcities/game"
	"github.com/minaorangina/lostcities/protocol"
	"github.com/pkg/errors"
)

// ErrScriptExhausted is returned once a ScriptedPlayer has no moves left
var ErrScriptExhausted = errors.New("no scripted moves left")

// ScriptedPlayer replays a fixed list of decisions written as
// protocol.ParseDecision reads them, e.g. "Y5 e d". Bets resolve against
// the hand like keyboard input does.
type ScriptedPlayer struct {
	name  string
	moves []string
	next  int
}

func NewScriptedPlayer(name string, moves ...string) *ScriptedPlayer {
	return &ScriptedPlayer{name: name, moves: moves}
}

func (p *ScriptedPlayer) Name() string {
	return p.name
}

// Remaining returns the number of moves not yet played
func (p *ScriptedPlayer) Remaining() int {
	return len(p.moves) - p.next
}

// MakeDecision consumes the next move, whether or not it turns out to be
// playable
func (p *ScriptedPlayer) MakeDecision(g *game.Game) (protocol.PlayDecision, error) {
	if p.Remaining() == 0 {
		return protocol.PlayDecision{}, &protocol.CannotPlayError{Err: ErrScriptExhausted}
	}
	move := p.moves[p.next]
	p.next++

	decision, err := protocol.ParseDecision(move)
	if err != nil {
		return protocol.PlayDecision{}, err
	}
	card, err := resolveCard(g, decision.Card, decision.PlayTo)
	if err != nil {
		return protocol.PlayDecision{}, &protocol.CannotPlayError{Err: err}
	}
	decision.Card = card
	return decision, nil
}
