package dames

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Player struct {
	Name  string
	Color Color
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Color)
}

type Config struct {
	// PlayerOne plays Black and PlayerTwo plays White.
	PlayerOne string
	PlayerTwo string

	Layout Scenario
	// Placement, if set, seeds the board instead of Layout.
	Placement *Placement

	Log *zerolog.Logger
}

// Game sequences the turns of one game. It is the single entry point for
// player actions and is not safe for concurrent use.
type Game struct {
	black, white Player
	toMove       Color
	board        *Board
	log          zerolog.Logger
}

// Turn describes the outcome of one SubmitAction call.
type Turn struct {
	Mover  Player
	At     Coord
	Result Movement
	// ToMove is the player whose action comes next. It equals Mover after
	// a non-move and while a capture chain continues.
	ToMove Player
	// Constrained reports whether ToMove must capture.
	Constrained bool
	// Events lists the net state changes caused by the action, one per
	// tile and kind, in the order they first happened.
	Events []Event
}

// Switched reports whether the action handed the turn to the other player.
func (t Turn) Switched() bool {
	return t.Mover.Color != t.ToMove.Color
}

func New(cfg Config) (*Game, error) {
	b, err := BuildEmptyGraph()
	if err != nil {
		return nil, err
	}
	if cfg.Placement != nil {
		cfg.Placement.Apply(b)
	} else if err := Seed(b, cfg.Layout); err != nil {
		return nil, err
	}
	g := &Game{
		black:  Player{Name: cfg.PlayerOne, Color: Black},
		white:  Player{Name: cfg.PlayerTwo, Color: White},
		toMove: White,
		board:  b,
		log:    zerolog.Nop(),
	}
	if cfg.Log != nil {
		g.log = *cfg.Log
	}
	b.EvaluateConstraints(White)
	b.Drain()
	g.log.Debug().
		Stringer("layout", cfg.Layout).
		Bool("custom", cfg.Placement != nil).
		Bool("constrained", b.Constrained()).
		Msg("new game")
	return g, nil
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) ToMove() Player {
	return g.Player(g.toMove)
}

func (g *Game) Player(c Color) Player {
	switch c {
	case White:
		return g.white
	case Black:
		return g.black
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// SubmitAction clicks (row, col) on behalf of the player to move. The
// coordinates must be on the board.
func (g *Game) SubmitAction(row, col int) Turn {
	mover := g.toMove
	res := g.board.HandleSelection(mover, row, col)

	switch res {
	case Move:
		g.switchPlayer()
		g.board.EvaluateConstraints(g.toMove)
	case Capture:
		if g.board.EvaluateConstraints(g.toMove) {
			g.log.Debug().
				Stringer("player", mover).
				Stringer("at", Coord{row, col}).
				Msg("capture chain continues")
		} else {
			g.switchPlayer()
			g.board.EvaluateConstraints(g.toMove)
		}
	}

	turn := Turn{
		Mover:       g.Player(mover),
		At:          Coord{row, col},
		Result:      res,
		ToMove:      g.ToMove(),
		Constrained: g.board.Constrained(),
		Events:      g.board.Drain(),
	}
	if res != NoMovement {
		g.log.Debug().
			Stringer("player", mover).
			Stringer("at", turn.At).
			Stringer("result", res).
			Stringer("next", g.toMove).
			Bool("constrained", turn.Constrained).
			Msg("action")
	}
	return turn
}

func (g *Game) switchPlayer() {
	old := g.toMove
	g.toMove = old.Flip()
	g.board.events.record(Event{Kind: PlayerChanged, OldPlayer: old, NewPlayer: g.toMove})
}
