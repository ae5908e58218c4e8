package notation

import (
	"fmt"

	"github.com/jdd/damier/dames"
	"github.com/rs/zerolog"
)

// Iterator replays a script one Action at a time.
type Iterator struct {
	script *Script
	i      int

	err  error
	game *dames.Game

	number int
	action Action
	turns  []dames.Turn
}

func (s *Script) Iterator(log *zerolog.Logger) *Iterator {
	g, err := s.NewGame(log)
	return &Iterator{
		script: s,
		game:   g,
		err:    err,
	}
}

func (i *Iterator) Err() error {
	return i.err
}

// Next applies the next action, and reports whether there was one that
// applied cleanly.
func (i *Iterator) Next() bool {
	if i.err != nil {
		return false
	}
	for i.i < len(i.script.Ops) {
		op := i.script.Ops[i.i]
		i.i++
		switch o := op.(type) {
		case *MoveNumber:
			i.number = o.Number
		case *Play:
			i.action = o.Action
			i.turns, i.err = Apply(i.game, o.Action)
			if i.err != nil {
				i.err = fmt.Errorf("%d. %s: %w", i.number, o.Source(), i.err)
				return false
			}
			return true
		}
	}
	return false
}

func (i *Iterator) Game() *dames.Game {
	return i.game
}

func (i *Iterator) Number() int {
	return i.number
}

func (i *Iterator) Action() Action {
	return i.action
}

// Turns returns the turns produced by the last action.
func (i *Iterator) Turns() []dames.Turn {
	return i.turns
}

// Apply clicks through an action on g. Every destination must be a legal
// one: a click that leaves the board unchanged, or a capture recorded as a
// plain move (or the reverse), is an error, and so is a capture that ends
// while the piece can still take. Between jumps of a chain the capturing
// piece is reselected.
func Apply(g *dames.Game, a Action) ([]dames.Turn, error) {
	var turns []dames.Turn
	click := func(c dames.Coord) dames.Turn {
		t := g.SubmitAction(c.Row, c.Col)
		turns = append(turns, t)
		return t
	}
	if len(a.Squares) == 0 {
		return nil, ErrBadAction
	}
	from := a.Squares[0]
	for _, c := range a.Squares {
		if !c.Valid() {
			return turns, fmt.Errorf("%w: %s", ErrBadSquare, c)
		}
	}
	if len(a.Squares) == 1 {
		click(from)
		return turns, nil
	}
	mover := g.ToMove().Color
	var last dames.Turn
	for _, to := range a.Squares[1:] {
		if g.ToMove().Color != mover {
			return turns, fmt.Errorf("%s: turn already passed to %s", FormatSquare(to), g.ToMove().Color)
		}
		if sel := click(from); g.Board().Selected() == nil {
			return turns, fmt.Errorf("%s: no %s piece to select", FormatSquare(from), sel.Mover.Color)
		}
		t := click(to)
		want := dames.Move
		if a.Capture {
			want = dames.Capture
		}
		if t.Result != want {
			return turns, fmt.Errorf("%s-%s: got %s, want %s", FormatSquare(from), FormatSquare(to), t.Result, want)
		}
		from = to
		last = t
	}
	if a.Capture && !last.Switched() {
		return turns, fmt.Errorf("%s: capture chain stops early at %s", FormatAction(a), FormatSquare(from))
	}
	return turns, nil
}
