package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/net/context"

	"github.com/jdd/damier/dames"
	"github.com/jdd/damier/notation"
)

// Player chooses the next tile to click. It returns false to abandon the
// game.
type Player interface {
	GetAction(ctx context.Context, g *dames.Game) (dames.Coord, bool)
}

type GlyphSet struct {
	Man  string
	King string
}

type Glyphs struct {
	White, Black GlyphSet

	Dark      string
	Light     string
	Reachable string
}

type CLI struct {
	game    *dames.Game
	actions []notation.Action
	from    dames.Coord
	raiding bool

	Config dames.Config
	Glyphs *Glyphs
	Out    io.Writer
	White  Player
	Black  Player
}

var DefaultGlyphs = Glyphs{
	White: GlyphSet{
		Man:  "w",
		King: "W",
	},
	Black: GlyphSet{
		Man:  "b",
		King: "B",
	},
	Dark:      ".",
	Light:     " ",
	Reachable: "o",
}

var UnicodeGlyphs = Glyphs{
	White: GlyphSet{
		Man:  "⛀",
		King: "⛁",
	},
	Black: GlyphSet{
		Man:  "⛂",
		King: "⛃",
	},
	Dark:      "·",
	Light:     " ",
	Reachable: "◦",
}

// Play runs one game until a side has no pieces left or a player quits.
func (c *CLI) Play(ctx context.Context) (*dames.Game, error) {
	g, err := dames.New(c.Config)
	if err != nil {
		return nil, err
	}
	c.game = g
	c.actions = nil
	c.raiding = false
	for {
		c.render()
		if w := c.winner(); w != dames.NoColor {
			counts := g.Board().Counts()
			fmt.Fprintf(c.Out, "Game Over! %s wins.\n", g.Player(w))
			fmt.Fprintf(c.Out, "pieces: white=%d black=%d\n",
				counts.WhiteMen+counts.WhiteKings,
				counts.BlackMen+counts.BlackKings)
			return g, nil
		}
		if ctx.Err() != nil {
			return g, ctx.Err()
		}
		p := c.Black
		if g.ToMove().Color == dames.White {
			p = c.White
		}
		at, ok := p.GetAction(ctx, g)
		if !ok {
			fmt.Fprintf(c.Out, "%s abandons the game.\n", g.ToMove())
			return g, nil
		}
		if !at.Valid() {
			fmt.Fprintln(c.Out, "off the board:", at)
			continue
		}
		c.record(g.SubmitAction(at.Row, at.Col))
	}
}

func (c *CLI) Game() *dames.Game {
	return c.game
}

// Actions returns the moves and captures played so far.
func (c *CLI) Actions() []notation.Action {
	return c.actions
}

func (c *CLI) winner() dames.Color {
	b := c.game.Board()
	switch {
	case b.Pieces(dames.Black) == 0:
		return dames.White
	case b.Pieces(dames.White) == 0:
		return dames.Black
	}
	return dames.NoColor
}

func (c *CLI) record(t dames.Turn) {
	switch t.Result {
	case dames.NoMovement:
		if c.game.Board().Selected() == nil {
			fmt.Fprintf(c.Out, "no %s piece at %s\n", t.Mover.Color, notation.FormatSquare(t.At))
			return
		}
		c.from = t.At
		return
	case dames.Move:
		c.actions = append(c.actions, notation.Action{
			Squares: []dames.Coord{c.from, t.At},
		})
	case dames.Capture:
		if c.raiding && len(c.actions) > 0 {
			last := &c.actions[len(c.actions)-1]
			last.Squares = append(last.Squares, t.At)
		} else {
			c.actions = append(c.actions, notation.Action{
				Squares: []dames.Coord{c.from, t.At},
				Capture: true,
			})
		}
		c.raiding = !t.Switched()
	}
	a := c.actions[len(c.actions)-1]
	if t.Mover.Color == dames.White {
		fmt.Fprintf(c.Out, "%d. %s\n", c.number(), notation.FormatAction(a))
	} else {
		fmt.Fprintf(c.Out, "%d. ... %s\n", c.number(), notation.FormatAction(a))
	}
	c.from = t.At
}

func (c *CLI) number() int {
	return (len(c.actions) + 1) / 2
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.game)
}

// RenderBoard draws g's board with row 0 on top. Selected pieces are
// wrapped in parentheses, pieces that must capture are marked with '!'.
func RenderBoard(gl *Glyphs, out io.Writer, g *dames.Game) {
	if gl == nil {
		gl = &DefaultGlyphs
	}
	b := g.Board()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]", g.ToMove())
	if b.Constrained() {
		fmt.Fprintf(out, " [must capture]")
	}
	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for row := 0; row < dames.Size; row++ {
		fmt.Fprintf(w, "%c.\t", '0'+row)
		for col := 0; col < dames.Size; col++ {
			fmt.Fprintf(w, "%s\t", cell(gl, b.TileAt(row, col)))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for col := 0; col < dames.Size; col++ {
		fmt.Fprintf(w, "%c.\t", 'a'+col)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	n := b.Counts()
	fmt.Fprintf(out, "pieces: W:%d+%d B:%d+%d\n",
		n.WhiteMen, n.WhiteKings, n.BlackMen, n.BlackKings)
}

func cell(gl *Glyphs, t *dames.Tile) string {
	var s string
	switch t.Occupant() {
	case dames.Empty:
		switch {
		case t.Reachable():
			s = gl.Reachable
		case t.Coord().Dark():
			s = gl.Dark
		default:
			s = gl.Light
		}
	case dames.WhiteMan:
		s = gl.White.Man
	case dames.WhiteKing:
		s = gl.White.King
	case dames.BlackMan:
		s = gl.Black.Man
	case dames.BlackKing:
		s = gl.Black.King
	default:
		panic(fmt.Sprintf("bad piece %v", t.Occupant()))
	}
	if t.Selected() {
		s = "(" + s + ")"
	}
	if t.Constrained() {
		s += "!"
	}
	return s
}
