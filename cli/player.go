package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/context"

	"github.com/jdd/damier/dames"
	"github.com/jdd/damier/notation"
)

func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

// GetAction reads squares such as "b6" until one parses. "quit" or the end
// of input abandons the game.
func (c *cliPlayer) GetAction(ctx context.Context, g *dames.Game) (dames.Coord, bool) {
	for {
		if ctx.Err() != nil {
			return dames.Coord{}, false
		}
		fmt.Fprintf(c.out, "%s> ", g.ToMove())
		line, err := c.in.ReadString('\n')
		if err != nil && line == "" {
			return dames.Coord{}, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			return dames.Coord{}, false
		}
		at, err := notation.ParseSquare(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error: ", err)
			continue
		}
		return at, true
	}
}

// ScriptedPlayer clicks a fixed list of squares and then quits.
type ScriptedPlayer struct {
	Squares []dames.Coord
}

func (s *ScriptedPlayer) GetAction(ctx context.Context, g *dames.Game) (dames.Coord, bool) {
	if len(s.Squares) == 0 {
		return dames.Coord{}, false
	}
	at := s.Squares[0]
	s.Squares = s.Squares[1:]
	return at, true
}

// Clicks flattens actions into the squares a player would click.
func Clicks(as []notation.Action) []dames.Coord {
	var out []dames.Coord
	for _, a := range as {
		if len(a.Squares) == 0 {
			continue
		}
		from := a.Squares[0]
		for _, to := range a.Squares[1:] {
			out = append(out, from, to)
			from = to
		}
		if len(a.Squares) == 1 {
			out = append(out, from)
		}
	}
	return out
}
