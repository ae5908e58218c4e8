package scenarios

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/jdd/damier/cli"
	"github.com/jdd/damier/cmd/internal/opt"
	"github.com/jdd/damier/dames"
	"github.com/jdd/damier/notation"
	"github.com/rs/zerolog/log"
)

type Command struct {
	log opt.Log

	click   string
	unicode bool
	diagram bool
}

func (*Command) Name() string     { return "scenarios" }
func (*Command) Synopsis() string { return "List the built-in layouts or show one" }
func (*Command) Usage() string {
	return `scenarios [flags] [LAYOUT]

With no arguments, list the built-in layouts. Given a layout, render it with
the pieces White must capture with and, with -click, the destinations of the
clicked piece.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.log.AddFlags(flags)
	flags.StringVar(&c.click, "click", "", "square to click before rendering")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.diagram, "diagram", false, "print the layout's diagram")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := c.log.Setup(); err != nil {
		log.Error().Err(err).Msg("bad log level")
		return subcommands.ExitUsageError
	}
	var err error
	switch flag.NArg() {
	case 0:
		err = List(os.Stdout)
	case 1:
		err = c.show(os.Stdout, flag.Arg(0))
	default:
		return subcommands.ExitUsageError
	}
	if err != nil {
		log.Error().Err(err).Msg("scenarios")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func List(out io.Writer) error {
	w := tabwriter.NewWriter(out, 4, 8, 2, ' ', 0)
	fmt.Fprintf(w, "layout\twhite\tblack\tmust capture\n")
	for _, s := range dames.Scenarios {
		g, err := dames.New(dames.Config{Layout: s})
		if err != nil {
			return err
		}
		b := g.Board()
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			s, b.Pieces(dames.White), b.Pieces(dames.Black),
			squares(b.ConstrainedCoords()))
	}
	return w.Flush()
}

func (c *Command) show(out io.Writer, name string) error {
	s, err := dames.ParseScenario(name)
	if err != nil {
		return err
	}
	g, err := dames.New(dames.Config{Layout: s})
	if err != nil {
		return err
	}
	if c.click != "" {
		at, err := notation.ParseSquare(c.click)
		if err != nil {
			return err
		}
		g.SubmitAction(at.Row, at.Col)
	}
	gl := &cli.DefaultGlyphs
	if c.unicode {
		gl = &cli.UnicodeGlyphs
	}
	cli.RenderBoard(gl, out, g)
	b := g.Board()
	fmt.Fprintf(out, "must capture: %s\n", squares(b.ConstrainedCoords()))
	if c.click != "" {
		fmt.Fprintf(out, "reachable: %s\n", squares(b.ReachableCoords()))
	}
	if c.diagram {
		fmt.Fprintln(out, notation.FormatDiagram(b))
	}
	return nil
}

func squares(cs []dames.Coord) string {
	if len(cs) == 0 {
		return "-"
	}
	bits := make([]string, len(cs))
	for i, c := range cs {
		bits[i] = notation.FormatSquare(c)
	}
	return strings.Join(bits, " ")
}
