package play

import (
	"bufio"
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/jdd/damier/cli"
	"github.com/jdd/damier/cmd/internal/opt"
	"github.com/jdd/damier/notation"
	"github.com/rs/zerolog/log"
)

type Command struct {
	game opt.Game
	log  opt.Log
	out  string

	unicode bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play draughts from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play draughts on the command-line between two humans. Each line of input
clicks one square ("b6"); "quit" ends the game.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.game.AddFlags(flags)
	c.log.AddFlags(flags)
	flags.StringVar(&c.out, "out", "", "write the game script to file")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger, err := c.log.Setup()
	if err != nil {
		log.Error().Err(err).Msg("bad log level")
		return subcommands.ExitUsageError
	}
	cfg, err := c.game.BuildConfig()
	if err != nil {
		log.Error().Err(err).Msg("bad game setup")
		return subcommands.ExitUsageError
	}
	cfg.Log = logger

	in := bufio.NewReader(os.Stdin)
	st := &cli.CLI{
		Config: cfg,
		Out:    os.Stdout,
		White:  cli.NewCLIPlayer(os.Stdout, in),
		Black:  cli.NewCLIPlayer(os.Stdout, in),
		Glyphs: glyphs(c.unicode),
	}
	if _, err := st.Play(ctx); err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}
	if c.out != "" {
		s := &notation.Script{Tags: c.game.Tags()}
		s.AddActions(st.Actions())
		if err := os.WriteFile(c.out, []byte(s.Render()), 0644); err != nil {
			log.Error().Err(err).Str("path", c.out).Msg("write script")
			return subcommands.ExitFailure
		}
		log.Info().Str("path", c.out).Int("actions", len(st.Actions())).Msg("wrote script")
	}

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}
