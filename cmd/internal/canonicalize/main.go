package canonicalize

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/jdd/damier/notation"
	"github.com/rs/zerolog/log"
)

type Command struct{}

func (*Command) Name() string     { return "canonicalize" }
func (*Command) Synopsis() string { return "Rewrite a game script in canonical form" }
func (*Command) Usage() string {
	return `canonicalize FILE

Check that every action in a script is legal, then print it with one move
number per White action and normalized spacing.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("open")
		return subcommands.ExitFailure
	}
	defer f.Close()
	if err := Canonicalize(f, os.Stdout); err != nil {
		log.Error().Err(err).Str("path", flag.Arg(0)).Msg("canonicalize")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func Canonicalize(r io.Reader, w io.Writer) error {
	s, err := notation.ParseScript(r)
	if err != nil {
		return err
	}
	it := s.Iterator(nil)
	for it.Next() {
	}
	if err := it.Err(); err != nil {
		return err
	}
	s.Renumber()
	_, err = fmt.Fprint(w, s.Render())
	return err
}
