package replay

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/google/subcommands"
	"github.com/jdd/damier/cmd/internal/opt"
	"github.com/jdd/damier/dames"
	"github.com/jdd/damier/logs"
	"github.com/jdd/damier/notation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Command struct {
	log opt.Log

	threads int
	db      string
	diagram bool
}

func (*Command) Name() string     { return "replay" }
func (*Command) Synopsis() string { return "Replay game scripts and report where they end" }
func (*Command) Usage() string {
	return `replay [flags] SCRIPT...

Replay each script against a fresh game and print the final position.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.log.AddFlags(flags)
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "Number of threads")
	flags.StringVar(&c.db, "db", "", "record outcomes in this sqlite database")
	flags.BoolVar(&c.diagram, "diagram", false, "print the final diagram of each script")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger, err := c.log.Setup()
	if err != nil {
		log.Error().Err(err).Msg("bad log level")
		return subcommands.ExitUsageError
	}
	if flag.NArg() == 0 {
		log.Error().Msg("no scripts given")
		return subcommands.ExitUsageError
	}

	outcomes, err := c.replayAll(ctx, flag.Args(), logger)
	if err != nil {
		log.Error().Err(err).Msg("replay")
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	for _, o := range outcomes {
		fmt.Println(Summary(o))
		if c.diagram && o.Diagram != "" {
			fmt.Println(o.Diagram)
		}
		if o.Error != "" {
			status = subcommands.ExitFailure
		}
	}

	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("open")
			return subcommands.ExitFailure
		}
		defer repo.Close()
		if err := repo.InsertOutcomes(outcomes); err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("insert")
			return subcommands.ExitFailure
		}
		log.Info().Str("db", c.db).Int("outcomes", len(outcomes)).Msg("recorded")
	}
	return status
}

func (c *Command) replayAll(ctx context.Context, paths []string, logger *zerolog.Logger) ([]*logs.Outcome, error) {
	threads := c.threads
	if threads < 1 {
		threads = 1
	}
	out := make([]*logs.Outcome, len(paths))
	input := make(chan int)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(input)
		for i := range paths {
			select {
			case input <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		grp.Go(func() error {
			for idx := range input {
				out[idx] = ReplayFile(paths[idx], logger)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplayFile replays the script at path. Failures are reported in the
// outcome rather than returned.
func ReplayFile(path string, logger *zerolog.Logger) *logs.Outcome {
	s, err := notation.ParseFile(path)
	if err != nil {
		return &logs.Outcome{
			Script:    path,
			Timestamp: time.Now(),
			Error:     err.Error(),
		}
	}
	return ReplayScript(path, s, logger)
}

func ReplayScript(name string, s *notation.Script, logger *zerolog.Logger) *logs.Outcome {
	o := &logs.Outcome{
		Script:    name,
		Timestamp: time.Now(),
		Black:     s.FindTag("Black"),
		White:     s.FindTag("White"),
		Layout:    s.FindTag("Layout"),
	}
	if o.Layout == "" {
		o.Layout = dames.Standard.String()
	}
	if s.FindTag("Diagram") != "" {
		o.Layout = "diagram"
	}

	it := s.Iterator(logger)
	for it.Next() {
		o.Actions++
	}
	if err := it.Err(); err != nil {
		o.Error = err.Error()
	}
	g := it.Game()
	if g == nil {
		return o
	}
	n := g.Board().Counts()
	o.WhiteMen, o.WhiteKings = n.WhiteMen, n.WhiteKings
	o.BlackMen, o.BlackKings = n.BlackMen, n.BlackKings
	o.ToMove = g.ToMove().Color.String()
	o.Diagram = notation.FormatDiagram(g.Board())

	l := log.Logger
	if logger != nil {
		l = *logger
	}
	ev := l.Debug()
	if o.Error != "" {
		ev = l.Warn().Str("error", o.Error)
	}
	ev.Str("script", name).Int("actions", o.Actions).Msg("replayed")
	return o
}

func Summary(o *logs.Outcome) string {
	if o.Error != "" {
		return fmt.Sprintf("%s: error after %d actions: %s", o.Script, o.Actions, o.Error)
	}
	return fmt.Sprintf("%s: %d actions, white %d+%d, black %d+%d, %s to move",
		o.Script, o.Actions,
		o.WhiteMen, o.WhiteKings,
		o.BlackMen, o.BlackKings,
		o.ToMove)
}
