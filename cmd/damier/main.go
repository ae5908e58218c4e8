package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/jdd/damier/cmd/internal/canonicalize"
	"github.com/jdd/damier/cmd/internal/play"
	"github.com/jdd/damier/cmd/internal/replay"
	"github.com/jdd/damier/cmd/internal/scenarios"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&canonicalize.Command{}, "")
	subcommands.Register(&replay.Command{}, "")
	subcommands.Register(&scenarios.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
