package opt

import (
	"flag"
	"io"
	"os"

	"github.com/jdd/damier/dames"
	"github.com/jdd/damier/notation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Game holds the flags that describe how a game starts.
type Game struct {
	Black   string
	White   string
	Layout  string
	Diagram string
}

func (o *Game) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Black, "black", "black", "name of the player with the black pieces")
	flags.StringVar(&o.White, "white", "white", "name of the player with the white pieces")
	flags.StringVar(&o.Layout, "layout", dames.Standard.String(), "starting layout")
	flags.StringVar(&o.Diagram, "diagram", "", "starting diagram; overrides -layout")
}

func (o *Game) BuildConfig() (dames.Config, error) {
	cfg := dames.Config{
		PlayerOne: o.Black,
		PlayerTwo: o.White,
	}
	l, err := dames.ParseScenario(o.Layout)
	if err != nil {
		return cfg, err
	}
	cfg.Layout = l
	if o.Diagram != "" {
		cfg.Placement, err = notation.ParseDiagram(o.Diagram)
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Tags records the setup as script tags.
func (o *Game) Tags() []notation.Tag {
	tags := []notation.Tag{
		{Name: "Black", Value: o.Black},
		{Name: "White", Value: o.White},
		{Name: "Layout", Value: o.Layout},
	}
	if o.Diagram != "" {
		tags = append(tags, notation.Tag{Name: "Diagram", Value: o.Diagram})
	}
	return tags
}

type Log struct {
	Level string
	JSON  bool
}

func (o *Log) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Level, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&o.JSON, "log-json", false, "log JSON instead of console output")
}

// Setup configures the global logger and returns it.
func (o *Log) Setup() (*zerolog.Logger, error) {
	return o.setup(os.Stderr)
}

func (o *Log) setup(w io.Writer) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(o.Level)
	if err != nil {
		return nil, err
	}
	if !o.JSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &log.Logger, nil
}
