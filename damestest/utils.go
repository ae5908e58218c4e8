package damestest

import (
	"strings"

	"github.com/jdd/damier/dames"
	"github.com/jdd/damier/notation"
)

func Action(s string) notation.Action {
	a, e := notation.ParseAction(s)
	if e != nil {
		panic(e)
	}
	return a
}

func Actions(s string) []notation.Action {
	if s == "" {
		return nil
	}
	var as []notation.Action
	for _, b := range strings.Fields(s) {
		as = append(as, Action(b))
	}
	return as
}

func FormatActions(as []notation.Action) string {
	var bits []string
	for _, a := range as {
		bits = append(bits, notation.FormatAction(a))
	}
	return strings.Join(bits, " ")
}

func Placement(diagram string) *dames.Placement {
	p, e := notation.ParseDiagram(diagram)
	if e != nil {
		panic(e)
	}
	return p
}

// Game starts a game from a diagram, White to move.
func Game(diagram string) *dames.Game {
	g, e := dames.New(dames.Config{
		PlayerOne: "black",
		PlayerTwo: "white",
		Placement: Placement(diagram),
	})
	if e != nil {
		panic(e)
	}
	return g
}

// Play applies a space-separated list of actions to g and returns every
// turn they produced.
func Play(g *dames.Game, actions string) []dames.Turn {
	var out []dames.Turn
	for _, a := range Actions(actions) {
		turns, e := notation.Apply(g, a)
		if e != nil {
			panic(e)
		}
		out = append(out, turns...)
	}
	return out
}
