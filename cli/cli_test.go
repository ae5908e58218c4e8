package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/context"

	"github.com/jdd/damier/dames"
	"github.com/jdd/damier/damestest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	g, err := dames.New(dames.Config{PlayerOne: "alice", PlayerTwo: "bob"})
	require.NoError(t, err)

	var out bytes.Buffer
	RenderBoard(nil, &out, g)
	assert.Contains(t, out.String(), "[bob (white) to play]\n")
	assert.Contains(t, out.String(), "pieces: W:20+0 B:20+0\n")
	assert.NotContains(t, out.String(), "must capture")

	g.SubmitAction(6, 1)
	out.Reset()
	RenderBoard(&DefaultGlyphs, &out, g)
	assert.Contains(t, out.String(), "(w)")
	assert.Equal(t, 2, strings.Count(out.String(), "o\t"))
}

func TestRenderConstrained(t *testing.T) {
	g := damestest.Game("x10/x10/x10/x10/x10/x4,w,x5/x5,b,x4/x10/x10/x10")
	var out bytes.Buffer
	RenderBoard(&UnicodeGlyphs, &out, g)
	assert.Contains(t, out.String(), "[must capture]")
	assert.Contains(t, out.String(), "⛀!")
	assert.Contains(t, out.String(), "⛂")
}

func scripted(actions string) *ScriptedPlayer {
	return &ScriptedPlayer{Squares: Clicks(damestest.Actions(actions))}
}

func TestPlayRecordsActions(t *testing.T) {
	const actions = "b6-a5 a3-b4 d6-c5 b4xd6 c7xe5"
	p := scripted(actions)
	var out bytes.Buffer
	c := &CLI{Out: &out, White: p, Black: p}
	g, err := c.Play(context.Background())
	require.NoError(t, err)

	assert.Equal(t, actions, damestest.FormatActions(c.Actions()))
	assert.Equal(t, dames.Black, g.ToMove().Color)
	assert.Contains(t, out.String(), "1. b6-a5\n")
	assert.Contains(t, out.String(), "1. ... a3-b4\n")
	assert.Contains(t, out.String(), "3. c7xe5\n")
	assert.Contains(t, out.String(), "abandons the game")
}

func TestPlayRecordsChain(t *testing.T) {
	p := scripted("e5xc3xa1")
	var out bytes.Buffer
	c := &CLI{
		Config: dames.Config{Layout: dames.BranchingCapture},
		Out:    &out,
		White:  p,
		Black:  p,
	}
	_, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "e5xc3xa1", damestest.FormatActions(c.Actions()))
}

func TestPlayGameOver(t *testing.T) {
	p := scripted("e5xg7")
	var out bytes.Buffer
	c := &CLI{
		Config: dames.Config{
			PlayerTwo: "bob",
			Placement: damestest.Placement("x10/x10/x10/x10/x10/x4,w,x5/x5,b,x4/x10/x10/x10"),
		},
		Out:   &out,
		White: p,
		Black: p,
	}
	g, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, g.Board().Pieces(dames.Black))
	assert.Contains(t, out.String(), "Game Over! bob (white) wins.\n")
	assert.Contains(t, out.String(), "pieces: white=1 black=0\n")
}

func TestPlayBadSelection(t *testing.T) {
	p := scripted("a3")
	var out bytes.Buffer
	c := &CLI{Out: &out, White: p, Black: p}
	_, err := c.Play(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no white piece at a3\n")
	assert.Empty(t, c.Actions())
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	p := scripted("b6-a5")
	c := &CLI{Out: &out, White: p, Black: p}
	_, err := c.Play(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestCLIPlayer(t *testing.T) {
	g, err := dames.New(dames.Config{PlayerTwo: "bob"})
	require.NoError(t, err)

	var out bytes.Buffer
	p := NewCLIPlayer(&out, bufio.NewReader(strings.NewReader("zz\n\nb6\nquit\n")))
	at, ok := p.GetAction(context.Background(), g)
	require.True(t, ok)
	assert.Equal(t, dames.Coord{Row: 6, Col: 1}, at)
	assert.Contains(t, out.String(), "parse error")
	assert.Contains(t, out.String(), "bob (white)> ")

	_, ok = p.GetAction(context.Background(), g)
	assert.False(t, ok)
	_, ok = p.GetAction(context.Background(), g)
	assert.False(t, ok, "end of input")
}

func TestClicks(t *testing.T) {
	got := Clicks(damestest.Actions("b6 b6-a5 e5xc3xa1"))
	want := []dames.Coord{
		{Row: 6, Col: 1},
		{Row: 6, Col: 1}, {Row: 5, Col: 0},
		{Row: 5, Col: 4}, {Row: 3, Col: 2},
		{Row: 3, Col: 2}, {Row: 1, Col: 0},
	}
	assert.Equal(t, want, got)
}
