package notation

import (
	"bytes"
	"testing"

	"github.com/jdd/damier/dames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	cases := []struct {
		in   string
		want dames.Coord
	}{
		{"a0", dames.Coord{Row: 0, Col: 0}},
		{"b6", dames.Coord{Row: 6, Col: 1}},
		{"j9", dames.Coord{Row: 9, Col: 9}},
		{" e5 ", dames.Coord{Row: 5, Col: 4}},
	}
	for _, tc := range cases {
		got, err := ParseSquare(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	for _, bad := range []string{"", "k1", "a10", "6b", "B6"} {
		_, err := ParseSquare(bad)
		assert.ErrorIs(t, err, ErrBadSquare, bad)
	}
	assert.Equal(t, "b6", FormatSquare(dames.Coord{Row: 6, Col: 1}))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("e5xc3xa1")
	require.NoError(t, err)
	assert.True(t, a.Capture)
	assert.Equal(t, []dames.Coord{{Row: 5, Col: 4}, {Row: 3, Col: 2}, {Row: 1, Col: 0}}, a.Squares)
	assert.Equal(t, "e5xc3xa1", FormatAction(a))

	a, err = ParseAction("b6-a5")
	require.NoError(t, err)
	assert.False(t, a.Capture)
	assert.Equal(t, "b6-a5", FormatAction(a))

	for _, bad := range []string{"b6-a5xc3", "b6-a5-b4", "b6-", "zz"} {
		_, err := ParseAction(bad)
		assert.ErrorIs(t, err, ErrBadAction, bad)
	}
}

const standardDiagram = "x,b,x,b,x,b,x,b,x,b/b,x,b,x,b,x,b,x,b,x/x,b,x,b,x,b,x,b,x,b/b,x,b,x,b,x,b,x,b,x/" +
	"x10/x10/" +
	"x,w,x,w,x,w,x,w,x,w/w,x,w,x,w,x,w,x,w,x/x,w,x,w,x,w,x,w,x,w/w,x,w,x,w,x,w,x,w,x"

func TestFormatDiagram(t *testing.T) {
	b, err := dames.NewBoard(dames.Standard)
	require.NoError(t, err)
	assert.Equal(t, standardDiagram, FormatDiagram(b))

	b, err = dames.NewBoard(dames.KingCapture)
	require.NoError(t, err)
	assert.Equal(t,
		"x10/x8,b,x/x10/x2,b,x3,b,x3/x10/x4,W,x5/x3,b,x6/x6,b,x3/x10/x10",
		FormatDiagram(b))
}

func TestParseDiagram(t *testing.T) {
	p, err := ParseDiagram(standardDiagram)
	require.NoError(t, err)
	want, err := dames.Standard.Placement()
	require.NoError(t, err)
	assert.Equal(t, want, p)

	p, err = ParseDiagram("x10/x10/x10/x10/x10/x5,W,x4/x10/x10/x10/x10")
	require.NoError(t, err)
	assert.Equal(t, dames.WhiteKing, p.At(5, 5))

	for _, bad := range []string{
		"x10",
		"x10/x10/x10/x10/x10/x10/x10/x10/x10/x9",
		"x10/x10/x10/x10/x10/x10/x10/x10/x10/x9,q",
		"x10/x10/x10/x10/x10/x10/x10/x10/x10/x9,w,w",
		"x10/x10/x10/x10/x10/x10/x10/x10/x10/x0,x10",
		"x300000000/x10/x10/x10/x10/x10/x10/x10/x10/x10",
		"x10/x10/x10/x10/x10/x10/x10/x10/x10/w,x10",
	} {
		_, err := ParseDiagram(bad)
		assert.ErrorIs(t, err, ErrBadDiagram, bad)
	}
}

const testScript = `
[Black "alice"]
[White "bob"]
[Layout "standard"]

1. b6-a5 a3-b4
2. d6-c5 {forced} b4xd6
3. c7xe5
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript(bytes.NewBufferString(testScript))
	require.NoError(t, err)
	assert.Equal(t, []Tag{
		{"Black", "alice"},
		{"White", "bob"},
		{"Layout", "standard"},
	}, s.Tags)
	assert.Equal(t, "bob", s.FindTag("White"))
	assert.Equal(t, "", s.FindTag("Diagram"))

	var srcs []string
	for _, op := range s.Ops {
		srcs = append(srcs, op.Source())
	}
	assert.Equal(t, []string{
		"1.", "b6-a5", "a3-b4",
		"2.", "d6-c5", "{forced}", "b4xd6",
		"3.", "c7xe5",
	}, srcs)
	assert.Equal(t, "forced", s.Ops[5].(*Comment).Comment)
	assert.Len(t, s.Actions(), 5)

	again, err := ParseScript(bytes.NewBufferString(s.Render()))
	require.NoError(t, err)
	assert.Equal(t, s.Tags, again.Tags)
	assert.Equal(t, s.Actions(), again.Actions())
}

func TestRenumber(t *testing.T) {
	s, err := ParseScript(bytes.NewBufferString("1. b6-a5 {x} a3-b4 d6-c5 5. b4xd6"))
	require.NoError(t, err)
	s.Renumber()
	assert.Equal(t, "\n\n1. b6-a5 {x} a3-b4\n2. d6-c5 b4xd6\n", s.Render())
}

func TestScriptErrors(t *testing.T) {
	_, err := ParseScript(bytes.NewBufferString("1. b6-a5 q7"))
	assert.ErrorIs(t, err, ErrBadAction)

	s, err := ParseScript(bytes.NewBufferString(`[Layout "nope"] 1. b6-a5`))
	require.NoError(t, err)
	_, err = s.Config()
	assert.ErrorIs(t, err, dames.ErrUnknownScenario)
}

func TestIterator(t *testing.T) {
	s, err := ParseScript(bytes.NewBufferString(testScript))
	require.NoError(t, err)

	it := s.Iterator(nil)
	n := 0
	for it.Next() {
		n++
	}
	require.NoError(t, it.Err())
	assert.Equal(t, 5, n)
	assert.Equal(t, 3, it.Number())

	g := it.Game()
	assert.Equal(t, "alice", g.Player(dames.Black).Name)
	assert.Equal(t, dames.Black, g.ToMove().Color)
	assert.Equal(t, 19, g.Board().Pieces(dames.White))
	assert.Equal(t, 19, g.Board().Pieces(dames.Black))
}

func TestIteratorChain(t *testing.T) {
	s, err := ParseScript(bytes.NewBufferString(`[Layout "branching-capture"] 1. e5xc3xa1 f4xh6`))
	require.NoError(t, err)
	it := s.Iterator(nil)
	require.True(t, it.Next())
	// select, jump, reselect, jump
	assert.Len(t, it.Turns(), 4)
	require.True(t, it.Next())
	assert.False(t, it.Next())
	require.NoError(t, it.Err())
	assert.Equal(t, dames.Counts{WhiteMen: 1, BlackMen: 1}, it.Game().Board().Counts())
}

func TestIteratorIllegal(t *testing.T) {
	cases := []string{
		// not a diagonal step
		"1. b6-b5",
		// black piece on white's turn
		"1. a3-b4",
		// a move written as a capture
		"1. b6xa5",
		// the capture is mandatory
		`[Layout "branching-capture"] 1. e5-d6`,
		// the chain ends after one jump
		`[Layout "branching-capture"] 1. e5xg3xe1`,
		// the chain stops while a jump remains
		`[Layout "branching-capture"] 1. e5xc3`,
	}
	for _, src := range cases {
		s, err := ParseScript(bytes.NewBufferString(src))
		require.NoError(t, err, src)
		it := s.Iterator(nil)
		for it.Next() {
		}
		assert.Error(t, it.Err(), src)
	}
}

func TestIteratorShortChain(t *testing.T) {
	s, err := ParseScript(bytes.NewBufferString(`[Layout "branching-capture"] 1. e5xc3 f4xh6`))
	require.NoError(t, err)
	it := s.Iterator(nil)
	assert.False(t, it.Next())
	require.Error(t, it.Err())
	assert.Contains(t, it.Err().Error(), "1. e5xc3: ")
	assert.Contains(t, it.Err().Error(), "stops early at c3")
	assert.Equal(t, dames.White, it.Game().ToMove().Color)
}

func TestApplyBareClick(t *testing.T) {
	g, err := dames.New(dames.Config{})
	require.NoError(t, err)
	turns, err := Apply(g, Action{Squares: []dames.Coord{{Row: 6, Col: 1}}})
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, dames.NoMovement, turns[0].Result)
	assert.Len(t, g.Board().ReachableCoords(), 2)
}
