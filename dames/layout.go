package dames

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadLink         = errors.New("malformed tile link")
	ErrUnknownScenario = errors.New("unknown scenario")
)

// BuildEmptyGraph allocates an empty board and links every tile to its
// diagonal neighbors.
func BuildEmptyGraph() (*Board, error) {
	b := newBoard()
	for i := range b.tiles {
		t := &b.tiles[i]
		for _, d := range Directions {
			c, ok := t.coord.Step(d)
			if !ok {
				continue
			}
			if !t.Link(d, b.tile(c)) {
				return nil, fmt.Errorf("%w: %s %s", ErrBadLink, t.coord, d)
			}
		}
	}
	return b, nil
}

// Placement is a full board's worth of occupants, indexed row-major.
type Placement [NumTiles]Piece

func (p *Placement) At(row, col int) Piece {
	return p[Coord{row, col}.index()]
}

func (p *Placement) Set(row, col int, piece Piece) {
	p[Coord{row, col}.index()] = piece
}

// Apply seeds b with the placement. Men placed on their terminal row are
// crowned on the way in.
func (p *Placement) Apply(b *Board) {
	for i, piece := range p {
		b.tiles[i].SetOccupant(piece)
	}
}

type Scenario byte

const (
	Standard Scenario = iota
	// LoneKing is a single white king in the middle of an empty board.
	LoneKing
	// KingCapture surrounds a white king with black men it can take in
	// every direction.
	KingCapture
	// BranchingCapture gives a white man two captures to choose from, one
	// of which continues into a second jump.
	BranchingCapture
)

var scenarioNames = map[Scenario]string{
	Standard:         "standard",
	LoneKing:         "lone-king",
	KingCapture:      "king-capture",
	BranchingCapture: "branching-capture",
}

var Scenarios = []Scenario{Standard, LoneKing, KingCapture, BranchingCapture}

func (s Scenario) String() string {
	if n, ok := scenarioNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Scenario(%d)", int(s))
}

func ParseScenario(name string) (Scenario, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range scenarioNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// Placement returns the occupants of a named scenario.
func (s Scenario) Placement() (*Placement, error) {
	var p Placement
	switch s {
	case Standard:
		for row := 0; row < Size; row++ {
			var piece Piece
			switch {
			case row < 4:
				piece = BlackMan
			case row >= Size-4:
				piece = WhiteMan
			default:
				continue
			}
			for col := 0; col < Size; col++ {
				if (Coord{row, col}).Dark() {
					p.Set(row, col, piece)
				}
			}
		}
	case LoneKing:
		p.Set(5, 5, WhiteKing)
	case KingCapture:
		p.Set(5, 4, WhiteKing)
		p.Set(7, 6, BlackMan)
		p.Set(3, 2, BlackMan)
		p.Set(6, 3, BlackMan)
		p.Set(3, 6, BlackMan)
		p.Set(1, 8, BlackMan)
	case BranchingCapture:
		p.Set(5, 4, WhiteMan)
		p.Set(5, 6, WhiteMan)
		p.Set(4, 3, BlackMan)
		p.Set(4, 5, BlackMan)
		p.Set(2, 1, BlackMan)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScenario, int(s))
	}
	return &p, nil
}

// Seed places the pieces of scenario s on b.
func Seed(b *Board, s Scenario) error {
	p, err := s.Placement()
	if err != nil {
		return err
	}
	p.Apply(b)
	return nil
}

// NewBoard builds a linked board seeded with scenario s. The events
// produced while seeding are discarded.
func NewBoard(s Scenario) (*Board, error) {
	b, err := BuildEmptyGraph()
	if err != nil {
		return nil, err
	}
	if err := Seed(b, s); err != nil {
		return nil, err
	}
	b.Drain()
	return b, nil
}
