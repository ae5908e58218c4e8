package dames

import "fmt"

// Board owns the tile graph and runs selection, movement, and the
// board-wide mandatory capture check.
type Board struct {
	tiles       [NumTiles]Tile
	constrained bool
	events      journal
}

func newBoard() *Board {
	b := &Board{}
	for i := range b.tiles {
		b.tiles[i] = Tile{board: b, coord: coordOf(i)}
	}
	return b
}

func (b *Board) tile(c Coord) *Tile {
	return &b.tiles[c.index()]
}

// TileAt returns the tile at (row, col). Callers must validate their
// coordinates with InBounds first; out of range coordinates panic.
func (b *Board) TileAt(row, col int) *Tile {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("tile out of range: (%d,%d)", row, col))
	}
	return b.tile(Coord{row, col})
}

func (b *Board) At(c Coord) *Tile {
	return b.TileAt(c.Row, c.Col)
}

// Each calls fn on every tile in row-major order.
func (b *Board) Each(fn func(t *Tile)) {
	for i := range b.tiles {
		fn(&b.tiles[i])
	}
}

// Constrained reports whether the color last passed to
// EvaluateConstraints has a capture it must make.
func (b *Board) Constrained() bool {
	return b.constrained
}

// HandleSelection applies a click on (row, col) by color c.
//
// If the tile is a marked destination of the currently selected piece,
// the piece moves there, capturing whatever lies between, and the result
// is Move or Capture. Otherwise the click (re)selects: the tile becomes
// selected if it holds one of c's pieces, and its destinations are marked
// unless another piece of c has a capture pending and this one does not.
func (b *Board) HandleSelection(c Color, row, col int) Movement {
	target := b.TileAt(row, col)
	if target.reachable {
		src := b.Selected()
		if src == nil {
			b.resetState()
			return NoMovement
		}
		took := src.CaptureBetween(target)
		if took {
			src.setMidRaid(false)
			target.setMidRaid(true)
		}
		target.SetOccupant(src.occupant)
		src.SetOccupant(Empty)
		b.resetState()
		if took {
			return Capture
		}
		return Move
	}

	b.resetState()
	if target.EligibleForSelection(c) {
		if !b.constrained || target.constrained {
			target.ComputeReachable(c, b.constrained)
		}
	}
	return NoMovement
}

// EvaluateConstraints recomputes which of c's pieces have a capture
// available and returns whether any does. While a capture chain is in
// progress only the raiding piece is considered; once it has nothing left
// to take the chain is over.
func (b *Board) EvaluateConstraints(c Color) bool {
	for i := range b.tiles {
		b.tiles[i].ResetState()
		b.tiles[i].ResetConstraint()
	}
	b.constrained = false

	if r := b.Raider(); r != nil {
		if r.ComputeConstraint(c) {
			b.constrained = true
		} else {
			for i := range b.tiles {
				b.tiles[i].setMidRaid(false)
			}
		}
		return b.constrained
	}

	for i := range b.tiles {
		if b.tiles[i].ComputeConstraint(c) {
			b.constrained = true
		}
	}
	return b.constrained
}

func (b *Board) resetState() {
	for i := range b.tiles {
		b.tiles[i].ResetState()
	}
}

// Selected returns the selected tile, or nil.
func (b *Board) Selected() *Tile {
	for i := range b.tiles {
		if b.tiles[i].selected {
			return &b.tiles[i]
		}
	}
	return nil
}

// Raider returns the tile whose piece is continuing a capture chain, or
// nil.
func (b *Board) Raider() *Tile {
	for i := range b.tiles {
		if b.tiles[i].midRaid {
			return &b.tiles[i]
		}
	}
	return nil
}

func (b *Board) ReachableCoords() []Coord {
	var out []Coord
	for i := range b.tiles {
		if b.tiles[i].reachable {
			out = append(out, b.tiles[i].coord)
		}
	}
	return out
}

func (b *Board) ConstrainedCoords() []Coord {
	var out []Coord
	for i := range b.tiles {
		if b.tiles[i].constrained {
			out = append(out, b.tiles[i].coord)
		}
	}
	return out
}

type Counts struct {
	WhiteMen, WhiteKings int
	BlackMen, BlackKings int
}

func (b *Board) Counts() Counts {
	var c Counts
	for i := range b.tiles {
		switch b.tiles[i].occupant {
		case WhiteMan:
			c.WhiteMen++
		case WhiteKing:
			c.WhiteKings++
		case BlackMan:
			c.BlackMen++
		case BlackKing:
			c.BlackKings++
		}
	}
	return c
}

func (b *Board) Count(p Piece) int {
	n := 0
	for i := range b.tiles {
		if b.tiles[i].occupant == p {
			n++
		}
	}
	return n
}

// Pieces counts every piece, man or king, of color c.
func (b *Board) Pieces(c Color) int {
	return b.Count(MakePiece(c, Man)) + b.Count(MakePiece(c, King))
}

// Drain returns the events recorded since the last call.
func (b *Board) Drain() []Event {
	return b.events.drain()
}
