package dames

import "fmt"

// Size is the number of rows and columns on the board.
const Size = 10

const NumTiles = Size * Size

// Coord addresses a tile. Row 0 is White's terminal row; row Size-1 is
// Black's.
type Coord struct {
	Row, Col int
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (c Coord) Valid() bool {
	return InBounds(c.Row, c.Col)
}

func (c Coord) index() int {
	return c.Row*Size + c.Col
}

func coordOf(i int) Coord {
	return Coord{Row: i / Size, Col: i % Size}
}

// Step returns the coordinate one tile away in direction d, and whether
// it lies on the board.
func (c Coord) Step(d Direction) (Coord, bool) {
	dr, dc := d.Delta()
	next := Coord{Row: c.Row + dr, Col: c.Col + dc}
	return next, next.Valid()
}

// Dark reports whether c is one of the playable squares.
func (c Coord) Dark() bool {
	return (c.Row+c.Col)%2 == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Direction byte

const (
	UpLeft Direction = iota
	UpRight
	DownLeft
	DownRight

	numDirections = 4
)

var Directions = [numDirections]Direction{UpLeft, UpRight, DownLeft, DownRight}

func (d Direction) Delta() (dr, dc int) {
	switch d {
	case UpLeft:
		return -1, -1
	case UpRight:
		return -1, 1
	case DownLeft:
		return 1, -1
	case DownRight:
		return 1, 1
	}
	panic(fmt.Sprintf("bad direction: %d", int(d)))
}

func (d Direction) Reverse() Direction {
	return numDirections - 1 - d
}

func (d Direction) bit() byte {
	return 1 << d
}

// DirectionTowards returns the diagonal direction leading from src to dst.
// ok is false when dst does not lie on one of src's diagonals.
func DirectionTowards(src, dst Coord) (d Direction, ok bool) {
	dr, dc := dst.Row-src.Row, dst.Col-src.Col
	if dr == 0 || abs(dr) != abs(dc) {
		return 0, false
	}
	switch {
	case dr < 0 && dc < 0:
		return UpLeft, true
	case dr < 0 && dc > 0:
		return UpRight, true
	case dr > 0 && dc < 0:
		return DownLeft, true
	default:
		return DownRight, true
	}
}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
