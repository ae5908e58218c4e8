package dames

import "fmt"

type Color byte
type Kind byte
type Piece byte

const (
	White   Color = 1 << 7
	Black   Color = 1 << 6
	NoColor Color = 0

	colorMask byte = 3 << 6

	Man  Kind = 1
	King Kind = 2

	typeMask byte = 1<<2 - 1
)

const (
	Empty     Piece = 0
	WhiteMan        = Piece(byte(White) | byte(Man))
	BlackMan        = Piece(byte(Black) | byte(Man))
	WhiteKing       = Piece(byte(White) | byte(King))
	BlackKing       = Piece(byte(Black) | byte(King))
)

func MakePiece(color Color, kind Kind) Piece {
	return Piece(byte(color) | byte(kind))
}

func (p Piece) Color() Color {
	return Color(byte(p) & colorMask)
}

func (p Piece) Kind() Kind {
	return Kind(byte(p) & typeMask)
}

func (p Piece) IsKing() bool {
	return p.Kind() == King
}

func (p Piece) IsMan() bool {
	return p.Kind() == Man
}

// Crowned returns the king of the same color. Empty and kings are
// returned unchanged.
func (p Piece) Crowned() Piece {
	if p.Kind() != Man {
		return p
	}
	return MakePiece(p.Color(), King)
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "."
	case WhiteMan:
		return "w"
	case BlackMan:
		return "b"
	case WhiteKing:
		return "W"
	case BlackKing:
		return "B"
	default:
		panic(fmt.Sprintf("bad piece: %x", byte(p)))
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// TerminalRow is the row on which a man of this color is crowned.
func (c Color) TerminalRow() int {
	switch c {
	case White:
		return 0
	case Black:
		return Size - 1
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// Forward returns the two directions a man of this color may step in
// without capturing.
func (c Color) Forward() [2]Direction {
	switch c {
	case White:
		return [2]Direction{UpLeft, UpRight}
	case Black:
		return [2]Direction{DownLeft, DownRight}
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

type Movement byte

const (
	NoMovement Movement = iota
	Move
	Capture
)

func (m Movement) String() string {
	switch m {
	case NoMovement:
		return "no movement"
	case Move:
		return "move"
	case Capture:
		return "capture"
	default:
		return fmt.Sprintf("Movement(%d)", int(m))
	}
}
