package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jdd/damier/dames"
)

var ErrBadDiagram = errors.New("bad diagram")

// ParseDiagram reads a board written row by row from row 0, rows
// separated by "/" and cells by ",". A cell is "w" or "b" for a man, "W"
// or "B" for a king, and "x" or "xN" for a run of N empty tiles.
func ParseDiagram(s string) (*dames.Placement, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != dames.Size {
		return nil, fmt.Errorf("%w: %d rows", ErrBadDiagram, len(rows))
	}
	var p dames.Placement
	for r, row := range rows {
		cells, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		if len(cells) != dames.Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadDiagram, r, len(cells))
		}
		for c, piece := range cells {
			p.Set(r, c, piece)
		}
	}
	return &p, nil
}

func parseRow(row string) ([]dames.Piece, error) {
	var out []dames.Piece
	for _, bit := range strings.Split(row, ",") {
		bit = strings.TrimSpace(bit)
		if bit == "" {
			return nil, fmt.Errorf("%w: empty cell", ErrBadDiagram)
		}
		if bit[0] == 'x' {
			count := 1
			if len(bit) > 1 {
				n, err := strconv.Atoi(bit[1:])
				if err != nil || n < 1 {
					return nil, fmt.Errorf("%w: bad run %q", ErrBadDiagram, bit)
				}
				count = n
			}
			if len(out)+count > dames.Size {
				return nil, fmt.Errorf("%w: row longer than %d cells", ErrBadDiagram, dames.Size)
			}
			for i := 0; i < count; i++ {
				out = append(out, dames.Empty)
			}
			continue
		}
		piece, ok := pieceGlyphs[bit]
		if !ok {
			return nil, fmt.Errorf("%w: bad cell %q", ErrBadDiagram, bit)
		}
		out = append(out, piece)
	}
	return out, nil
}

var pieceGlyphs = map[string]dames.Piece{
	"w": dames.WhiteMan,
	"b": dames.BlackMan,
	"W": dames.WhiteKing,
	"B": dames.BlackKing,
}

// FormatDiagram writes the occupants of b in the form ParseDiagram
// reads.
func FormatDiagram(b *dames.Board) string {
	var p dames.Placement
	b.Each(func(t *dames.Tile) {
		c := t.Coord()
		p.Set(c.Row, c.Col, t.Occupant())
	})
	return FormatPlacement(&p)
}

func FormatPlacement(p *dames.Placement) string {
	rows := make([]string, dames.Size)
	for r := 0; r < dames.Size; r++ {
		rows[r] = diagramRow(p, r)
	}
	return strings.Join(rows, "/")
}

func diagramRow(p *dames.Placement, row int) string {
	var bits []string
	for col := 0; col < dames.Size; {
		var i int
		for i = 0; col+i < dames.Size && p.At(row, col+i) == dames.Empty; i++ {
		}
		switch i {
		case 0:
			bits = append(bits, p.At(row, col).String())
			col++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", i))
		}
		col += i
	}
	return strings.Join(bits, ",")
}
