package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jdd/damier/dames"
)

var (
	ErrBadSquare = errors.New("bad square")
	ErrBadAction = errors.New("bad action")
)

var squareRE = regexp.MustCompile(`^([a-j])([0-9])$`)

// ParseSquare reads a square written as a column letter and a row digit:
// "b6" is row 6, column 1.
func ParseSquare(s string) (dames.Coord, error) {
	groups := squareRE.FindStringSubmatch(strings.TrimSpace(s))
	if groups == nil {
		return dames.Coord{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return dames.Coord{
		Row: int(groups[2][0] - '0'),
		Col: int(groups[1][0] - 'a'),
	}, nil
}

func FormatSquare(c dames.Coord) string {
	return fmt.Sprintf("%c%c", 'a'+c.Col, '0'+c.Row)
}

// Action is a sequence of clicks: the piece to select followed by one
// destination per jump.
type Action struct {
	Squares []dames.Coord
	Capture bool
}

var actionRE = regexp.MustCompile(`^[a-j][0-9]([-x][a-j][0-9])*$`)

// ParseAction reads "b6" (a bare click), "b6-a5" (a move) or "c5xa3xc1"
// (a capture chain). Separators may not be mixed.
func ParseAction(s string) (Action, error) {
	if !actionRE.MatchString(s) {
		return Action{}, fmt.Errorf("%w: %q", ErrBadAction, s)
	}
	capture := strings.Contains(s, "x")
	if capture && strings.Contains(s, "-") {
		return Action{}, fmt.Errorf("%w: mixed separators in %q", ErrBadAction, s)
	}
	var a Action
	a.Capture = capture
	for _, bit := range strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == 'x' }) {
		c, err := ParseSquare(bit)
		if err != nil {
			return Action{}, err
		}
		a.Squares = append(a.Squares, c)
	}
	if !capture && len(a.Squares) > 2 {
		return Action{}, fmt.Errorf("%w: a move has one destination: %q", ErrBadAction, s)
	}
	return a, nil
}

func FormatAction(a Action) string {
	sep := "-"
	if a.Capture {
		sep = "x"
	}
	bits := make([]string, len(a.Squares))
	for i, c := range a.Squares {
		bits[i] = FormatSquare(c)
	}
	return strings.Join(bits, sep)
}
