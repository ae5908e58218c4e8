package dames

// Tile is one square of the board graph. Tiles are owned by a Board and
// compare equal by coordinate; a Tile value must not be copied out of its
// Board.
type Tile struct {
	board *Board
	coord Coord

	occupant    Piece
	selected    bool
	reachable   bool
	constrained bool
	midRaid     bool

	// bitmask of established neighbor links, by Direction
	linked byte
}

func (t *Tile) Coord() Coord      { return t.coord }
func (t *Tile) Occupant() Piece   { return t.occupant }
func (t *Tile) Selected() bool    { return t.selected }
func (t *Tile) Reachable() bool   { return t.reachable }
func (t *Tile) Constrained() bool { return t.constrained }

// MidRaid reports whether the piece on this tile is in the middle of a
// capture chain and must keep capturing.
func (t *Tile) MidRaid() bool { return t.midRaid }

func (t *Tile) Empty() bool {
	return t.occupant == Empty
}

// Link records that other is t's neighbor in direction d. It fails
// without mutating t if that direction is already linked, or if other is
// not the tile one diagonal step away.
func (t *Tile) Link(d Direction, other *Tile) bool {
	if t.linked&d.bit() != 0 {
		return false
	}
	c, ok := t.coord.Step(d)
	if !ok || other == nil || c != other.coord {
		return false
	}
	t.linked |= d.bit()
	return true
}

// Neighbor returns the adjacent tile in direction d, or nil at the edge
// of the board.
func (t *Tile) Neighbor(d Direction) *Tile {
	if t.linked&d.bit() == 0 {
		return nil
	}
	c, _ := t.coord.Step(d)
	return t.board.tile(c)
}

// SetOccupant places p on the tile. A man landing on its terminal row is
// crowned immediately.
func (t *Tile) SetOccupant(p Piece) {
	if p.IsMan() && t.coord.Row == p.Color().TerminalRow() {
		p = p.Crowned()
	}
	old := t.occupant
	t.occupant = p
	if old != p {
		t.board.events.record(Event{Kind: OccupantChanged, At: t.coord, OldPiece: old, NewPiece: p})
	}
}

func (t *Tile) setSelected(v bool) {
	if t.selected == v {
		return
	}
	t.selected = v
	t.board.events.record(Event{Kind: SelectedChanged, At: t.coord, OldFlag: !v, NewFlag: v})
}

func (t *Tile) setReachable(v bool) {
	if t.reachable == v {
		return
	}
	t.reachable = v
	t.board.events.record(Event{Kind: ReachableChanged, At: t.coord, OldFlag: !v, NewFlag: v})
}

func (t *Tile) setConstrained(v bool) {
	if t.constrained == v {
		return
	}
	t.constrained = v
	t.board.events.record(Event{Kind: ConstrainedChanged, At: t.coord, OldFlag: !v, NewFlag: v})
}

func (t *Tile) setMidRaid(v bool) {
	t.midRaid = v
}

// EligibleForSelection marks the tile selected iff it holds a piece of
// color c.
func (t *Tile) EligibleForSelection(c Color) bool {
	ok := t.occupant != Empty && t.occupant.Color() == c
	t.setSelected(ok)
	return ok
}

// ComputeConstraint reports whether the piece on this tile belongs to c
// and has at least one capture available, and records the answer in the
// tile's constrained flag.
func (t *Tile) ComputeConstraint(c Color) bool {
	ok := false
	if t.occupant != Empty && t.occupant.Color() == c {
		for _, d := range Directions {
			if t.canCapture(d) {
				ok = true
				break
			}
		}
	}
	t.setConstrained(ok)
	return ok
}

// canCapture reports whether the piece on t can capture along d. A man
// only looks at the adjacent tile; a king looks past any run of empty
// tiles. In both cases the first occupied tile must hold an opponent with
// an empty tile directly behind it.
func (t *Tile) canCapture(d Direction) bool {
	return t.captureLanding(d) != nil
}

// captureLanding returns the first tile the piece on t could land on after
// jumping an opponent along d, or nil.
func (t *Tile) captureLanding(d Direction) *Tile {
	me := t.occupant
	n := t.Neighbor(d)
	if me.IsKing() {
		for n != nil && n.Empty() {
			n = n.Neighbor(d)
		}
	}
	if n == nil || n.Empty() || n.occupant.Color() == me.Color() {
		return nil
	}
	beyond := n.Neighbor(d)
	if beyond == nil || !beyond.Empty() {
		return nil
	}
	return beyond
}

// ComputeReachable marks the destinations available to the piece on this
// tile. When the board is under a mandatory capture and this tile is one
// of the pieces that can capture, only capture landings are marked;
// otherwise ordinary moves are.
func (t *Tile) ComputeReachable(c Color, boardConstrained bool) {
	if t.occupant == Empty || t.occupant.Color() != c {
		return
	}
	if boardConstrained && t.constrained {
		t.markCaptures()
		return
	}
	t.markMoves()
}

func (t *Tile) markCaptures() {
	king := t.occupant.IsKing()
	for _, d := range Directions {
		landing := t.captureLanding(d)
		if landing == nil {
			continue
		}
		landing.setReachable(true)
		if !king {
			continue
		}
		for n := landing.Neighbor(d); n != nil && n.Empty(); n = n.Neighbor(d) {
			n.setReachable(true)
		}
	}
}

func (t *Tile) markMoves() {
	if t.occupant.IsKing() {
		for _, d := range Directions {
			for n := t.Neighbor(d); n != nil && n.Empty(); n = n.Neighbor(d) {
				n.setReachable(true)
			}
		}
		return
	}
	for _, d := range t.occupant.Color().Forward() {
		if n := t.Neighbor(d); n != nil && n.Empty() {
			n.setReachable(true)
		}
	}
}

// CaptureBetween empties every occupied tile strictly between t and dst,
// and reports whether anything was removed. It does not move the piece
// on t. dst must lie on one of t's diagonals; otherwise nothing happens.
func (t *Tile) CaptureBetween(dst *Tile) bool {
	d, ok := DirectionTowards(t.coord, dst.coord)
	if !ok {
		return false
	}
	took := false
	for n := t.Neighbor(d); n != nil && n != dst; n = n.Neighbor(d) {
		if !n.Empty() {
			n.SetOccupant(Empty)
			took = true
		}
	}
	return took
}

func (t *Tile) ResetState() {
	t.setReachable(false)
	t.setSelected(false)
}

func (t *Tile) ResetConstraint() {
	t.setConstrained(false)
}
