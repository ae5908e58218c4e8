package dames

import "fmt"

type EventKind byte

const (
	OccupantChanged EventKind = 1 + iota
	SelectedChanged
	ReachableChanged
	ConstrainedChanged
	PlayerChanged
)

func (k EventKind) String() string {
	switch k {
	case OccupantChanged:
		return "occupant_changed"
	case SelectedChanged:
		return "selected_changed"
	case ReachableChanged:
		return "reachable_changed"
	case ConstrainedChanged:
		return "constrained_changed"
	case PlayerChanged:
		return "current_player_changed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single observable state change. Which of the Old/New pairs is
// meaningful depends on Kind: occupant changes carry pieces, flag changes
// carry booleans, and player changes carry colors. At is unset for
// PlayerChanged.
type Event struct {
	Kind EventKind
	At   Coord

	OldPiece, NewPiece   Piece
	OldFlag, NewFlag     bool
	OldPlayer, NewPlayer Color
}

func (e Event) String() string {
	switch e.Kind {
	case OccupantChanged:
		return fmt.Sprintf("%s %s %s->%s", e.Kind, e.At, e.OldPiece, e.NewPiece)
	case PlayerChanged:
		return fmt.Sprintf("%s %s->%s", e.Kind, e.OldPlayer, e.NewPlayer)
	default:
		return fmt.Sprintf("%s %s %t->%t", e.Kind, e.At, e.OldFlag, e.NewFlag)
	}
}

// journal accumulates events between drains.
type journal struct {
	events []Event
}

func (j *journal) record(e Event) {
	j.events = append(j.events, e)
}

// drain returns the net change since the last drain: repeated events for
// the same kind and tile are folded into one, in order of first
// occurrence, and changes that end where they started are dropped.
func (j *journal) drain() []Event {
	type key struct {
		kind EventKind
		at   Coord
	}
	seen := make(map[key]int, len(j.events))
	var merged []Event
	for _, e := range j.events {
		k := key{e.Kind, e.At}
		i, ok := seen[k]
		if !ok {
			seen[k] = len(merged)
			merged = append(merged, e)
			continue
		}
		m := &merged[i]
		m.NewPiece, m.NewFlag, m.NewPlayer = e.NewPiece, e.NewFlag, e.NewPlayer
	}
	j.events = nil

	var out []Event
	for _, e := range merged {
		if e.OldPiece != e.NewPiece || e.OldFlag != e.NewFlag || e.OldPlayer != e.NewPlayer {
			out = append(out, e)
		}
	}
	return out
}
