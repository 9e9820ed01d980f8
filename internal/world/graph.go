package world

import (
	"errors"
	"fmt"
)

// Containment invariant violations. These indicate a world-building or
// engine bug, not a recoverable gameplay failure; MoveTo leaves the graph
// untouched when it returns one.
var (
	ErrContainmentCycle = errors.New("entity cannot contain itself")
	ErrRoomContained    = errors.New("rooms cannot be placed inside another entity")
)

// MoveTo relocates the entity to dest, which may be nil to remove it from
// play. The entity is detached from its current parent's contents and
// appended to dest's. Repeating a move to the same destination is a no-op;
// contents never hold duplicates.
func (e *Entity) MoveTo(dest *Entity) error {
	if dest != nil {
		if e.Kind == KindRoom {
			return fmt.Errorf("moving %s into %s: %w", e.ID, dest.ID, ErrRoomContained)
		}
		if e == dest || e.IsAncestorOf(dest) {
			return fmt.Errorf("moving %s into %s: %w", e.ID, dest.ID, ErrContainmentCycle)
		}
	}

	if e.parent != nil {
		e.parent.removeChild(e)
	}

	e.parent = dest
	if dest != nil && !dest.holds(e) {
		dest.contents = append(dest.contents, e)
	}
	return nil
}

// IsIn reports whether the entity's direct parent is candidate.
func (e *Entity) IsIn(candidate *Entity) bool {
	return e.parent != nil && e.parent == candidate
}

// IsAncestorOf reports whether the entity appears on other's parent chain.
func (e *Entity) IsAncestorOf(other *Entity) bool {
	for cur := other.parent; cur != nil; cur = cur.parent {
		if cur == e {
			return true
		}
	}
	return false
}

// EnclosingRoom walks the parent chain, starting at the entity itself,
// until it finds a room. Returns nil if the chain ends first.
func (e *Entity) EnclosingRoom() *Entity {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.Kind == KindRoom {
			return cur
		}
	}
	return nil
}

func (e *Entity) holds(child *Entity) bool {
	for _, c := range e.contents {
		if c == child {
			return true
		}
	}
	return false
}

func (e *Entity) removeChild(child *Entity) {
	for i, c := range e.contents {
		if c == child {
			e.contents = append(e.contents[:i], e.contents[i+1:]...)
			return
		}
	}
}
