package world

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Exit is the destination reachable in one direction from a room: either a
// direct room reference or a computed-exit descriptor the engine evaluates
// when the exit is taken. Exactly one field is set.
type Exit struct {
	Room *Entity

	// Computed names an engine-side resolver (e.g. "trapdoor-when-open").
	// Resolution does not belong to the room itself.
	Computed string
}

// Validate enforces the tagged union: exactly one destination form.
func (x Exit) Validate() error {
	el := errors.NewErrorList()

	if x.Room == nil && x.Computed == "" {
		el.Add(fmt.Errorf("exit needs a room or a computed descriptor"))
	}
	if x.Room != nil && x.Computed != "" {
		el.Add(fmt.Errorf("exit cannot have both a room and a computed descriptor"))
	}
	if x.Room != nil && x.Room.Kind != KindRoom {
		el.Add(fmt.Errorf("exit destination %s is not a room", x.Room.ID))
	}

	return el.Err()
}

// SetExit wires an exit on a room. Direction names are case-insensitive.
func (e *Entity) SetExit(direction string, x Exit) error {
	if e.Kind != KindRoom {
		return fmt.Errorf("%s is not a room", e.ID)
	}
	if err := x.Validate(); err != nil {
		return fmt.Errorf("exit %s from %s: %w", direction, e.ID, err)
	}
	e.Room.Exits[strings.ToLower(direction)] = x
	return nil
}

// ExitIn returns the exit leading in the given direction, if any.
func (e *Entity) ExitIn(direction string) (Exit, bool) {
	if e.Kind != KindRoom {
		return Exit{}, false
	}
	x, ok := e.Room.Exits[strings.ToLower(direction)]
	return x, ok
}

// RemoveExit deletes the exit in the given direction.
func (e *Entity) RemoveExit(direction string) {
	if e.Kind != KindRoom {
		return
	}
	delete(e.Room.Exits, strings.ToLower(direction))
}
