package world

// Lit reports whether the entity, which must be a room, is currently
// illuminated: either by its own base light level or by a switched-on
// light source anywhere in its content subtree, including sources carried
// by actors present in the room.
//
// Light deliberately ignores container openness: a burning lantern sealed
// inside a closed opaque box still lights the room. Puzzles depend on this.
func (e *Entity) Lit() bool {
	if e.Kind != KindRoom {
		return false
	}
	if e.Room.LightLevel > 0 {
		return true
	}
	return anyShining(e)
}

func anyShining(e *Entity) bool {
	for _, c := range e.contents {
		if c.HasFlag(FlagLight | FlagOn) {
			return true
		}
		if anyShining(c) {
			return true
		}
	}
	return false
}
