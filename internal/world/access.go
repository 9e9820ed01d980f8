package world

// AccessibleTo reports whether the entity can currently be perceived and
// acted on by actor. It never mutates state.
//
// An entity is accessible when it is held directly by the actor, or when
// it shares the actor's room and every container between it and the room
// (or the actor) is open, transparent, or a surface. The first closed,
// opaque container on the parent chain blocks access outright. An entity
// with no location is never accessible.
func (e *Entity) AccessibleTo(actor *Entity) bool {
	if e.parent == nil {
		return false
	}
	if e.IsIn(actor) {
		return true
	}

	actorRoom := actor.EnclosingRoom()
	for cur := e.parent; cur != nil; cur = cur.parent {
		if cur == actor || (actorRoom != nil && cur == actorRoom) {
			return true
		}
		if cur.Kind == KindContainer && !cur.IsOpen() && !cur.HasFlag(FlagTransparent) {
			return false
		}
	}
	return false
}
