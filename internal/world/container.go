package world

import "fmt"

// Result reports the outcome of a container transition. Failed transitions
// are ordinary values; the graph and flags are untouched when OK is false.
type Result struct {
	OK      bool
	Message string
}

func failure(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// IsOpen reports whether the container's contents are reachable through
// its mouth. Surfaces are always open.
func (e *Entity) IsOpen() bool {
	if e.HasFlag(FlagSurface) {
		return true
	}
	return e.HasFlag(FlagOpen)
}

// IsOpenable reports whether the container can transition between open and
// closed. Surfaces never transition.
func (e *Entity) IsOpenable() bool {
	return !e.HasFlag(FlagSurface) && e.HasFlag(FlagOpenable)
}

// IsLocked reports whether the container is locked.
func (e *Entity) IsLocked() bool {
	return e.HasFlag(FlagLocked)
}

// Open transitions the container to open. It fails on surfaces, on
// non-openable containers, when locked, and when already open.
func (e *Entity) Open() Result {
	if e.Kind != KindContainer || !e.IsOpenable() {
		return failure("You can't open that.")
	}
	if e.IsLocked() {
		return failure("The %s is locked.", e.ShortDesc)
	}
	if e.IsOpen() {
		return failure("The %s is already open.", e.ShortDesc)
	}
	e.SetFlag(FlagOpen)
	return Result{OK: true, Message: "Opened."}
}

// Close transitions the container to closed.
func (e *Entity) Close() Result {
	if e.Kind != KindContainer || !e.IsOpenable() {
		return failure("You can't close that.")
	}
	if !e.IsOpen() {
		return failure("The %s is already closed.", e.ShortDesc)
	}
	e.ClearFlag(FlagOpen)
	return Result{OK: true, Message: "Closed."}
}

// Lock locks the container. The container must already be closed.
func (e *Entity) Lock() Result {
	if e.Kind != KindContainer || e.HasFlag(FlagSurface) {
		return failure("You can't lock that.")
	}
	if e.IsOpen() {
		return failure("The %s must be closed first.", e.ShortDesc)
	}
	if e.IsLocked() {
		return failure("The %s is already locked.", e.ShortDesc)
	}
	e.SetFlag(FlagLocked)
	return Result{OK: true, Message: "Locked."}
}

// Unlock unlocks the container, leaving it closed.
func (e *Entity) Unlock() Result {
	if e.Kind != KindContainer || e.HasFlag(FlagSurface) {
		return failure("You can't unlock that.")
	}
	if !e.IsLocked() {
		return failure("The %s isn't locked.", e.ShortDesc)
	}
	e.ClearFlag(FlagLocked)
	return Result{OK: true, Message: "Unlocked."}
}

// VisibleContents returns the container's contents with invisible entities
// filtered out. Contents are only visible through an open, transparent, or
// surface container; otherwise the result is empty.
func (e *Entity) VisibleContents() []*Entity {
	if !e.IsOpen() && !e.HasFlag(FlagTransparent) {
		return nil
	}
	var out []*Entity
	for _, c := range e.contents {
		if !c.HasFlag(FlagInvisible) {
			out = append(out, c)
		}
	}
	return out
}

// CanHold reports whether candidate fits in the container's remaining
// capacity. This is an advisory check; callers invoke it before MoveTo,
// the container does not enforce it.
func (e *Entity) CanHold(candidate *Entity) bool {
	if e.Container == nil {
		return false
	}
	current := 0
	for _, c := range e.contents {
		current += c.Weight()
	}
	return current+candidate.Weight() <= e.Container.Capacity
}
