package world

// Outcome reports how a handler dealt with an action.
type Outcome int

const (
	// OutcomeNotHandled means the action was not handled here; the engine
	// should try the next handler in its chain.
	OutcomeNotHandled Outcome = iota

	// OutcomeHandled means the action completed.
	OutcomeHandled

	// OutcomeBlocked means the handler forbids the action.
	OutcomeBlocked
)

// ActionHandler is the per-entity hook for verbs applied to it. Handlers
// are registered at world-build time; direct is the entity the verb acts
// on and indirect is the secondary entity, if any (nil otherwise).
type ActionHandler interface {
	HandleAction(verb string, direct, indirect *Entity) Outcome
}

// ActionFunc adapts a function to the ActionHandler interface.
type ActionFunc func(verb string, direct, indirect *Entity) Outcome

func (f ActionFunc) HandleAction(verb string, direct, indirect *Entity) Outcome {
	return f(verb, direct, indirect)
}

// HandleAction dispatches a verb to the entity's registered handler.
// Entities without a handler report the action unhandled.
func (e *Entity) HandleAction(verb string, indirect *Entity) Outcome {
	if e.Action == nil {
		return OutcomeNotHandled
	}
	return e.Action.HandleAction(verb, e, indirect)
}

// ActorBrain drives an actor's behavior. Act is invoked once per world
// tick while the actor is alive.
type ActorBrain interface {
	Act(self *Entity) Outcome
}

// BrainFunc adapts a function to the ActorBrain interface.
type BrainFunc func(self *Entity) Outcome

func (f BrainFunc) Act(self *Entity) Outcome {
	return f(self)
}

// RoomTick runs a room's per-turn behavior.
type RoomTick interface {
	TickRoom(room *Entity) Outcome
}

// RoomTickFunc adapts a function to the RoomTick interface.
type RoomTickFunc func(room *Entity) Outcome

func (f RoomTickFunc) TickRoom(room *Entity) Outcome {
	return f(room)
}
