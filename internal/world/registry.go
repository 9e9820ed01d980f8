package world

import "fmt"

// Registry maps ids to entities for one game session. It is read-mostly
// after world construction and, like the rest of the core, assumes the
// session's single-threaded turn loop; it is never shared between
// sessions or stored globally.
type Registry struct {
	entities map[string]*Entity
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: map[string]*Entity{},
	}
}

// Add registers an entity. Ids must be unique and non-empty.
func (r *Registry) Add(e *Entity) error {
	if e.ID == "" {
		return fmt.Errorf("entity id is required")
	}
	if _, exists := r.entities[e.ID]; exists {
		return fmt.Errorf("duplicate entity id %q", e.ID)
	}
	r.entities[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

// Get returns the entity with the given id, or nil.
func (r *Registry) Get(id string) *Entity {
	return r.entities[id]
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// All returns every entity in registration order.
func (r *Registry) All() []*Entity {
	out := make([]*Entity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entities[id])
	}
	return out
}

// FindAccessible returns, in registration order, every entity matching the
// noun/adjective pair that the actor can currently reach. Empty noun and
// adjective match anything.
func (r *Registry) FindAccessible(actor *Entity, noun, adjective string) []*Entity {
	var out []*Entity
	for _, id := range r.order {
		e := r.entities[id]
		if e.Matches(noun, adjective) && e.AccessibleTo(actor) {
			out = append(out, e)
		}
	}
	return out
}
