package world

import (
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
)

// Kind is the closed discriminator for entity specializations. Code that
// needs kind-specific behavior switches on it rather than asserting types.
type Kind int

const (
	KindRoom Kind = iota
	KindItem
	KindContainer
	KindActor
)

func (k Kind) String() string {
	switch k {
	case KindRoom:
		return "room"
	case KindItem:
		return "item"
	case KindContainer:
		return "container"
	case KindActor:
		return "actor"
	default:
		return "unknown"
	}
}

// DefaultSize is the weight assumed for entities without an item block.
const DefaultSize = 5

// Entity is a single object in the game world: a room, an item, a
// container, or an actor. Shared state lives directly on the struct;
// kind-specific state lives in the optional data blocks, exactly one of
// which is non-nil for a well-formed entity.
//
// Entities are built once at world-construction time and mutated in place
// for the rest of the session. They are never destroyed; removing one from
// play means relocating it or flagging it invisible.
type Entity struct {
	ID   string
	Kind Kind

	// Aliases are keywords players can use to target this entity
	// (e.g., ["lantern", "lamp"])
	Aliases []string

	// Adjectives qualify the aliases (e.g., ["brass"])
	Adjectives []string

	// ShortDesc is the entity's display name ("brass lantern")
	ShortDesc string

	// LongDesc is shown when a player looks at the entity, or as the
	// room body text for rooms
	LongDesc string

	// FirstDesc is shown the first time the entity is described in a
	// room; LaterDesc thereafter
	FirstDesc string
	LaterDesc string

	// Flags is the capability bitset
	Flags Flag

	// Properties holds engine-defined values keyed by name
	Properties storage.Properties

	// Action optionally handles verbs applied to this entity
	Action ActionHandler

	parent   *Entity
	contents []*Entity
	seen     bool

	Room      *RoomData
	Item      *ItemData
	Container *ContainerData
	Actor     *ActorData
}

// RoomData holds room-specific state.
type RoomData struct {
	// Exits maps a lowercase direction name to its destination
	Exits map[string]Exit

	// Visited is set the first time the room is described
	Visited bool

	// LightLevel is the room's base illumination; positive means the
	// room is lit without any light source
	LightLevel int

	// Tick optionally runs once per turn while the world is ticking
	Tick RoomTick
}

// ItemData holds item-specific state. Containers carry an ItemData block
// too, since they have size and can be treasures themselves.
type ItemData struct {
	// Size is the item's own weight, before contents
	Size int

	// Value is the score awarded for finding the item
	Value int

	// TreasureValue is the score awarded for banking it
	TreasureValue int

	// Text is what a player sees when reading the item
	Text string
}

// ContainerData holds container-specific state. Open/closed, locked, and
// surface are flags; only capacity lives here.
type ContainerData struct {
	Capacity int
}

// ActorData holds actor-specific state.
type ActorData struct {
	Health    int
	MaxHealth int
	Strength  int
	Hostile   bool
	Dead      bool

	// Brain optionally drives the actor once per turn
	Brain ActorBrain
}

// NewRoom creates a lit, unvisited room with no exits. Rooms never have a
// parent.
func NewRoom(id string) *Entity {
	return &Entity{
		ID:   id,
		Kind: KindRoom,
		Room: &RoomData{
			Exits:      map[string]Exit{},
			LightLevel: 1,
		},
	}
}

// NewItem creates an item of default size.
func NewItem(id string) *Entity {
	return &Entity{
		ID:   id,
		Kind: KindItem,
		Item: &ItemData{Size: DefaultSize},
	}
}

// NewContainer creates a closed container with the given capacity.
func NewContainer(id string, capacity int) *Entity {
	return &Entity{
		ID:        id,
		Kind:      KindContainer,
		Flags:     FlagContainer,
		Item:      &ItemData{Size: DefaultSize},
		Container: &ContainerData{Capacity: capacity},
	}
}

// NewSurface creates a surface: a container that is always open and never
// transitions.
func NewSurface(id string, capacity int) *Entity {
	e := NewContainer(id, capacity)
	e.SetFlag(FlagSurface)
	return e
}

// NewActor creates a living actor at full health.
func NewActor(id string, health, strength int) *Entity {
	return &Entity{
		ID:   id,
		Kind: KindActor,
		Actor: &ActorData{
			Health:    health,
			MaxHealth: health,
			Strength:  strength,
		},
	}
}

// Parent returns the entity's current location, or nil.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Contents returns the entities held directly by this one, in insertion
// order. The returned slice is a copy.
func (e *Entity) Contents() []*Entity {
	out := make([]*Entity, len(e.contents))
	copy(out, e.contents)
	return out
}

// Seen reports whether the entity has been described to the player.
func (e *Entity) Seen() bool {
	return e.seen
}

// Matches reports whether the entity answers to the given noun and
// adjective. Empty arguments match anything; comparison is
// case-insensitive.
func (e *Entity) Matches(noun, adjective string) bool {
	if noun != "" && !containsFold(e.Aliases, noun) {
		return false
	}
	if adjective != "" && !containsFold(e.Adjectives, adjective) {
		return false
	}
	return true
}

func containsFold(words []string, w string) bool {
	for _, word := range words {
		if strings.EqualFold(word, w) {
			return true
		}
	}
	return false
}

// Weight returns the entity's size plus the recursive weight of its
// contents.
func (e *Entity) Weight() int {
	total := DefaultSize
	if e.Item != nil {
		total = e.Item.Size
	}
	for _, c := range e.contents {
		total += c.Weight()
	}
	return total
}

// IsTreasure reports whether the entity scores when banked.
func (e *Entity) IsTreasure() bool {
	return e.Item != nil && e.Item.TreasureValue > 0
}

// ReadText returns the entity's readable text, or "" if it has none.
func (e *Entity) ReadText() string {
	if e.Item == nil {
		return ""
	}
	if !e.HasFlag(FlagReadable) && e.Item.Text == "" {
		return ""
	}
	return e.Item.Text
}

// TurnOn switches a light source on. Returns false if the entity does not
// emit light.
func (e *Entity) TurnOn() bool {
	if !e.HasFlag(FlagLight) {
		return false
	}
	e.SetFlag(FlagOn)
	return true
}

// TurnOff switches a light source off.
func (e *Entity) TurnOff() bool {
	if !e.HasFlag(FlagLight) {
		return false
	}
	e.ClearFlag(FlagOn)
	return true
}
