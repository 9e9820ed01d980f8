package builder

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/world"
	"github.com/pixil98/go-errors"
)

// EntityDef holds the fields shared by item, container, and actor
// definition files.
type EntityDef struct {
	// Aliases are keywords players can use to target this entity
	Aliases []string `json:"aliases"`

	// Adjectives qualify the aliases (e.g., ["brass"])
	Adjectives []string `json:"adjectives,omitempty"`

	// ShortDesc is the entity's display name
	ShortDesc string `json:"short_desc"`

	// LongDesc is shown when a player looks at the entity
	LongDesc string `json:"long_desc,omitempty"`

	// FirstDesc is listed in room descriptions until the entity has been
	// seen; LaterDesc afterwards
	FirstDesc string `json:"first_desc,omitempty"`
	LaterDesc string `json:"later_desc,omitempty"`

	// Flags are capability flag names (see world.ParseFlag)
	Flags []string `json:"flags,omitempty"`

	// Location is the id of the entity's initial parent
	Location string `json:"location,omitempty"`

	// Properties are engine-defined values keyed by name
	Properties storage.Properties `json:"properties,omitempty"`
}

func (d *EntityDef) Validate() error {
	el := errors.NewErrorList()

	if len(d.Aliases) < 1 {
		el.Add(fmt.Errorf("alias is required"))
	}
	if d.ShortDesc == "" {
		el.Add(fmt.Errorf("short description is required"))
	}
	for _, f := range d.Flags {
		if _, err := world.ParseFlag(f); err != nil {
			el.Add(err)
		}
	}

	return el.Err()
}

func (d *EntityDef) flagBits() world.Flag {
	var bits world.Flag
	for _, name := range d.Flags {
		f, err := world.ParseFlag(name)
		if err != nil {
			// Validate already rejected unknown names.
			continue
		}
		bits |= f
	}
	return bits
}

// RoomDef defines a location loaded from asset files.
type RoomDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// LightLevel is the base illumination; nil defaults to 1 (lit)
	LightLevel *int `json:"light_level,omitempty"`

	Flags []string `json:"flags,omitempty"`

	// Exits maps direction names to destinations
	Exits map[string]ExitDef `json:"exits,omitempty"`

	Properties storage.Properties `json:"properties,omitempty"`
}

func (d *RoomDef) Validate() error {
	el := errors.NewErrorList()

	if d.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	for _, f := range d.Flags {
		if _, err := world.ParseFlag(f); err != nil {
			el.Add(err)
		}
	}
	for dir, exit := range d.Exits {
		if err := exit.Validate(); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", dir, err))
		}
	}

	return el.Err()
}

// ExitDef is the asset form of a room exit: either a direct room id or a
// computed-exit descriptor for the engine. Exactly one is set.
type ExitDef struct {
	Room     string `json:"room,omitempty"`
	Computed string `json:"computed,omitempty"`
}

func (d ExitDef) Validate() error {
	if d.Room == "" && d.Computed == "" {
		return fmt.Errorf("room or computed is required")
	}
	if d.Room != "" && d.Computed != "" {
		return fmt.Errorf("room and computed are mutually exclusive")
	}
	return nil
}

// ItemDef defines an item loaded from asset files.
type ItemDef struct {
	EntityDef

	// Size is the item's weight; 0 defaults to world.DefaultSize
	Size int `json:"size,omitempty"`

	// Value scores when the item is found; TreasureValue when banked
	Value         int `json:"value,omitempty"`
	TreasureValue int `json:"treasure_value,omitempty"`

	// Text is shown when the item is read
	Text string `json:"text,omitempty"`

	// Count spawns multiple instances of this definition; 0 means 1
	Count int `json:"count,omitempty"`
}

func (d *ItemDef) Validate() error {
	el := errors.NewErrorList()
	el.Add(d.EntityDef.Validate())
	if d.Size < 0 {
		el.Add(fmt.Errorf("size cannot be negative"))
	}
	if d.Count < 0 {
		el.Add(fmt.Errorf("count cannot be negative"))
	}
	return el.Err()
}

// ContainerDef defines a container loaded from asset files.
type ContainerDef struct {
	EntityDef

	Size     int `json:"size,omitempty"`
	Capacity int `json:"capacity"`

	// Surface makes this a permanently open container
	Surface bool `json:"surface,omitempty"`
}

func (d *ContainerDef) Validate() error {
	el := errors.NewErrorList()
	el.Add(d.EntityDef.Validate())
	if d.Capacity < 1 {
		el.Add(fmt.Errorf("capacity must be positive"))
	}
	return el.Err()
}

// ActorDef defines an actor loaded from asset files.
type ActorDef struct {
	EntityDef

	Health   int  `json:"health"`
	Strength int  `json:"strength"`
	Hostile  bool `json:"hostile,omitempty"`
}

func (d *ActorDef) Validate() error {
	el := errors.NewErrorList()
	el.Add(d.EntityDef.Validate())
	if d.Health < 1 {
		el.Add(fmt.Errorf("health must be positive"))
	}
	if d.Strength < 0 {
		el.Add(fmt.Errorf("strength cannot be negative"))
	}
	return el.Err()
}
