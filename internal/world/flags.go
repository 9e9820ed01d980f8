package world

import (
	"fmt"
	"strings"
)

// Flag is a capability bit carried by an entity. Multiple flags are
// combined with bitwise OR.
type Flag uint64

const (
	// Visibility and description
	FlagInvisible  Flag = 1 << iota // hidden from players entirely
	FlagNoDescribe                  // never listed in room descriptions
	FlagTouched                     // has been manipulated by an actor

	// Containers and surfaces
	FlagContainer   // can hold other entities
	FlagSurface     // permanently open container (table, counter)
	FlagOpen        // container is currently open
	FlagOpenable    // container can be opened and closed
	FlagTransparent // contents visible while closed
	FlagLocked      // container is locked

	// Items
	FlagTakeable // can be picked up
	FlagReadable // carries readable text
	FlagWeapon   // usable as a weapon
	FlagTool     // usable as a tool
	FlagFood     // edible
	FlagWearable // can be worn

	// Light
	FlagLight // emits light when on
	FlagOn    // light source is switched on
	FlagFlame // burns (open flame)

	// Rooms
	FlagSacred  // special room rules apply
	FlagOutside // open-air room
)

var flagNames = map[string]Flag{
	"invisible":   FlagInvisible,
	"no-describe": FlagNoDescribe,
	"touched":     FlagTouched,
	"container":   FlagContainer,
	"surface":     FlagSurface,
	"open":        FlagOpen,
	"openable":    FlagOpenable,
	"transparent": FlagTransparent,
	"locked":      FlagLocked,
	"takeable":    FlagTakeable,
	"readable":    FlagReadable,
	"weapon":      FlagWeapon,
	"tool":        FlagTool,
	"food":        FlagFood,
	"wearable":    FlagWearable,
	"light":       FlagLight,
	"on":          FlagOn,
	"flame":       FlagFlame,
	"sacred":      FlagSacred,
	"outside":     FlagOutside,
}

// ParseFlag maps an asset-file flag name to its bit.
func ParseFlag(name string) (Flag, error) {
	f, ok := flagNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown flag %q", name)
	}
	return f, nil
}

// HasFlag reports whether all bits of f are set on the entity.
func (e *Entity) HasFlag(f Flag) bool {
	return e.Flags&f == f
}

// SetFlag sets the given bits.
func (e *Entity) SetFlag(f Flag) {
	e.Flags |= f
}

// ClearFlag clears the given bits.
func (e *Entity) ClearFlag(f Flag) {
	e.Flags &^= f
}

// ToggleFlag flips the given bits.
func (e *Entity) ToggleFlag(f Flag) {
	e.Flags ^= f
}
