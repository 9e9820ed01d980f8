package builder

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/world"
)

// Dictionary holds the definition stores the builder wires a world from.
type Dictionary struct {
	Rooms      storage.Storer[*RoomDef]
	Items      storage.Storer[*ItemDef]
	Containers storage.Storer[*ContainerDef]
	Actors     storage.Storer[*ActorDef]
}

type placement struct {
	entity   *world.Entity
	location string
}

// Build instantiates every definition and wires the containment graph and
// room exits. Entities are created first, then placed, then exits are
// resolved, so definitions may reference each other freely.
func (d *Dictionary) Build() (*world.Registry, error) {
	reg := world.NewRegistry()
	var placements []placement

	for _, id := range sortedIds(d.Rooms.GetAll()) {
		def, _ := d.Rooms.Get(id)
		e := world.NewRoom(id.String())
		e.ShortDesc = def.Name
		e.LongDesc = def.Description
		if def.LightLevel != nil {
			e.Room.LightLevel = *def.LightLevel
		}
		e.Properties = def.Properties
		for _, name := range def.Flags {
			f, err := world.ParseFlag(name)
			if err != nil {
				return nil, fmt.Errorf("room %s: %w", id, err)
			}
			e.SetFlag(f)
		}
		if err := reg.Add(e); err != nil {
			return nil, fmt.Errorf("room %s: %w", id, err)
		}
	}

	for _, id := range sortedIds(d.Containers.GetAll()) {
		def, _ := d.Containers.Get(id)
		e := world.NewContainer(id.String(), def.Capacity)
		if def.Surface {
			e.SetFlag(world.FlagSurface)
		}
		if def.Size > 0 {
			e.Item.Size = def.Size
		}
		applyEntityDef(e, &def.EntityDef)
		if err := reg.Add(e); err != nil {
			return nil, fmt.Errorf("container %s: %w", id, err)
		}
		placements = append(placements, placement{e, def.Location})
	}

	for _, id := range sortedIds(d.Items.GetAll()) {
		def, _ := d.Items.Get(id)
		count := max(def.Count, 1)
		for i := range count {
			instanceId := id.String()
			if i > 0 {
				instanceId = fmt.Sprintf("%s-%s", id, uuid.NewString())
			}
			e := world.NewItem(instanceId)
			if def.Size > 0 {
				e.Item.Size = def.Size
			}
			e.Item.Value = def.Value
			e.Item.TreasureValue = def.TreasureValue
			e.Item.Text = def.Text
			applyEntityDef(e, &def.EntityDef)
			if err := reg.Add(e); err != nil {
				return nil, fmt.Errorf("item %s: %w", id, err)
			}
			placements = append(placements, placement{e, def.Location})
		}
	}

	for _, id := range sortedIds(d.Actors.GetAll()) {
		def, _ := d.Actors.Get(id)
		e := world.NewActor(id.String(), def.Health, def.Strength)
		e.Actor.Hostile = def.Hostile
		applyEntityDef(e, &def.EntityDef)
		if err := reg.Add(e); err != nil {
			return nil, fmt.Errorf("actor %s: %w", id, err)
		}
		placements = append(placements, placement{e, def.Location})
	}

	for _, p := range placements {
		if p.location == "" {
			continue
		}
		loc := reg.Get(p.location)
		if loc == nil {
			return nil, fmt.Errorf("placing %s: location %q not found", p.entity.ID, p.location)
		}
		if err := p.entity.MoveTo(loc); err != nil {
			return nil, fmt.Errorf("placing %s: %w", p.entity.ID, err)
		}
	}

	for _, id := range sortedIds(d.Rooms.GetAll()) {
		def, _ := d.Rooms.Get(id)
		room := reg.Get(id.String())
		for dir, exitDef := range def.Exits {
			exit, err := resolveExit(reg, exitDef)
			if err != nil {
				return nil, fmt.Errorf("room %s exit %s: %w", id, dir, err)
			}
			if err := room.SetExit(dir, exit); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

func resolveExit(reg *world.Registry, def ExitDef) (world.Exit, error) {
	if def.Computed != "" {
		return world.Exit{Computed: def.Computed}, nil
	}
	target := reg.Get(def.Room)
	if target == nil {
		return world.Exit{}, fmt.Errorf("destination %q not found", def.Room)
	}
	return world.Exit{Room: target}, nil
}

func applyEntityDef(e *world.Entity, def *EntityDef) {
	e.Aliases = def.Aliases
	e.Adjectives = def.Adjectives
	e.ShortDesc = def.ShortDesc
	e.LongDesc = def.LongDesc
	e.FirstDesc = def.FirstDesc
	e.LaterDesc = def.LaterDesc
	e.Properties = def.Properties
	e.SetFlag(def.flagBits())
}

func sortedIds[T storage.ValidatingSpec](records map[storage.Identifier]T) []storage.Identifier {
	return slices.Sorted(maps.Keys(records))
}
