package world

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestClockTick(t *testing.T) {
	reg := NewRegistry()

	roomTicks := 0
	cellar := NewRoom("cellar")
	cellar.Room.Tick = RoomTickFunc(func(room *Entity) Outcome {
		roomTicks++
		return OutcomeHandled
	})

	quietRoom := NewRoom("attic")

	trollActs := 0
	troll := NewActor("troll", 10, 2)
	troll.Actor.Brain = BrainFunc(func(self *Entity) Outcome {
		trollActs++
		return OutcomeHandled
	})

	corpseActs := 0
	corpse := NewActor("corpse", 10, 2)
	corpse.Actor.Brain = BrainFunc(func(self *Entity) Outcome {
		corpseActs++
		return OutcomeHandled
	})
	corpse.TakeDamage(10)

	mindless := NewActor("rat", 5, 1)

	for _, e := range []*Entity{cellar, quietRoom, troll, corpse, mindless} {
		if err := reg.Add(e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	clock := NewClock(reg)
	for range 3 {
		if err := clock.Tick(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	testutil.AssertEqual(t, "room hook fired", roomTicks, 3)
	testutil.AssertEqual(t, "living brain fired", trollActs, 3)
	testutil.AssertEqual(t, "dead brain skipped", corpseActs, 0)
}

// Brains run against live graph state, so a brain can move its own actor.
func TestClockTick_BrainMutatesWorld(t *testing.T) {
	reg := NewRegistry()
	cellar := NewRoom("cellar")
	attic := NewRoom("attic")

	thief := NewActor("thief", 10, 3)
	thief.Actor.Brain = BrainFunc(func(self *Entity) Outcome {
		dest := attic
		if self.Parent() == attic {
			dest = cellar
		}
		if err := self.MoveTo(dest); err != nil {
			return OutcomeBlocked
		}
		return OutcomeHandled
	})
	mustMove(t, thief, cellar)

	for _, e := range []*Entity{cellar, attic, thief} {
		if err := reg.Add(e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	clock := NewClock(reg)

	if err := clock.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if thief.Parent() != attic {
		t.Errorf("thief in %v, expected attic", thief.Parent())
	}

	if err := clock.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if thief.Parent() != cellar {
		t.Errorf("thief in %v, expected cellar", thief.Parent())
	}
}
