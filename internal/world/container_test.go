package world

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func newChest() *Entity {
	chest := NewContainer("chest", 100)
	chest.ShortDesc = "wooden chest"
	chest.SetFlag(FlagOpenable)
	return chest
}

func TestContainerTransitions(t *testing.T) {
	tests := map[string]struct {
		setup      func() *Entity
		transition func(*Entity) Result
		expOK      bool
		expMsg     string
		expFlags   Flag // flags that must be set afterwards
		expClear   Flag // flags that must be clear afterwards
	}{
		"open a closed chest": {
			setup:      newChest,
			transition: (*Entity).Open,
			expOK:      true,
			expMsg:     "Opened.",
			expFlags:   FlagOpen,
		},
		"open an open chest": {
			setup: func() *Entity {
				c := newChest()
				c.SetFlag(FlagOpen)
				return c
			},
			transition: (*Entity).Open,
			expMsg:     "already open",
			expFlags:   FlagOpen,
		},
		"open a locked chest": {
			setup: func() *Entity {
				c := newChest()
				c.SetFlag(FlagLocked)
				return c
			},
			transition: (*Entity).Open,
			expMsg:     "is locked",
			expFlags:   FlagLocked,
			expClear:   FlagOpen,
		},
		"open a non-openable crate": {
			setup: func() *Entity {
				c := NewContainer("crate", 50)
				c.ShortDesc = "nailed crate"
				return c
			},
			transition: (*Entity).Open,
			expMsg:     "can't open",
			expClear:   FlagOpen,
		},
		"close an open chest": {
			setup: func() *Entity {
				c := newChest()
				c.SetFlag(FlagOpen)
				return c
			},
			transition: (*Entity).Close,
			expOK:      true,
			expMsg:     "Closed.",
			expClear:   FlagOpen,
		},
		"close a closed chest": {
			setup:      newChest,
			transition: (*Entity).Close,
			expMsg:     "already closed",
		},
		"lock a closed chest": {
			setup:      newChest,
			transition: (*Entity).Lock,
			expOK:      true,
			expMsg:     "Locked.",
			expFlags:   FlagLocked,
		},
		"lock an open chest": {
			setup: func() *Entity {
				c := newChest()
				c.SetFlag(FlagOpen)
				return c
			},
			transition: (*Entity).Lock,
			expMsg:     "must be closed first",
			expClear:   FlagLocked,
		},
		"lock a locked chest": {
			setup: func() *Entity {
				c := newChest()
				c.SetFlag(FlagLocked)
				return c
			},
			transition: (*Entity).Lock,
			expMsg:     "already locked",
			expFlags:   FlagLocked,
		},
		"unlock a locked chest": {
			setup: func() *Entity {
				c := newChest()
				c.SetFlag(FlagLocked)
				return c
			},
			transition: (*Entity).Unlock,
			expOK:      true,
			expMsg:     "Unlocked.",
			expClear:   FlagLocked,
		},
		"unlock an unlocked chest": {
			setup:      newChest,
			transition: (*Entity).Unlock,
			expMsg:     "isn't locked",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := tt.setup()
			res := tt.transition(c)

			testutil.AssertEqual(t, "ok", res.OK, tt.expOK)
			if !strings.Contains(res.Message, tt.expMsg) {
				t.Errorf("message = %q, expected it to contain %q", res.Message, tt.expMsg)
			}
			if tt.expFlags != 0 && !c.HasFlag(tt.expFlags) {
				t.Errorf("expected flags %b to be set", tt.expFlags)
			}
			if tt.expClear != 0 && c.Flags&tt.expClear != 0 {
				t.Errorf("expected flags %b to be clear", tt.expClear)
			}
		})
	}
}

// A locked chest refuses to open until unlocked; the full sequence ends
// open and unlocked.
func TestContainer_LockedOpenSequence(t *testing.T) {
	chest := newChest()
	chest.SetFlag(FlagLocked)

	res := chest.Open()
	testutil.AssertEqual(t, "open while locked ok", res.OK, false)
	testutil.AssertEqual(t, "still locked", chest.IsLocked(), true)
	testutil.AssertEqual(t, "still closed", chest.IsOpen(), false)

	res = chest.Unlock()
	testutil.AssertEqual(t, "unlock ok", res.OK, true)

	res = chest.Open()
	testutil.AssertEqual(t, "open ok", res.OK, true)
	testutil.AssertEqual(t, "open", chest.IsOpen(), true)
	testutil.AssertEqual(t, "unlocked", chest.IsLocked(), false)
}

func TestSurface_NeverTransitions(t *testing.T) {
	table := NewSurface("table", 200)
	table.ShortDesc = "kitchen table"

	testutil.AssertEqual(t, "always open", table.IsOpen(), true)

	for name, transition := range map[string]func(*Entity) Result{
		"open":   (*Entity).Open,
		"close":  (*Entity).Close,
		"lock":   (*Entity).Lock,
		"unlock": (*Entity).Unlock,
	} {
		res := transition(table)
		if res.OK {
			t.Errorf("%s succeeded on a surface", name)
		}
	}

	testutil.AssertEqual(t, "still open", table.IsOpen(), true)
	testutil.AssertEqual(t, "never locked", table.IsLocked(), false)
}

func TestVisibleContents(t *testing.T) {
	tests := map[string]struct {
		setup func(t *testing.T) *Entity
		exp   []string
	}{
		"open container": {
			setup: func(t *testing.T) *Entity {
				c := newChest()
				c.SetFlag(FlagOpen)
				coin := NewItem("coin")
				mustMove(t, coin, c)
				return c
			},
			exp: []string{"coin"},
		},
		"closed opaque container": {
			setup: func(t *testing.T) *Entity {
				c := newChest()
				coin := NewItem("coin")
				mustMove(t, coin, c)
				return c
			},
			exp: nil,
		},
		"closed transparent container": {
			setup: func(t *testing.T) *Entity {
				c := newChest()
				c.SetFlag(FlagTransparent)
				coin := NewItem("coin")
				mustMove(t, coin, c)
				return c
			},
			exp: []string{"coin"},
		},
		"surface": {
			setup: func(t *testing.T) *Entity {
				s := NewSurface("table", 200)
				bowl := NewItem("bowl")
				mustMove(t, bowl, s)
				return s
			},
			exp: []string{"bowl"},
		},
		"invisible entity filtered": {
			setup: func(t *testing.T) *Entity {
				c := newChest()
				c.SetFlag(FlagOpen)
				coin := NewItem("coin")
				ghost := NewItem("ghost")
				ghost.SetFlag(FlagInvisible)
				mustMove(t, coin, c)
				mustMove(t, ghost, c)
				return c
			},
			exp: []string{"coin"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := tt.setup(t)

			var got []string
			for _, e := range c.VisibleContents() {
				got = append(got, e.ID)
			}

			testutil.AssertEqual(t, "visible count", len(got), len(tt.exp))
			for i := range tt.exp {
				testutil.AssertEqual(t, "visible id", got[i], tt.exp[i])
			}
		})
	}
}

func TestCanHold(t *testing.T) {
	box := NewContainer("box", 10)
	box.SetFlag(FlagOpenable | FlagOpen)

	light := NewItem("feather")
	light.Item.Size = 1
	heavy := NewItem("anvil")
	heavy.Item.Size = 50

	testutil.AssertEqual(t, "light item fits", box.CanHold(light), true)
	testutil.AssertEqual(t, "heavy item rejected", box.CanHold(heavy), false)

	mustMove(t, light, box)

	filler := NewItem("filler")
	filler.Item.Size = 10
	testutil.AssertEqual(t, "full box rejects", box.CanHold(filler), false)

	// Nested contents count toward weight
	pouch := NewContainer("pouch", 10)
	pouch.Item.Size = 2
	gem := NewItem("gem")
	gem.Item.Size = 3
	mustMove(t, gem, pouch)
	testutil.AssertEqual(t, "recursive weight", pouch.Weight(), 5)
	testutil.AssertEqual(t, "nested fits", box.CanHold(pouch), true)
}
