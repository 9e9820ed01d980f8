package world

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-adventure/internal/display"
)

// DefaultPresenceTemplate renders the fallback line for an entity with
// neither a first-seen nor a later description.
const DefaultPresenceTemplate = "There is {{ .ShortDesc }} here."

// Describer composes room text from graph state and hands each line to the
// injected Output. One Describer serves one game session.
type Describer struct {
	out      display.Output
	presence *template.Template
}

type DescriberOpt func(*describerConfig)

type describerConfig struct {
	presenceTemplate string
}

// WithPresenceTemplate overrides the fallback presence line. The template
// executes against the entity being described.
func WithPresenceTemplate(tmpl string) DescriberOpt {
	return func(cfg *describerConfig) {
		cfg.presenceTemplate = tmpl
	}
}

// NewDescriber creates a Describer emitting to out.
func NewDescriber(out display.Output, opts ...DescriberOpt) (*Describer, error) {
	cfg := &describerConfig{
		presenceTemplate: DefaultPresenceTemplate,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tmpl, err := template.New("presence").Funcs(sprig.TxtFuncMap()).Parse(cfg.presenceTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing presence template: %w", err)
	}

	return &Describer{out: out, presence: tmpl}, nil
}

// Describe emits the room's name, its long description when verbose or on
// the first visit, and one line per describable content entity: the
// first-seen text once, the later text thereafter, or the presence line
// when the entity has neither. Every entity described is marked seen, and
// the room is marked visited.
func (d *Describer) Describe(room *Entity, verbose bool) error {
	if room.Kind != KindRoom {
		return fmt.Errorf("cannot describe %s: not a room", room.ID)
	}

	d.out.Emit(room.ShortDesc)

	if (verbose || !room.Room.Visited) && room.LongDesc != "" {
		d.out.Emit(room.LongDesc)
	}
	room.Room.Visited = true

	for _, c := range room.contents {
		if c.HasFlag(FlagNoDescribe) || c.HasFlag(FlagInvisible) {
			continue
		}

		switch {
		case !c.seen && c.FirstDesc != "":
			d.out.Emit(c.FirstDesc)
		case c.LaterDesc != "":
			d.out.Emit(c.LaterDesc)
		default:
			line, err := d.presenceLine(c)
			if err != nil {
				return err
			}
			d.out.Emit(line)
		}
		c.seen = true
	}

	return nil
}

func (d *Describer) presenceLine(e *Entity) (string, error) {
	var buf bytes.Buffer
	if err := d.presence.Execute(&buf, e); err != nil {
		return "", fmt.Errorf("executing presence template for %s: %w", e.ID, err)
	}
	return buf.String(), nil
}
