package command

import (
	"fmt"
	"os"
	"time"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/world"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load world definitions and build the containment graph
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("loading world definitions: %w", err)
	}
	registry, err := dict.Build()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	if cfg.StartRoom != "" {
		room := registry.Get(cfg.StartRoom)
		if room == nil {
			return nil, fmt.Errorf("start_room %q not found", cfg.StartRoom)
		}
		out := display.NewWriter(os.Stdout, cfg.Display.Width)
		desc, err := world.NewDescriber(out)
		if err != nil {
			return nil, fmt.Errorf("creating describer: %w", err)
		}
		if err := desc.Describe(room, true); err != nil {
			return nil, fmt.Errorf("describing start room: %w", err)
		}
	}

	tickLength, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}

	// The clock fires room hooks and actor brains once per tick
	drv := driver.NewDriver(
		[]driver.Ticker{world.NewClock(registry)},
		driver.WithTickLength(tickLength),
	)

	return service.WorkerList{
		"driver": drv,
	}, nil
}
