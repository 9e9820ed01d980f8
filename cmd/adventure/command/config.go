package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string `json:"tick_interval"`

	// StartRoom is the id of the room described when the world comes up
	StartRoom string `json:"start_room,omitempty"`

	Display DisplayConfig `json:"display"`
	Storage StorageConfig `json:"storage"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < time.Second {
		el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
	}

	el.Add(c.Display.Validate())
	el.Add(c.Storage.validate())

	return el.Err()
}

type DisplayConfig struct {
	// Width is the wrap column for player output; 0 uses the default
	Width int `json:"width,omitempty"`
}

func (c *DisplayConfig) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("display width cannot be negative")
	}
	return nil
}
