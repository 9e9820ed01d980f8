package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/builder"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Rooms      AssetConfig[*builder.RoomDef]      `json:"rooms"`
	Items      AssetConfig[*builder.ItemDef]      `json:"items"`
	Containers AssetConfig[*builder.ContainerDef] `json:"containers"`
	Actors     AssetConfig[*builder.ActorDef]     `json:"actors"`
}

func (c *StorageConfig) BuildDictionary() (*builder.Dictionary, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	containers, err := c.Containers.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating container store: %w", err)
	}
	actors, err := c.Actors.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating actor store: %w", err)
	}

	return &builder.Dictionary{
		Rooms:      rooms,
		Items:      items,
		Containers: containers,
		Actors:     actors,
	}, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Containers.Validate("containers"))
	el.Add(c.Actors.Validate("actors"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
