package resolver

import (
	"fmt"
	"strings"
	"sync"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	mu    sync.Mutex
	store = filesystem.Store[[]*Config](where.Resolvers, 0)
)

func load() ([]*Config, error) {
	cached, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []*Config{}, nil
	}
	return cached, nil
}

// List returns the saved resolvers in insertion order.
func List() ([]*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	return load()
}

// Get looks a resolver up by exact ID, then by case-insensitive name.
func Get(nameOrID string) mo.Option[*Config] {
	all, err := List()
	if err != nil {
		return mo.None[*Config]()
	}

	return lookup(all, nameOrID)
}

func lookup(all []*Config, nameOrID string) mo.Option[*Config] {
	if c, ok := lo.Find(all, func(c *Config) bool { return c.ID == nameOrID }); ok {
		return mo.Some(c)
	}
	if c, ok := lo.Find(all, func(c *Config) bool { return strings.EqualFold(c.Name, nameOrID) }); ok {
		return mo.Some(c)
	}
	return mo.None[*Config]()
}

// Find is Get with an error that suggests the closest name.
func Find(nameOrID string) (*Config, error) {
	all, err := List()
	if err != nil {
		return nil, err
	}

	if c, ok := lookup(all, nameOrID).Get(); ok {
		return c, nil
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("resolver %q not found, no resolvers saved", nameOrID)
	}

	closest := lo.MinBy(all, func(a, b *Config) bool {
		return levenshtein.Distance(nameOrID, a.Name) < levenshtein.Distance(nameOrID, b.Name)
	})
	return nil, fmt.Errorf("resolver %q not found, did you mean %q?", nameOrID, closest.Name)
}

// Add appends resolvers. A resolver whose ID is already saved replaces it in place.
func Add(configs ...*Config) error {
	mu.Lock()
	defer mu.Unlock()

	all, err := load()
	if err != nil {
		return err
	}

	for _, c := range configs {
		if c.ID == "" {
			c.ID = New("", "", "", "").ID
		}

		_, index, found := lo.FindIndexOf(all, func(saved *Config) bool { return saved.ID == c.ID })
		if found {
			all[index] = c
		} else {
			all = append(all, c)
		}
	}

	return store().Set(all)
}

// Update replaces the saved resolver that has the same ID.
func Update(config *Config) error {
	mu.Lock()
	defer mu.Unlock()

	all, err := load()
	if err != nil {
		return err
	}

	_, index, found := lo.FindIndexOf(all, func(saved *Config) bool { return saved.ID == config.ID })
	if !found {
		return fmt.Errorf("resolver %s not found", config.ID)
	}

	all[index] = config
	return store().Set(all)
}

// Remove deletes the resolver with the given ID.
func Remove(id string) error {
	mu.Lock()
	defer mu.Unlock()

	all, err := load()
	if err != nil {
		return err
	}

	kept := lo.Reject(all, func(c *Config, _ int) bool { return c.ID == id })
	if len(kept) == len(all) {
		return fmt.Errorf("resolver %s not found", id)
	}

	return store().Set(kept)
}

// Replace overwrites the whole registry.
func Replace(configs []*Config) error {
	mu.Lock()
	defer mu.Unlock()

	if configs == nil {
		configs = []*Config{}
	}
	return store().Set(configs)
}
