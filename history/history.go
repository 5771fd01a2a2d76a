// Package history persists successful analysis results, newest first.
package history

import (
	"fmt"
	"strings"
	"sync"

	"github.com/appecho/alpha/filesystem"
	"github.com/appecho/alpha/media"
	"github.com/appecho/alpha/where"
	"github.com/samber/lo"
)

var (
	mu    sync.Mutex
	store = filesystem.Store[[]*media.Descriptor](where.Results, 0)
)

func load() ([]*media.Descriptor, error) {
	cached, expired, err := store().Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []*media.Descriptor{}, nil
	}
	return cached, nil
}

// Get returns every saved descriptor, newest first.
func Get() ([]*media.Descriptor, error) {
	mu.Lock()
	defer mu.Unlock()

	return load()
}

// Save puts descriptors in front of the history. A descriptor with an ID that is
// already saved moves to the front.
func Save(descriptors ...*media.Descriptor) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	ids := lo.SliceToMap(descriptors, func(d *media.Descriptor) (string, struct{}) {
		return d.ID, struct{}{}
	})
	kept := lo.Reject(saved, func(d *media.Descriptor, _ int) bool {
		_, ok := ids[d.ID]
		return ok
	})

	return store().Set(append(lo.Reverse(append([]*media.Descriptor{}, descriptors...)), kept...))
}

// Find returns the descriptor with the given ID or unique ID prefix.
func Find(id string) (*media.Descriptor, error) {
	all, err := Get()
	if err != nil {
		return nil, err
	}

	if d, ok := lo.Find(all, func(d *media.Descriptor) bool { return d.ID == id }); ok {
		return d, nil
	}

	matches := lo.Filter(all, func(d *media.Descriptor, _ int) bool {
		return id != "" && strings.HasPrefix(d.ID, id)
	})
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("result %q not found", id)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("result id %q is ambiguous, %d results match", id, len(matches))
	}
}

// Remove deletes the descriptor with the given ID.
func Remove(id string) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	kept := lo.Reject(saved, func(d *media.Descriptor, _ int) bool { return d.ID == id })
	if len(kept) == len(saved) {
		return fmt.Errorf("result %q not found", id)
	}

	return store().Set(kept)
}

// Clear forgets every saved descriptor.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	return store().Set([]*media.Descriptor{})
}
