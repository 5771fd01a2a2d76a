package filesystem

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/metafates/gache"
)

// gacheFs routes gache through the active backend.
type gacheFs struct{}

func (gacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (gacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}

// Store returns an accessor for a JSON store at path. The store is created on
// the first call, so the path is resolved against whichever backend is active then.
// A zero lifetime never expires.
func Store[T any](path func() string, lifetime time.Duration) func() *gache.Cache[T] {
	var (
		once  sync.Once
		cache *gache.Cache[T]
	)

	return func() *gache.Cache[T] {
		once.Do(func() {
			cache = gache.New[T](&gache.Options{
				Path:       path(),
				Lifetime:   lifetime,
				FileSystem: gacheFs{},
			})
		})
		return cache
	}
}
