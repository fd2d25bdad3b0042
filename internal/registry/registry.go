// Package registry provides the lazy model cache: one instance per
// named pretrained model, loaded on first use and shared for the rest
// of the process lifetime.
package registry

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// LoaderFunc performs the (potentially slow, disk-bound) construction
// of a model handle. It runs at most once per name unless it fails.
type LoaderFunc func() (interface{}, error)

type entry struct {
	mu     sync.Mutex
	loaded bool
	handle interface{}
	load   LoaderFunc
}

// Registry caches model handles keyed by name. Each entry has its own
// lock so a cold load of one model never serializes loads of others.
// Failed loads are not cached; the next caller retries.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register installs a loader under a name. Registering twice for the
// same name replaces the loader only if the model never loaded.
func (r *Registry) Register(name string, load LoaderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok {
		e.mu.Lock()
		if !e.loaded {
			e.load = load
		}
		e.mu.Unlock()
		return
	}
	r.entries[name] = &entry{load: load}
}

// Get returns the cached handle for name, loading it on first use.
// Concurrent first callers block until the single load completes.
func (r *Registry) Get(name string) (interface{}, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown model %q", name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded {
		return e.handle, nil
	}

	start := time.Now()
	handle, err := e.load()
	if err != nil {
		// Leave the entry unloaded so the next call retries.
		return nil, fmt.Errorf("failed to load model %q: %w", name, err)
	}

	e.handle = handle
	e.loaded = true
	log.Printf("model %q loaded in %s", name, time.Since(start))
	return handle, nil
}

// Loaded reports whether the named model has been loaded.
func (r *Registry) Loaded(name string) bool {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Names returns the registered model names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}
