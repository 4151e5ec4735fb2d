package session

import "sync"

// Registry tracks live round contexts by round id so handlers can route walk
// operations to the right in-memory state.
type Registry struct {
	mu       sync.RWMutex
	contexts map[uint64]*Context
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{contexts: make(map[uint64]*Context)}
}

// Put registers a context under its round id.
func (r *Registry) Put(ctx *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contexts[ctx.RoundID] = ctx
}

// Get returns the context for a round id, or nil when none is registered.
func (r *Registry) Get(roundID uint64) *Context {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.contexts[roundID]
}

// Remove forgets the context for a round id.
func (r *Registry) Remove(roundID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contexts, roundID)
}
