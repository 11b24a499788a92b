package editor

import (
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/oliveiraclick/criadorLP/internal/content"
)

// Registry keeps one State per browser session.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
	observe func(int)
}

type entry struct {
	state   *State
	touched time.Time
}

// RegistryOption customises a Registry.
type RegistryOption func(*Registry)

// WithClock overrides the time source used for idle tracking.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithSizeObserver is called with the session count after every change.
func WithSizeObserver(fn func(int)) RegistryOption {
	return func(r *Registry) {
		r.observe = fn
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewSessionID returns a fresh, sortable session identifier.
func NewSessionID() string {
	return ulid.Make().String()
}

// Get returns a copy of the state stored under id.
func (r *Registry) Get(id string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	e.touched = r.now()
	return e.state.clone(), true
}

// Put stores s under id, replacing any previous state.
func (r *Registry) Put(id string, s *State) {
	r.mu.Lock()
	r.entries[id] = &entry{state: s, touched: r.now()}
	n := len(r.entries)
	r.mu.Unlock()
	r.notify(n)
}

// Update runs fn against the state stored under id while holding the registry lock.
func (r *Registry) Update(id string, fn func(*State) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSession, id)
	}
	e.touched = r.now()
	return fn(e.state)
}

// Delete drops the state stored under id.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.entries, id)
	n := len(r.entries)
	r.mu.Unlock()
	r.notify(n)
}

// Sweep evicts sessions idle for longer than ttl and returns how many were removed.
func (r *Registry) Sweep(ttl time.Duration) int {
	r.mu.Lock()
	cutoff := r.now().Add(-ttl)
	removed := 0
	for id, e := range r.entries {
		if e.touched.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	n := len(r.entries)
	r.mu.Unlock()
	if removed > 0 {
		r.notify(n)
	}
	return removed
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) notify(n int) {
	if r.observe != nil {
		r.observe(n)
	}
}

// clone deep-copies s as is. Unlike Restore it fills nothing in, so cleared fields stay cleared.
func (s *State) clone() *State {
	c := *s
	c.Sections = make(map[SectionKey]*SectionConfig, len(s.Sections))
	for k, cfg := range s.Sections {
		if cfg != nil {
			cp := *cfg
			c.Sections[k] = &cp
		}
	}
	c.Features = append([]content.Feature(nil), s.Features...)
	c.Pricing = clonePlans(s.Pricing)
	c.Testimonials = append([]content.Testimonial(nil), s.Testimonials...)
	c.FAQ = append([]content.FAQItem(nil), s.FAQ...)
	c.Footer = cloneFooter(s.Footer)
	return &c
}
