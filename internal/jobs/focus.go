package jobs

import (
	"sync"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
)

// FocusRegistry tracks which trip the operator is currently looking at.
// The polling jobs only run while a trip is focused; regaining focus
// triggers an immediate fetch instead of waiting for the next tick.
//
// FocusRegistry is safe for concurrent use.
type FocusRegistry struct {
	mu       sync.Mutex
	focused  *kernel.UUID
	nextHook int
	onFocus  map[int]func(kernel.UUID)
}

// NewFocusRegistry creates a registry with no focused trip.
func NewFocusRegistry() *FocusRegistry {
	return &FocusRegistry{onFocus: make(map[int]func(kernel.UUID))}
}

// Focus records the trip as focused and notifies the registered hooks.
// Focusing the already-focused trip is a no-op.
func (r *FocusRegistry) Focus(tripID kernel.UUID) {
	r.mu.Lock()
	if r.focused != nil && r.focused.IsEqual(tripID) {
		r.mu.Unlock()
		return
	}
	r.focused = &tripID
	notify := make([]func(kernel.UUID), 0, len(r.onFocus))
	for _, fn := range r.onFocus {
		notify = append(notify, fn)
	}
	r.mu.Unlock()

	for _, fn := range notify {
		fn(tripID)
	}
}

// Blur clears the focused trip. Polling pauses until the next Focus.
func (r *FocusRegistry) Blur() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.focused = nil
}

// Focused returns the focused trip id and whether one is set.
func (r *FocusRegistry) Focused() (kernel.UUID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.focused == nil {
		return kernel.UUID{}, false
	}
	return *r.focused, true
}

// OnFocus registers a hook invoked when a trip gains focus. The returned
// function removes the hook; each poll job detaches its own on Stop.
func (r *FocusRegistry) OnFocus(fn func(kernel.UUID)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextHook
	r.nextHook++
	r.onFocus[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.onFocus, id)
	}
}
