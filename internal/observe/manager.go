// Package observe keeps per-tag registries of observers that it never owns.
//
// Observers are held through weak pointers: an observer stays registered
// exactly as long as something else keeps it alive. Dead handles are
// dropped lazily, whenever a registry is walked. Delivery is synchronous
// and happens on the caller's goroutine.
//
// Observers living in static storage, such as package-level variables, are
// never collected and are held directly instead.
//
// A Manager is not safe for concurrent use.
package observe

import (
	"runtime"
	"unsafe"
	"weak"

	"github.com/nikmy/palettes/pkg/errors"
)

// ErrZeroSizeObserver is returned for observer types that occupy no memory.
// All their values share one address, so they can be neither told apart
// nor released.
var ErrZeroSizeObserver = errors.Error("observer type has zero size")

// Observer receives full snapshots of one collection.
type Observer[T any] interface {
	// OnObserve is called once, during registration, with the current values.
	OnObserve(initial []T)
	// OnChange is called after every change with the complete new values.
	OnChange(updated []T)
}

// Ptr constrains registrations to pointer observers, which is what makes
// weak references possible.
type Ptr[O any, T any] interface {
	*O
	Observer[T]
}

// handle is a type-erased weak registration.
type handle struct {
	id any

	// resolve returns a strongly bound delivery func, or false once the
	// observer has been collected.
	resolve func() (func(values any), bool)
}

type Manager struct {
	registry map[string][]handle
}

func New() *Manager {
	return &Manager{registry: make(map[string][]handle)}
}

// Add registers obs under tag and hands it initial before returning.
// Adding the same observer twice under one tag keeps a single registration,
// but initial is delivered each time.
func Add[T any, O any, P Ptr[O, T]](m *Manager, tag string, obs P, initial []T) error {
	var zero O
	if unsafe.Sizeof(zero) == 0 {
		return ErrZeroSizeObserver
	}

	h := bind[T](obs)
	if !m.contains(tag, h.id) {
		m.registry[tag] = append(m.registry[tag], h)
	}

	if initial == nil {
		initial = []T{}
	}
	obs.OnObserve(initial)
	return nil
}

func bind[T any, O any, P Ptr[O, T]](obs P) handle {
	target := (*O)(obs)
	if !onHeap(target) {
		return handle{
			id: target,
			resolve: func() (func(any), bool) {
				return deliverTo[T](obs), true
			},
		}
	}

	wp := weak.Make(target)
	return handle{
		id: wp,
		resolve: func() (func(any), bool) {
			target := wp.Value()
			if target == nil {
				return nil, false
			}
			return deliverTo[T](P(target)), true
		},
	}
}

func deliverTo[T any](obs Observer[T]) func(any) {
	return func(values any) {
		vs, _ := values.([]T)
		if vs == nil {
			vs = []T{}
		}
		obs.OnChange(vs)
	}
}

// onHeap reports whether p points into a heap object. weak.Make only
// accepts those; for anything else the runtime hands back an inert Cleanup.
func onHeap[O any](p *O) bool {
	c := runtime.AddCleanup(p, func(struct{}) {}, struct{}{})
	c.Stop()
	return c != runtime.Cleanup{}
}

// Notify delivers values to every live observer of tag.
func (m *Manager) Notify(tag string, values any) {
	for _, deliver := range m.live(tag) {
		deliver(values)
	}
}

// NotifyReset delivers an empty collection to every live observer of every tag.
func (m *Manager) NotifyReset() {
	var all []func(any)
	for tag := range m.registry {
		all = append(all, m.live(tag)...)
	}

	for _, deliver := range all {
		deliver(nil)
	}
}

// LiveObserverCount prunes every registry and counts what is left.
func (m *Manager) LiveObserverCount() int {
	count := 0
	for tag := range m.registry {
		count += len(m.live(tag))
	}
	return count
}

// live resolves the registry of tag, writes back only the survivors and
// returns their bound delivery funcs. The registry is updated before any
// callback runs, so callbacks may register new observers safely.
func (m *Manager) live(tag string) []func(any) {
	handles := m.registry[tag]
	if len(handles) == 0 {
		return nil
	}

	kept := handles[:0:0]
	bound := make([]func(any), 0, len(handles))
	for _, h := range handles {
		deliver, ok := h.resolve()
		if !ok {
			continue
		}
		kept = append(kept, h)
		bound = append(bound, deliver)
	}

	if len(kept) == 0 {
		delete(m.registry, tag)
	} else {
		m.registry[tag] = kept
	}

	return bound
}

func (m *Manager) contains(tag string, id any) bool {
	for _, h := range m.registry[tag] {
		if h.id == id {
			return true
		}
	}
	return false
}
