package api

import (
	"slices"
	"sync"

	"github.com/nikmy/palettes/internal/palettes"
)

// liveList mirrors the palette collection through store notifications,
// so listing never touches the backend.
type liveList struct {
	mu    sync.RWMutex
	items []palettes.Palette
}

func (l *liveList) OnObserve(initial []palettes.Palette) {
	l.set(initial)
}

func (l *liveList) OnChange(updated []palettes.Palette) {
	l.set(updated)
}

func (l *liveList) set(items []palettes.Palette) {
	l.mu.Lock()
	l.items = slices.Clone(items)
	l.mu.Unlock()
}

func (l *liveList) snapshot() []palettes.Palette {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}
