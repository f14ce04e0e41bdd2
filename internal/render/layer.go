package render

import (
	"slices"
	"sort"
)

// Layer is an in-memory scene. Items are kept in insertion order within
// the same Z. Not safe for concurrent use.
type Layer struct {
	items []*Visual
	index map[*Visual]int
	dirty bool
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{index: make(map[*Visual]int)}
}

// Add inserts v. Adding the same visual twice is a no-op.
func (l *Layer) Add(v *Visual) {
	if v == nil {
		return
	}
	if _, ok := l.index[v]; ok {
		return
	}
	l.index[v] = len(l.items)
	l.items = append(l.items, v)
	l.dirty = true
}

// Remove deletes v if present.
func (l *Layer) Remove(v *Visual) {
	i, ok := l.index[v]
	if !ok {
		return
	}
	delete(l.index, v)
	l.items = slices.Delete(l.items, i, i+1)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j]] = j
	}
}

// Contains reports whether v is in the layer.
func (l *Layer) Contains(v *Visual) bool {
	_, ok := l.index[v]
	return ok
}

// Len returns the number of visuals.
func (l *Layer) Len() int {
	return len(l.items)
}

// Each calls fn for every visible item from bottom to top.
func (l *Layer) Each(fn func(v *Visual)) {
	if l.dirty {
		sort.SliceStable(l.items, func(a, b int) bool { return l.items[a].Z < l.items[b].Z })
		for i, v := range l.items {
			l.index[v] = i
		}
		l.dirty = false
	}
	for _, v := range l.items {
		if v.Visible {
			fn(v)
		}
	}
}
