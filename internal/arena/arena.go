// Package arena provides a slot table keyed by a stable handle.
//
// Slots freed by Remove are reused by later inserts, so a long-lived table
// that sees many short decorations does not grow without bound. The table
// is not safe for concurrent use; callers serialize access (in ggbutton,
// everything runs on the UI thread).
//
//	a := arena.New[Handle, *record]()
//	a.Insert(h, rec)
//	rec, ok := a.Get(h)
//	a.Remove(h)
package arena

type slot[K comparable, V any] struct {
	key  K
	val  V
	used bool
}

// Arena maps keys to values stored in reusable slots.
type Arena[K comparable, V any] struct {
	slots []slot[K, V]
	index map[K]int
	free  []int
}

// New creates an empty arena.
func New[K comparable, V any]() *Arena[K, V] {
	return &Arena[K, V]{index: make(map[K]int)}
}

// Len returns the number of live entries.
func (a *Arena[K, V]) Len() int {
	return len(a.index)
}

// Insert stores v under k. It returns false and leaves the arena unchanged
// if k is already present.
func (a *Arena[K, V]) Insert(k K, v V) bool {
	if _, ok := a.index[k]; ok {
		return false
	}

	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i] = slot[K, V]{key: k, val: v, used: true}
	} else {
		i = len(a.slots)
		a.slots = append(a.slots, slot[K, V]{key: k, val: v, used: true})
	}
	a.index[k] = i
	return true
}

// Get returns the value stored under k.
func (a *Arena[K, V]) Get(k K) (V, bool) {
	i, ok := a.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return a.slots[i].val, true
}

// Remove deletes k and returns its value. The slot is released for reuse.
func (a *Arena[K, V]) Remove(k K) (V, bool) {
	i, ok := a.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	v := a.slots[i].val
	a.slots[i] = slot[K, V]{}
	a.free = append(a.free, i)
	delete(a.index, k)
	return v, true
}

// Keys returns the live keys in slot order. The slice is a copy, so the
// caller may Remove while ranging over it.
func (a *Arena[K, V]) Keys() []K {
	keys := make([]K, 0, len(a.index))
	for _, s := range a.slots {
		if s.used {
			keys = append(keys, s.key)
		}
	}
	return keys
}

// Clear removes every entry and releases the slot storage.
func (a *Arena[K, V]) Clear() {
	a.slots = nil
	a.free = nil
	clear(a.index)
}
