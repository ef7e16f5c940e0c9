package bimap

import (
	"cmp"
	"iter"
)

// Inverse is a live view of a BiMap with the key roles swapped: lookups go
// from value to key. It shares the owning map's storage, size and
// modification counter, so mutations through either direction are
// immediately visible through the other.
type Inverse[K, V cmp.Ordered] struct {
	m *BiMap[K, V]
}

// Inverse returns the inverse view of the map.
func (m *BiMap[K, V]) Inverse() Inverse[K, V] {
	return Inverse[K, V]{m: m}
}

// Len returns the number of pairs in the underlying map.
func (iv Inverse[K, V]) Len() int {
	return iv.m.size
}

// IsEmpty reports whether the underlying map holds no pairs.
func (iv Inverse[K, V]) IsEmpty() bool {
	return iv.m.size == 0
}

// ContainsKey reports whether value is present.
func (iv Inverse[K, V]) ContainsKey(value V) bool {
	return iv.m.ContainsValue(value)
}

// ContainsValue reports whether key is present.
func (iv Inverse[K, V]) ContainsValue(key K) bool {
	return iv.m.ContainsKey(key)
}

// Get returns the key mapped to value.
func (iv Inverse[K, V]) Get(value V) (K, bool) {
	if n := iv.m.findValueNode(value); n != nil {
		return n.pair.key, true
	}
	var zero K
	return zero, false
}

// Put maps value to key and returns the key previously mapped to value, if
// any. Like BiMap.Put it enforces the bijection: if key already belongs to
// a different value, that pair is evicted first. Overwriting the key of an
// existing value keeps the pair's insertion-order position.
func (iv Inverse[K, V]) Put(value V, key K) (prev K, replaced bool) {
	m := iv.m

	if n := m.findValueNode(value); n != nil {
		prev = n.pair.key
		if key == prev {
			return prev, true
		}

		if other := m.findKeyNode(key); other != nil {
			m.removeNode(other)
		}

		// Re-index the key table for the new key.
		twin := n.twin
		unlink(m.keyTable, int(n.pair.keyHash&m.mask), twin)
		n.pair.key = key
		n.pair.keyHash = m.hashKey(key)
		linkByKey(m.keyTable, int(n.pair.keyHash&m.mask), twin)

		m.mod++
		return prev, true
	}

	if other := m.findKeyNode(key); other != nil {
		m.removeNode(other)
	}
	m.insert(key, value)
	return prev, false
}

// Remove deletes the pair for value and returns its key, if any.
func (iv Inverse[K, V]) Remove(value V) (K, bool) {
	n := iv.m.findValueNode(value)
	if n == nil {
		var zero K
		return zero, false
	}

	key := n.pair.key
	iv.m.removeNode(n.twin)
	return key, true
}

// PutAll puts every pair of src into the map, one Put at a time.
func (iv Inverse[K, V]) PutAll(src map[V]K) {
	for v, k := range src {
		iv.Put(v, k)
	}
}

// Clear removes all pairs from the underlying map.
func (iv Inverse[K, V]) Clear() {
	iv.m.Clear()
}

// All returns an insertion-ordered iterator over all pairs, value first. It
// panics with ErrConcurrentModification if the map is structurally modified
// during iteration.
func (iv Inverse[K, V]) All() iter.Seq2[V, K] {
	return func(yield func(V, K) bool) {
		m := iv.m
		mod := m.mod
		for n := m.head; n != nil; {
			if !yield(n.pair.value, n.pair.key) {
				return
			}
			if m.mod != mod {
				panic(ErrConcurrentModification)
			}
			n = n.down
		}
	}
}

// Keys returns an insertion-ordered iterator over the values, which act as
// the keys of the inverse view.
func (iv Inverse[K, V]) Keys() iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range iv.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// KeySet is a live, mutation-capable view of the map's keys.
type KeySet[K, V cmp.Ordered] struct {
	m *BiMap[K, V]
}

// Keys returns the key-set view of the map.
func (m *BiMap[K, V]) Keys() KeySet[K, V] {
	return KeySet[K, V]{m: m}
}

// Len returns the number of keys.
func (s KeySet[K, V]) Len() int {
	return s.m.size
}

// IsEmpty reports whether the set is empty.
func (s KeySet[K, V]) IsEmpty() bool {
	return s.m.size == 0
}

// Contains reports whether key is in the set.
func (s KeySet[K, V]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Remove deletes the pair for key from the underlying map and reports
// whether the map changed.
func (s KeySet[K, V]) Remove(key K) bool {
	_, ok := s.m.Remove(key)
	return ok
}

// ContainsAll reports whether every given key is in the set.
func (s KeySet[K, V]) ContainsAll(keys ...K) bool {
	for _, k := range keys {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// RemoveAll deletes the pairs for all given keys and reports whether the
// map changed. Keys are removed one by one; the bulk operation is not
// atomic.
func (s KeySet[K, V]) RemoveAll(keys ...K) bool {
	modified := false
	for _, k := range keys {
		if s.Remove(k) {
			modified = true
		}
	}
	return modified
}

// RetainAll deletes every pair whose key is not among the given keys and
// reports whether the map changed.
func (s KeySet[K, V]) RetainAll(keys ...K) bool {
	keep := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		keep[k] = struct{}{}
	}

	modified := false
	it := s.Iterator()
	for it.HasNext() {
		k, err := it.Next()
		if err != nil {
			break
		}
		if _, ok := keep[k]; !ok {
			if it.Remove() == nil {
				modified = true
			}
		}
	}
	return modified
}

// ToSlice returns the keys as a slice in insertion order.
func (s KeySet[K, V]) ToSlice() []K {
	keys := make([]K, 0, s.m.size)
	for n := s.m.head; n != nil; n = n.down {
		keys = append(keys, n.pair.key)
	}
	return keys
}

// Clear removes all pairs from the underlying map.
func (s KeySet[K, V]) Clear() {
	s.m.Clear()
}

// Iterator returns a fail-fast iterator over the keys in insertion order.
func (s KeySet[K, V]) Iterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{it: s.m.iterator()}
}

// All returns an insertion-ordered iterator over the keys. It panics with
// ErrConcurrentModification if the map is structurally modified during
// iteration.
func (s KeySet[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// EntrySet is a live, mutation-capable view of the map's pairs.
type EntrySet[K, V cmp.Ordered] struct {
	m *BiMap[K, V]
}

// Entries returns the entry-set view of the map.
func (m *BiMap[K, V]) Entries() EntrySet[K, V] {
	return EntrySet[K, V]{m: m}
}

// Len returns the number of pairs.
func (s EntrySet[K, V]) Len() int {
	return s.m.size
}

// IsEmpty reports whether the set is empty.
func (s EntrySet[K, V]) IsEmpty() bool {
	return s.m.size == 0
}

// Contains reports whether the map holds exactly this pair, matching both
// key and value.
func (s EntrySet[K, V]) Contains(e Entry[K, V]) bool {
	n := s.m.findKeyNode(e.Key)
	return n != nil && n.pair.value == e.Value
}

// Add puts the pair into the underlying map and reports whether the map
// changed: true for a new key, or for an existing key whose value actually
// changed.
func (s EntrySet[K, V]) Add(e Entry[K, V]) bool {
	prev, replaced := s.m.Put(e.Key, e.Value)
	return !replaced || prev != e.Value
}

// AddAll puts all given pairs and reports whether the map changed. Pairs
// are added one by one; the bulk operation is not atomic.
func (s EntrySet[K, V]) AddAll(entries ...Entry[K, V]) bool {
	modified := false
	for _, e := range entries {
		if s.Add(e) {
			modified = true
		}
	}
	return modified
}

// Remove deletes the pair for e's key from the underlying map, ignoring
// e's value, and reports whether the map changed.
func (s EntrySet[K, V]) Remove(e Entry[K, V]) bool {
	_, ok := s.m.Remove(e.Key)
	return ok
}

// ContainsAll reports whether every given pair is in the set.
func (s EntrySet[K, V]) ContainsAll(entries ...Entry[K, V]) bool {
	for _, e := range entries {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// RemoveAll deletes the pairs for all given entries' keys and reports
// whether the map changed.
func (s EntrySet[K, V]) RemoveAll(entries ...Entry[K, V]) bool {
	modified := false
	for _, e := range entries {
		if s.Remove(e) {
			modified = true
		}
	}
	return modified
}

// RetainAll deletes every pair not among the given entries (matching both
// key and value) and reports whether the map changed.
func (s EntrySet[K, V]) RetainAll(entries ...Entry[K, V]) bool {
	keep := make(map[Entry[K, V]]struct{}, len(entries))
	for _, e := range entries {
		keep[e] = struct{}{}
	}

	modified := false
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if _, ok := keep[e]; !ok {
			if it.Remove() == nil {
				modified = true
			}
		}
	}
	return modified
}

// ToSlice returns the pairs as a slice in insertion order.
func (s EntrySet[K, V]) ToSlice() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, s.m.size)
	for n := s.m.head; n != nil; n = n.down {
		entries = append(entries, Entry[K, V]{Key: n.pair.key, Value: n.pair.value})
	}
	return entries
}

// Clear removes all pairs from the underlying map.
func (s EntrySet[K, V]) Clear() {
	s.m.Clear()
}

// Iterator returns a fail-fast iterator over the pairs in insertion order.
func (s EntrySet[K, V]) Iterator() *Iterator[K, V] {
	it := s.m.iterator()
	return &it
}

// All returns an insertion-ordered iterator over the pairs. It panics with
// ErrConcurrentModification if the map is structurally modified during
// iteration.
func (s EntrySet[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range s.m.All() {
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}
