package bimap

import (
	"cmp"
	"hash/maphash"
	"iter"
	"math/bits"
)

// Entry is one key/value pair of a BiMap.
type Entry[K, V cmp.Ordered] struct {
	Key   K
	Value V
}

// BiMap is a bidirectional, bijective hash map. Both the key space and the
// value space are duplicate-free, and lookups run in either direction.
//
// The zero value is not usable; construct with New.
type BiMap[K, V cmp.Ordered] struct {
	keyTable   []*node[K, V]
	valueTable []*node[K, V]
	mask       uint64
	head       *node[K, V]
	tail       *node[K, V]
	size       int
	mod        uint64
	maxLoad    float64
	seed       maphash.Seed
}

// New creates an empty BiMap. By default the backing tables hold 8 buckets
// and grow once the pair count exceeds the capacity (load factor 1.0); see
// WithInitialCapacity and WithMaxLoadFactor.
func New[K, V cmp.Ordered](opts ...Option) *BiMap[K, V] {
	o := options{
		initialCapacity: defaultCapacity,
		maxLoadFactor:   defaultMaxLoadFactor,
	}
	for _, fn := range opts {
		fn(&o)
	}

	capacity := roundUpPowerOfTwo(max(o.initialCapacity, minimumCapacity))
	loadFactor := max(o.maxLoadFactor, minimumMaxLoadFactor)

	return &BiMap[K, V]{
		keyTable:   make([]*node[K, V], capacity),
		valueTable: make([]*node[K, V], capacity),
		mask:       uint64(capacity - 1),
		maxLoad:    loadFactor,
		seed:       maphash.MakeSeed(),
	}
}

func roundUpPowerOfTwo(n int) int {
	return 1 << bits.Len(uint(n-1))
}

func (m *BiMap[K, V]) hashKey(key K) uint64 {
	return maphash.Comparable(m.seed, key)
}

func (m *BiMap[K, V]) hashValue(value V) uint64 {
	return maphash.Comparable(m.seed, value)
}

// findKeyNode returns the key-table node for key, or nil.
func (m *BiMap[K, V]) findKeyNode(key K) *node[K, V] {
	return searchByKey(m.keyTable[m.hashKey(key)&m.mask], key)
}

// findValueNode returns the value-table node for value, or nil.
func (m *BiMap[K, V]) findValueNode(value V) *node[K, V] {
	return searchByValue(m.valueTable[m.hashValue(value)&m.mask], value)
}

// Len returns the number of pairs in the map.
func (m *BiMap[K, V]) Len() int {
	return m.size
}

// IsEmpty reports whether the map holds no pairs.
func (m *BiMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// LoadFactor returns the current ratio of pair count to table capacity.
func (m *BiMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.keyTable))
}

// ContainsKey reports whether key is present.
func (m *BiMap[K, V]) ContainsKey(key K) bool {
	return m.findKeyNode(key) != nil
}

// ContainsValue reports whether value is present.
func (m *BiMap[K, V]) ContainsValue(value V) bool {
	return m.findValueNode(value) != nil
}

// Get returns the value mapped to key.
func (m *BiMap[K, V]) Get(key K) (V, bool) {
	if n := m.findKeyNode(key); n != nil {
		return n.pair.value, true
	}
	var zero V
	return zero, false
}

// GetEntry returns the full pair for key.
func (m *BiMap[K, V]) GetEntry(key K) (Entry[K, V], bool) {
	if n := m.findKeyNode(key); n != nil {
		return Entry[K, V]{Key: n.pair.key, Value: n.pair.value}, true
	}
	return Entry[K, V]{}, false
}

// Put maps key to value and returns the value previously mapped to key, if
// any. If value already belongs to a different key, that pair is evicted
// first so the map stays bijective. Overwriting the value of an existing
// key keeps the pair's insertion-order position.
func (m *BiMap[K, V]) Put(key K, value V) (prev V, replaced bool) {
	if n := m.findKeyNode(key); n != nil {
		prev = n.pair.value
		if value == prev {
			return prev, true
		}

		if other := m.findValueNode(value); other != nil {
			m.removeNode(other.twin)
		}

		// Re-index the value table for the new value.
		twin := n.twin
		unlink(m.valueTable, int(n.pair.valueHash&m.mask), twin)
		n.pair.value = value
		n.pair.valueHash = m.hashValue(value)
		linkByValue(m.valueTable, int(n.pair.valueHash&m.mask), twin)

		m.mod++
		return prev, true
	}

	if other := m.findValueNode(value); other != nil {
		m.removeNode(other.twin)
	}
	m.insert(key, value)
	return prev, false
}

// insert adds a fresh pair; both key and value must be absent.
func (m *BiMap[K, V]) insert(key K, value V) {
	m.growIfNeeded()

	p := &pair[K, V]{
		key:       key,
		value:     value,
		keyHash:   m.hashKey(key),
		valueHash: m.hashValue(value),
	}
	kn := &node[K, V]{pair: p}
	vn := &node[K, V]{pair: p}
	kn.twin = vn
	vn.twin = kn

	linkByKey(m.keyTable, int(p.keyHash&m.mask), kn)
	linkByValue(m.valueTable, int(p.valueHash&m.mask), vn)
	m.appendChain(kn)

	m.size++
	m.mod++
}

// Remove deletes the pair for key and returns its value, if any. Removing
// an absent key is a no-op.
func (m *BiMap[K, V]) Remove(key K) (V, bool) {
	n := m.findKeyNode(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return m.removeNode(n), true
}

// removeNode unlinks a key-table node and its twin from their trees and the
// iteration chain.
func (m *BiMap[K, V]) removeNode(kn *node[K, V]) V {
	p := kn.pair

	unlink(m.keyTable, int(p.keyHash&m.mask), kn)
	unlink(m.valueTable, int(p.valueHash&m.mask), kn.twin)
	m.unlinkChain(kn)

	m.size--
	m.mod++
	return p.value
}

// PutAll puts every pair of src into the map. Pairs are put one by one in
// Go's map iteration order; each individual Put keeps the map consistent,
// but the bulk operation as a whole is not atomic.
func (m *BiMap[K, V]) PutAll(src map[K]V) {
	for k, v := range src {
		m.Put(k, v)
	}
}

// Clear removes all pairs, keeping the current capacity.
func (m *BiMap[K, V]) Clear() {
	if m.size == 0 {
		return
	}

	clear(m.keyTable)
	clear(m.valueTable)
	m.head = nil
	m.tail = nil
	m.size = 0
	m.mod++
}

// All returns an insertion-ordered iterator over all pairs. It panics with
// ErrConcurrentModification if the map is structurally modified during
// iteration; use Entries().Iterator() to remove pairs while iterating.
func (m *BiMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mod := m.mod
		for n := m.head; n != nil; {
			if !yield(n.pair.key, n.pair.value) {
				return
			}
			if m.mod != mod {
				panic(ErrConcurrentModification)
			}
			n = n.down
		}
	}
}

// growIfNeeded doubles the tables before an insertion would push the pair
// count past maxLoadFactor * capacity.
func (m *BiMap[K, V]) growIfNeeded() {
	capacity := len(m.keyTable)
	if float64(m.size+1) <= m.maxLoad*float64(capacity) {
		return
	}

	for float64(m.size+1) > m.maxLoad*float64(capacity) {
		capacity <<= 1
	}
	m.rehash(capacity)
}

// Compact shrinks the backing tables to the smallest power-of-two capacity
// (at least 8) that satisfies the maximum load factor. It is a no-op when
// no smaller capacity qualifies. Compacting counts as a structural
// modification for live iterators.
func (m *BiMap[K, V]) Compact() {
	capacity := minimumCapacity
	for float64(m.size) > m.maxLoad*float64(capacity) {
		capacity <<= 1
	}

	if capacity == len(m.keyTable) {
		return
	}

	m.rehash(capacity)
	m.mod++
}

// rehash relocates every node pair into fresh tables of the given capacity
// by walking the iteration chain once. Bucket indices are recomputed from
// the cached hashes under the new mask; hashes themselves are never
// recomputed. The link functions reset each node's tree pointers, so the
// old tables need no dismantling.
func (m *BiMap[K, V]) rehash(capacity int) {
	keyTable := make([]*node[K, V], capacity)
	valueTable := make([]*node[K, V], capacity)
	mask := uint64(capacity - 1)

	for n := m.head; n != nil; n = n.down {
		linkByKey(keyTable, int(n.pair.keyHash&mask), n)
		linkByValue(valueTable, int(n.pair.valueHash&mask), n.twin)
	}

	m.keyTable = keyTable
	m.valueTable = valueTable
	m.mask = mask
}
