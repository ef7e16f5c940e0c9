package bimap

import "cmp"

// Iterator walks the map's pairs in insertion order. It is fail-fast: Next
// and Remove return ErrConcurrentModification if the map was structurally
// modified outside the iterator since its last checkpoint.
type Iterator[K, V cmp.Ordered] struct {
	m           *BiMap[K, V]
	expectedMod uint64
	cachedSize  int
	iterated    int
	current     *node[K, V]
	last        *node[K, V]
	canRemove   bool
}

func (m *BiMap[K, V]) iterator() Iterator[K, V] {
	return Iterator[K, V]{
		m:           m,
		expectedMod: m.mod,
		cachedSize:  m.size,
		current:     m.head,
	}
}

// HasNext reports whether Next would yield another pair.
func (it *Iterator[K, V]) HasNext() bool {
	return it.iterated < it.cachedSize
}

// Next returns the next pair in insertion order.
func (it *Iterator[K, V]) Next() (Entry[K, V], error) {
	if it.m.mod != it.expectedMod {
		return Entry[K, V]{}, ErrConcurrentModification
	}
	if !it.HasNext() {
		return Entry[K, V]{}, ErrIteratorExhausted
	}

	it.last = it.current
	e := Entry[K, V]{Key: it.current.pair.key, Value: it.current.pair.value}
	it.current = it.current.down
	it.canRemove = true
	it.iterated++
	return e, nil
}

// Remove deletes the pair last returned by Next and re-synchronizes the
// iterator's checkpoint, so iteration may continue afterwards. It returns
// ErrIteratorRemove when no pair is eligible, and makes no mutation on any
// error.
func (it *Iterator[K, V]) Remove() error {
	if !it.canRemove {
		return ErrIteratorRemove
	}
	if it.m.mod != it.expectedMod {
		return ErrConcurrentModification
	}

	it.m.removeNode(it.last)
	it.canRemove = false
	it.expectedMod = it.m.mod
	return nil
}

// KeyIterator is an Iterator yielding only the key side of each pair.
type KeyIterator[K, V cmp.Ordered] struct {
	it Iterator[K, V]
}

// HasNext reports whether Next would yield another key.
func (it *KeyIterator[K, V]) HasNext() bool {
	return it.it.HasNext()
}

// Next returns the next key in insertion order.
func (it *KeyIterator[K, V]) Next() (K, error) {
	e, err := it.it.Next()
	return e.Key, err
}

// Remove deletes the pair whose key was last returned by Next.
func (it *KeyIterator[K, V]) Remove() error {
	return it.it.Remove()
}
