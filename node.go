package bimap

import "cmp"

// pair binds one key and one value together with their cached hashes. Each
// pair is referenced by exactly two collision tree nodes, one per table.
// Hashes are cached so that rehashing never recomputes them.
type pair[K, V cmp.Ordered] struct {
	key       K
	value     V
	keyHash   uint64
	valueHash uint64
}

// node is a collision tree node. The same shape serves both tables: nodes in
// the key table order on pair.key, nodes in the value table on pair.value.
//
// twin points at the counterpart node holding the same pair in the other
// table, so a pair's second node is reached in O(1) instead of being
// re-found by a tree search.
//
// up and down thread the insertion-order iteration chain. Only key-table
// nodes participate; on value-table nodes both stay nil.
type node[K, V cmp.Ordered] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	twin   *node[K, V]
	up     *node[K, V]
	down   *node[K, V]
	height int
	pair   *pair[K, V]
}

// appendChain links n at the tail of the iteration chain.
func (m *BiMap[K, V]) appendChain(n *node[K, V]) {
	if m.tail == nil {
		m.head = n
		m.tail = n
		return
	}

	m.tail.down = n
	n.up = m.tail
	m.tail = n
}

// unlinkChain removes n from the iteration chain, adjusting its neighbors
// and the head/tail pointers at the ends.
func (m *BiMap[K, V]) unlinkChain(n *node[K, V]) {
	if n.up != nil {
		n.up.down = n.down
	} else {
		m.head = n.down
	}

	if n.down != nil {
		n.down.up = n.up
	} else {
		m.tail = n.up
	}

	n.up = nil
	n.down = nil
}
