// Package bimap provides a bidirectional, bijective hash map for Go.
//
// A BiMap holds pairs of mutually unique keys: a key of type K and a value
// of type V. Either side can be used to look up, replace or remove a pair,
// and both key spaces stay duplicate-free as mappings are added, overwritten
// or removed. Both directions are backed by their own hash table, so lookups
// by key and lookups by value are equally fast.
//
// # Collision Trees
//
// Unlike most hash tables that resolve bucket collisions with linked chains,
// BiMap resolves them with AVL trees. This bounds every non-resizing
// operation by O(log n) in the worst case, even under adversarial hash
// distributions. Both key types must therefore be ordered (cmp.Ordered).
//
// # Insertion Order
//
// Pairs additionally thread a doubly linked list in insertion order.
// Iteration over the map, its key set and its entry set always yields pairs
// in the order they were first inserted; overwriting the value of an
// existing key does not move the pair.
//
// # Quick Start
//
//	m := bimap.New[int, string]()
//	m.Put(1, "one")
//	m.Put(2, "two")
//
//	v, ok := m.Get(1)               // "one", true
//	k, ok := m.Inverse().Get("two") // 2, true
//
//	for k, v := range m.All() {
//	    fmt.Println(k, v)
//	}
//
// # Bijection
//
// Put enforces the bijection in both directions: mapping a key to a value
// that already belongs to a different key evicts that other pair first, so
// no value is ever reachable from two keys. The same holds for writes
// through the inverse view.
//
// # Views and Fail-Fast Iteration
//
// Inverse, Keys and Entries return live views sharing the map's storage:
// mutations through any view are immediately visible through all others.
// Explicit iterators are fail-fast: a structural mutation made outside the
// iterator causes its next call to return ErrConcurrentModification instead
// of producing undefined results. Range-over-func iteration via All panics
// with the same sentinel.
//
// # Memory
//
// The backing tables grow automatically, bounded by the configured maximum
// load factor. They never shrink on their own; after heavy churn, Compact
// shrinks them to the smallest power-of-two capacity that still satisfies
// the load factor.
//
// # Concurrency
//
// BiMap is not safe for concurrent use. The fail-fast iterator check
// detects some misuse after the fact but does not prevent it; callers
// needing concurrent access must serialize externally.
package bimap
