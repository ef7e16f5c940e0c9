package bimap

import "cmp"

// The collision trees are AVL trees. Rotations and rebalancing only touch
// heights and parent/child links, so one implementation serves both tables;
// key comparisons happen only in the link and search functions below it.

// height reports the AVL height of n, -1 for an absent child.
func height[K, V cmp.Ordered](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[K, V]) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// minimum returns the leftmost node of the subtree rooted at n.
func minimum[K, V cmp.Ordered](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rotateLeft rotates n with its right child and returns the new subtree
// root. The caller reattaches the returned root to n's former parent.
func rotateLeft[K, V cmp.Ordered](n *node[K, V]) *node[K, V] {
	r := n.right

	r.parent = n.parent
	n.parent = r
	n.right = r.left
	r.left = n

	if n.right != nil {
		n.right.parent = n
	}

	n.updateHeight()
	r.updateHeight()
	return r
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[K, V cmp.Ordered](n *node[K, V]) *node[K, V] {
	l := n.left

	l.parent = n.parent
	n.parent = l
	n.left = l.right
	l.right = n

	if n.left != nil {
		n.left.parent = n
	}

	n.updateHeight()
	l.updateHeight()
	return l
}

func rotateLeftRight[K, V cmp.Ordered](n *node[K, V]) *node[K, V] {
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}

func rotateRightLeft[K, V cmp.Ordered](n *node[K, V]) *node[K, V] {
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}

// replaceChild makes repl take old's place under parent, or as the bucket
// root when parent is nil.
func replaceChild[K, V cmp.Ordered](table []*node[K, V], idx int, parent, old, repl *node[K, V]) {
	if parent == nil {
		table[idx] = repl
		return
	}
	if parent.left == old {
		parent.left = repl
	} else {
		parent.right = repl
	}
}

// rebalance restores the AVL invariant walking from n up to the bucket
// root, recomputing heights along the way. After an insertion a single
// rotation (or double rotation) restores the invariant, so the walk stops
// there; after a deletion rotations may be needed at every ancestor.
func rebalance[K, V cmp.Ordered](table []*node[K, V], idx int, n *node[K, V], insertion bool) {
	for cur := n; cur != nil; {
		var sub *node[K, V]

		if height(cur.left) == height(cur.right)+2 {
			if height(cur.left.left) >= height(cur.left.right) {
				sub = rotateRight(cur)
			} else {
				sub = rotateLeftRight(cur)
			}
		} else if height(cur.right) == height(cur.left)+2 {
			if height(cur.right.right) >= height(cur.right.left) {
				sub = rotateLeft(cur)
			} else {
				sub = rotateRightLeft(cur)
			}
		}

		if sub != nil {
			grand := sub.parent
			replaceChild(table, idx, grand, cur, sub)
			if grand != nil {
				grand.updateHeight()
			}
			if insertion {
				return
			}
			cur = sub
		}

		cur.updateHeight()
		cur = cur.parent
	}
}

// linkByKey inserts n into the key-ordered bucket tree rooted at
// table[idx]. n's tree links are reset first, so nodes can be relinked into
// fresh tables during a rehash without any cleanup pass.
//
// The caller must have verified the key is absent; hitting an equal key
// during the descent means the two tables went out of sync.
func linkByKey[K, V cmp.Ordered](table []*node[K, V], idx int, n *node[K, V]) {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 0

	cur := table[idx]
	if cur == nil {
		table[idx] = n
		return
	}

	for {
		switch cmp.Compare(n.pair.key, cur.pair.key) {
		case -1:
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				rebalance(table, idx, cur, true)
				return
			}
			cur = cur.left
		case 1:
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				rebalance(table, idx, cur, true)
				return
			}
			cur = cur.right
		default:
			panic("bimap: duplicate key in collision tree")
		}
	}
}

// linkByValue is linkByKey for the value-ordered table.
func linkByValue[K, V cmp.Ordered](table []*node[K, V], idx int, n *node[K, V]) {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 0

	cur := table[idx]
	if cur == nil {
		table[idx] = n
		return
	}

	for {
		switch cmp.Compare(n.pair.value, cur.pair.value) {
		case -1:
			if cur.left == nil {
				cur.left = n
				n.parent = cur
				rebalance(table, idx, cur, true)
				return
			}
			cur = cur.left
		case 1:
			if cur.right == nil {
				cur.right = n
				n.parent = cur
				rebalance(table, idx, cur, true)
				return
			}
			cur = cur.right
		default:
			panic("bimap: duplicate value in collision tree")
		}
	}
}

// searchByKey walks the key-ordered bucket tree for key.
func searchByKey[K, V cmp.Ordered](root *node[K, V], key K) *node[K, V] {
	for n := root; n != nil; {
		switch cmp.Compare(key, n.pair.key) {
		case -1:
			n = n.left
		case 1:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// searchByValue walks the value-ordered bucket tree for value.
func searchByValue[K, V cmp.Ordered](root *node[K, V], value V) *node[K, V] {
	for n := root; n != nil; {
		switch cmp.Compare(value, n.pair.value) {
		case -1:
			n = n.left
		case 1:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// unlink removes n from the bucket tree rooted at table[idx] and rebalances.
//
// When n has two children, the in-order successor node is spliced into n's
// structural position instead of moving the pair between nodes. Moving the
// pair would invalidate the twin handle and the iteration chain links of
// the surviving node, so node and pair identity stay fixed for a pair's
// whole lifetime.
func unlink[K, V cmp.Ordered](table []*node[K, V], idx int, n *node[K, V]) {
	if n.left != nil && n.right != nil {
		s := minimum(n.right)

		if s == n.right {
			// The successor keeps its own right subtree and lifts
			// into n's place directly.
			s.parent = n.parent
			s.left = n.left
			s.left.parent = s
			replaceChild(table, idx, s.parent, n, s)
			rebalance(table, idx, s, false)
			return
		}

		sParent := s.parent

		// Detach s; as a subtree minimum it has no left child.
		sParent.left = s.right
		if s.right != nil {
			s.right.parent = sParent
		}

		// Splice s into n's position.
		s.parent = n.parent
		s.left = n.left
		s.right = n.right
		s.left.parent = s
		s.right.parent = s
		s.height = n.height
		replaceChild(table, idx, s.parent, n, s)

		rebalance(table, idx, sParent, false)
		return
	}

	// Zero or one child: splice the child (possibly nil) into n's slot.
	child := n.left
	if child == nil {
		child = n.right
	}

	parent := n.parent
	if child != nil {
		child.parent = parent
	}
	replaceChild(table, idx, parent, n, child)

	if parent != nil {
		rebalance(table, idx, parent, false)
	}
}
