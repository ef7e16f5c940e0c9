package bimap

import "errors"

var (
	// ErrConcurrentModification is returned by Iterator.Next and
	// Iterator.Remove when the map was structurally modified outside the
	// iterator since its last checkpoint. All and the set views panic with
	// this sentinel instead, since range-over-func iteration has no error
	// channel.
	//
	// The iterator is unsafe to continue with, except through its own
	// Remove path which re-synchronizes the checkpoint.
	ErrConcurrentModification = errors.New("map modified during iteration")

	// ErrIteratorExhausted is returned by Next when no elements remain.
	ErrIteratorExhausted = errors.New("iterator exhausted")

	// ErrIteratorRemove is returned by Remove when it is called before any
	// Next, or twice without an intervening Next.
	ErrIteratorRemove = errors.New("Remove requires a preceding call to Next")
)
