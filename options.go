package bimap

const (
	// minimumCapacity is the smallest table capacity. Requested capacities
	// below it are silently raised.
	minimumCapacity = 8

	// minimumMaxLoadFactor is the smallest allowed maximum load factor.
	// Requested load factors below it are silently raised.
	minimumMaxLoadFactor = 0.2

	defaultCapacity      = 8
	defaultMaxLoadFactor = 1.0
)

type options struct {
	initialCapacity int
	maxLoadFactor   float64
}

// Option configures a BiMap at construction time.
type Option func(*options)

// WithInitialCapacity sets the initial capacity of the backing hash tables.
// The capacity is rounded up to a power of two and floored at 8.
//
// Sizing the map up front avoids rehash pauses while it fills.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		o.initialCapacity = capacity
	}
}

// WithMaxLoadFactor sets the maximum load factor, the ratio of pair count to
// table capacity above which the tables grow. Values below 0.2 are raised to
// 0.2. The default is 1.0.
//
// Lower values trade memory for shorter collision trees.
func WithMaxLoadFactor(loadFactor float64) Option {
	return func(o *options) {
		o.maxLoadFactor = loadFactor
	}
}
