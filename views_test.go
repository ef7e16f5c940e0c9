package bimap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseLookups(t *testing.T) {
	m := New[int, string]()
	iv := m.Inverse()

	m.Put(1, "one")
	m.Put(2, "two")

	// The view is live: it observes mutations made after its creation.
	assert.Equal(t, 2, iv.Len())
	assert.False(t, iv.IsEmpty())
	assert.True(t, iv.ContainsKey("one"))
	assert.True(t, iv.ContainsValue(1))
	assert.False(t, iv.ContainsKey("three"))

	k, ok := iv.Get("two")
	require.True(t, ok)
	assert.Equal(t, 2, k)

	_, ok = iv.Get("three")
	assert.False(t, ok)
}

func TestInversePut(t *testing.T) {
	m := New[int, string]()
	iv := m.Inverse()

	prev, replaced := iv.Put("one", 1)
	assert.False(t, replaced)
	assert.Zero(t, prev)

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)

	// Overwriting the key of an existing value re-indexes the key table.
	prev, replaced = iv.Put("one", 100)
	assert.True(t, replaced)
	assert.Equal(t, 1, prev)

	assert.False(t, m.ContainsKey(1))
	v, ok = m.Get(100)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 1, m.Len())

	checkInvariants(t, m)
}

func TestInversePutEvictsConflictingKey(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	// Pointing "two" at key 1 must evict the (1, "one") pair.
	prev, replaced := m.Inverse().Put("two", 1)
	assert.True(t, replaced)
	assert.Equal(t, 2, prev)

	assert.Equal(t, 1, m.Len())
	assert.False(t, m.ContainsValue("one"))

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "two", v)

	checkInvariants(t, m)
}

func TestInverseRemove(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	k, ok := m.Inverse().Remove("one")
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.ContainsKey(1))

	_, ok = m.Inverse().Remove("one")
	assert.False(t, ok)
}

func TestInversePutAllAndClear(t *testing.T) {
	m := New[int, string]()
	iv := m.Inverse()

	iv.PutAll(map[string]int{"one": 1, "two": 2})
	assert.Equal(t, 2, m.Len())

	k, ok := iv.Get("one")
	require.True(t, ok)
	assert.Equal(t, 1, k)

	iv.Clear()
	assert.True(t, m.IsEmpty())
}

func TestInverseIteration(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	m.Put(3, "three")

	var values []string
	var keys []int
	for v, k := range m.Inverse().All() {
		values = append(values, v)
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"one", "two", "three"}, values)
	assert.Equal(t, []int{1, 2, 3}, keys)

	assert.Equal(t, []string{"one", "two", "three"}, slices.Collect(m.Inverse().Keys()))
}

func TestKeySetBasics(t *testing.T) {
	m := New[int, string]()
	ks := m.Keys()

	assert.True(t, ks.IsEmpty())
	m.Put(1, "one")
	m.Put(2, "two")

	assert.Equal(t, 2, ks.Len())
	assert.False(t, ks.IsEmpty())
	assert.True(t, ks.Contains(1))
	assert.False(t, ks.Contains(3))
	assert.True(t, ks.ContainsAll(1, 2))
	assert.False(t, ks.ContainsAll(1, 3))
	assert.Equal(t, []int{1, 2}, ks.ToSlice())
	assert.Equal(t, []int{1, 2}, slices.Collect(ks.All()))
}

func TestKeySetRemove(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	ks := m.Keys()

	assert.True(t, ks.Remove(1))
	assert.False(t, ks.Remove(1))
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.ContainsValue("one"))
}

func TestKeySetRemoveAll(t *testing.T) {
	m := New[int, string]()
	for i := 0; i < 6; i++ {
		m.Put(i, string(rune('a'+i)))
	}

	assert.True(t, m.Keys().RemoveAll(0, 2, 4, 99))
	assert.Equal(t, []int{1, 3, 5}, m.Keys().ToSlice())
	assert.False(t, m.Keys().RemoveAll(0, 2, 4))
}

func TestKeySetRetainAll(t *testing.T) {
	m := New[int, string]()
	for i := 0; i < 6; i++ {
		m.Put(i, string(rune('a'+i)))
	}

	assert.True(t, m.Keys().RetainAll(1, 3, 5))
	assert.Equal(t, []int{1, 3, 5}, m.Keys().ToSlice())
	assert.False(t, m.Keys().RetainAll(1, 3, 5))
	checkInvariants(t, m)
}

func TestKeySetClear(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")
	m.Keys().Clear()
	assert.True(t, m.IsEmpty())
}

func TestEntrySetContains(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")

	es := m.Entries()
	assert.True(t, es.Contains(Entry[int, string]{Key: 1, Value: "one"}))
	// Both sides must match.
	assert.False(t, es.Contains(Entry[int, string]{Key: 1, Value: "two"}))
	assert.False(t, es.Contains(Entry[int, string]{Key: 2, Value: "one"}))
	assert.True(t, es.ContainsAll(Entry[int, string]{Key: 1, Value: "one"}))
}

func TestEntrySetAdd(t *testing.T) {
	m := New[int, string]()
	es := m.Entries()

	// New key: the map changed.
	assert.True(t, es.Add(Entry[int, string]{Key: 1, Value: "one"}))
	assert.Equal(t, 1, m.Len())

	// Existing key, same value: nothing changed.
	assert.False(t, es.Add(Entry[int, string]{Key: 1, Value: "one"}))

	// Existing key, changed value: overwritten.
	assert.True(t, es.Add(Entry[int, string]{Key: 1, Value: "uno"}))
	assert.Equal(t, 1, m.Len())
	v, _ := m.Get(1)
	assert.Equal(t, "uno", v)
}

func TestEntrySetAddAll(t *testing.T) {
	m := New[int, string]()
	changed := m.Entries().AddAll(
		Entry[int, string]{Key: 1, Value: "one"},
		Entry[int, string]{Key: 2, Value: "two"},
	)
	assert.True(t, changed)
	assert.Equal(t, 2, m.Len())

	changed = m.Entries().AddAll(Entry[int, string]{Key: 1, Value: "one"})
	assert.False(t, changed)
}

func TestEntrySetRemove(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")

	// Removal goes by key; the entry's value is ignored.
	assert.True(t, m.Entries().Remove(Entry[int, string]{Key: 1, Value: "whatever"}))
	assert.Zero(t, m.Len())
	assert.False(t, m.Entries().Remove(Entry[int, string]{Key: 1, Value: "one"}))
}

func TestEntrySetRetainAll(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")
	m.Put(3, "three")

	assert.True(t, m.Entries().RetainAll(
		Entry[int, string]{Key: 1, Value: "one"},
		Entry[int, string]{Key: 3, Value: "three"},
	))
	assert.Equal(t, []int{1, 3}, m.Keys().ToSlice())
	checkInvariants(t, m)
}

func TestEntrySetToSlice(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")
	m.Put(2, "two")

	assert.Equal(t, []Entry[int, string]{
		{Key: 1, Value: "one"},
		{Key: 2, Value: "two"},
	}, m.Entries().ToSlice())
}

func TestViewsShareOneCounter(t *testing.T) {
	m := New[int, string]()
	m.Put(1, "one")

	// A mutation through the inverse view trips an iterator obtained from
	// the entry set: all views share one modification counter.
	it := m.Entries().Iterator()
	m.Inverse().Put("two", 2)

	_, err := it.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
