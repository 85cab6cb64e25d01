package types

// DefaultMap is a generic map wrapper that returns default values for missing keys.
//
// It is useful for secondary indexes where every key maps to a container that
// should exist on first use:
//
//	idx := NewDefaultMap[string](func() Set[string] { return NewSet[string]() })
//	idx.Get("key").Add("uid") // creates the set on first access
type DefaultMap[K comparable, V any] struct {
	data        map[K]V  // underlying map storing the key-value pairs
	defaultFunc func() V // function used to generate default values for missing keys
}

// NewDefaultMap creates a new DefaultMap with a user-defined default function.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get retrieves the value associated with the given key.
//
// If the key is not present, it invokes the defaultFunc to generate a default value,
// stores it in the map, and then returns it.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Lookup returns the value stored for key without creating it.
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := d.data[key]
	return val, ok
}

// Delete removes key from the map.
func (d *DefaultMap[K, V]) Delete(key K) {
	delete(d.data, key)
}

// Reset drops every entry while keeping the default function.
func (d *DefaultMap[K, V]) Reset() {
	clear(d.data)
}
