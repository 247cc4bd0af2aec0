package keyedcol

import "iter"

// FromFront returns an iterator over all the key/value entries, front to
// back, following the collection's current order.
func (c *Collection[K, V]) FromFront() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for entry := c.Front(); entry != nil; entry = entry.Next() {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// FromBack returns an iterator over all the key/value entries, back to front.
func (c *Collection[K, V]) FromBack() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for entry := c.Back(); entry != nil; entry = entry.Prev() {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// KeysFromFront returns an iterator over the keys, front to back.
func (c *Collection[K, V]) KeysFromFront() iter.Seq[K] {
	return func(yield func(K) bool) {
		for entry := c.Front(); entry != nil; entry = entry.Next() {
			if !yield(entry.Key) {
				return
			}
		}
	}
}

// KeysFromBack returns an iterator over the keys, back to front.
func (c *Collection[K, V]) KeysFromBack() iter.Seq[K] {
	return func(yield func(K) bool) {
		for entry := c.Back(); entry != nil; entry = entry.Prev() {
			if !yield(entry.Key) {
				return
			}
		}
	}
}

// ValuesFromFront returns an iterator over the values, front to back.
func (c *Collection[K, V]) ValuesFromFront() iter.Seq[V] {
	return func(yield func(V) bool) {
		for entry := c.Front(); entry != nil; entry = entry.Next() {
			if !yield(entry.Value) {
				return
			}
		}
	}
}

// ValuesFromBack returns an iterator over the values, back to front.
func (c *Collection[K, V]) ValuesFromBack() iter.Seq[V] {
	return func(yield func(V) bool) {
		for entry := c.Back(); entry != nil; entry = entry.Prev() {
			if !yield(entry.Value) {
				return
			}
		}
	}
}

// From creates a new Collection from an iterator, in iteration order.
func From[K comparable, V any](i iter.Seq2[K, V]) *Collection[K, V] {
	c := New[K, V]()
	for k, v := range i {
		c.Set(k, v)
	}
	return c
}

// Entries materializes the collection as a slice of entries in the
// collection's order. The returned entries are copies; mutating them does not
// affect the collection.
func (c *Collection[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, c.Len())
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		if _, ok := c.entries[entry.Key]; !ok {
			// should be unreachable; skip rather than surface a torn entry
			continue
		}
		entries = append(entries, Entry[K, V]{Key: entry.Key, Value: entry.Value})
	}
	return entries
}

// Keys returns the keys as a slice, in the collection's order.
func (c *Collection[K, V]) Keys() []K {
	keys := make([]K, 0, c.Len())
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Values returns the values as a slice, in the collection's order.
func (c *Collection[K, V]) Values() []V {
	values := make([]V, 0, c.Len())
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		values = append(values, entry.Value)
	}
	return values
}

// EntriesUnordered returns the entries in map order, which is unspecified.
// Use it when the iteration order is irrelevant and the list walk is not
// worth it.
func (c *Collection[K, V]) EntriesUnordered() []Entry[K, V] {
	if c == nil {
		return nil
	}
	entries := make([]Entry[K, V], 0, len(c.entries))
	for _, entry := range c.entries {
		entries = append(entries, Entry[K, V]{Key: entry.Key, Value: entry.Value})
	}
	return entries
}

// KeysUnordered returns the keys in map order, which is unspecified. Use it
// when the iteration order is irrelevant and the list walk is not worth it.
func (c *Collection[K, V]) KeysUnordered() []K {
	if c == nil {
		return nil
	}
	keys := make([]K, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	return keys
}

// ValuesUnordered returns the values in map order, which is unspecified. See
// KeysUnordered.
func (c *Collection[K, V]) ValuesUnordered() []V {
	if c == nil {
		return nil
	}
	values := make([]V, 0, len(c.entries))
	for _, entry := range c.entries {
		values = append(values, entry.Value)
	}
	return values
}
