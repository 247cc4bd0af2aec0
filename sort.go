package keyedcol

import (
	"cmp"
	"slices"
)

// SortFunc re-sorts the collection's order in place according to the given
// comparison function (negative when a sorts before b, as in
// slices.SortStableFunc). The sort is stable: entries that compare equal keep
// their relative pre-sort order, so re-sorting after a partial update only
// moves what changed.
func (c *Collection[K, V]) SortFunc(compare func(a, b *Entry[K, V]) int) {
	if c.Len() < 2 {
		return
	}

	entries := make([]*Entry[K, V], 0, len(c.entries))
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		entries = append(entries, entry)
	}
	slices.SortStableFunc(entries, compare)

	for _, entry := range entries {
		c.list.MoveToBack(entry.element)
	}
}

// SortByKeys re-sorts the collection into ascending natural key order. It
// enumerates the key set directly rather than deriving a comparison per
// entry, so it is the cheaper spelling of
// SortFunc(func(a, b) int { return cmp.Compare(a.Key, b.Key) }).
func SortByKeys[K cmp.Ordered, V any](c *Collection[K, V]) {
	if c.Len() < 2 {
		return
	}

	keys := make([]K, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		c.list.MoveToBack(c.entries[key].element)
	}
}

// MapValues builds a new collection by applying f to every entry. Keys and
// order carry over unchanged; the input collection is untouched.
//
// It is a package-level function rather than a method so the result may have
// a different value type.
func MapValues[K comparable, V1, V2 any](c *Collection[K, V1], f func(key K, value V1) V2) *Collection[K, V2] {
	result := New[K, V2](c.Len())
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		result.Set(entry.Key, f(entry.Key, entry.Value))
	}
	return result
}

// MapUnzip applies f to every entry, splitting its two results: the returned
// collection holds the first components under the original keys and order,
// the slice collects the second components.
//
// Note the asymmetry: the collection preserves the input's custom order, but
// the slice is produced in ascending key order, not collection order. This
// mirrors the long-standing behavior of the system this package descends
// from; callers that need the side outputs in collection order should use
// MapValues and a separate Values walk instead.
func MapUnzip[K cmp.Ordered, V1, V2, W any](c *Collection[K, V1], f func(key K, value V1) (V2, W)) (*Collection[K, V2], []W) {
	result := New[K, V2](c.Len())
	sideByKey := make(map[K]W, c.Len())
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		mapped, w := f(entry.Key, entry.Value)
		result.Set(entry.Key, mapped)
		sideByKey[entry.Key] = w
	}

	keys := make([]K, 0, len(sideByKey))
	for key := range sideByKey {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	side := make([]W, 0, len(keys))
	for _, key := range keys {
		side = append(side, sideByKey[key])
	}

	return result, side
}

// UpdateEmit applies f to the value stored under key, storing the first
// result and returning the second — typically a command or effect for the
// caller's runtime to execute. An absent key applies nothing and emits
// nothing (ok is false); a present key emits exactly one effect per call.
func UpdateEmit[K comparable, V, E any](c *Collection[K, V], key K, f func(V) (V, E)) (effect E, ok bool) {
	entry, present := c.entries[key]
	if !present {
		return
	}
	entry.Value, effect = f(entry.Value)
	return effect, true
}
