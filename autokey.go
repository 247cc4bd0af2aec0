package keyedcol

import "iter"

// AutoCollection is a Collection[int64, V] that issues its own keys: every
// Append or Prepend assigns the next value of a monotonically increasing
// counter and hands the key back to the caller, which can then address the
// element for the rest of its life. Keys of removed elements are never
// reissued by the counter.
//
// AutoCollection is a value with single-owner semantics: copying the struct
// copies the counter, and appending through two copies hands out the same key
// twice. Always thread one AutoCollection forward; never keep appending
// through a stale copy.
type AutoCollection[V any] struct {
	inner   *Collection[int64, V]
	nextKey int64
}

// NewAuto creates an empty AutoCollection. The first issued key is 1.
// options are the same as New's.
func NewAuto[V any](options ...any) *AutoCollection[V] {
	return &AutoCollection[V]{
		inner:   New[int64, V](options...),
		nextKey: 1,
	}
}

// FromValues creates an AutoCollection holding the given values in order,
// keyed 1 through len(values).
func FromValues[V any](values []V) *AutoCollection[V] {
	a := NewAuto[V](len(values))
	for _, value := range values {
		a.Append(value)
	}
	return a
}

// Append adds the value at the back under a freshly issued key, and returns
// that key.
func (a *AutoCollection[V]) Append(value V) int64 {
	key := a.nextKey
	a.nextKey++
	a.inner.Set(key, value)
	return key
}

// Prepend adds the value at the front under a freshly issued key, and returns
// that key.
func (a *AutoCollection[V]) Prepend(value V) int64 {
	key := a.nextKey
	a.nextKey++
	a.inner.Prepend(key, value)
	return key
}

// RecalculateNextKey resets the counter from the keys currently present
// (their maximum plus one, or 1 when empty) and returns the new value. It
// exists for callers that rebuilt an AutoCollection without its original
// counter, e.g. on the far side of a serialization boundary.
//
// This is a strictly weaker guarantee than the counter's: the collection has
// forgotten the keys of removed elements, so the recalculated counter can
// reissue them. Recovery only; never call it to "compact" a live collection.
func (a *AutoCollection[V]) RecalculateNextKey() int64 {
	var max int64
	for key := range a.inner.entries {
		if key > max {
			max = key
		}
	}
	a.nextKey = max + 1
	return a.nextKey
}

// The remaining operations delegate to the inner collection unchanged.

// Len returns the number of elements. Safe to call on a nil receiver.
func (a *AutoCollection[V]) Len() int {
	if a == nil {
		return 0
	}
	return a.inner.Len()
}

// IsEmpty reports whether the collection holds no elements.
func (a *AutoCollection[V]) IsEmpty() bool { return a.Len() == 0 }

// Get looks up a key's value, together with whether it was present.
func (a *AutoCollection[V]) Get(key int64) (V, bool) { return a.inner.Get(key) }

// Value returns the value for the given key, or V's zero value if absent.
func (a *AutoCollection[V]) Value(key int64) V { return a.inner.Value(key) }

// Replace sets the value for a key that is already present and reports
// whether it was. It never inserts; only Append and Prepend issue keys.
func (a *AutoCollection[V]) Replace(key int64, value V) bool { return a.inner.Replace(key, value) }

// Update applies f to the value stored under key; absent keys are a no-op.
func (a *AutoCollection[V]) Update(key int64, f func(V) V) bool { return a.inner.Update(key, f) }

// Compute is the general update operation, see Collection.Compute. A key
// created through Compute must be one this collection issued earlier;
// inventing keys defeats the counter.
func (a *AutoCollection[V]) Compute(key int64, f func(value V, present bool) (V, bool)) {
	a.inner.Compute(key, f)
}

// Delete removes the entry for the given key. The key is retired: the counter
// will not issue it again.
func (a *AutoCollection[V]) Delete(key int64) (V, bool) { return a.inner.Delete(key) }

// Filter removes, in place, every element the predicate rejects.
func (a *AutoCollection[V]) Filter(predicate func(key int64, value V) bool) {
	a.inner.Filter(predicate)
}

// Reverse reverses the iteration order in place.
func (a *AutoCollection[V]) Reverse() { a.inner.Reverse() }

// SortFunc re-sorts the order in place; stable, like Collection.SortFunc.
func (a *AutoCollection[V]) SortFunc(compare func(x, y *Entry[int64, V]) int) {
	a.inner.SortFunc(compare)
}

// SortByKeys re-sorts into ascending key order, which for an AutoCollection
// is issue order.
func (a *AutoCollection[V]) SortByKeys() { SortByKeys(a.inner) }

// MoveToFront moves the element with the given key to the front of the order.
func (a *AutoCollection[V]) MoveToFront(key int64) error { return a.inner.MoveToFront(key) }

// MoveToBack moves the element with the given key to the back of the order.
func (a *AutoCollection[V]) MoveToBack(key int64) error { return a.inner.MoveToBack(key) }

// MoveAfter moves key's element right after markKey's.
func (a *AutoCollection[V]) MoveAfter(key, markKey int64) error {
	return a.inner.MoveAfter(key, markKey)
}

// MoveBefore moves key's element right before markKey's.
func (a *AutoCollection[V]) MoveBefore(key, markKey int64) error {
	return a.inner.MoveBefore(key, markKey)
}

// Entries materializes the collection as a slice of entries, in order.
func (a *AutoCollection[V]) Entries() []Entry[int64, V] { return a.inner.Entries() }

// Keys returns the keys as a slice, in the collection's order.
func (a *AutoCollection[V]) Keys() []int64 { return a.inner.Keys() }

// Values returns the values as a slice, in the collection's order.
func (a *AutoCollection[V]) Values() []V { return a.inner.Values() }

// FromFront returns an iterator over all the key/value entries, front to
// back.
func (a *AutoCollection[V]) FromFront() iter.Seq2[int64, V] { return a.inner.FromFront() }

// FromBack returns an iterator over all the key/value entries, back to front.
func (a *AutoCollection[V]) FromBack() iter.Seq2[int64, V] { return a.inner.FromBack() }

// MapAuto builds a new AutoCollection by applying f to every element. Keys,
// order and the key counter carry over unchanged, so keys issued by the
// result never collide with keys already present.
func MapAuto[V1, V2 any](a *AutoCollection[V1], f func(key int64, value V1) V2) *AutoCollection[V2] {
	return &AutoCollection[V2]{
		inner:   MapValues(a.inner, f),
		nextKey: a.nextKey,
	}
}
