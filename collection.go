// Package keyedcol implements an ordered keyed collection: a map from keys to
// values paired with an explicit iteration order that callers control
// independently of key identity. Elements keep a stable key across resorts,
// filters and reorders, which makes the structure a good backing store for
// rendering layers that need to match an element's identity to its current
// on-screen representation.
//
// Collection is the externally-keyed base structure; AutoCollection layers a
// monotonic key generator on top for callers who don't have meaningful keys
// of their own.
package keyedcol

import (
	"fmt"

	list "github.com/PrismAIO/generic-list-go"
)

// Entry is a key/value entry of a Collection, and doubles as a cursor: Next
// and Prev walk the collection's current order.
type Entry[K comparable, V any] struct {
	Key   K
	Value V

	element *list.Element[*Entry[K, V]]
}

// Next returns the entry that follows this one in the collection's order, or
// nil if this is the last entry.
func (e *Entry[K, V]) Next() *Entry[K, V] {
	return elementToEntry(e.element.Next())
}

// Prev returns the entry that precedes this one in the collection's order, or
// nil if this is the first entry.
func (e *Entry[K, V]) Prev() *Entry[K, V] {
	return elementToEntry(e.element.Prev())
}

func elementToEntry[K comparable, V any](element *list.Element[*Entry[K, V]]) *Entry[K, V] {
	if element == nil {
		return nil
	}
	return element.Value
}

// Collection is an ordered keyed collection. The zero value is not usable;
// use New. Collections are not safe for concurrent use.
//
// Every key present in the order list is present in the entry map and vice
// versa, and no key appears in the order twice; all exported operations
// preserve this.
type Collection[K comparable, V any] struct {
	entries map[K]*Entry[K, V]
	list    *list.List[*Entry[K, V]]
}

type initConfig[K comparable, V any] struct {
	capacity    int
	initialData []Entry[K, V]
}

// Option is a configuration option for New.
type Option[K comparable, V any] func(config *initConfig[K, V])

// WithCapacity allows giving a capacity hint for the collection, akin to the
// standard make(map[K]V, capacity).
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(config *initConfig[K, V]) {
		config.capacity = capacity
	}
}

// WithInitialData populates the collection with the given entries, in order.
// A duplicate key keeps the position of its first occurrence and the value of
// its last.
func WithInitialData[K comparable, V any](initialData ...Entry[K, V]) Option[K, V] {
	return func(config *initConfig[K, V]) {
		config.initialData = initialData
		if config.capacity < len(initialData) {
			config.capacity = len(initialData)
		}
	}
}

const invalidOptionMessage = `when using New's variadic arguments, either provide one or several Option, or a single integer to set the capacity`

func invalidOption() { panic(invalidOptionMessage) }

// New creates a new Collection.
//
// options can either be one or several Option, or a single integer that is
// then treated as a capacity hint, à la make(map[K]V, capacity). Invalid
// options panic.
func New[K comparable, V any](options ...any) *Collection[K, V] {
	c := &Collection[K, V]{}

	var config initConfig[K, V]
	for _, untyped := range options {
		switch option := untyped.(type) {
		case int:
			if len(options) != 1 {
				invalidOption()
			}
			config.capacity = option

		case Option[K, V]:
			option(&config)

		default:
			invalidOption()
		}
	}

	c.initialize(config.capacity)
	c.AddEntries(config.initialData...)

	return c
}

func (c *Collection[K, V]) initialize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	c.entries = make(map[K]*Entry[K, V], capacity)
	c.list = list.New[*Entry[K, V]]()
}

// AddEntries inserts the given entries at the back, in order, with Set
// semantics: a key already present (in the collection or earlier in the
// arguments) keeps its position and takes the later value.
func (c *Collection[K, V]) AddEntries(entries ...Entry[K, V]) {
	for _, entry := range entries {
		c.Set(entry.Key, entry.Value)
	}
}

// Len returns the number of entries. It is safe to call on a nil receiver.
func (c *Collection[K, V]) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}
	return len(c.entries)
}

// IsEmpty reports whether the collection holds no entries.
func (c *Collection[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// Get looks up a key's value, together with whether it was present.
func (c *Collection[K, V]) Get(key K) (val V, present bool) {
	if c == nil || c.entries == nil {
		return
	}
	if entry, ok := c.entries[key]; ok {
		return entry.Value, true
	}
	return
}

// Value returns the value for the given key, or V's zero value if absent.
func (c *Collection[K, V]) Value(key K) (val V) {
	if c == nil || c.entries == nil {
		return
	}
	if entry, ok := c.entries[key]; ok {
		val = entry.Value
	}
	return
}

// GetEntry looks up a key's entry; it can then be used as a cursor into the
// collection's order. Returns nil if the key is absent.
//
// The returned entry is the collection's own internal representation: mutating
// its Value mutates the collection.
func (c *Collection[K, V]) GetEntry(key K) *Entry[K, V] {
	if c == nil || c.entries == nil {
		return nil
	}
	return c.entries[key]
}

// Set sets the value for the key. If the key is already present its value is
// updated in place and its position is unchanged; otherwise the new entry is
// appended at the back. Returns the previous value and whether the key was
// present.
func (c *Collection[K, V]) Set(key K, value V) (val V, present bool) {
	if entry, ok := c.entries[key]; ok {
		oldValue := entry.Value
		entry.Value = value
		return oldValue, true
	}

	entry := &Entry[K, V]{
		Key:   key,
		Value: value,
	}
	entry.element = c.list.PushBack(entry)
	c.entries[key] = entry

	return
}

// Prepend is Set with the opposite placement: a new key goes to the front of
// the order. An existing key is updated in place, position unchanged.
func (c *Collection[K, V]) Prepend(key K, value V) (val V, present bool) {
	if entry, ok := c.entries[key]; ok {
		oldValue := entry.Value
		entry.Value = value
		return oldValue, true
	}

	entry := &Entry[K, V]{
		Key:   key,
		Value: value,
	}
	entry.element = c.list.PushFront(entry)
	c.entries[key] = entry

	return
}

// Replace sets the value for a key that is already present and reports
// whether it was. Unlike Set, an absent key is a no-op: Replace never
// inserts.
func (c *Collection[K, V]) Replace(key K, value V) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	entry.Value = value
	return true
}

// Update applies f to the value stored under key. Absent keys are a no-op;
// the return value reports whether f was applied.
func (c *Collection[K, V]) Update(key K, f func(V) V) bool {
	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	entry.Value = f(entry.Value)
	return true
}

// Compute is the general update operation: f receives the current value (or
// V's zero value) and whether the key is present, and returns the value to
// store and whether to keep the key. Returning keep == false removes a
// present key, or declines to create an absent one. A newly created entry is
// appended at the back.
func (c *Collection[K, V]) Compute(key K, f func(value V, present bool) (V, bool)) {
	entry, ok := c.entries[key]

	var current V
	if ok {
		current = entry.Value
	}
	value, keep := f(current, ok)

	switch {
	case keep && ok:
		entry.Value = value
	case keep:
		c.Set(key, value)
	case ok:
		c.Delete(key)
	}
}

// Delete removes the entry for the given key and returns the removed value
// and whether the key was present. Deleting an absent key is a no-op.
func (c *Collection[K, V]) Delete(key K) (val V, present bool) {
	if entry, ok := c.entries[key]; ok {
		c.list.Remove(entry.element)
		delete(c.entries, key)
		return entry.Value, true
	}
	return
}

// Filter removes, in place, every entry the predicate rejects. Surviving
// entries keep their relative order.
func (c *Collection[K, V]) Filter(predicate func(key K, value V) bool) {
	for entry := c.Front(); entry != nil; {
		next := entry.Next()
		if !predicate(entry.Key, entry.Value) {
			c.list.Remove(entry.element)
			delete(c.entries, entry.Key)
		}
		entry = next
	}
}

// Front returns the first entry in the collection's order, or nil if empty.
// Safe to call on a nil receiver.
func (c *Collection[K, V]) Front() *Entry[K, V] {
	if c == nil || c.list == nil {
		return nil
	}
	return elementToEntry(c.list.Front())
}

// Back returns the last entry in the collection's order, or nil if empty.
// Safe to call on a nil receiver.
func (c *Collection[K, V]) Back() *Entry[K, V] {
	if c == nil || c.list == nil {
		return nil
	}
	return elementToEntry(c.list.Back())
}

// KeyNotFoundError is returned by reordering operations when the named key is
// not in the collection.
type KeyNotFoundError[K comparable] struct {
	MissingKey K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("missing key: %v", e.MissingKey)
}
