package keyedcol

// MoveAfter moves the entry associated with key right after the entry
// associated with markKey. Returns a *KeyNotFoundError if either key is
// absent.
func (c *Collection[K, V]) MoveAfter(key, markKey K) error {
	entry, mark, err := c.entryPair(key, markKey)
	if err != nil {
		return err
	}
	c.list.MoveAfter(entry.element, mark.element)
	return nil
}

// MoveBefore moves the entry associated with key right before the entry
// associated with markKey. Returns a *KeyNotFoundError if either key is
// absent.
func (c *Collection[K, V]) MoveBefore(key, markKey K) error {
	entry, mark, err := c.entryPair(key, markKey)
	if err != nil {
		return err
	}
	c.list.MoveBefore(entry.element, mark.element)
	return nil
}

// MoveToBack moves the entry associated with key to the back of the order.
// Returns a *KeyNotFoundError if the key is absent.
func (c *Collection[K, V]) MoveToBack(key K) error {
	_, err := c.GetAndMoveToBack(key)
	return err
}

// MoveToFront moves the entry associated with key to the front of the order.
// Returns a *KeyNotFoundError if the key is absent.
func (c *Collection[K, V]) MoveToFront(key K) error {
	_, err := c.GetAndMoveToFront(key)
	return err
}

// GetAndMoveToBack combines Get and MoveToBack in one call.
func (c *Collection[K, V]) GetAndMoveToBack(key K) (val V, err error) {
	if entry, ok := c.entries[key]; ok {
		val = entry.Value
		c.list.MoveToBack(entry.element)
	} else {
		err = &KeyNotFoundError[K]{key}
	}
	return
}

// GetAndMoveToFront combines Get and MoveToFront in one call.
func (c *Collection[K, V]) GetAndMoveToFront(key K) (val V, err error) {
	if entry, ok := c.entries[key]; ok {
		val = entry.Value
		c.list.MoveToFront(entry.element)
	} else {
		err = &KeyNotFoundError[K]{key}
	}
	return
}

// InsertAfter places the key/value entry right after markKey. A key already
// in the collection is moved there and its value updated, never duplicated in
// the order. If markKey is absent this degrades to a plain Set. Returns the
// previous value and whether the key was present.
func (c *Collection[K, V]) InsertAfter(markKey, key K, value V) (val V, present bool) {
	mark, markOk := c.entries[markKey]
	if !markOk {
		return c.Set(key, value)
	}

	if entry, ok := c.entries[key]; ok {
		oldValue := entry.Value
		entry.Value = value
		if entry != mark {
			c.list.MoveAfter(entry.element, mark.element)
		}
		return oldValue, true
	}

	entry := &Entry[K, V]{
		Key:   key,
		Value: value,
	}
	entry.element = c.list.InsertAfter(entry, mark.element)
	c.entries[key] = entry

	return
}

// InsertBefore places the key/value entry right before markKey. Same
// edge-case behavior as InsertAfter.
func (c *Collection[K, V]) InsertBefore(markKey, key K, value V) (val V, present bool) {
	mark, markOk := c.entries[markKey]
	if !markOk {
		return c.Set(key, value)
	}

	if entry, ok := c.entries[key]; ok {
		oldValue := entry.Value
		entry.Value = value
		if entry != mark {
			c.list.MoveBefore(entry.element, mark.element)
		}
		return oldValue, true
	}

	entry := &Entry[K, V]{
		Key:   key,
		Value: value,
	}
	entry.element = c.list.InsertBefore(entry, mark.element)
	c.entries[key] = entry

	return
}

// Rekey reassigns the entry stored under oldKey to newKey, keeping its
// position in the order, and stores value under it. An existing entry under
// newKey is removed first. If oldKey is absent this degrades to a plain Set
// of newKey. Rekeying a key to itself just updates the value.
func (c *Collection[K, V]) Rekey(oldKey, newKey K, value V) {
	entry, ok := c.entries[oldKey]
	if !ok {
		c.Set(newKey, value)
		return
	}

	if oldKey == newKey {
		entry.Value = value
		return
	}

	if previous, ok := c.entries[newKey]; ok {
		c.list.Remove(previous.element)
		delete(c.entries, newKey)
	}

	replacement := &Entry[K, V]{
		Key:   newKey,
		Value: value,
	}
	replacement.element = c.list.InsertAfter(replacement, entry.element)
	c.list.Remove(entry.element)
	delete(c.entries, oldKey)
	c.entries[newKey] = replacement
}

// Reverse reverses the iteration order in place. The key/value mapping is
// unaffected.
func (c *Collection[K, V]) Reverse() {
	if c.Len() < 2 {
		return
	}
	// Moving each entry to the front in forward order reverses the list; an
	// entry's successor is untouched until the entry itself is visited.
	for entry := c.Front(); entry != nil; {
		next := entry.Next()
		c.list.MoveToFront(entry.element)
		entry = next
	}
}

func (c *Collection[K, V]) entryPair(key, markKey K) (entry, mark *Entry[K, V], err error) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, nil, &KeyNotFoundError[K]{key}
	}
	mark, ok = c.entries[markKey]
	if !ok {
		return nil, nil, &KeyNotFoundError[K]{markKey}
	}
	return entry, mark, nil
}
