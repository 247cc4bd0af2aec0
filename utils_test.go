package keyedcol

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLenEqual[K comparable, V any](t *testing.T, c *Collection[K, V], length int) {
	t.Helper()

	assert.Equal(t, length, c.Len())
	assert.Len(t, c.Entries(), length)
	assert.Equal(t, length == 0, c.IsEmpty())
}

// assertInvariants checks that the order list and the entry map hold exactly
// the same key set, and that no key appears on the list twice.
func assertInvariants[K comparable, V any](t *testing.T, c *Collection[K, V]) {
	t.Helper()

	seen := make(map[K]bool, c.Len())
	count := 0
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		assert.False(t, seen[entry.Key], "key %v appears twice in the order", entry.Key)
		seen[entry.Key] = true
		count++

		_, present := c.entries[entry.Key]
		assert.True(t, present, "ordered key %v has no entry", entry.Key)
	}
	assert.Equal(t, len(c.entries), count, "order and entry map have diverged")
}

func assertOrderedEntriesEqual[K comparable, V any](t *testing.T, c *Collection[K, V], expectedKeys []K, expectedValues []V) {
	t.Helper()

	assertKeysEqual(t, c, expectedKeys)
	assertValuesEqual(t, c, expectedValues)
	assertInvariants(t, c)
}

func assertKeysEqual[K comparable, V any](t *testing.T, c *Collection[K, V], expected []K) {
	t.Helper()

	require.Equal(t, len(expected), c.Len())

	// forward
	index := 0
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		assert.Equal(t, expected[index], entry.Key)
		index++
	}

	// backward
	index = len(expected) - 1
	for entry := c.Back(); entry != nil; entry = entry.Prev() {
		assert.Equal(t, expected[index], entry.Key)
		index--
	}

	assert.Equal(t, expected, c.Keys())
}

func assertValuesEqual[K comparable, V any](t *testing.T, c *Collection[K, V], expected []V) {
	t.Helper()

	require.Equal(t, len(expected), c.Len())

	index := 0
	for entry := c.Front(); entry != nil; entry = entry.Next() {
		assert.Equal(t, expected[index], entry.Value)
		index++
	}

	assert.Equal(t, expected, c.Values())
}

func randomHexString(t *testing.T, length int) string {
	t.Helper()

	b := length / 2
	randBytes := make([]byte, b)

	n, err := rand.Read(randBytes)
	require.NoError(t, err)
	require.Equal(t, b, n)

	return hex.EncodeToString(randBytes)
}
