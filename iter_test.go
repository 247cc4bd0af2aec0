package keyedcol

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterators(t *testing.T) {
	c := New[int, any]()
	c.Set(1, "bar")
	c.Set(2, 28)
	c.Set(3, 100)
	c.Set(4, "baz")
	c.Set(5, "28")
	c.Set(6, "100")

	expectedKeys := []int{1, 2, 3, 4, 5, 6}
	expectedKeysFromBack := []int{6, 5, 4, 3, 2, 1}
	expectedValues := []any{"bar", 28, 100, "baz", "28", "100"}
	expectedValuesFromBack := []any{"100", "28", "baz", 100, 28, "bar"}

	var keys []int
	var values []any

	for k, v := range c.FromFront() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, expectedKeys, keys)
	assert.Equal(t, expectedValues, values)

	keys, values = []int{}, []any{}

	for k, v := range c.FromBack() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, expectedKeysFromBack, keys)
	assert.Equal(t, expectedValuesFromBack, values)

	keys = []int{}

	for k := range c.KeysFromFront() {
		keys = append(keys, k)
	}

	assert.Equal(t, expectedKeys, keys)

	keys = []int{}

	for k := range c.KeysFromBack() {
		keys = append(keys, k)
	}

	assert.Equal(t, expectedKeysFromBack, keys)

	values = []any{}

	for v := range c.ValuesFromFront() {
		values = append(values, v)
	}

	assert.Equal(t, expectedValues, values)

	values = []any{}

	for v := range c.ValuesFromBack() {
		values = append(values, v)
	}

	assert.Equal(t, expectedValuesFromBack, values)
}

func TestIteratorsEarlyBreak(t *testing.T) {
	c := New[int, string]()
	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(3, "three")

	var keys []int
	for k := range c.KeysFromFront() {
		if k == 3 {
			break
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []int{1, 2}, keys)
}

func TestFrom(t *testing.T) {
	c := New[int, any]()
	c.Set(1, "bar")
	c.Set(2, 28)
	c.Set(3, 100)
	c.Set(4, "baz")

	c2 := From(c.FromFront())
	assertOrderedEntriesEqual(t, c2,
		[]int{1, 2, 3, 4},
		[]any{"bar", 28, 100, "baz"})

	c2 = From(c.FromBack())
	assertOrderedEntriesEqual(t, c2,
		[]int{4, 3, 2, 1},
		[]any{"baz", 100, 28, "bar"})
}

func TestOrderedAndUnorderedProjections(t *testing.T) {
	c := New[int, string]()
	c.Set(3, "three")
	c.Set(1, "one")
	c.Set(2, "two")

	// the ordered projections respect the custom order...
	assert.Equal(t, []int{3, 1, 2}, c.Keys())
	assert.Equal(t, []string{"three", "one", "two"}, c.Values())

	entries := c.Entries()
	assert.Equal(t, c.Len(), len(entries))
	assert.Equal(t, Entry[int, string]{Key: 3, Value: "three"}, entries[0])

	// ...the unordered ones only promise the same elements
	unorderedKeys := c.KeysUnordered()
	sort.Ints(unorderedKeys)
	assert.Equal(t, []int{1, 2, 3}, unorderedKeys)

	unorderedValues := c.ValuesUnordered()
	sort.Strings(unorderedValues)
	assert.Equal(t, []string{"one", "three", "two"}, unorderedValues)
}

func TestEntriesAreCopies(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)

	entries := c.Entries()
	entries[0].Value = 100

	assert.Equal(t, 1, c.Value("a"))
}

func TestMutatingWhileIterating(t *testing.T) {
	t.Run("set a new key during iteration is visited", func(t *testing.T) {
		c := New[int, string]()
		c.Set(1, "one")
		c.Set(2, "two")

		var visited []int
		for k := range c.FromFront() {
			visited = append(visited, k)
			if k == 1 {
				c.Set(3, "three")
			}
		}

		assert.Equal(t, []int{1, 2, 3}, visited)
	})

	t.Run("delete ahead of the cursor skips the entry", func(t *testing.T) {
		c := New[int, string]()
		c.Set(1, "one")
		c.Set(2, "two")
		c.Set(3, "three")

		var visited []int
		for k := range c.FromFront() {
			visited = append(visited, k)
			if k == 1 {
				c.Delete(2)
			}
		}

		assert.Equal(t, []int{1, 3}, visited)
		assertInvariants(t, c)
	})

	t.Run("insertions keep the order walkable", func(t *testing.T) {
		c := New[int, string]()
		for i := 1; i <= 8; i++ {
			c.Set(i, randomHexString(t, 8))
		}

		for k := range c.KeysFromFront() {
			if k == 2 {
				c.InsertAfter(2, 20, "twenty")
			}
			if k == 4 {
				c.InsertBefore(4, 40, "forty")
			}
		}

		assert.Equal(t, 10, c.Len())
		assertInvariants(t, c)

		count := 0
		for range c.FromFront() {
			count++
		}
		assert.Equal(t, 10, count)

		count = 0
		for range c.FromBack() {
			count++
		}
		assert.Equal(t, 10, count)
	})
}
