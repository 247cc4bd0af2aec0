package keyedcol

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = &Collection[int, any]{}
	_ yaml.Unmarshaler = &Collection[int, any]{}
)

// MarshalYAML implements the yaml.Marshaler interface. The collection
// marshals as a YAML mapping whose member order is the collection's order.
func (c *Collection[K, V]) MarshalYAML() (any, error) {
	if c == nil {
		return nil, nil
	}

	node := yaml.Node{
		Kind: yaml.MappingNode,
	}

	for entry := c.Front(); entry != nil; entry = entry.Next() {
		key, value := &yaml.Node{}, &yaml.Node{}
		if err := key.Encode(entry.Key); err != nil {
			return nil, err
		}
		if err := value.Encode(entry.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}

	return &node, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. Members are added
// in document order; integer keys tolerate quoted numeric scalars, see
// DecodeIntKey.
func (c *Collection[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("cannot unmarshal %v into an ordered keyed collection, expected a mapping", value.Kind)
	}

	if c.entries == nil {
		c.initialize(len(value.Content) / 2)
	}

	for index := 0; index < len(value.Content); index += 2 {
		var key K
		if err := decodeYAMLKey(value.Content[index], &key); err != nil {
			return err
		}

		var val V
		if err := value.Content[index+1].Decode(&val); err != nil {
			return err
		}

		c.Set(key, val)
	}

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface; the inner
// collection's mapping form.
func (a *AutoCollection[V]) MarshalYAML() (any, error) {
	if a == nil {
		return nil, nil
	}
	return a.inner.MarshalYAML()
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. As with JSON, the
// key counter is recovered with RecalculateNextKey.
func (a *AutoCollection[V]) UnmarshalYAML(value *yaml.Node) error {
	if a.inner == nil {
		a.inner = New[int64, V]()
	}
	if err := a.inner.UnmarshalYAML(value); err != nil {
		return err
	}
	a.RecalculateNextKey()
	return nil
}

func decodeYAMLKey[K comparable](node *yaml.Node, key *K) error {
	if err := node.Decode(key); err == nil {
		return nil
	}

	// A transport may have stringified a numeric key ("42"); for integer key
	// types, fall back to the dual-representation decode before failing.
	value := reflect.ValueOf(key).Elem()
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := DecodeIntKey(node.Value)
		if err != nil {
			return err
		}
		value.SetInt(parsed)
		return nil
	default:
		return fmt.Errorf("malformed key %q for key type %T", node.Value, *key)
	}
}
