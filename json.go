package keyedcol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ json.Marshaler   = &Collection[int, any]{}
	_ json.Unmarshaler = &Collection[int, any]{}
	_ json.Marshaler   = &AutoCollection[any]{}
	_ json.Unmarshaler = &AutoCollection[any]{}
)

// MarshalJSON implements the json.Marshaler interface. The collection
// marshals as a JSON object whose member order is the collection's order;
// keys are rendered through FormatKey.
func (c *Collection[K, V]) MarshalJSON() ([]byte, error) {
	if c == nil || c.entries == nil {
		return []byte("null"), nil
	}

	writer := jwriter.Writer{}
	writer.RawByte('{')

	for entry, first := c.Front(), true; entry != nil; entry = entry.Next() {
		if first {
			first = false
		} else {
			writer.RawByte(',')
		}

		key, err := FormatKey(entry.Key)
		if err != nil {
			return nil, err
		}
		writer.String(key)
		writer.RawByte(':')

		valueData, err := json.Marshal(entry.Value)
		writer.Raw(valueData, err)
	}

	writer.RawByte('}')
	return dumpWriter(&writer)
}

func dumpWriter(writer *jwriter.Writer) ([]byte, error) {
	if writer.Error != nil {
		return nil, writer.Error
	}

	var buf bytes.Buffer
	buf.Grow(writer.Size())
	if _, err := writer.DumpTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Members are added
// in document order; integer keys accept both bare numbers and their decimal
// string form, see DecodeIntKey.
func (c *Collection[K, V]) UnmarshalJSON(data []byte) error {
	if c.entries == nil {
		c.initialize(0)
	}

	return jsonparser.ObjectEach(data, func(keyData []byte, valueData []byte, dataType jsonparser.ValueType, offset int) error {
		key, err := decodeKeyBytes[K](keyData)
		if err != nil {
			return err
		}

		if dataType == jsonparser.String {
			// jsonparser hands string values over without their quotes;
			// restore them so encoding/json sees valid JSON. Escape
			// sequences inside are still intact.
			quoted := make([]byte, 0, len(valueData)+2)
			quoted = append(quoted, '"')
			quoted = append(quoted, valueData...)
			valueData = append(quoted, '"')
		}

		var value V
		if err := json.Unmarshal(valueData, &value); err != nil {
			return fmt.Errorf("unmarshaling value for key %q: %w", keyData, err)
		}

		c.Set(key, value)
		return nil
	})
}

// MarshalJSON implements the json.Marshaler interface; the inner collection's
// object form, keys as decimal strings.
func (a *AutoCollection[V]) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("null"), nil
	}
	return a.inner.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface. The key counter is
// recovered with RecalculateNextKey, so it only reflects the keys present in
// the document — the recovery-only guarantee documented there.
func (a *AutoCollection[V]) UnmarshalJSON(data []byte) error {
	if a.inner == nil {
		a.inner = New[int64, V]()
	}
	if err := a.inner.UnmarshalJSON(data); err != nil {
		return err
	}
	a.RecalculateNextKey()
	return nil
}
