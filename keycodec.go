package keyedcol

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FormatKey renders a key's canonical string form, the one used for JSON
// object keys and meant for rendering layers that need a string identity per
// element. Strings are returned as-is, integer kinds in decimal,
// encoding.TextMarshaler and fmt.Stringer by their own rendering. Other key
// types are rejected.
func FormatKey(key any) (string, error) {
	switch typed := key.(type) {
	case string:
		return typed, nil
	case encoding.TextMarshaler:
		text, err := typed.MarshalText()
		if err != nil {
			return "", fmt.Errorf("marshaling key %v: %w", key, err)
		}
		return string(text), nil
	case fmt.Stringer:
		return typed.String(), nil
	}

	value := reflect.ValueOf(key)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10), nil
	default:
		return "", fmt.Errorf("unsupported key type %T", key)
	}
}

// DecodeIntKey decodes an integer key that crossed a transport boundary,
// where it may arrive either as a native number or as its decimal string
// form (many transports coerce object keys to strings). Accepted inputs:
// signed and unsigned integers, floats with an integral value, json.Number,
// and numeric strings. Anything else fails with an error naming the
// offending input; a malformed key is never silently coerced to a default.
func DecodeIntKey(raw any) (int64, error) {
	switch typed := raw.(type) {
	case int64:
		return typed, nil
	case int:
		return int64(typed), nil
	case int32:
		return int64(typed), nil
	case uint64:
		if typed > 1<<63-1 {
			return 0, fmt.Errorf("key %d overflows int64", typed)
		}
		return int64(typed), nil
	case uint:
		return int64(typed), nil
	case float64:
		if typed != float64(int64(typed)) {
			return 0, fmt.Errorf("key %v is not an integer", typed)
		}
		return int64(typed), nil
	case json.Number:
		return parseIntKey(typed.String())
	case string:
		return parseIntKey(typed)
	default:
		return 0, fmt.Errorf("cannot decode key of type %T (%v)", raw, raw)
	}
}

func parseIntKey(raw string) (int64, error) {
	key, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed key %q: %w", raw, err)
	}
	return key, nil
}

// decodeKeyBytes turns a raw JSON object key into a typed K. String keys are
// taken verbatim, integer kinds go through the dual-representation decode,
// encoding.TextUnmarshaler gets the raw bytes.
func decodeKeyBytes[K comparable](keyData []byte) (key K, err error) {
	switch typed := any(&key).(type) {
	case *string:
		*typed = string(keyData)
		return key, nil
	case encoding.TextUnmarshaler:
		if err := typed.UnmarshalText(keyData); err != nil {
			return key, fmt.Errorf("unmarshaling key %q: %w", keyData, err)
		}
		return key, nil
	}

	value := reflect.ValueOf(&key).Elem()
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := DecodeIntKey(string(keyData))
		if err != nil {
			return key, err
		}
		value.SetInt(parsed)
		return key, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err := strconv.ParseUint(string(keyData), 10, 64)
		if err != nil {
			return key, fmt.Errorf("malformed key %q: %w", keyData, err)
		}
		value.SetUint(parsed)
		return key, nil
	default:
		return key, fmt.Errorf("unsupported key type %T", key)
	}
}
