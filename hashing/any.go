package hashing

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"math"
	"reflect"
)

// ErrUnsupportedType is returned when a value has no known hash encoding.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// UpdateAny writes an unambiguous encoding of value into h.
//
// Hashable values hash themselves. Booleans, integers, floats, strings and
// byte slices (including named types whose underlying type is one of those)
// are encoded with a one-byte kind tag followed by a fixed-width or
// length-prefixed payload, so that concatenating several values never
// produces the same byte stream for different inputs. The empty struct
// writes nothing. Any other type yields ErrUnsupportedType.
func UpdateAny(h hash.Hash, value any) error {
	if hashable, ok := value.(Hashable); ok {
		return hashable.UpdateHash(h)
	}

	switch typed := value.(type) {
	case struct{}:
		return nil
	case string:
		return writeBytes(h, 's', []byte(typed))
	case []byte:
		return writeBytes(h, 'b', typed)
	case bool:
		if typed {
			return writeUint(h, 't', 1)
		}

		return writeUint(h, 't', 0)
	case int:
		return writeUint(h, 'i', uint64(typed))
	case int64:
		return writeUint(h, 'i', uint64(typed))
	case uint64:
		return writeUint(h, 'u', typed)
	case float64:
		return writeUint(h, 'f', math.Float64bits(typed))
	}

	return updateReflect(h, value)
}

func updateReflect(h hash.Hash, value any) error {
	rv := reflect.ValueOf(value)

	//nolint:exhaustive // everything else is unsupported
	switch rv.Kind() {
	case reflect.String:
		return writeBytes(h, 's', []byte(rv.String()))
	case reflect.Bool:
		if rv.Bool() {
			return writeUint(h, 't', 1)
		}

		return writeUint(h, 't', 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return writeUint(h, 'i', uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return writeUint(h, 'u', rv.Uint())
	case reflect.Float32, reflect.Float64:
		return writeUint(h, 'f', math.Float64bits(rv.Float()))
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return writeBytes(h, 'b', rv.Bytes())
		}
	case reflect.Struct:
		if rv.NumField() == 0 {
			return nil
		}
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
}

func writeUint(h hash.Hash, tag byte, value uint64) error {
	var buf [9]byte

	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], value)

	_, err := h.Write(buf[:])

	return err
}

func writeBytes(h hash.Hash, tag byte, payload []byte) error {
	if err := writeUint(h, tag, uint64(len(payload))); err != nil {
		return err
	}

	_, err := h.Write(payload)

	return err
}
