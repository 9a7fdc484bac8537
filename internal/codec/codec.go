// Package codec handles encoding of store records. CBOR is used both to
// deep-clone rows crossing the store boundary and to decode rows into
// caller-defined structs.
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{}.EncMode()
	if err != nil {
		panic(err)
	}
	// Nested maps must come back as map[string]any, not
	// map[interface{}]interface{}, so cloned rows stay comparable to the
	// originals.
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func Unmarshal(data []byte, dst any) error {
	return decMode.Unmarshal(data, dst)
}

// Roundtrip copies src into dst through a CBOR encode/decode cycle.
func Roundtrip(src, dst any) error {
	data, err := encMode.Marshal(src)
	if err != nil {
		return err
	}
	return decMode.Unmarshal(data, dst)
}

// CloneRows deep-copies a table's rows. A failed clone returns an empty
// slice rather than aliasing live store state.
func CloneRows(rows []map[string]any) []map[string]any {
	if len(rows) == 0 {
		return []map[string]any{}
	}
	out := make([]map[string]any, 0, len(rows))
	if err := Roundtrip(rows, &out); err != nil {
		return []map[string]any{}
	}
	return out
}

// CloneRow deep-copies a single row.
func CloneRow(row map[string]any) map[string]any {
	if row == nil {
		return nil
	}
	out := make(map[string]any, len(row))
	if err := Roundtrip(row, &out); err != nil {
		return map[string]any{}
	}
	return out
}
