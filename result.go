package demodb

import (
	"reflect"

	"github.com/vendaspro/demodb/internal/codec"
	"github.com/vendaspro/demodb/pkg/constants"
	"github.com/vendaspro/demodb/pkg/dataset"
)

// Result is the response envelope every query resolves to, matching the
// hosted client's {data, error, count} shape. Error is populated only
// when execution itself failed; empty results carry a nil Error.
type Result struct {
	Data  []dataset.Record
	Count int
	Error error
}

// First returns the first row, or nil when the result is empty.
func (r *Result) First() dataset.Record {
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0]
}

// Into decodes the result into dest, which must be a non-nil pointer.
// A pointer to a slice receives every row; any other pointer receives
// the first row. An empty result leaves dest untouched and returns nil,
// keeping the no-rows-is-not-an-error convention.
func (r *Result) Into(dest any) error {
	if r.Error != nil {
		return r.Error
	}
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return constants.ErrInvalidDestination
	}
	if rv.Elem().Kind() == reflect.Slice {
		return codec.Roundtrip(r.Data, dest)
	}
	first := r.First()
	if first == nil {
		return nil
	}
	return codec.Roundtrip(first, dest)
}
