package format

import "github.com/Station-Manager/errors"

// Generic helpers as top-level functions (methods cannot have type parameters yet)

// ReadAs reads a source object and asserts the result to *T. A nil result
// (absent input) yields a nil pointer and no error.
func ReadAs[T any](f *Format, source map[string]any) (*T, error) {
	const op errors.Op = "format.ReadAs"
	v, err := f.Read(source)
	if err != nil || v == nil {
		return nil, err
	}
	typed, ok := v.(*T)
	if !ok {
		return nil, errors.New(op).Errorf("format produced %T, want %T", v, (*T)(nil))
	}
	return typed, nil
}

// MustReadAs is ReadAs for configuration-time fixtures; it panics on error.
func MustReadAs[T any](f *Format, source map[string]any) *T {
	v, err := ReadAs[T](f, source)
	if err != nil {
		panic(err)
	}
	return v
}

// ReadSliceAs reads a slice of source objects element-wise. The first
// failing element aborts with its error.
func ReadSliceAs[T any](f *Format, sources []map[string]any) ([]*T, error) {
	const op errors.Op = "format.ReadSliceAs"
	result := make([]*T, 0, len(sources))
	for _, source := range sources {
		v, err := ReadAs[T](f, source)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		result = append(result, v)
	}
	return result, nil
}
