package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// ToNullBool converts a bool into a model null.Bool. A missing value
// becomes the null variant.
func ToNullBool(src any) (any, error) {
	const op errors.Op = "converters.ToNullBool"
	if src == nil {
		return null.Bool{}, nil
	}
	srcVal, err := CheckBool(op, src)
	if err != nil {
		return null.Bool{}, errors.New(op).Err(err)
	}
	return null.BoolFrom(srcVal), nil
}

// FromNullBool converts a model null.Bool back to a plain bool; the null
// variant reads as false.
func FromNullBool(src any) (any, error) {
	const op errors.Op = "converters.FromNullBool"
	if nullBool, ok := src.(null.Bool); ok {
		if !nullBool.Valid {
			return false, nil
		}
		return nullBool.Bool, nil
	}
	if srcVal, ok := src.(bool); ok {
		return srcVal, nil
	}
	return false, errors.New(op).Errorf("Given parameter not a bool or null.Bool, got %T", src)
}
