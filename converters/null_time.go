package converters

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// ToNullTime converts a time.Time into a model null.Time. A missing or
// zero time becomes the null variant.
func ToNullTime(src any) (any, error) {
	const op errors.Op = "converters.ToNullTime"
	if src == nil {
		return null.Time{}, nil
	}
	srcVal, err := CheckTime(op, src)
	if err != nil {
		return null.Time{}, errors.New(op).Err(err)
	}
	if srcVal.IsZero() {
		return null.Time{}, nil
	}
	return null.TimeFrom(srcVal), nil
}

// FromNullTime converts a model null.Time back to a plain time.Time; the
// null variant reads as the zero time.
func FromNullTime(src any) (any, error) {
	const op errors.Op = "converters.FromNullTime"
	if nullTime, ok := src.(null.Time); ok {
		if !nullTime.Valid {
			return time.Time{}, nil
		}
		return nullTime.Time, nil
	}
	if srcVal, ok := src.(time.Time); ok {
		return srcVal, nil
	}
	return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time or null.Time, got %T", src)
}
