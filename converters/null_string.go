package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
)

// ToNullString converts a string into a model null.String. An empty or
// missing value becomes the null variant.
func ToNullString(src any) (any, error) {
	const op errors.Op = "converters.ToNullString"
	if src == nil {
		return null.String{}, nil
	}
	srcVal, err := CheckString(op, src)
	if err != nil {
		return null.String{}, errors.New(op).Err(err)
	}
	if srcVal == "" {
		return null.String{}, nil
	}
	return null.StringFrom(srcVal), nil
}

// FromNullString converts a model null.String back to a plain string; the
// null variant reads as the empty string.
func FromNullString(src any) (any, error) {
	const op errors.Op = "converters.FromNullString"
	if nullStr, ok := src.(null.String); ok {
		if !nullStr.Valid {
			return "", nil
		}
		return nullStr.String, nil
	}
	// Fallback to a plain string
	srcVal, err := CheckString(op, src)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return srcVal, nil
}
