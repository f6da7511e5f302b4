// Package converters provides reusable transform steps for wiring formats
// to sqlboiler-style database models: nullable wrappers in the write
// direction, plain values in the read direction. Every function matches
// the format.StepFunc signature and plugs straight into Transform.
package converters

import (
	"time"

	"github.com/Station-Manager/errors"
)

// CheckString asserts src to a string.
func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("Given parameter not a string, got %T", src)
	}
	return srcVal, nil
}

// CheckBool asserts src to a bool.
func CheckBool(op errors.Op, src any) (bool, error) {
	srcVal, ok := src.(bool)
	if !ok {
		return false, errors.New(op).Errorf("Given parameter not a bool, got %T", src)
	}
	return srcVal, nil
}

// CheckTime asserts src to a time.Time.
func CheckTime(op errors.Op, src any) (time.Time, error) {
	srcVal, ok := src.(time.Time)
	if !ok {
		return time.Time{}, errors.New(op).Errorf("Given parameter not a time.Time, got %T", src)
	}
	return srcVal, nil
}
