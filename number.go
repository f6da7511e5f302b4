package format

import (
	"math"

	"github.com/spf13/cast"
)

// NumberMapper is a Mapper refinement unlocked by Number. The numeric chain
// methods keep returning NumberMapper so refinements stay chainable; order
// matters, Min(5).Max(10) and Max(10).Min(5) differ in corner cases.
type NumberMapper struct {
	Mapper
}

// Abs takes the absolute value of a non-falsy number on read. Falsy values
// pass through unchanged.
func (m NumberMapper) Abs() NumberMapper {
	step := func(v any) (any, error) {
		if isFalsy(v) {
			return v, nil
		}
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, nil
		}
		return math.Abs(n), nil
	}
	return NumberMapper{m.Transform(step, nil)}
}

// Min clamps the read value from below. A falsy value becomes the bound
// itself, not the original value.
func (m NumberMapper) Min(bound float64) NumberMapper {
	step := func(v any) (any, error) {
		if isFalsy(v) {
			return bound, nil
		}
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return bound, nil
		}
		return math.Max(n, bound), nil
	}
	return NumberMapper{m.Transform(step, nil)}
}

// Max clamps the read value from above, symmetrically to Min.
func (m NumberMapper) Max(bound float64) NumberMapper {
	step := func(v any) (any, error) {
		if isFalsy(v) {
			return bound, nil
		}
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return bound, nil
		}
		return math.Min(n, bound), nil
	}
	return NumberMapper{m.Transform(step, nil)}
}
