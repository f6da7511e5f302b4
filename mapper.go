package format

import (
	"math"
	"reflect"

	"github.com/Station-Manager/errors"
	"github.com/spf13/cast"
)

// StepFunc is a single value-level transform step. A nil result means the
// value is undefined: under the default drop-undefined policy the field is
// omitted from the output entirely. An error aborts the whole Read/Write
// call it runs in.
type StepFunc func(value any) (any, error)

// nullMarker is the explicit-null sentinel. Unlike an undefined (nil)
// result, Null survives the drop-undefined policy: Write emits the key with
// a nil value and Read assigns the field's zero value.
type nullMarker struct{}

// Null marks an explicit null result from a write step.
var Null nullMarker

// FieldMapper is implemented by Mapper and every refinement of it, so any
// chain stage can be handed to New, Extend or Builder.Add directly.
type FieldMapper interface {
	fieldMapper() Mapper
}

// Mapper describes one bidirectional field conversion: a source field name,
// a target field name and a pair of value-level step chains. Mappers are
// immutable; every chain method returns a new Mapper composing the previous
// steps with one more, never mutating the receiver.
type Mapper struct {
	sourceName string
	targetName string
	read       StepFunc
	write      StepFunc

	// rawRead, when set, replaces field extraction: it receives the whole
	// source object instead of the named field. Entry-stage only.
	rawRead func(source map[string]any) (any, error)
}

func (m Mapper) fieldMapper() Mapper { return m }

// SourceName reports the field name used on the source (JSON-shaped) side.
func (m Mapper) SourceName() string { return m.sourceName }

// TargetName reports the field name used on the entity side.
func (m Mapper) TargetName() string { return m.targetName }

// To renames the target field. The write direction reads the value back
// from the renamed field.
func (m Mapper) To(name string) Mapper {
	m.targetName = name
	return m
}

// Readonly returns a Mapper whose write direction always yields undefined;
// the field is populated only when converting source to entity.
func (m Mapper) Readonly() Mapper {
	m.write = discardStep
	return m
}

// Writeonly returns a Mapper whose read direction always yields undefined;
// the field is populated only when converting entity to source.
func (m Mapper) Writeonly() Mapper {
	m.read = discardStep
	m.rawRead = nil
	return m
}

// Transform composes readStep after the existing read chain and writeStep
// after the existing write chain. Either step may be nil (identity). Every
// other chain method is defined in terms of Transform.
func (m Mapper) Transform(readStep, writeStep StepFunc) Mapper {
	m.read = composeSteps(m.read, readStep)
	m.write = composeSteps(m.write, writeStep)
	return m
}

// Boolean coerces the read value to a bool: true iff the value is boolean
// true, the string "true", the string "1" or the number 1. Everything else,
// including a missing value, reads as false. Write direction is identity.
func (m Mapper) Boolean() Mapper {
	return m.Transform(booleanStep, nil)
}

// Number forces numeric coercion on read and unlocks the numeric refinement
// chain (Abs, Min, Max). Values that cannot be coerced read as undefined.
// Write direction is identity.
func (m Mapper) Number() NumberMapper {
	return NumberMapper{m.Transform(numberStep, nil)}
}

// Date parses the read value with the given moment-style pattern, defaulting
// to YYYY-MM-DD[T]HH:mm:ss.SSSZ. Unparseable values read as undefined.
// Write direction is identity; the value is not re-formatted on the way out.
func (m Mapper) Date(pattern ...string) Mapper {
	p := DefaultDatePattern
	if len(pattern) > 0 && pattern[0] != "" {
		p = pattern[0]
	}
	return m.Transform(dateStep(p), nil)
}

// ArrayOf delegates each element of an array value to the nested Format:
// read maps elements through nested.Read, write through nested.Write.
// Non-array values yield undefined in both directions. A nil format is a
// configuration error and panics.
func (m Mapper) ArrayOf(nested *Format) Mapper {
	const op errors.Op = "format.ArrayOf"
	if nested == nil {
		panic(errors.New(op).Msg("nested format must not be nil"))
	}
	read := func(v any) (any, error) {
		items, ok := sliceElements(v)
		if !ok {
			return nil, nil
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			obj, ok := sourceObject(item)
			if !ok {
				out = append(out, nil)
				continue
			}
			entity, err := nested.Read(obj)
			if err != nil {
				return nil, err
			}
			out = append(out, entity)
		}
		return out, nil
	}
	write := func(v any) (any, error) {
		items, ok := sliceElements(v)
		if !ok {
			return nil, nil
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			obj, err := nested.Write(item)
			if err != nil {
				return nil, err
			}
			out = append(out, obj)
		}
		return out, nil
	}
	return m.Transform(read, write)
}

// DefaultsTo substitutes fallback for any falsy value, in both directions.
// Falsy covers undefined, explicit null, false, zero numbers and the empty
// string, not just missing values.
func (m Mapper) DefaultsTo(fallback any) Mapper {
	step := func(v any) (any, error) {
		if isFalsy(v) {
			return fallback, nil
		}
		return v, nil
	}
	return m.Transform(step, step)
}

// IdResolver resolves the read value against a lookup collection: the first
// element whose idField (default "id") equals the value wins; no match reads
// as undefined. Write yields the element's idField value, or explicit null
// for a falsy target. The collection is not owned and must not be mutated
// concurrently with lookups.
func (m Mapper) IdResolver(collection any, idField ...string) Mapper {
	field := "id"
	if len(idField) > 0 && idField[0] != "" {
		field = idField[0]
	}
	read := func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		rv := reflect.ValueOf(collection)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return nil, nil
		}
		for i := 0; i < rv.Len(); i++ {
			item := rv.Index(i).Interface()
			if reflect.DeepEqual(fieldValueByName(item, field), v) {
				return item, nil
			}
		}
		return nil, nil
	}
	write := func(v any) (any, error) {
		if isFalsy(v) {
			return Null, nil
		}
		return fieldValueByName(v, field), nil
	}
	return m.Transform(read, write)
}

// --- step plumbing ---

func composeSteps(prev, next StepFunc) StepFunc {
	if prev == nil {
		return next
	}
	if next == nil {
		return prev
	}
	return func(v any) (any, error) {
		out, err := prev(v)
		if err != nil {
			return nil, err
		}
		return next(out)
	}
}

func discardStep(any) (any, error) { return nil, nil }

func (m *Mapper) applyRead(v any) (any, error) {
	if m.read == nil {
		return v, nil
	}
	return m.read(v)
}

func (m *Mapper) applyWrite(v any) (any, error) {
	if m.write == nil {
		return v, nil
	}
	return m.write(v)
}

// readFrom runs the full read direction for one mapper against the source
// object: extraction (or the raw whole-object read) followed by the chain.
func (m *Mapper) readFrom(source map[string]any) (any, error) {
	if m.rawRead != nil {
		v, err := m.rawRead(source)
		if err != nil {
			return nil, err
		}
		return m.applyRead(v)
	}
	return m.applyRead(source[m.sourceName])
}

func booleanStep(v any) (any, error) {
	switch tv := v.(type) {
	case bool:
		return tv, nil
	case string:
		return tv == "true" || tv == "1", nil
	default:
		if n, err := cast.ToFloat64E(v); err == nil {
			return n == 1, nil
		}
		return false, nil
	}
}

func numberStep(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, nil
	}
	return n, nil
}

// isFalsy mirrors loose falsiness: undefined, explicit null, false, zero or
// NaN numbers and the empty string all count.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(nullMarker); ok {
		return true
	}
	switch tv := v.(type) {
	case bool:
		return !tv
	case string:
		return tv == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// sliceElements normalizes a slice or array value into []any.
func sliceElements(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// sourceObject asserts a value into the map shape Read expects.
func sourceObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}
