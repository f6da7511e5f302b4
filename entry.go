package format

import (
	"github.com/Station-Manager/errors"
)

// ValueMapper is the entry point of a mapper chain: identity extraction of
// the named field from the source object and identity assignment into the
// same-named field on the entity, before any refinement.
type ValueMapper struct {
	Mapper
}

// NodeMapper is a ValueMapper for object-valued fields; it adds Is for
// delegating the named sub-object to a nested Format.
type NodeMapper struct {
	ValueMapper
}

// Value creates an entry mapper for the named field.
func Value(name string) ValueMapper {
	return ValueMapper{Mapper{sourceName: name, targetName: name}}
}

// Node creates an entry mapper for an object-valued field, suitable for Is.
func Node(name string) NodeMapper {
	return NodeMapper{ValueMapper{Mapper{sourceName: name, targetName: name}}}
}

// To renames the target field from this point forward.
func (m ValueMapper) To(name string) ValueMapper {
	m.Mapper = m.Mapper.To(name)
	return m
}

// To renames the target field and keeps the node chain, so a renamed node
// can still delegate through Is.
func (m NodeMapper) To(name string) NodeMapper {
	m.ValueMapper = m.ValueMapper.To(name)
	return m
}

// RawTransform installs a whole-object read step: read receives the entire
// source object rather than the named field and may derive its value from
// several fields. write is the value-level inverse, or nil when the field
// is read-only by construction. Only meaningful at the entry stage.
func (m ValueMapper) RawTransform(read func(source map[string]any) (any, error), write StepFunc) ValueMapper {
	if read != nil {
		m.rawRead = read
	}
	m.write = composeSteps(m.write, write)
	return m
}

// Is delegates the named sub-object to the nested Format: read through
// nested.Read, write through nested.Write. A nil format is a configuration
// error and panics immediately.
func (m NodeMapper) Is(nested *Format) Mapper {
	const op errors.Op = "format.Is"
	if nested == nil {
		panic(errors.New(op).Msg("nested format must not be nil"))
	}
	read := func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		obj, ok := sourceObject(v)
		if !ok {
			return nil, nil
		}
		return nested.Read(obj)
	}
	write := func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		out, err := nested.Write(v)
		if err != nil {
			return nil, err
		}
		if out == nil {
			return nil, nil
		}
		return out, nil
	}
	return m.Transform(read, write)
}
