package format

import (
	"reflect"

	"github.com/Station-Manager/errors"
	"github.com/hashicorp/go-hclog"
)

// Options controls Format behavior. See the WithX constructors.
type Options struct {
	DropUndefined bool         // when true (default), undefined results are omitted instead of zeroed
	Logger        hclog.Logger // receives contained failures and direction violations
}

type Option func(*Options)

// WithDropUndefined controls whether undefined mapper results are omitted
// from the output (true, the default) or assigned as zero values (false).
func WithDropUndefined(v bool) Option { return func(o *Options) { o.DropUndefined = v } }

// WithKeepUndefined is shorthand for WithDropUndefined(false).
func WithKeepUndefined() Option { return func(o *Options) { o.DropUndefined = false } }

// WithLogger sets the logger used for contained failures.
func WithLogger(l hclog.Logger) Option { return func(o *Options) { o.Logger = l } }

// Format binds an ordered mapper list to a target entity type and
// orchestrates whole-object conversion in both directions. A Format is
// built once at configuration time and is immutable and safe for
// concurrent use thereafter; Extend, Readonly and Writeonly derive new
// Formats instead of mutating the receiver.
//
// Mapper order is significant: when two mappers share a target (or source)
// name, the later one in the list runs later and its assignment wins.
type Format struct {
	entityType    reflect.Type
	mappers       []Mapper
	dropUndefined bool
	logger        hclog.Logger

	readDisabled  bool
	writeDisabled bool
	strict        bool
}

// New builds a Format for the given entity type (a struct value or pointer
// used as a type witness) from the mapper list. An entity that is not a
// struct type is a configuration error and panics.
func New(entity any, mappers ...FieldMapper) *Format {
	return NewWithOptions(entity, mappers)
}

// NewWithOptions is New with explicit options.
func NewWithOptions(entity any, mappers []FieldMapper, opts ...Option) *Format {
	t := entityTypeOf(entity)
	o := Options{DropUndefined: true}
	for _, f := range opts {
		f(&o)
	}
	if o.Logger == nil {
		o.Logger = hclog.Default().Named("format")
	}
	ms := make([]Mapper, 0, len(mappers))
	for _, m := range mappers {
		ms = append(ms, m.fieldMapper())
	}
	return &Format{entityType: t, mappers: ms, dropUndefined: o.DropUndefined, logger: o.Logger}
}

func entityTypeOf(entity any) reflect.Type {
	const op errors.Op = "format.entityTypeOf"
	if entity == nil {
		panic(errors.New(op).Msg("entity type must not be nil"))
	}
	t := reflect.TypeOf(entity)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(errors.New(op).Errorf("entity type must be a struct, got %s", t.Kind()))
	}
	return t
}

// EntityType reports the entity type the Format produces.
func (f *Format) EntityType() reflect.Type { return f.entityType }

// Read converts a source object into a fresh entity instance (returned as a
// pointer to the entity type). A nil source reads as nil with no error. Any
// step failure aborts the call: it is logged, the partial instance is
// discarded and Read returns nil together with the error, never a panic.
func (f *Format) Read(source map[string]any) (any, error) {
	const op errors.Op = "format.Read"
	if f.readDisabled {
		f.logger.Error("read on write-only format", "entity", f.entityType.Name())
		err := errors.New(op).Msg("format is write-only")
		if f.strict {
			panic(err)
		}
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	out := reflect.New(f.entityType)
	meta := metadataFor(f.entityType)
	for i := range f.mappers {
		m := &f.mappers[i]
		v, err := runStep(op, func() (any, error) { return m.readFrom(source) })
		if err != nil {
			f.logger.Error("read failed", "entity", f.entityType.Name(), "field", m.sourceName, "error", err)
			return nil, errors.New(op).Err(err)
		}
		if v == nil && f.dropUndefined {
			continue
		}
		assignField(out.Elem(), meta, m.targetName, v)
	}
	return out.Interface(), nil
}

// Write converts an entity (struct, pointer to struct, or map) back into a
// plain source object. A nil model writes as nil with no error. Step
// failures behave as in Read: logged, nil result, error returned.
func (f *Format) Write(model any) (map[string]any, error) {
	const op errors.Op = "format.Write"
	if f.writeDisabled {
		f.logger.Error("write on read-only format", "entity", f.entityType.Name())
		err := errors.New(op).Msg("format is read-only")
		if f.strict {
			panic(err)
		}
		return nil, err
	}
	if model == nil {
		return nil, nil
	}
	if rv := reflect.ValueOf(model); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, nil
	}
	out := make(map[string]any, len(f.mappers))
	for i := range f.mappers {
		m := &f.mappers[i]
		v, err := runStep(op, func() (any, error) { return m.applyWrite(fieldValueByName(model, m.targetName)) })
		if err != nil {
			f.logger.Error("write failed", "entity", f.entityType.Name(), "field", m.sourceName, "error", err)
			return nil, errors.New(op).Err(err)
		}
		if _, ok := v.(nullMarker); ok {
			out[m.sourceName] = nil
			continue
		}
		if v == nil && f.dropUndefined {
			continue
		}
		out[m.sourceName] = v
	}
	return out, nil
}

// Extend derives a Format for a subtype by prepending extra mappers to the
// base mapper list. The subtype must be a constructible struct type or
// Extend panics. Because later-in-list wins, a base mapper sharing a name
// with an extension mapper takes precedence over the extension.
func (f *Format) Extend(subtype any, extra ...FieldMapper) *Format {
	t := entityTypeOf(subtype)
	ms := make([]Mapper, 0, len(extra)+len(f.mappers))
	for _, m := range extra {
		ms = append(ms, m.fieldMapper())
	}
	ms = append(ms, f.mappers...)
	return &Format{
		entityType:    t,
		mappers:       ms,
		dropUndefined: f.dropUndefined,
		logger:        f.logger,
	}
}

// Readonly derives a Format whose write direction is disabled: Write logs
// the violation and produces no output. With silent explicitly false the
// violation panics instead.
func (f *Format) Readonly(silent ...bool) *Format {
	nf := f.clone()
	nf.writeDisabled = true
	nf.strict = len(silent) > 0 && !silent[0]
	return nf
}

// Writeonly derives a Format whose read direction is disabled, symmetric to
// Readonly.
func (f *Format) Writeonly(silent ...bool) *Format {
	nf := f.clone()
	nf.readDisabled = true
	nf.strict = len(silent) > 0 && !silent[0]
	return nf
}

// runStep converts a panic inside a transform step into an ordinary step
// error, so a misbehaving step cannot crash the caller.
func runStep(op errors.Op, fn func() (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			err = errors.New(op).Errorf("panic in transform step: %v", r)
		}
	}()
	return fn()
}

func (f *Format) clone() *Format {
	nf := *f
	nf.mappers = make([]Mapper, len(f.mappers))
	copy(nf.mappers, f.mappers)
	return &nf
}
