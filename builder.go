package format

// Builder provides a fluent API to assemble a Format from mappers and
// options when the list is built up across several call sites.
type Builder struct {
	entity  any
	mappers []FieldMapper
	opts    []Option
}

// NewBuilder creates a builder bound to the given entity type.
func NewBuilder(entity any) *Builder {
	return &Builder{entity: entity}
}

// Add appends mappers to the list, preserving order.
func (b *Builder) Add(mappers ...FieldMapper) *Builder {
	b.mappers = append(b.mappers, mappers...)
	return b
}

// WithOptions appends Format options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build constructs the Format. The usual configuration-time rules apply:
// an invalid entity type panics.
func (b *Builder) Build() *Format {
	return NewWithOptions(b.entity, b.mappers, b.opts...)
}
