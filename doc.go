// Package format provides declarative bidirectional mapping between untyped
// JSON-shaped objects and typed entity structs.
//
// A Format pairs an entity type with an ordered list of Mappers. Each
// Mapper describes one field-level conversion and is refined through an
// immutable chain:
//
//	bookFormat := format.New(Book{},
//		format.Value("title"),
//		format.Value("pages").Number().Min(1),
//		format.Value("released").Date(),
//		format.Node("author").Is(authorFormat),
//	)
//
//	book, err := format.ReadAs[Book](bookFormat, source)
//	out, err := bookFormat.Write(book)
//
// # Directions
//
// Read converts a source object into a fresh entity instance; Write
// converts an entity back into a plain map keyed by the source field names.
// Read(nil) and Write(nil) deterministically return nil with no error.
//
// # Undefined values
//
// A nil step result means "undefined". Under the default drop-undefined
// policy the field is omitted from the output entirely; WithKeepUndefined
// assigns zero values instead. The Null sentinel is the explicit-null
// escape used where output must carry the key with a null value.
//
// # Ordering
//
// Mapper order is significant: when two mappers share a field name the
// later one in the list wins, in both directions. Extend prepends subtype
// mappers to the base list, so base mappers keep precedence on collision.
//
// # Errors
//
// Configuration mistakes (non-struct entity types, nil nested formats)
// panic at construction time. Data-level failures never escape as panics:
// they are logged through the Format's hclog.Logger and collapse the call
// to a nil result plus the error.
//
// # Thread safety
//
// Formats and Mappers are immutable after construction and safe for
// concurrent use; every Read/Write works only on its own input and freshly
// allocated output. Lookup collections passed to IdResolver must not be
// mutated concurrently with lookups.
package format
