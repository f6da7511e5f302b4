package format

import (
	"testing"

	"github.com/Station-Manager/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failingStep(any) (any, error) {
	const op errors.Op = "format_test.failingStep"
	return nil, errors.New(op).Msg("step blew up")
}

func TestFormat_Read_ContainsStepFailure(t *testing.T) {
	f := NewWithOptions(Book{},
		[]FieldMapper{Value("title"), Value("pages").Transform(failingStep, nil)},
		quietOpts()...,
	)

	var out any
	var err error
	assert.NotPanics(t, func() {
		out, err = f.Read(map[string]any{"title": "T", "pages": 1})
	})
	assert.Error(t, err)
	assert.Nil(t, out, "the partially populated instance is discarded")
}

func TestFormat_Write_ContainsStepFailure(t *testing.T) {
	f := NewWithOptions(Book{},
		[]FieldMapper{Value("title").Transform(nil, failingStep)},
		quietOpts()...,
	)

	out, err := f.Write(&Book{Title: "T"})
	assert.Error(t, err)
	assert.Nil(t, out)
}

func panickingStep(any) (any, error) {
	panic("step blew up")
}

func TestFormat_Read_ContainsStepPanic(t *testing.T) {
	f := NewWithOptions(Book{},
		[]FieldMapper{Value("title"), Value("pages").Transform(panickingStep, nil)},
		quietOpts()...,
	)

	var out any
	var err error
	assert.NotPanics(t, func() {
		out, err = f.Read(map[string]any{"title": "T", "pages": 1})
	})
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestFormat_Write_ContainsStepPanic(t *testing.T) {
	f := NewWithOptions(Book{},
		[]FieldMapper{Value("title").Transform(nil, panickingStep)},
		quietOpts()...,
	)

	var out map[string]any
	var err error
	assert.NotPanics(t, func() {
		out, err = f.Write(&Book{Title: "T"})
	})
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestFormat_Readonly_SilentByDefault(t *testing.T) {
	f := NewWithOptions(Book{}, []FieldMapper{Value("title")}, quietOpts()...).Readonly()

	var out map[string]any
	var err error
	assert.NotPanics(t, func() { out, err = f.Write(&Book{Title: "T"}) })
	assert.Error(t, err)
	assert.Nil(t, out)

	// The read direction is untouched.
	book, err := ReadAs[Book](f, map[string]any{"title": "T"})
	require.NoError(t, err)
	assert.Equal(t, "T", book.Title)
}

func TestFormat_Readonly_StrictPanics(t *testing.T) {
	f := NewWithOptions(Book{}, []FieldMapper{Value("title")}, quietOpts()...).Readonly(false)

	assert.Panics(t, func() { _, _ = f.Write(&Book{Title: "T"}) })
}

func TestFormat_Writeonly_SilentByDefault(t *testing.T) {
	f := NewWithOptions(Book{}, []FieldMapper{Value("title")}, quietOpts()...).Writeonly()

	out, err := f.Read(map[string]any{"title": "T"})
	assert.Error(t, err)
	assert.Nil(t, out)

	written, err := f.Write(&Book{Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "T", written["title"])
}

func TestFormat_Writeonly_StrictPanics(t *testing.T) {
	f := NewWithOptions(Book{}, []FieldMapper{Value("title")}, quietOpts()...).Writeonly(false)

	assert.Panics(t, func() { _, _ = f.Read(map[string]any{"title": "T"}) })
}

func TestFormat_DirectionRestriction_DerivesNewFormat(t *testing.T) {
	base := NewWithOptions(Book{}, []FieldMapper{Value("title")}, quietOpts()...)
	_ = base.Readonly()

	// The original format still writes.
	out, err := base.Write(&Book{Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "T", out["title"])
}
