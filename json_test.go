package format

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_ReadJSON(t *testing.T) {
	f := New(Book{}, Value("title"), Value("pages"))

	v, err := f.ReadJSON([]byte(`{"title":"Decoded","pages":12}`))
	require.NoError(t, err)

	book, ok := v.(*Book)
	require.True(t, ok)
	assert.Equal(t, "Decoded", book.Title)
	assert.Equal(t, 12, book.Pages)
}

func TestFormat_ReadJSON_Empty(t *testing.T) {
	f := New(Book{}, Value("title"))

	v, err := f.ReadJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFormat_ReadJSON_Malformed(t *testing.T) {
	f := New(Book{}, Value("title"))

	v, err := f.ReadJSON([]byte(`{"title":`))
	assert.Error(t, err)
	assert.Nil(t, v)
}

func TestFormat_WriteJSON(t *testing.T) {
	f := New(Book{}, Value("title"), Value("pages"))

	data, err := f.WriteJSON(&Book{Title: "Encoded", Pages: 3})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Encoded", out["title"])
	assert.Equal(t, float64(3), out["pages"])
}

func TestFormat_WriteJSON_NilModel(t *testing.T) {
	f := New(Book{}, Value("title"))

	data, err := f.WriteJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, data)
}
