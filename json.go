package format

import (
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// ReadJSON decodes a JSON document into a source object and reads it.
// Empty input reads as nil, like a nil source.
func (f *Format) ReadJSON(data []byte) (any, error) {
	const op errors.Op = "format.ReadJSON"
	if len(data) == 0 {
		return nil, nil
	}
	var source map[string]any
	if err := json.Unmarshal(data, &source); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return f.Read(source)
}

// WriteJSON writes a model and encodes the resulting source object as JSON.
// A nil model yields nil output.
func (f *Format) WriteJSON(model any) ([]byte, error) {
	const op errors.Op = "format.WriteJSON"
	out, err := f.Write(model)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return data, nil
}
