package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// ToJSONPayload packs a map payload into a model types.JSON column. A
// missing or empty payload becomes an empty column.
func ToJSONPayload(src any) (any, error) {
	const op errors.Op = "converters.ToJSONPayload"
	if src == nil {
		return boilertypes.JSON(nil), nil
	}
	payload, ok := src.(map[string]any)
	if !ok {
		return boilertypes.JSON(nil), errors.New(op).Errorf("Given parameter not a map, got %T", src)
	}
	if len(payload) == 0 {
		return boilertypes.JSON(nil), nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return boilertypes.JSON(nil), errors.New(op).Err(err)
	}
	return boilertypes.JSON(data), nil
}

// FromJSONPayload unpacks a types.JSON or null.JSON column back into a map
// payload. An empty or null column reads as undefined.
func FromJSONPayload(src any) (any, error) {
	const op errors.Op = "converters.FromJSONPayload"
	var raw []byte
	switch col := src.(type) {
	case nil:
		return nil, nil
	case boilertypes.JSON:
		raw = col
	case null.JSON:
		if !col.Valid {
			return nil, nil
		}
		raw = col.JSON
	case []byte:
		raw = col
	default:
		return nil, errors.New(op).Errorf("Given parameter not a JSON column, got %T", src)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return payload, nil
}
