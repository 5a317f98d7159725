package validators

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotObject means the request body is not a JSON object
var ErrNotObject = errors.New("request body must be a JSON object")

// DecodeObject parses a request body that must be a JSON object.
// An empty body is treated as an empty object.
func DecodeObject(raw []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]interface{}{}, nil
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, ErrNotObject
	}
	if body == nil {
		// the literal null
		return nil, ErrNotObject
	}
	return body, nil
}

// MissingFields returns the fields of body that are falsy.
//
// A value counts as missing when it is absent, null, "", false or numeric zero.
// This mirrors the truthiness checks the API has always applied, so a
// legitimate zero (a rating of 0) is rejected as well.
func MissingFields(body map[string]interface{}, fields []string) []string {
	var missing []string
	for _, field := range fields {
		if isFalsy(body[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isFalsy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	case json.Number:
		f, err := value.Float64()
		return err == nil && f == 0
	default:
		// arrays and objects are truthy
		return false
	}
}
