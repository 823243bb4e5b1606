package util

import (
	"bytes"
	"encoding/json"
)

// IsEmptyJSON reports whether raw holds no usable data: nothing at all, null,
// an empty array or object, an empty string, false or zero.
func IsEmptyJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return true
	}

	switch v := value.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	}

	return false
}
