package backend

import (
	"bytes"
	"encoding/json"
)

// listWrapperKeys are the object members that may hold a collection.
var listWrapperKeys = []string{"data", "imports", "items"}

// decodeList turns a collection response into a slice. Accepted shapes:
//   - a JSON array
//   - an object holding the array under one of listWrapperKeys
//   - a single object with an "id", read as a one element list
//
// Anything else yields an empty list and ok=false so the caller can log it.
func decodeList[T any](body []byte) (items []T, ok bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []T{}, false
	}

	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &items); err != nil {
			return []T{}, false
		}
		if items == nil {
			items = []T{}
		}
		return items, true
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return []T{}, false
		}
		for _, key := range listWrapperKeys {
			raw, found := obj[key]
			if !found {
				continue
			}
			raw = bytes.TrimSpace(raw)
			if len(raw) == 0 || raw[0] != '[' {
				continue
			}
			return decodeList[T](raw)
		}
		if id, found := obj["id"]; found && len(bytes.TrimSpace(id)) > 0 && string(id) != "null" {
			var single T
			if err := json.Unmarshal(body, &single); err != nil {
				return []T{}, false
			}
			return []T{single}, true
		}
	}
	return []T{}, false
}
