package event

import "encoding/json"

// DecodePayload decodes an event payload into T via type assertion then JSON
// fallback, so handlers accept both in-process structs and decoded maps.
func DecodePayload[T any](input any) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
