package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process events already carry T
// (or *T); replayed dead-letter entries carry a JSON map and take the
// marshal round trip.
func DecodePayload[T any](input any) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
