package forecast

import (
	"encoding/json"
	"fmt"
)

// Payload is a decoded provider response object
type Payload map[string]interface{}

// ParsePayload decodes raw into a Payload; anything other than a JSON object is rejected
func ParsePayload(raw []byte) (Payload, error) {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("provider payload is not a JSON object")
	}
	return payload, nil
}

// Value walks nested objects by key
func (p Payload) Value(path ...string) (interface{}, bool) {
	var current interface{} = map[string]interface{}(p)
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Number returns the value at path when it is a JSON number
func (p Payload) Number(path ...string) (float64, bool) {
	v, ok := p.Value(path...)
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

// String returns the value at path when it is a JSON string
func (p Payload) String(path ...string) (string, bool) {
	v, ok := p.Value(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// PrimaryWeather returns the first entry of the "weather" array
func (p Payload) PrimaryWeather() (Payload, bool) {
	v, ok := p["weather"]
	if !ok {
		return nil, false
	}
	list, ok := v.([]interface{})
	if !ok || len(list) == 0 {
		return nil, false
	}
	first, ok := list[0].(map[string]interface{})
	if !ok {
		return nil, false
	}
	return Payload(first), true
}
