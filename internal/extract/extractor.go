// Package extract pulls JSON payloads out of model replies that may wrap
// them in markdown code fences.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	fence     = "```"
	jsonFence = "```json"
)

// ErrUnterminatedFence is returned when an opening fence has no closing fence.
var ErrUnterminatedFence = errors.New("code fence opened but never closed")

// ExtractJSON returns the JSON text contained in raw. Only the first fence
// pair is considered: a json-tagged fence wins over a generic one, and with
// no fence at all the whole trimmed reply is returned.
func ExtractJSON(raw string) (string, error) {
	if i := strings.Index(raw, jsonFence); i >= 0 {
		return between(raw[i+len(jsonFence):])
	}
	if i := strings.Index(raw, fence); i >= 0 {
		return between(raw[i+len(fence):])
	}
	return strings.TrimSpace(raw), nil
}

func between(rest string) (string, error) {
	end := strings.Index(rest, fence)
	if end < 0 {
		return "", ErrUnterminatedFence
	}
	return strings.TrimSpace(rest[:end]), nil
}

// ShapeError reports a syntactically valid payload that does not fit the
// decode target. The target still holds every field that could be decoded.
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("JSON payload does not match expected shape: %v", e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// Decode extracts the JSON payload from raw and unmarshals it into v.
// Only a missing or malformed payload is a hard failure; type mismatches
// are reported as *ShapeError after decoding as much as possible.
func Decode(raw string, v any) error {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	var doc json.RawMessage
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	if err := json.Unmarshal(doc, v); err != nil {
		return &ShapeError{Err: err}
	}
	return nil
}
