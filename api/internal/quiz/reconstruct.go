package quiz

import "encoding/json"

// Reconstruct turns raw model text into the canonical quiz shape. The stages
// are strictly layered: ExtractJSON trims surrounding noise, decoding is
// all-or-nothing, Normalize reshapes whatever decoded. On failure nothing
// partial is returned; the error is either ErrNoJSON or *InvalidJSONError and
// should reach the boundary layer unmasked.
func Reconstruct(raw string) (any, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, &InvalidJSONError{Err: err}
	}
	return Normalize(v), nil
}
