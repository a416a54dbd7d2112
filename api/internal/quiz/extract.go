package quiz

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON means the raw model text contains no JSON object or array at all.
var ErrNoJSON = errors.New("no JSON object or array found in model output")

// InvalidJSONError means the isolated payload looked like JSON but did not
// deserialize. It carries the decoder diagnostic.
type InvalidJSONError struct {
	Err error
}

func (e *InvalidJSONError) Error() string {
	return "model output is not valid JSON: " + e.Err.Error()
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON isolates the JSON payload inside raw model text. Models wrap
// valid JSON in markdown fences or surround it with commentary; the payload
// is taken from the first fenced block when one exists, then trimmed to the
// first opening bracket and the last closing bracket. This is deliberately a
// shallow boundary heuristic, not a brace balancer: interior corruption is
// left for the JSON decoder to report, and a stray } or ] in commentary after
// the payload extends the slice past the true end.
func ExtractJSON(raw string) (string, error) {
	working := raw
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		working = m[1]
	}

	var start int
	brace := strings.IndexByte(working, '{')
	bracket := strings.IndexByte(working, '[')
	switch {
	case brace >= 0 && (bracket < 0 || brace < bracket):
		start = brace
	case bracket >= 0:
		start = bracket
	default:
		return "", ErrNoJSON
	}

	end := strings.LastIndexByte(working, '}')
	if i := strings.LastIndexByte(working, ']'); i > end {
		end = i
	}
	if end < start {
		// A closing bracket exists only before the opening one, so no
		// complete value can be sliced out.
		return "", ErrNoJSON
	}
	return working[start : end+1], nil
}
