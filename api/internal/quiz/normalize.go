package quiz

import (
	"fmt"
	"strings"
)

// Normalize rewrites a decoded model payload into the canonical quiz schema.
// It only touches shapes it recognizes: the value must be a mapping with a
// "questions" array, and each entry is transformed independently. Anything
// else passes through untouched, since a partially usable structure is better
// than none. Fields the normalizer does not understand are never dropped.
func Normalize(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	qs, ok := m["questions"].([]any)
	if !ok {
		return v
	}
	for i, q := range qs {
		qs[i] = normalizeQuestion(q)
	}
	return m
}

func normalizeQuestion(v any) any {
	q, ok := v.(map[string]any)
	if !ok {
		return v
	}

	if t, ok := q["type"].(string); ok {
		q["type"] = string(NormalizeType(t))
	}

	// Models regularly emit True/False questions with only an "answer"
	// field; the frontend schema wants an options pair.
	if q["type"] == string(TypeTrueFalse) {
		if _, ok := q["options"]; !ok {
			isTrue := strings.EqualFold(fmt.Sprint(q["answer"]), "true")
			q["options"] = []any{
				map[string]any{"text": "True", "isCorrect": isTrue},
				map[string]any{"text": "False", "isCorrect": !isTrue},
			}
		}
	}

	// Legacy spelling: "correct" instead of "isCorrect".
	if opts, ok := q["options"].([]any); ok {
		for _, o := range opts {
			opt, ok := o.(map[string]any)
			if !ok {
				continue
			}
			c, hasLegacy := opt["correct"]
			_, hasCanonical := opt["isCorrect"]
			if hasLegacy && !hasCanonical {
				opt["isCorrect"] = coerceBool(c)
				delete(opt, "correct")
			}
		}
	}
	return q
}

func coerceBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(x, "true")
	case float64:
		return x != 0
	}
	return false
}
