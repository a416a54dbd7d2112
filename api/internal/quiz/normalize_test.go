package quiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeType(t *testing.T) {
	cases := map[string]QuestionType{
		"mcq":               TypeMCQ,
		"Multiple Choice":   TypeMCQ,
		"true_false":        TypeTrueFalse,
		"FALSE":             TypeTrueFalse,
		"TrueFalse":         TypeTrueFalse,
		"fill_in_the_blank": TypeFillInBlank,
		"FillUp":            TypeFillInBlank,
		"short answer":      TypeShortAnswer,
		"Subjective":        TypeShortAnswer,
		"Matching":          QuestionType("Matching"), // open vocabulary
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeType(in), "label %q", in)
	}
}

// priority order: "multiple true/false" hits the MCQ row first
func TestNormalizeTypeFirstMatchWins(t *testing.T) {
	assert.Equal(t, TypeMCQ, NormalizeType("multiple true/false"))
}

func questionsOf(t *testing.T, v any) []any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok)
	qs, ok := m["questions"].([]any)
	require.True(t, ok)
	return qs
}

func TestNormalizeSynthesizesTrueFalseOptions(t *testing.T) {
	v := map[string]any{"questions": []any{
		map[string]any{"id": "q1", "type": "true_false", "question": "?", "answer": "True"},
	}}
	qs := questionsOf(t, Normalize(v))
	q := qs[0].(map[string]any)

	assert.Equal(t, "True/False", q["type"])
	require.Equal(t, []any{
		map[string]any{"text": "True", "isCorrect": true},
		map[string]any{"text": "False", "isCorrect": false},
	}, q["options"])
}

func TestNormalizeTrueFalseAnswerVariants(t *testing.T) {
	for answer, wantTrue := range map[string]bool{
		"true":  true,
		"TRUE":  true,
		"false": false,
		"maybe": false, // anything but "true" counts as false
	} {
		v := map[string]any{"questions": []any{
			map[string]any{"type": "True/False", "answer": answer},
		}}
		q := questionsOf(t, Normalize(v))[0].(map[string]any)
		opts := q["options"].([]any)
		assert.Equal(t, wantTrue, opts[0].(map[string]any)["isCorrect"], "answer %q", answer)
		assert.Equal(t, !wantTrue, opts[1].(map[string]any)["isCorrect"], "answer %q", answer)
	}
}

func TestNormalizeTrueFalseMissingAnswer(t *testing.T) {
	v := map[string]any{"questions": []any{
		map[string]any{"type": "T/F is true or false"},
	}}
	q := questionsOf(t, Normalize(v))[0].(map[string]any)
	opts := q["options"].([]any)
	assert.Equal(t, false, opts[0].(map[string]any)["isCorrect"])
	assert.Equal(t, true, opts[1].(map[string]any)["isCorrect"])
}

func TestNormalizeTrueFalseKeepsExistingOptions(t *testing.T) {
	opts := []any{
		map[string]any{"text": "True", "isCorrect": false},
		map[string]any{"text": "False", "isCorrect": true},
	}
	v := map[string]any{"questions": []any{
		map[string]any{"type": "true/false", "answer": "true", "options": opts},
	}}
	q := questionsOf(t, Normalize(v))[0].(map[string]any)
	assert.Equal(t, opts, q["options"])
}

func TestNormalizeRenamesCorrect(t *testing.T) {
	v := map[string]any{"questions": []any{
		map[string]any{"type": "MCQ", "options": []any{
			map[string]any{"text": "x", "correct": true},
			map[string]any{"text": "y", "correct": false},
		}},
	}}
	q := questionsOf(t, Normalize(v))[0].(map[string]any)
	opts := q["options"].([]any)

	first := opts[0].(map[string]any)
	assert.Equal(t, true, first["isCorrect"])
	assert.NotContains(t, first, "correct")
	second := opts[1].(map[string]any)
	assert.Equal(t, false, second["isCorrect"])
	assert.NotContains(t, second, "correct")
}

func TestNormalizeCorrectCoercion(t *testing.T) {
	v := map[string]any{"questions": []any{
		map[string]any{"options": []any{
			map[string]any{"correct": "true"},
			map[string]any{"correct": float64(1)},
			map[string]any{"correct": float64(0)},
			map[string]any{"correct": nil},
		}},
	}}
	q := questionsOf(t, Normalize(v))[0].(map[string]any)
	opts := q["options"].([]any)
	want := []bool{true, true, false, false}
	for i, w := range want {
		assert.Equal(t, w, opts[i].(map[string]any)["isCorrect"], "option %d", i)
	}
}

func TestNormalizeNoDoubleWrite(t *testing.T) {
	// an option that already has isCorrect is left untouched, including its
	// legacy key
	opt := map[string]any{"text": "x", "correct": true, "isCorrect": false}
	v := map[string]any{"questions": []any{
		map[string]any{"options": []any{opt}},
	}}
	q := questionsOf(t, Normalize(v))[0].(map[string]any)
	got := q["options"].([]any)[0].(map[string]any)
	assert.Equal(t, false, got["isCorrect"])
	assert.Equal(t, true, got["correct"])
}

func TestNormalizeMixedShapeOptions(t *testing.T) {
	v := map[string]any{"questions": []any{
		map[string]any{"options": []any{
			"just a string",
			float64(7),
			map[string]any{"text": "x", "correct": true},
		}},
	}}
	q := questionsOf(t, Normalize(v))[0].(map[string]any)
	opts := q["options"].([]any)
	assert.Equal(t, "just a string", opts[0])
	assert.Equal(t, float64(7), opts[1])
	assert.Equal(t, true, opts[2].(map[string]any)["isCorrect"])
}

func TestNormalizePassThroughShapes(t *testing.T) {
	assert.Equal(t, "plain string", Normalize("plain string"))
	assert.Equal(t, []any{float64(1)}, Normalize([]any{float64(1)}))

	noQuestions := map[string]any{"isCorrect": true, "feedback": "good"}
	assert.Equal(t, noQuestions, Normalize(noQuestions))

	badQuestions := map[string]any{"questions": "not a list"}
	assert.Equal(t, badQuestions, Normalize(badQuestions))
}

func TestNormalizeNonStringTypeLeftAlone(t *testing.T) {
	v := map[string]any{"questions": []any{
		map[string]any{"type": float64(3), "question": "?"},
	}}
	q := questionsOf(t, Normalize(v))[0].(map[string]any)
	assert.Equal(t, float64(3), q["type"])
}

func TestNormalizeKeepsUnknownFields(t *testing.T) {
	v := map[string]any{
		"questions": []any{
			map[string]any{"type": "mcq", "bloom_level": "analyze"},
		},
		"meta": map[string]any{"source": "chapter 3"},
	}
	out := Normalize(v).(map[string]any)
	assert.Equal(t, map[string]any{"source": "chapter 3"}, out["meta"])
	q := out["questions"].([]any)[0].(map[string]any)
	assert.Equal(t, "analyze", q["bloom_level"])
}

func TestNormalizeIdempotent(t *testing.T) {
	canonical := `{"questions":[
		{"id":"q1","type":"MCQ","question":"?","options":[
			{"text":"a","isCorrect":true},{"text":"b","isCorrect":false}],
		 "explanation":"because","difficulty":"easy","topic":"t","tags":["x"]},
		{"id":"q2","type":"True/False","question":"?","options":[
			{"text":"True","isCorrect":false},{"text":"False","isCorrect":true}]}
	]}`
	var v any
	require.NoError(t, json.Unmarshal([]byte(canonical), &v))
	var want any
	require.NoError(t, json.Unmarshal([]byte(canonical), &want))

	assert.Equal(t, want, Normalize(v))
	assert.Equal(t, want, Normalize(Normalize(v)))
}
