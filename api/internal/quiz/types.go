package quiz

import (
	"encoding/json"
	"strings"
)

// QuestionType is a category label for a quiz question. The canonical set is
// the four constants below, but generator output is untrusted free text, so
// the vocabulary stays open: a label that matches none of the known spellings
// keeps its original value.
type QuestionType string

const (
	TypeMCQ         QuestionType = "MCQ"
	TypeTrueFalse   QuestionType = "True/False"
	TypeFillInBlank QuestionType = "Fill in Blank"
	TypeShortAnswer QuestionType = "Short Answer"
)

// NormalizeType maps a free-form category label onto the canonical set by
// case-insensitive substring, first match wins.
func NormalizeType(label string) QuestionType {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "mcq") || strings.Contains(l, "multiple"):
		return TypeMCQ
	case strings.Contains(l, "true") || strings.Contains(l, "false"):
		return TypeTrueFalse
	case strings.Contains(l, "fill"):
		return TypeFillInBlank
	case strings.Contains(l, "short") || strings.Contains(l, "subjective"):
		return TypeShortAnswer
	}
	return QuestionType(label)
}

// Option is one answer choice of an MCQ or True/False question.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is the canonical question record the pipeline normalizes toward.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type,omitempty"`
	Question    string       `json:"question"`
	Options     []Option     `json:"options,omitempty"`
	Answer      string       `json:"answer,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
	Difficulty  string       `json:"difficulty,omitempty"`
	Topic       string       `json:"topic,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// Response is the canonical top-level quiz shape.
type Response struct {
	Questions []Question `json:"questions"`
}

// DecodeResponse converts a normalized pipeline value into the typed schema.
// The pipeline itself works on generic JSON values so that fields it does not
// understand survive; callers that want structs go through here.
func DecodeResponse(v any) (Response, error) {
	var resp Response
	b, err := json.Marshal(v)
	if err != nil {
		return resp, err
	}
	if err := json.Unmarshal(b, &resp); err != nil {
		return resp, err
	}
	return resp, nil
}
