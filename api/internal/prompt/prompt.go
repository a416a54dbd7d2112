package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"quiz-relay/api/internal/quiz"
)

// Byte caps applied to untrusted text before it is embedded in a prompt, so a
// huge upload cannot blow the model's context window.
const (
	MaxQuizSource     = 5500
	MaxStorySource    = 8000
	MaxEvalQuestion   = 1200
	MaxEvalReference  = 1200
	MaxEvalUserAnswer = 1500
)

// TrimAndCap bounds text to max bytes.
func TrimAndCap(text string, max int) string {
	if len(text) > max {
		return text[:max]
	}
	return text
}

// DistributionText renders a category distribution the way the quiz prompt
// expects it, e.g. "4 MCQ, 3 True/False, 3 Fill in Blank".
func DistributionText(dist []quiz.CategoryCount) string {
	parts := make([]string, 0, len(dist))
	for _, d := range dist {
		parts = append(parts, fmt.Sprintf("%d %s", d.Count, d.Type))
	}
	return strings.Join(parts, ", ")
}

// BuildQuiz builds the user prompt for quiz generation. Data only; the rules
// live in QuizSystemInstruction.
func BuildQuiz(title, source string, count int, difficulty string, dist []quiz.CategoryCount) string {
	return fmt.Sprintf(`CONTENT TO ANALYZE:
%s

REQUIREMENTS FOR THIS REQUEST:
- Total questions needed: %d
- Question distribution: %s
- Difficulty level: %s
- Topic/Subject: %s
- Question IDs: q1 through q%d

Generate the quiz now.`,
		TrimAndCap(source, MaxQuizSource), count, DistributionText(dist), difficulty, title, count)
}

// BuildStory builds the user prompt for a topic explanation.
func BuildStory(title, source, style string) string {
	return fmt.Sprintf(`TOPIC: %s

STYLE PREFERENCE: %s

SOURCE CONTENT:
%s

Explain this topic now using the specified style.`,
		title, style, TrimAndCap(source, MaxStorySource))
}

// BuildEvaluate builds the user prompt for grading a subjective answer.
func BuildEvaluate(question, reference, userAnswer string) string {
	return fmt.Sprintf(`QUESTION:
%s

REFERENCE ANSWER:
%s

STUDENT'S ANSWER:
%s

Evaluate this answer now.`,
		TrimAndCap(question, MaxEvalQuestion),
		TrimAndCap(reference, MaxEvalReference),
		TrimAndCap(userAnswer, MaxEvalUserAnswer))
}

// BuildFeedback builds the user prompt for overall performance feedback.
// Stats are forwarded verbatim as indented JSON.
func BuildFeedback(subject, title string, stats any) string {
	js, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		js = []byte("{}")
	}
	return fmt.Sprintf(`QUIZ INFORMATION:
Subject: %s
Title: %s

PERFORMANCE METRICS:
%s

Provide personalized feedback now.`, subject, title, js)
}
