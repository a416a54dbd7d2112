package quiz

// CategoryCount says how many questions of one category to request from the
// generator.
type CategoryCount struct {
	Type  QuestionType `json:"type"`
	Count int          `json:"count"`
}

// Distribute splits total across the requested category labels. Labels are
// canonicalized through NormalizeType and deduplicated keeping first-occurrence
// order; an empty set falls back to a single MCQ bucket. The first total mod n
// buckets absorb the remainder, so the counts always sum to total and differ
// from each other by at most one.
func Distribute(labels []string, total int) []CategoryCount {
	var types []QuestionType
	seen := make(map[QuestionType]bool, len(labels))
	for _, l := range labels {
		t := NormalizeType(l)
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		types = []QuestionType{TypeMCQ}
	}

	base := total / len(types)
	rem := total % len(types)
	out := make([]CategoryCount, len(types))
	for i, t := range types {
		c := base
		if i < rem {
			c++
		}
		out[i] = CategoryCount{Type: t, Count: c}
	}
	return out
}
