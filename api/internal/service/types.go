package service

// Request payloads as the frontend sends them.

type ExtractedSource struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type QuizConfig struct {
	QuestionCount int      `json:"questionCount"`
	Difficulty    string   `json:"difficulty"`
	QuestionTypes []string `json:"questionTypes"`
	StoryStyle    string   `json:"storyStyle"`
}

func (c *QuizConfig) applyDefaults() {
	if c.QuestionCount <= 0 {
		c.QuestionCount = 5
	}
	if c.Difficulty == "" {
		c.Difficulty = "medium"
	}
	if len(c.QuestionTypes) == 0 {
		c.QuestionTypes = []string{"MCQ"}
	}
	if c.StoryStyle == "" {
		c.StoryStyle = "Simple Words"
	}
}

type GenerateQuizRequest struct {
	ExtractedSource ExtractedSource `json:"extractedSource"`
	Config          QuizConfig      `json:"config"`
}

type StoryRequest struct {
	ExtractedSource ExtractedSource `json:"extractedSource"`
	Config          QuizConfig      `json:"config"`
}

type EvaluateRequest struct {
	Question struct {
		Question    string `json:"question"`
		Explanation string `json:"explanation"`
	} `json:"question"`
	UserAnswer string `json:"userAnswer"`
}

type FeedbackRequest struct {
	QuizMeta struct {
		Title   string `json:"title"`
		Subject string `json:"subject"`
	} `json:"quizMeta"`
	Stats any `json:"stats"`
}
