// Package service orchestrates prompt construction, the generator call and
// response reconstruction for every flow the relay exposes. Handlers and the
// Telegram bot stay thin on top of it.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"quiz-relay/api/internal/gen"
	"quiz-relay/api/internal/prompt"
	"quiz-relay/api/internal/quiz"
	"quiz-relay/api/internal/store"
)

const cacheMaxAge = 24 * time.Hour

type Service struct {
	Eng  gen.Engine
	Repo *store.QuizRepo // optional quiz cache, nil disables

	// SplitCalls switches quiz generation to one generator call per question
	// type instead of a single combined call.
	SplitCalls bool
}

func New(eng gen.Engine, repo *store.QuizRepo) *Service {
	return &Service{Eng: eng, Repo: repo}
}

// Ready reports whether a generator engine is configured.
func (s *Service) Ready() bool { return s != nil && s.Eng != nil }

// GenerateQuiz dispatches to the configured quiz generation variant.
func (s *Service) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (any, error) {
	if s.SplitCalls {
		return s.generatePerType(ctx, req)
	}
	return s.generateCombined(ctx, req)
}

// generateCombined asks for the whole quiz in one call, telling the model the
// per-type distribution inside the prompt.
func (s *Service) generateCombined(ctx context.Context, req GenerateQuizRequest) (any, error) {
	req.Config.applyDefaults()
	dist := quiz.Distribute(req.Config.QuestionTypes, req.Config.QuestionCount)

	key := cacheKey(req)
	if s.Repo != nil {
		if v, err := s.Repo.FindByHash(ctx, key, s.Eng.Name(), s.Eng.GetModel(), cacheMaxAge); err == nil {
			return v, nil
		}
	}

	p := prompt.BuildQuiz(req.ExtractedSource.Title, req.ExtractedSource.Text,
		req.Config.QuestionCount, req.Config.Difficulty, dist)
	raw, err := s.Eng.Generate(ctx, gen.Request{
		System:          prompt.QuizSystemInstruction,
		Prompt:          p,
		MaxOutputTokens: 8192,
	})
	if err != nil {
		return nil, err
	}
	out, err := quiz.Reconstruct(raw)
	if err != nil {
		return nil, err
	}

	if s.Repo != nil {
		if err := s.Repo.Upsert(ctx, key, s.Eng.Name(), s.Eng.GetModel(), out); err != nil {
			log.Printf("quiz cache upsert: %v", err)
		}
	}
	return out, nil
}

// generatePerType issues one generator call per category and concatenates the
// batches in distribution order. Slower than a combined call, but smaller
// prompts keep weaker models on schema. A failed generator call aborts the
// request; a batch whose reconstruction fails is skipped.
func (s *Service) generatePerType(ctx context.Context, req GenerateQuizRequest) (any, error) {
	req.Config.applyDefaults()
	dist := quiz.Distribute(req.Config.QuestionTypes, req.Config.QuestionCount)

	all := make([]any, 0, req.Config.QuestionCount)
	for _, d := range dist {
		if d.Count <= 0 {
			continue
		}
		p := prompt.BuildQuiz(req.ExtractedSource.Title, req.ExtractedSource.Text,
			d.Count, req.Config.Difficulty, []quiz.CategoryCount{d})
		raw, err := s.Eng.Generate(ctx, gen.Request{
			System:          prompt.QuizSystemInstruction,
			Prompt:          p,
			MaxOutputTokens: 8192,
		})
		if err != nil {
			return nil, err
		}
		out, err := quiz.Reconstruct(raw)
		if err != nil {
			log.Printf("skip %s batch: %v", d.Type, err)
			continue
		}
		if m, ok := out.(map[string]any); ok {
			if qs, ok := m["questions"].([]any); ok {
				all = append(all, qs...)
			}
		}
	}
	return map[string]any{"questions": all}, nil
}

// Story generates a markdown explanation of a topic. The model's text is
// returned as-is; no reconstruction applies.
func (s *Service) Story(ctx context.Context, req StoryRequest) (string, error) {
	req.Config.applyDefaults()
	p := prompt.BuildStory(req.ExtractedSource.Title, req.ExtractedSource.Text, req.Config.StoryStyle)
	return s.Eng.Generate(ctx, gen.Request{
		System:          prompt.StorySystemInstruction,
		Prompt:          p,
		MaxOutputTokens: 4096,
	})
}

// EvaluateSubjective grades a free-text answer. The evaluation payload is a
// small non-questions mapping, which the reconstruction pipeline passes
// through unchanged.
func (s *Service) EvaluateSubjective(ctx context.Context, req EvaluateRequest) (any, error) {
	p := prompt.BuildEvaluate(req.Question.Question, req.Question.Explanation, req.UserAnswer)
	raw, err := s.Eng.Generate(ctx, gen.Request{
		System:          prompt.EvaluateSystemInstruction,
		Prompt:          p,
		MaxOutputTokens: 1024,
	})
	if err != nil {
		return nil, err
	}
	return quiz.Reconstruct(raw)
}

// Feedback generates overall performance feedback as plain text.
func (s *Service) Feedback(ctx context.Context, req FeedbackRequest) (string, error) {
	p := prompt.BuildFeedback(req.QuizMeta.Subject, req.QuizMeta.Title, req.Stats)
	return s.Eng.Generate(ctx, gen.Request{
		System:          prompt.FeedbackSystemInstruction,
		Prompt:          p,
		MaxOutputTokens: 2048,
	})
}

// cacheKey hashes everything that shapes the generated quiz.
func cacheKey(req GenerateQuizRequest) string {
	js, _ := json.Marshal(struct {
		Title string   `json:"title"`
		Text  string   `json:"text"`
		Count int      `json:"count"`
		Diff  string   `json:"difficulty"`
		Types []string `json:"types"`
	}{
		req.ExtractedSource.Title,
		req.ExtractedSource.Text,
		req.Config.QuestionCount,
		req.Config.Difficulty,
		req.Config.QuestionTypes,
	})
	sum := sha256.Sum256(js)
	return hex.EncodeToString(sum[:])
}
