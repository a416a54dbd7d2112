package main

import (
	"context"
	"log"
	"net/http"

	"quiz-relay/api/internal/config"
	"quiz-relay/api/internal/gen/gemini"
	"quiz-relay/api/internal/handle"
	"quiz-relay/api/internal/httpserver"
	"quiz-relay/api/internal/service"
	"quiz-relay/api/internal/store"
)

func main() {
	cfg := config.Load()

	eng := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)

	var repo *store.QuizRepo
	if cfg.DatabaseURL != "" {
		db, err := store.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		repo = store.NewQuizRepo(db)
		log.Printf("quiz cache enabled")
	}

	svc := service.New(eng, repo)
	svc.SplitCalls = cfg.SplitCalls
	h := handle.New(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/api/generate-quiz", h.GenerateQuiz)
	mux.HandleFunc("/api/get-story", h.GetStory)
	mux.HandleFunc("/api/evaluate-subjective", h.EvaluateSubjective)
	mux.HandleFunc("/api/get-feedback", h.GetFeedback)

	addr := ":" + cfg.Port
	log.Printf("quiz-relay model=%s split_calls=%v", cfg.GeminiModel, cfg.SplitCalls)
	log.Fatal(httpserver.Start(addr, httpserver.CORS(mux)))
}
