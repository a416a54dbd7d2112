package main

import (
	"context"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-relay/api/internal/config"
	"quiz-relay/api/internal/gen/gemini"
	"quiz-relay/api/internal/httpserver"
	"quiz-relay/api/internal/service"
	"quiz-relay/api/internal/store"
	"quiz-relay/api/internal/telegram"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	eng := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)

	var repo *store.QuizRepo
	if cfg.DatabaseURL != "" {
		db, err := store.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		repo = store.NewQuizRepo(db)
	}

	svc := service.New(eng, repo)
	svc.SplitCalls = cfg.SplitCalls
	r := &telegram.Router{Bot: bot, Svc: svc}

	// healthz for the hosting platform
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		log.Fatal(httpserver.Start("0.0.0.0:"+cfg.Port, mux))
	}()

	log.Printf("bot authorized as @%s", bot.Self.UserName)
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for upd := range bot.GetUpdatesChan(u) {
		r.HandleUpdate(upd)
	}
}
