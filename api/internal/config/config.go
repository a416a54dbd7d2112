package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string

	// DatabaseURL enables the Postgres quiz cache when set.
	DatabaseURL string

	// SplitCalls switches quiz generation to one model call per question type.
	SplitCalls bool

	// TelegramBotToken is only required by the bot binary.
	TelegramBotToken string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SplitCalls:  os.Getenv("QUIZ_SPLIT_CALLS") == "1",

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}
