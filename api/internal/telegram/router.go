package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-relay/api/internal/service"
)

type Router struct {
	Bot *tgbotapi.BotAPI
	Svc *service.Service
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}
	// plain text is treated as a quiz topic
	if topic := strings.TrimSpace(upd.Message.Text); topic != "" {
		r.sendQuiz(upd.Message.Chat.ID, topic)
	}
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Send me a topic (or /quiz <topic>) and I'll quiz you on it.")
	case "health":
		r.send(cid, "ok")
	case "quiz":
		topic := strings.TrimSpace(upd.Message.CommandArguments())
		if topic == "" {
			r.send(cid, "Usage: /quiz <topic>")
			return
		}
		r.sendQuiz(cid, topic)
	default:
		r.send(cid, "Unknown command. Try /quiz <topic>.")
	}
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}
