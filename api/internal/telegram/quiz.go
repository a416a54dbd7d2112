package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quiz-relay/api/internal/quiz"
	"quiz-relay/api/internal/service"
)

const quizQuestionCount = 3

func (r *Router) sendQuiz(cid int64, topic string) {
	r.send(cid, "Generating a quiz on "+topic+"…")

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := service.GenerateQuizRequest{}
	req.ExtractedSource.Title = topic
	req.ExtractedSource.Text = "General knowledge about " + topic
	req.Config.QuestionCount = quizQuestionCount
	req.Config.QuestionTypes = []string{string(quiz.TypeMCQ), string(quiz.TypeTrueFalse)}

	out, err := r.Svc.GenerateQuiz(ctx, req)
	if err != nil {
		r.send(cid, "Generation failed: "+err.Error())
		return
	}
	resp, err := quiz.DecodeResponse(out)
	if err != nil || len(resp.Questions) == 0 {
		r.send(cid, "The model returned nothing usable, try another topic.")
		return
	}
	for i, q := range resp.Questions {
		r.sendQuestion(cid, i+1, q)
	}
}

func (r *Router) sendQuestion(cid int64, n int, q quiz.Question) {
	text := fmt.Sprintf("%d. %s", n, q.Question)
	if len(q.Options) == 0 {
		// open-ended question, nothing to press
		r.send(cid, text)
		return
	}
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for _, opt := range q.Options {
		// correctness travels in the callback data, no per-chat state needed
		data := fmt.Sprintf("ans:%d", boolToInt(opt.IsCorrect))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Text, data)))
	}
	msg := tgbotapi.NewMessage(cid, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, _ = r.Bot.Send(msg)
}

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	parts := strings.Split(cb.Data, ":")
	if len(parts) != 2 || parts[0] != "ans" {
		return
	}
	verdict := "❌ Not quite."
	if parts[1] == "1" {
		verdict = "✅ Correct!"
	}
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, verdict))
	if cb.Message != nil {
		r.send(cb.Message.Chat.ID, verdict)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
