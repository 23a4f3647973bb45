package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

// RenderScreen renders the screen for the snapshot section.
func RenderScreen(snap service.Snapshot, theme service.Theme, totalQuestions int) (string, tgbotapi.InlineKeyboardMarkup) {
	switch snap.Section {
	case entities.SectionQuiz:
		return formatQuizScreen(snap, theme), buildQuizKeyboard(snap)
	case entities.SectionScore:
		return formatScoreScreen(snap, theme), buildScoreKeyboard(snap)
	default:
		return formatStartScreen(theme, totalQuestions), buildStartKeyboard()
	}
}

// render edits the chat's quiz message in place, or sends a new one.
func (h *Handler) render(chatID int64, snap service.Snapshot) {
	text, kb := RenderScreen(snap, h.theme, h.questions.Count())

	if msgID, ok := h.sessions.MessageID(chatID); ok {
		edit := newEdit(chatID, msgID, text)
		edit.ReplyMarkup = &kb

		_, err := h.bot.Send(edit)
		if err == nil || isNotModified(err) {
			return
		}

		h.logger.Warn("failed to edit quiz message, sending a new one",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", msgID),
			zap.Error(err),
		)
	}

	msg := newMessage(chatID, text)
	msg.ReplyMarkup = kb

	sent, err := h.bot.Send(msg)
	if err != nil {
		if isForbidden(err) {
			// The user blocked the bot or left the chat; stop refreshing it.
			h.logger.Info("chat unreachable, dropping session",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sessions.Delete(chatID)
			return
		}

		h.logger.Error("failed to send quiz message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	h.sessions.SetMessageID(chatID, sent.MessageID)
}

// refreshAll re-renders every chat that has a quiz message.
func (h *Handler) refreshAll() {
	for _, chatID := range h.sessions.Chats() {
		if _, ok := h.sessions.MessageID(chatID); !ok {
			continue
		}

		s, ok := h.sessions.Get(chatID)
		if !ok {
			continue
		}

		h.render(chatID, s.Snapshot())
	}
}

func isForbidden(err error) bool {
	return strings.Contains(err.Error(), "Forbidden")
}

func isNotModified(err error) bool {
	return strings.Contains(err.Error(), "message is not modified")
}
