package telegram

import (
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

type HandlerFunc func(chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(chatID int64) error {
		err := fn(chatID)
		if err == nil {
			return nil
		}

		if errors.Is(err, service.ErrInvalidQuestionBank) {
			h.logger.Error("question bank rejected",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgQuizUnavailable)
			return nil
		}

		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return nil
	}
}
