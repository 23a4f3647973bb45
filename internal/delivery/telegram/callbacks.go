package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(cb *tgbotapi.CallbackQuery) {
	notice := ""
	// Remove the user's "clock".
	defer func() { h.answerCallback(cb.ID, notice) }()

	if cb.Message == nil || cb.Message.Chat == nil {
		h.logger.Debug("callback without message", zap.String("data", cb.Data))
		return
	}

	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	s, created := h.session(chatID)
	if msgID, ok := h.sessions.MessageID(chatID); !ok {
		h.sessions.SetMessageID(chatID, cb.Message.MessageID)
	} else if msgID != cb.Message.MessageID {
		// The quiz moved to a newer message; buttons of older ones are dead.
		h.logger.Debug("callback from superseded message ignored",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", cb.Message.MessageID),
			zap.Int("current_message_id", msgID),
		)
		notice = msgOutdatedMessage
		return
	}

	isStart := data.Action == actionQuiz && data.param(0) == quizStart

	// Buttons of a session this process does not know about lead back to the start screen.
	if created && !isStart {
		s.Restart()
		return
	}

	var fn HandlerFunc
	switch data.Action {
	case actionQuiz:
		fn = h.handleQuizCallback(s, data)
	case actionReview:
		fn = h.handleReviewCallback(s, data)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	_ = h.withErrorHandling(fn)(chatID)
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("failed to answer callback", zap.Error(err))
	}
}

func (h *Handler) handleQuizCallback(s *service.QuizSession, data callbackData) HandlerFunc {
	return func(chatID int64) error {
		switch data.param(0) {
		case quizStart:
			return s.Start()

		case quizAnswer:
			pos, okPos := data.intParam(1)
			opt, okOpt := data.intParam(2)
			if !okPos || !okOpt || !h.isCurrent(s, pos) {
				h.logger.Debug("stale answer ignored",
					zap.Int64("chat_id", chatID),
					zap.String("data", data.Raw),
				)
				return nil
			}
			s.Answer(opt)

		case quizNext:
			pos, ok := data.intParam(1)
			if !ok || !h.isCurrent(s, pos) {
				h.logger.Debug("stale next ignored",
					zap.Int64("chat_id", chatID),
					zap.String("data", data.Raw),
				)
				return nil
			}
			s.Advance()

		case quizRestart:
			s.Restart()

		default:
			h.logger.Warn("unknown quiz callback", zap.String("data", data.Raw))
		}

		return nil
	}
}

func (h *Handler) handleReviewCallback(s *service.QuizSession, data callbackData) HandlerFunc {
	return func(chatID int64) error {
		idx, ok := data.intParam(0)
		if !ok {
			h.logger.Warn("invalid review callback", zap.String("data", data.Raw))
			return nil
		}

		s.ReviewGoto(idx)
		return nil
	}
}

// isCurrent reports whether a button for the question at pos still applies.
func (h *Handler) isCurrent(s *service.QuizSession, pos int) bool {
	return s.Section() == entities.SectionQuiz && s.CurrentIndex() == pos
}
