package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

const defaultUpdateTimeout = 60

var errUpdatesClosed = errors.New("telegram updates channel closed")

type Handler struct {
	bot       BotAPI
	logger    *zap.Logger
	questions QuestionRepository
	sessions  SessionStorage
	themes    ThemeProvider

	theme         service.Theme
	themeCh       chan service.Theme
	updateTimeout int
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	questions QuestionRepository,
	sessions SessionStorage,
	themes ThemeProvider,
	updateTimeout int,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if updateTimeout <= 0 {
		updateTimeout = defaultUpdateTimeout
	}

	h := &Handler{
		bot:           bot,
		logger:        logger,
		questions:     questions,
		sessions:      sessions,
		themes:        themes,
		theme:         themes.Current(),
		themeCh:       make(chan service.Theme, 1),
		updateTimeout: updateTimeout,
	}

	// Theme flips arrive from the watcher goroutine; Run applies them.
	themes.OnChange(func(t service.Theme) {
		select {
		case h.themeCh <- t:
		default:
			h.logger.Warn("theme change dropped, previous one still pending",
				zap.String("theme", string(t)),
			)
		}
	})

	return h
}

// Run dispatches updates and theme changes until ctx is cancelled.
// Sessions are only touched from this loop.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.updateTimeout

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return errUpdatesClosed
			}
			h.handleUpdate(update)
		case theme := <-h.themeCh:
			h.applyTheme(theme)
		}
	}
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.String("id", update.CallbackQuery.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.withErrorHandling(h.handleHelp())(chatID)
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.handleStart())(chatID)
	case "quiz":
		_ = h.withErrorHandling(h.handleQuiz())(chatID)
	case "restart":
		_ = h.withErrorHandling(h.handleRestart())(chatID)
	case "help":
		_ = h.withErrorHandling(h.handleHelp())(chatID)
	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// session returns the chat session, creating one wired to the renderer on first use.
func (h *Handler) session(chatID int64) (*service.QuizSession, bool) {
	s, created := h.sessions.GetOrCreate(chatID, func() *service.QuizSession {
		s := service.NewQuizSession(h.questions.GetAll(), nil)
		s.Subscribe(func(snap service.Snapshot) {
			h.render(chatID, snap)
		})
		return s
	})

	if created {
		id, _ := h.sessions.SessionID(chatID)
		h.logger.Info("session created",
			zap.Int64("chat_id", chatID),
			zap.String("session_id", id),
		)
	}

	return s, created
}

func (h *Handler) applyTheme(theme service.Theme) {
	if theme == h.theme {
		return
	}

	h.theme = theme
	h.refreshAll()
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
