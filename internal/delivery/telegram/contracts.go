package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vikings-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
)

// BotAPI is the subset of *tgbotapi.BotAPI used by the handler.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuestionRepository interface {
	GetAll() []entities.QuestionTemplate
	Count() int
}

type SessionStorage interface {
	GetOrCreate(chatID int64, create func() *service.QuizSession) (*service.QuizSession, bool)
	Get(chatID int64) (*service.QuizSession, bool)
	SessionID(chatID int64) (string, bool)
	SetMessageID(chatID int64, messageID int)
	MessageID(chatID int64) (int, bool)
	Delete(chatID int64)
	Chats() []int64
}

type ThemeProvider interface {
	Current() service.Theme
	OnChange(fn func(service.Theme))
}
