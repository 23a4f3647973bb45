package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vikings-quiz-bot/internal/config"
	"github.com/aliskhannn/vikings-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/vikings-quiz-bot/internal/logger"
	"github.com/aliskhannn/vikings-quiz-bot/internal/repository"
	"github.com/aliskhannn/vikings-quiz-bot/internal/service"
	"github.com/aliskhannn/vikings-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionBankPath)
	if err != nil {
		lg.Fatal("failed to load question bank", zap.Error(err))
	}
	if err := service.ValidateBank(questionRepo.GetAll()); err != nil {
		// Sessions report the same error to users; keep serving help and start screens.
		lg.Error("question bank is malformed", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Bot.Debug

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Open the quiz",
		},
		{
			Command:     "quiz",
			Description: "Start a new quiz",
		},
		{
			Command:     "restart",
			Description: "Back to the start screen",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account",
		zap.String("username", bot.Self.UserName),
		zap.Int("questions", questionRepo.Count()),
	)

	sessions := storage.NewSessionStorage()

	themeWatcher := service.NewThemeWatcher(service.ThemeConfig{
		DayStartHour: cfg.Theme.DayStartHour,
		DayEndHour:   cfg.Theme.DayEndHour,
		RefreshSpec:  cfg.Theme.RefreshSpec,
	}, nil, lg.Named("theme"))

	handler := telegram.NewHandler(
		bot,
		lg.Named("telegram"),
		questionRepo,
		sessions,
		themeWatcher,
		cfg.Bot.UpdateTimeout,
	)

	go func() {
		if err := themeWatcher.Start(ctx); err != nil {
			lg.Error("theme watcher failed", zap.Error(err))
		}
	}()

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler stopped with error", zap.Error(err))
	}

	lg.Info("bot stopped")
}
