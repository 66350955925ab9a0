package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/hako/durafmt"
)

func main() {
	mainLogger := logger.Component("main")

	cfg, err := config.Load()
	if err != nil {
		fatalConfig(mainLogger, err)
	}

	closeLog := logger.Init(cfg)
	defer closeLog()
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d, Schedule: %s, Look-back: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.PollSchedule, durafmt.Parse(cfg.PollLookback).LimitFirstN(2))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the delivery journal (disabled unless JOURNAL_DRIVER is set)
	journalRepo, closeJournal := idb.OpenJournalOrDiscard(ctx, cfg.JournalDriver, cfg.JournalDSN, logger.Component("journal"))
	defer closeJournal()
	mainLogger.WithField("driver", cfg.JournalDriver).Info("Delivery journal initialized.")

	// Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.RequestTimeout)
	if err != nil {
		mainLogger.Fatalf("Could not create Telegram bot: %v", err)
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, journalRepo, logger.Component("notifier"))
	mainLogger.Info("Telegram notifier initialized.")

	practicumClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, logger.Component("practicum"))
	statusService := app.NewStatusService(practicumClient, notifier, time.Now, cfg.PollLookback, logger.Component("status_service"))

	pollScheduler, err := scheduler.NewPollingScheduler(statusService, notifier, scheduler.SystemClock{}, cfg.PollSchedule, logger.Component("scheduler"))
	if err != nil {
		mainLogger.Fatalf("Could not create poll scheduler: %v", err)
	}

	mainLogger.Info("Application setup complete. Polling is starting...")
	pollScheduler.Run(ctx) // Blocks until SIGINT/SIGTERM

	mainLogger.Info("Application shut down gracefully.")
}
