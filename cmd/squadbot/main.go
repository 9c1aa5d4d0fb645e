package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/squadbot/internal/bot"
	"github.com/omarshaarawi/squadbot/internal/config"
	"github.com/omarshaarawi/squadbot/internal/form"
	"github.com/omarshaarawi/squadbot/internal/httpapi"
	"github.com/omarshaarawi/squadbot/internal/hub"
	"github.com/omarshaarawi/squadbot/internal/repository/memory"
	"github.com/omarshaarawi/squadbot/internal/scheduler"
	"github.com/omarshaarawi/squadbot/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := memory.NewRepository()
	if cfg.Roster.Seed {
		repo = memory.NewSeededRepository()
	}
	squadService := service.NewSquadService(repo, form.NewBuilder(cfg.Roster.RandomSeed))
	slog.Info("Roster loaded", "players", squadService.Count())

	dashboardHub := hub.NewHub(func() interface{} { return squadService.Dashboard() })
	repo.Subscribe(dashboardHub.RosterListener(squadService.Dashboard))
	go dashboardHub.Run(ctx)

	if cfg.TelegramBot.Enabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, squadService)
		if err != nil {
			return err
		}

		if cfg.Reports.Enabled {
			location, err := cfg.Reports.Location()
			if err != nil {
				return err
			}
			sched, err := scheduler.NewScheduler(squadService, telegramBot.SendMessage, location)
			if err != nil {
				return err
			}
			if err := sched.Start(); err != nil {
				return err
			}
			defer func() {
				if err := sched.Stop(); err != nil {
					slog.Error("Error stopping scheduler", "error", err)
				}
			}()
		}

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()
	} else {
		slog.Info("TELEGRAM_TOKEN not set, chat bot disabled")
	}

	server := &http.Server{
		Addr:        cfg.HTTP.Addr,
		Handler:     httpapi.NewRouter(ctx, httpapi.NewHandler(squadService, dashboardHub), cfg.HTTP.CORSOrigins),
		ReadTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		return err
	}
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
