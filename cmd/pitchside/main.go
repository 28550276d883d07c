package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Atharve03/pitchside/internal/api/cricket"
	"github.com/Atharve03/pitchside/internal/bot"
	"github.com/Atharve03/pitchside/internal/config"
	"github.com/Atharve03/pitchside/internal/feed"
	"github.com/Atharve03/pitchside/internal/models"
	"github.com/Atharve03/pitchside/internal/repository/memory"
	"github.com/Atharve03/pitchside/internal/scheduler"
	"github.com/Atharve03/pitchside/internal/scoring"
	"github.com/Atharve03/pitchside/internal/service"
	"github.com/Atharve03/pitchside/internal/store"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	client := cricket.NewClient(cfg.CricketAPI)
	api := cricket.NewAPI(client)

	// The feed, store and bot form a cycle: the store subscribes through
	// the feed, and the feed's events land in the store and the bot. The
	// handler closures capture the late-bound variables below; the feed
	// does not run until everything is assigned.
	var (
		liveStore    *store.Store
		matchService *service.MatchService
		telegramBot  *bot.TelegramBot
	)

	pushFeed := feed.New(cfg.Feed, feed.Handlers{
		OnScoreUpdate: func(snap *models.LiveSnapshot) {
			if !liveStore.ApplyPush(snap) {
				return
			}
			if telegramBot.Watching() {
				telegramBot.SendMessage(matchService.RenderSnapshot(liveStore.Snapshot()))
			}
		},
		OnWicketFall: func(info feed.WicketInfo) {
			if info.MatchID != liveStore.MatchID() || !telegramBot.Watching() {
				return
			}
			telegramBot.SendMessage(fmt.Sprintf("🏏 *Wicket!* %s is out (%s)", info.Batsman, info.Dismissal))
		},
		OnInningsEnd: func(info feed.InningsEndInfo) {
			if info.MatchID != liveStore.MatchID() || !telegramBot.Watching() {
				return
			}
			telegramBot.SendMessage(fmt.Sprintf("⚠️ *Innings over*: %s", info.Reason))
		},
	})

	liveStore = store.New(api, pushFeed)
	controller := scoring.NewController(api, liveStore)
	repo := memory.NewRepository()
	matchService = service.NewMatchService(api, repo, liveStore, controller)

	telegramBot, err = bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, matchService)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(cfg.Reports, matchService, telegramBot.SendMessage, clockwork.NewRealClock())
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go pushFeed.Run(ctx)
	defer pushFeed.Close()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
