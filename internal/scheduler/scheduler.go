package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Atharve03/pitchside/internal/config"
	"github.com/Atharve03/pitchside/internal/service"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
)

const (
	anomalyPollInterval = 5 * time.Second
	playersPollInterval = 3 * time.Second
	pollTimeout         = 4 * time.Second
)

// Scheduler runs the fixed-interval pollers behind the insight panels and
// the daily digest. Every polling job is a singleton: a tick is skipped
// while the previous poll is still running, so a slow network never piles
// up concurrent requests.
type Scheduler struct {
	s              gocron.Scheduler
	matchService   *service.MatchService
	sendMessage    func(string) error
	digestSchedule string
}

func NewScheduler(cfg config.Reports, matchService *service.MatchService, sendMessage func(string) error, clock clockwork.Clock) (*Scheduler, error) {
	if _, err := cron.ParseStandard(cfg.DigestSchedule); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", cfg.DigestSchedule, err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithClock(clock),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		matchService:   matchService,
		sendMessage:    sendMessage,
		digestSchedule: cfg.DigestSchedule,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Anomaly detector poll for the watched live match
	_, err = s.s.NewJob(
		gocron.DurationJob(anomalyPollInterval),
		gocron.NewTask(s.pollAnomalies),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create anomaly poll job: %w", err)
	}

	// Player stats refresh keeping the roster cache current
	_, err = s.s.NewJob(
		gocron.DurationJob(playersPollInterval),
		gocron.NewTask(s.refreshPlayers),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create player refresh job: %w", err)
	}

	// Daily insights digest
	_, err = s.s.NewJob(
		gocron.CronJob(s.digestSchedule, false),
		gocron.NewTask(s.sendDigest),
	)
	if err != nil {
		return fmt.Errorf("failed to create digest job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) pollAnomalies() {
	if s.matchService.Store().MatchID() == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
	defer cancel()

	report, err := s.matchService.FetchAnomalies(ctx)
	if err != nil {
		slog.Error("Failed to poll anomalies", "error", err)
		return
	}

	for _, a := range s.matchService.NewAnomalies(report) {
		s.sendMessage(service.RenderAnomaly(a))
	}
}

func (s *Scheduler) refreshPlayers() {
	ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
	defer cancel()

	if err := s.matchService.RefreshPlayers(ctx); err != nil {
		slog.Error("Failed to refresh players", "error", err)
	}
}

func (s *Scheduler) sendDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
	defer cancel()

	if err := s.matchService.RefreshInsights(ctx); err != nil {
		slog.Error("Failed to refresh insights", "error", err)
		return
	}

	digest, err := s.matchService.Insights(ctx)
	if err != nil {
		slog.Error("Failed to build insights digest", "error", err)
		return
	}
	s.sendMessage(digest)
}
