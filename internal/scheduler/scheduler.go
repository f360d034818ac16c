package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"CoinScout/internal/notifier"
	"CoinScout/internal/screener"
)

// Scheduler runs screening passes on a cron schedule and answers
// Telegram commands against the most recent result.
type Scheduler struct {
	Cron       *cron.Cron
	Screener   *screener.Screener
	Notifier   *notifier.TelegramNotifier
	TopResults int
	Ctx        context.Context

	mu         sync.Mutex
	lastResult *screener.Result
}

// NewScheduler creates a Scheduler. The notifier may be nil; results are
// then only logged.
func NewScheduler(ctx context.Context, s *screener.Screener, tn *notifier.TelegramNotifier, topResults int) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Screener:   s,
		Notifier:   tn,
		TopResults: topResults,
		Ctx:        ctx,
	}
}

// Register registers the screening task under the given cron expression.
func (s *Scheduler) Register(screenCron string) error {
	if _, err := s.Cron.AddFunc(screenCron, s.screenTask); err != nil {
		return fmt.Errorf("register screen task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the screening task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.screenTask()
}

func (s *Scheduler) screenTask() {
	log.Info().Msg("running scheduled screen")
	result, err := s.Screener.Run(s.Ctx)
	if err != nil {
		log.Error().Err(err).Msg("scheduled screen failed")
		s.trySend(fmt.Sprintf("❌ Screening run failed: %v", err))
		return
	}

	s.mu.Lock()
	s.lastResult = result
	s.mu.Unlock()

	s.trySend(notifier.FormatTelegramReport(result, s.TopResults))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/screen":
		go s.screenTask()
		return "Screening started, results will follow."
	case "/top":
		s.mu.Lock()
		result := s.lastResult
		s.mu.Unlock()
		if result == nil || len(result.Candidates) == 0 {
			return "No screening results yet. Use /screen to run one."
		}
		return notifier.FormatCandidateDetail(result.Candidates[0])
	default:
		return "Available commands:\n• /screen — run a screening pass\n• /top — show the best current candidate"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send report")
	}
}
