// Package worker holds the background loops that run beside the bot's
// update handlers.
package worker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/config"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/repository"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/service"
)

// notifiedTTL bounds how long a test's "already announced" marker lives.
// Long enough that a test is never announced twice while it matters.
const notifiedTTL = 14 * 24 * time.Hour

// Announcer delivers one localized message to one Telegram user. The bot
// satisfies this; the indirection keeps the worker free of transport code.
type Announcer interface {
	Announce(telegramID int64, key string, args ...any) error
}

// ScheduleNotifier watches for scheduled tests whose start time has
// arrived and announces them to every verified user exactly once. The
// once-only guard is a Redis SETNX marker per test, so it holds across
// restarts and multiple bot instances.
type ScheduleNotifier struct {
	testRepo *repository.TestRepository
	users    *service.UserService
	rdb      *redis.Client
	announce Announcer
	interval time.Duration
	log      zerolog.Logger
}

func NewScheduleNotifier(testRepo *repository.TestRepository, users *service.UserService, rdb *redis.Client, announce Announcer, interval time.Duration, log zerolog.Logger) *ScheduleNotifier {
	return &ScheduleNotifier{
		testRepo: testRepo,
		users:    users,
		rdb:      rdb,
		announce: announce,
		interval: interval,
		log:      log.With().Str("component", "schedule_notifier").Logger(),
	}
}

func (w *ScheduleNotifier) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("ScheduleNotifier started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("ScheduleNotifier stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *ScheduleNotifier) tick(ctx context.Context) {
	due, err := w.testRepo.ListScheduledDue(ctx, time.Now())
	if err != nil {
		w.log.Error().Err(err).Msg("due test query failed")
		return
	}

	for _, t := range due {
		fresh, err := w.rdb.SetNX(ctx, config.CacheKey.TestNotifiedKey(t.ID), 1, notifiedTTL).Result()
		if err != nil {
			w.log.Error().Err(err).Int64("test_id", t.ID).Msg("notify marker failed")
			continue
		}
		if !fresh {
			continue
		}
		w.broadcast(ctx, t.ID, t.Title)
	}
}

func (w *ScheduleNotifier) broadcast(ctx context.Context, testID int64, title string) {
	users, err := w.users.ListReachable(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("reachable user query failed")
		return
	}

	sent := 0
	for _, u := range users {
		if u.TelegramID == nil {
			continue
		}
		if err := w.announce.Announce(*u.TelegramID, "test_open_notice", title); err != nil {
			w.log.Warn().Err(err).Int64("telegram_id", *u.TelegramID).Msg("announce failed")
			continue
		}
		sent++
	}

	w.log.Info().Int64("test_id", testID).Int("sent", sent).Msg("test announced")
}
