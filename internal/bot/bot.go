// Package bot is the Telegram surface of the application: command and
// callback handlers, wizard routing, keyboards and message rendering. All
// domain logic lives below it in the engine and services.
package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/config"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/engine"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/fsm"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/service"
)

type Bot struct {
	tb      *telebot.Bot
	users   *service.UserService
	tests   *service.TestService
	engine  *engine.Engine
	states  *fsm.Store
	adminID int64
	log     zerolog.Logger
}

func New(cfg *config.Config, users *service.UserService, tests *service.TestService, eng *engine.Engine, log zerolog.Logger) (*Bot, error) {
	tb, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.BotToken,
		Poller: &telebot.LongPoller{Timeout: cfg.PollTimeout},
	})
	if err != nil {
		return nil, err
	}

	b := &Bot{
		tb:      tb,
		users:   users,
		tests:   tests,
		engine:  eng,
		states:  fsm.NewStore(),
		adminID: cfg.AdminID,
		log:     log.With().Str("component", "bot").Logger(),
	}

	// Time expiry happens outside any update, so the engine calls back in.
	eng.OnExpired(b.notifyExpired)

	b.registerHandlers()
	return b, nil
}

func (b *Bot) registerHandlers() {
	b.tb.Handle("/start", b.handleStart)
	b.tb.Handle("/cancel", b.handleCancel)
	b.tb.Handle("/admin", b.handleAdminMenu)

	b.tb.Handle(telebot.OnText, b.routeText)
	b.tb.Handle(telebot.OnContact, b.routeContact)
	b.tb.Handle(telebot.OnPhoto, b.routePhoto)
	b.tb.Handle(telebot.OnDocument, b.routeDocument)
	b.tb.Handle(telebot.OnCallback, b.routeCallback)
}

// Start begins long polling and blocks until Stop is called.
func (b *Bot) Start() {
	b.log.Info().Msg("bot polling started")
	b.tb.Start()
}

func (b *Bot) Stop() {
	b.tb.Stop()
	b.log.Info().Msg("bot polling stopped")
}

// Announce sends a localized message to one Telegram user. Used by the
// schedule notifier worker.
func (b *Bot) Announce(telegramID int64, key string, args ...any) error {
	lang := b.users.Language(context.Background(), telegramID)
	_, err := b.tb.Send(&telebot.Chat{ID: telegramID}, i18n.T(lang, key, args...))
	return err
}

// notifyExpired tells the user their timed session was force-submitted.
func (b *Bot) notifyExpired(telegramID int64, sum *engine.Summary) {
	lang := b.users.Language(context.Background(), telegramID)
	chat := &telebot.Chat{ID: telegramID}

	if _, err := b.tb.Send(chat, i18n.T(lang, "time_up")); err != nil {
		b.log.Warn().Err(err).Int64("telegram_id", telegramID).Msg("expiry notice failed")
		return
	}
	b.sendSummary(chat, lang, sum)
}

func (b *Bot) sendSummary(to *telebot.Chat, lang string, sum *engine.Summary) {
	text := i18n.T(lang, "summary",
		sum.TestTitle, sum.Earned, sum.MaxPossible, sum.Percentage, i18n.T(lang, sum.Grade.Key()))
	if _, err := b.tb.Send(to, text, b.mainMenu(lang, to.ID == b.adminID)); err != nil {
		b.log.Warn().Err(err).Msg("summary send failed")
	}
}

func (b *Bot) isAdmin(c telebot.Context) bool {
	return c.Sender() != nil && c.Sender().ID == b.adminID
}

// lang resolves the sender's interface language for this update.
func (b *Bot) lang(c telebot.Context) string {
	return b.users.Language(context.Background(), c.Sender().ID)
}

// ctx bounds one update's database work.
func updateCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}
