package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/engine"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// requireVerified loads the sender's account and rejects unknown or
// unverified users with the appropriate message. Returns nil after replying
// if access is denied.
func (b *Bot) requireVerified(c telebot.Context) (*model.User, error) {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	u, err := b.users.GetByTelegramID(ctx, c.Sender().ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, c.Send(i18n.T(lang, "need_register"), b.guestMenu(lang))
	}
	if !u.IsActive {
		return nil, c.Send(i18n.T(lang, "not_verified"))
	}
	return u, nil
}

func (b *Bot) handleTestList(c telebot.Context) error {
	u, err := b.requireVerified(c)
	if u == nil {
		return err
	}

	ctx, cancel := updateCtx()
	defer cancel()

	tests, err := b.tests.ListAvailable(ctx)
	if err != nil {
		return err
	}
	return b.sendTestCards(c, "tests_header", "tests_empty", tests)
}

// handleMyTests is the test list narrowed to what the user has not yet
// completed.
func (b *Bot) handleMyTests(c telebot.Context) error {
	u, err := b.requireVerified(c)
	if u == nil {
		return err
	}

	ctx, cancel := updateCtx()
	defer cancel()

	tests, err := b.tests.ListAvailableFor(ctx, u.ID)
	if err != nil {
		return err
	}
	return b.sendTestCards(c, "my_tests_header", "my_tests_empty", tests)
}

func (b *Bot) sendTestCards(c telebot.Context, headerKey, emptyKey string, tests []model.Test) error {
	lang := b.lang(c)
	if len(tests) == 0 {
		return c.Send(i18n.T(lang, emptyKey))
	}

	if err := c.Send(i18n.T(lang, headerKey)); err != nil {
		return err
	}
	for _, t := range tests {
		card := i18n.T(lang, "test_card", t.Title, t.TotalQuestions, t.MaxScore)
		if t.Description != nil && *t.Description != "" {
			card += "\n" + *t.Description
		}
		if t.TimeLimitMinutes > 0 {
			card += "\n" + i18n.T(lang, "test_card_limit", t.TimeLimitMinutes)
		} else {
			card += "\n" + i18n.T(lang, "test_card_no_limit")
		}
		if err := c.Send(card, startTestKeyboard(lang, t.ID)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) handleStartTest(c telebot.Context, args []string) error {
	testID, ok := callbackID(args, 1)
	if !ok || args[0] != "start" {
		return c.Respond()
	}

	u, err := b.requireVerified(c)
	if u == nil {
		if err != nil {
			return err
		}
		return c.Respond()
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	resumed := false
	if s := b.engine.Store().Get(c.Sender().ID); s != nil && s.TestID == testID {
		resumed = true
	}

	if _, err := b.engine.Start(ctx, u, testID); err != nil {
		return b.replyEngineError(c, lang, err)
	}
	if err := c.Respond(); err != nil {
		return err
	}
	if resumed {
		if err := c.Send(i18n.T(lang, "test_resumed")); err != nil {
			return err
		}
	}

	v, err := b.engine.View(ctx, c.Sender().ID)
	if err != nil {
		return b.replyEngineError(c, lang, err)
	}
	return b.sendQuestion(c, lang, v)
}

// sendQuestion posts a fresh question message; editQuestion rewrites the
// one the user just tapped so the chat does not fill up with duplicates.

func (b *Bot) sendQuestion(c telebot.Context, lang string, v *engine.QuestionView) error {
	return c.Send(questionText(lang, v), questionKeyboard(lang, v))
}

func (b *Bot) editQuestion(c telebot.Context, lang string, v *engine.QuestionView) error {
	if err := c.Edit(questionText(lang, v), questionKeyboard(lang, v)); err != nil {
		// An unchanged message is fine; any other edit failure means the
		// target message is gone, so post a fresh one.
		if errors.Is(err, telebot.ErrTrueResult) || errors.Is(err, telebot.ErrSameMessageContent) {
			return nil
		}
		return b.sendQuestion(c, lang, v)
	}
	return nil
}

func questionText(lang string, v *engine.QuestionView) string {
	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "question_header", v.Position, v.Total, v.Points, v.Text))
	switch v.Type {
	case model.QuestionTypeMultiple:
		sb.WriteString("\n\n" + i18n.T(lang, "multiple_hint"))
	case model.QuestionTypeText:
		sb.WriteString("\n\n" + i18n.T(lang, "text_answer_prompt"))
	}
	if v.TimeLeft > 0 {
		sb.WriteString("\n" + i18n.T(lang, "time_left", formatDuration(v.TimeLeft)))
	}
	return sb.String()
}

func (b *Bot) handleAnswerTap(c telebot.Context, args []string) error {
	questionID, ok1 := callbackID(args, 0)
	optionID, ok2 := callbackID(args, 1)
	if !ok1 || !ok2 {
		return c.Respond()
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	step, err := b.engine.RecordAnswer(ctx, c.Sender().ID, questionID, optionID)
	if err != nil {
		if errors.Is(err, engine.ErrNotCurrentQuestion) {
			// Stale tap on an old message. Re-render the real position.
			if v, verr := b.engine.View(ctx, c.Sender().ID); verr == nil {
				_ = c.Respond()
				return b.editQuestion(c, lang, v)
			}
		}
		return b.replyEngineError(c, lang, err)
	}

	if err := c.Respond(); err != nil {
		return err
	}
	return b.renderStep(c, lang, step)
}

func (b *Bot) handleSessionAction(c telebot.Context, args []string) error {
	if len(args) < 1 {
		return c.Respond()
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	var (
		step *engine.StepResult
		err  error
	)
	switch args[0] {
	case "confirm":
		step, err = b.engine.Confirm(ctx, c.Sender().ID)
	case "skip":
		step, err = b.engine.Skip(ctx, c.Sender().ID)
	case "prev":
		step, err = b.engine.Navigate(ctx, c.Sender().ID, engine.Prev)
	case "next":
		step, err = b.engine.Navigate(ctx, c.Sender().ID, engine.Next)
	case "finish":
		var sum *engine.Summary
		sum, err = b.engine.Submit(ctx, c.Sender().ID)
		if err == nil {
			step = &engine.StepResult{Summary: sum}
		}
	default:
		return c.Respond()
	}
	if err != nil {
		return b.replyEngineError(c, lang, err)
	}

	if err := c.Respond(); err != nil {
		return err
	}
	return b.renderStep(c, lang, step)
}

func (b *Bot) handleTextAnswer(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	step, err := b.engine.RecordTextAnswer(ctx, c.Sender().ID, c.Text())
	if err != nil {
		if errors.Is(err, engine.ErrWrongQuestionType) {
			return c.Send(i18n.T(lang, "unknown_command"))
		}
		return b.replyEngineError(c, lang, err)
	}

	if step.Summary != nil {
		b.sendSummary(&telebot.Chat{ID: c.Sender().ID}, lang, step.Summary)
		return nil
	}
	return b.sendQuestion(c, lang, step.View)
}

func (b *Bot) renderStep(c telebot.Context, lang string, step *engine.StepResult) error {
	if step.Summary != nil {
		b.sendSummary(&telebot.Chat{ID: c.Sender().ID}, lang, step.Summary)
		return nil
	}
	return b.editQuestion(c, lang, step.View)
}

// replyEngineError maps the engine's sentinel errors to user messages.
// Anything unmapped bubbles up to the caller's error logging.
func (b *Bot) replyEngineError(c telebot.Context, lang string, err error) error {
	var notStarted *engine.NotStartedError
	switch {
	case errors.As(err, &notStarted):
		return b.answerOrSend(c, i18n.T(lang, "test_not_started", formatDuration(notStarted.StartsIn)))
	case errors.Is(err, engine.ErrAlreadyCompleted):
		return b.answerOrSend(c, i18n.T(lang, "test_already_completed"))
	case errors.Is(err, engine.ErrTestUnavailable):
		return b.answerOrSend(c, i18n.T(lang, "test_unavailable"))
	case errors.Is(err, engine.ErrEmptyTest):
		return b.answerOrSend(c, i18n.T(lang, "test_empty"))
	case errors.Is(err, engine.ErrNoSession), errors.Is(err, engine.ErrSessionClosed):
		return b.answerOrSend(c, i18n.T(lang, "no_active_session"))
	case errors.Is(err, engine.ErrNotCurrentQuestion), errors.Is(err, engine.ErrWrongQuestionType):
		return b.answerOrSend(c, i18n.T(lang, "error_generic"))
	}
	return err
}

// answerOrSend prefers a callback toast when the update is a callback,
// falling back to a plain message for text updates.
func (b *Bot) answerOrSend(c telebot.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&telebot.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// formatDuration renders a remaining time as 1h05m or 12m30s.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}
