package bot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/fsm"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/service"
)

// scheduleLayout is the format admins type start times in.
const scheduleLayout = "02.01.2006 15:04"

// questionDraft is the question wizard's payload.
type questionDraft struct {
	testID int64
	form   model.QuestionForm
}

// importDraft remembers which test the next uploaded workbook belongs to.
type importDraft struct {
	testID int64
}

// editDraft remembers which test a single-field edit applies to.
type editDraft struct {
	testID int64
}

// --- test creation wizard ---

func (b *Bot) testForm(c telebot.Context) *model.CreateTestForm {
	form, _ := b.states.Payload(c.Sender().ID).(*model.CreateTestForm)
	return form
}

func (b *Bot) testWizardTitle(c telebot.Context) error {
	lang := b.lang(c)
	form := b.testForm(c)
	if form == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	title := strings.TrimSpace(c.Text())
	if title == "" {
		return c.Send(i18n.T(lang, "ask_test_title"))
	}

	form.Title = title
	b.states.Set(c.Sender().ID, fsm.StateTestDescription)
	return c.Send(i18n.T(lang, "ask_test_description"))
}

func (b *Bot) testWizardDescription(c telebot.Context) error {
	lang := b.lang(c)
	form := b.testForm(c)
	if form == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	if text := strings.TrimSpace(c.Text()); text != "-" && text != "" {
		form.Description = &text
	}
	b.states.Set(c.Sender().ID, fsm.StateTestTimeLimit)
	return c.Send(i18n.T(lang, "ask_time_limit"))
}

func (b *Bot) testWizardTimeLimit(c telebot.Context) error {
	lang := b.lang(c)
	form := b.testForm(c)
	if form == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	limit, err := strconv.Atoi(strings.TrimSpace(c.Text()))
	if err != nil || limit < 0 || limit > 480 {
		return c.Send(i18n.T(lang, "ask_time_invalid"))
	}

	form.TimeLimitMinutes = limit
	b.states.Set(c.Sender().ID, fsm.StateTestSchedule)
	return c.Send(i18n.T(lang, "ask_schedule"))
}

func (b *Bot) testWizardSchedule(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)
	form := b.testForm(c)
	if form == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	if text := strings.TrimSpace(c.Text()); text != "-" {
		at, err := time.ParseInLocation(scheduleLayout, text, time.Local)
		if err != nil {
			return c.Send(i18n.T(lang, "ask_schedule_invalid"))
		}
		form.ScheduledTime = &at
	}

	t, err := b.tests.CreateTest(ctx, form)
	if err != nil {
		return err
	}

	b.states.Clear(c.Sender().ID)
	if err := c.Send(i18n.T(lang, "test_created", t.Title)); err != nil {
		return err
	}
	return b.sendAdminTestCard(c, lang, t)
}

// --- question wizard ---

func (b *Bot) questionForm(c telebot.Context) *questionDraft {
	draft, _ := b.states.Payload(c.Sender().ID).(*questionDraft)
	return draft
}

func (b *Bot) questionWizardText(c telebot.Context) error {
	lang := b.lang(c)
	draft := b.questionForm(c)
	if draft == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	text := strings.TrimSpace(c.Text())
	if text == "" {
		return c.Send(i18n.T(lang, "ask_q_text"))
	}

	draft.form.Text = text
	b.states.Set(c.Sender().ID, fsm.StateQuestionType)
	return c.Send(i18n.T(lang, "ask_q_type"), questionTypeKeyboard(lang))
}

func (b *Bot) questionWizardType(c telebot.Context, args []string) error {
	lang := b.lang(c)
	draft := b.questionForm(c)
	if draft == nil || b.states.State(c.Sender().ID) != fsm.StateQuestionType {
		return c.Respond()
	}
	if len(args) < 1 || !model.QuestionType(args[0]).Valid() {
		return c.Respond()
	}

	draft.form.Type = args[0]
	b.states.Set(c.Sender().ID, fsm.StateQuestionPoints)
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Send(i18n.T(lang, "ask_q_points"))
}

func (b *Bot) questionWizardPoints(c telebot.Context) error {
	lang := b.lang(c)
	draft := b.questionForm(c)
	if draft == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	points, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(c.Text()), ",", "."), 64)
	if err != nil || points <= 0 {
		return c.Send(i18n.T(lang, "ask_q_points_bad"))
	}
	draft.form.Points = points

	if model.QuestionType(draft.form.Type) == model.QuestionTypeText {
		return b.saveQuestion(c, lang, draft)
	}
	b.states.Set(c.Sender().ID, fsm.StateQuestionOptions)
	return c.Send(i18n.T(lang, "ask_q_options"))
}

func (b *Bot) questionWizardOptions(c telebot.Context) error {
	lang := b.lang(c)
	draft := b.questionForm(c)
	if draft == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	draft.form.OptionsRaw = c.Text()
	if _, err := service.ParseOptions(draft.form.OptionsRaw); err != nil {
		return c.Send(i18n.T(lang, "options_invalid"))
	}
	return b.saveQuestion(c, lang, draft)
}

func (b *Bot) saveQuestion(c telebot.Context, lang string, draft *questionDraft) error {
	ctx, cancel := updateCtx()
	defer cancel()

	if _, err := b.tests.AddQuestion(ctx, draft.testID, &draft.form); err != nil {
		if errors.Is(err, service.ErrNoOptions) || errors.Is(err, service.ErrNoCorrect) {
			return c.Send(i18n.T(lang, "options_invalid"))
		}
		return err
	}

	t, err := b.tests.GetTest(ctx, draft.testID)
	if err != nil {
		return err
	}

	b.states.Clear(c.Sender().ID)
	total := 0
	if t != nil {
		total = t.TotalQuestions
	}
	if err := c.Send(i18n.T(lang, "question_added", total)); err != nil {
		return err
	}
	if t != nil {
		return b.sendAdminTestCard(c, lang, t)
	}
	return nil
}

// --- single-field edits ---

func (b *Bot) editTestTitle(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	draft, _ := b.states.Payload(c.Sender().ID).(*editDraft)
	if draft == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	title := strings.TrimSpace(c.Text())
	if title == "" {
		return c.Send(i18n.T(lang, "ask_new_title"))
	}

	t, err := b.tests.Rename(ctx, draft.testID, title)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			b.states.Clear(c.Sender().ID)
			return c.Send(i18n.T(lang, "error_generic"))
		}
		return err
	}

	b.states.Clear(c.Sender().ID)
	if err := c.Send(i18n.T(lang, "test_updated")); err != nil {
		return err
	}
	return b.sendAdminTestCard(c, lang, t)
}

func (b *Bot) editTestDescription(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	draft, _ := b.states.Payload(c.Sender().ID).(*editDraft)
	if draft == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	var description *string
	if text := strings.TrimSpace(c.Text()); text != "-" && text != "" {
		description = &text
	}

	t, err := b.tests.Redescribe(ctx, draft.testID, description)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			b.states.Clear(c.Sender().ID)
			return c.Send(i18n.T(lang, "error_generic"))
		}
		return err
	}

	b.states.Clear(c.Sender().ID)
	if err := c.Send(i18n.T(lang, "test_updated")); err != nil {
		return err
	}
	return b.sendAdminTestCard(c, lang, t)
}

// --- test management callbacks ---

func (b *Bot) handleAdminTestAction(c telebot.Context, args []string) error {
	if !b.isAdmin(c) {
		return c.Respond()
	}
	if len(args) < 2 {
		return c.Respond()
	}
	id, ok := callbackID(args, 1)
	if !ok {
		return c.Respond()
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	switch args[0] {
	case "open":
		t, err := b.tests.GetTest(ctx, id)
		if err != nil {
			return err
		}
		if t == nil {
			return c.Respond()
		}
		if err := c.Respond(); err != nil {
			return err
		}
		return b.sendAdminTestCard(c, lang, t)

	case "addq":
		b.states.Start(c.Sender().ID, fsm.StateQuestionText, &questionDraft{testID: id})
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "ask_q_text"))

	case "questions":
		questions, err := b.tests.GetQuestions(ctx, id)
		if err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		if len(questions) == 0 {
			return c.Send(i18n.T(lang, "test_empty"))
		}
		return c.Send(i18n.T(lang, "btn_questions"), adminQuestionsKeyboard(questions))

	case "delq":
		questionID, ok := callbackID(args, 2)
		if !ok {
			return c.Respond()
		}
		if err := b.tests.DeleteQuestion(ctx, questionID); err != nil {
			return err
		}
		if err := c.Respond(&telebot.CallbackResponse{Text: i18n.T(lang, "question_deleted")}); err != nil {
			return err
		}
		questions, err := b.tests.GetQuestions(ctx, id)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			return c.Edit(i18n.T(lang, "test_empty"))
		}
		return c.Edit(i18n.T(lang, "btn_questions"), adminQuestionsKeyboard(questions))

	case "etitle":
		b.states.Start(c.Sender().ID, fsm.StateEditTitle, &editDraft{testID: id})
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "ask_new_title"))

	case "edesc":
		b.states.Start(c.Sender().ID, fsm.StateEditDescription, &editDraft{testID: id})
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "ask_new_desc"))

	case "toggle":
		active, err := b.tests.ToggleActive(ctx, id)
		if err != nil {
			if errors.Is(err, service.ErrTestNotFound) {
				return c.Respond()
			}
			return err
		}
		msg := i18n.T(lang, "test_deactivated")
		if active {
			msg = i18n.T(lang, "test_activated")
		}
		if err := c.Respond(&telebot.CallbackResponse{Text: msg}); err != nil {
			return err
		}
		t, err := b.tests.GetTest(ctx, id)
		if err != nil || t == nil {
			return err
		}
		return c.Edit(adminTestCardText(lang, t), adminTestKeyboard(lang, t))

	case "del":
		if err := b.tests.DeleteTest(ctx, id); err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Edit(i18n.T(lang, "test_deleted"))

	case "stats":
		stats, err := b.tests.Stats(ctx, id)
		if err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "stats_text", stats.Attempts, stats.Completed, stats.AverageScore))

	case "import":
		b.states.Start(c.Sender().ID, fsm.StateImportFile, &importDraft{testID: id})
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "ask_import_file"))

	case "export":
		return b.adminExport(c, lang, id)
	}
	return c.Respond()
}

func (b *Bot) adminExport(c telebot.Context, lang string, testID int64) error {
	ctx, cancel := updateCtx()
	defer cancel()

	f, err := b.tests.ExportResults(ctx, testID)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			return c.Respond()
		}
		return err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Send(&telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(buf.Bytes())),
		FileName: fmt.Sprintf("results_%d.xlsx", testID),
	})
}

// adminImportFile receives the uploaded workbook for the pending import.
func (b *Bot) adminImportFile(c telebot.Context) error {
	lang := b.lang(c)
	draft, _ := b.states.Payload(c.Sender().ID).(*importDraft)
	if draft == nil {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "error_generic"))
	}

	doc := c.Message().Document
	if doc == nil || !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") {
		return c.Send(i18n.T(lang, "ask_import_file"))
	}

	rc, err := b.tb.File(&doc.File)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	ctx, cancel := updateCtx()
	defer cancel()

	n, err := b.tests.ImportQuestions(ctx, draft.testID, bytes.NewReader(data))
	if err != nil {
		b.log.Warn().Err(err).Int64("test_id", draft.testID).Msg("question import failed")
		return c.Send(i18n.T(lang, "import_failed", err.Error()))
	}

	b.states.Clear(c.Sender().ID)
	if err := c.Send(i18n.T(lang, "import_ok", n)); err != nil {
		return err
	}

	t, err := b.tests.GetTest(ctx, draft.testID)
	if err != nil || t == nil {
		return err
	}
	return b.sendAdminTestCard(c, lang, t)
}

func (b *Bot) sendAdminTestCard(c telebot.Context, lang string, t *model.Test) error {
	return c.Send(adminTestCardText(lang, t), adminTestKeyboard(lang, t))
}

func adminTestCardText(lang string, t *model.Test) string {
	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "test_card", t.Title, t.TotalQuestions, t.MaxScore))
	if t.Description != nil && *t.Description != "" {
		sb.WriteString("\n" + *t.Description)
	}
	if t.TimeLimitMinutes > 0 {
		sb.WriteString("\n" + i18n.T(lang, "test_card_limit", t.TimeLimitMinutes))
	} else {
		sb.WriteString("\n" + i18n.T(lang, "test_card_no_limit"))
	}
	if t.ScheduledTime != nil {
		sb.WriteString("\n🕒 " + t.ScheduledTime.Format(scheduleLayout))
	}
	status := i18n.T(lang, "status_pending")
	if t.IsActive {
		status = i18n.T(lang, "status_active")
	}
	sb.WriteString("\n" + status)
	return sb.String()
}
