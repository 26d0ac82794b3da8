package bot

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/engine"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
)

const resultTimeLayout = "02.01.2006 15:04"

func (b *Bot) handleMyResults(c telebot.Context) error {
	u, err := b.requireVerified(c)
	if u == nil {
		return err
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	results, err := b.tests.UserResults(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return c.Send(i18n.T(lang, "results_empty"))
	}

	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "results_header"))
	for _, r := range results {
		sb.WriteString("\n")
		sb.WriteString(i18n.T(lang, "result_line",
			r.TestTitle, r.Score, r.MaxScore, r.Percentage(),
			r.CompletedAt.Format(resultTimeLayout)))
	}
	return c.Send(sb.String(), reportKeyboard(lang))
}

// handleResultsReport sends the user's full history as a plain-text file,
// with the grade and duration the list view leaves out.
func (b *Bot) handleResultsReport(c telebot.Context) error {
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

	results, err := b.tests.UserResults(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "results_empty"))
	}

	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "report_title", u.Name))
	sb.WriteString("\n")
	for _, r := range results {
		percent := r.Percentage()
		grade := i18n.T(lang, engine.GradeFor(percent).Key())
		duration := formatDuration(r.CompletedAt.Sub(r.StartedAt))
		sb.WriteString("\n")
		sb.WriteString(i18n.T(lang, "report_entry",
			r.TestTitle, r.Score, r.MaxScore, percent, grade,
			r.CompletedAt.Format(resultTimeLayout), duration))
		sb.WriteString("\n")
	}

	if err := c.Respond(); err != nil {
		return err
	}
	return c.Send(&telebot.Document{
		File:     telebot.FromReader(bytes.NewReader([]byte(sb.String()))),
		FileName: fmt.Sprintf("results_%d.txt", u.ID),
	})
}
