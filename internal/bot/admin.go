package bot

import (
	"bytes"
	"errors"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/fsm"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/service"
)

func (b *Bot) handleAdminMenu(c telebot.Context) error {
	lang := b.lang(c)
	if !b.isAdmin(c) {
		return c.Send(i18n.T(lang, "admin_only"))
	}
	return c.Send(i18n.T(lang, "admin_menu"), adminMenuKeyboard(lang))
}

func (b *Bot) handleAdminAction(c telebot.Context, args []string) error {
	if !b.isAdmin(c) {
		return c.Respond()
	}
	if len(args) < 1 {
		return c.Respond()
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	switch args[0] {
	case "users":
		users, err := b.users.ListPending(ctx)
		if err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		if len(users) == 0 {
			return c.Send(i18n.T(lang, "admin_users_empty"))
		}
		for _, u := range users {
			age := 0
			if u.Age != nil {
				age = *u.Age
			}
			card := i18n.T(lang, "admin_user_card", u.Name, age, u.Phone, i18n.T(lang, "status_pending"))
			if err := c.Send(card, verifyKeyboard(lang, u.ID)); err != nil {
				return err
			}
		}
		return nil

	case "allusers":
		users, err := b.users.ListAll(ctx)
		if err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		if len(users) == 0 {
			return c.Send(i18n.T(lang, "admin_no_users"))
		}
		for _, u := range users {
			age := 0
			if u.Age != nil {
				age = *u.Age
			}
			status := i18n.T(lang, "status_pending")
			if u.IsActive {
				status = i18n.T(lang, "status_active")
			}
			card := i18n.T(lang, "admin_user_card", u.Name, age, u.Phone, status)
			if err := c.Send(card, deleteUserKeyboard(lang, u.ID)); err != nil {
				return err
			}
		}
		return c.Send(i18n.T(lang, "confirm_delete_all"), deleteAllUsersKeyboard(lang))

	case "tests":
		tests, err := b.tests.ListAll(ctx)
		if err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		if len(tests) == 0 {
			return c.Send(i18n.T(lang, "admin_tests_empty"))
		}
		return c.Send(i18n.T(lang, "btn_admin_tests"), adminTestListKeyboard(tests))

	case "newtest":
		b.states.Start(c.Sender().ID, fsm.StateTestTitle, &model.CreateTestForm{})
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "ask_test_title"))

	case "template":
		f, err := b.tests.Template()
		if err != nil {
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
			FileName: "questions_template.xlsx",
		})
	}
	return c.Respond()
}

// handleUserAdminAction covers single-user and wipe-everything deletion.
// Deleting everyone takes a second confirming tap.
func (b *Bot) handleUserAdminAction(c telebot.Context, args []string) error {
	if !b.isAdmin(c) {
		return c.Respond()
	}
	if len(args) < 1 {
		return c.Respond()
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	switch args[0] {
	case "del":
		userID, ok := callbackID(args, 1)
		if !ok {
			return c.Respond()
		}
		u, err := b.users.DeleteUser(ctx, userID)
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Respond()
		}
		if err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Edit(i18n.T(lang, "user_deleted", u.Name))

	case "delall":
		if len(args) < 2 {
			if err := c.Respond(); err != nil {
				return err
			}
			return c.Edit(i18n.T(lang, "confirm_delete_all"), confirmDeleteAllKeyboard(lang))
		}
		if args[1] != "yes" {
			if err := c.Respond(); err != nil {
				return err
			}
			return c.Edit(i18n.T(lang, "cancelled"))
		}
		n, err := b.users.DeleteAllUsers(ctx)
		if err != nil {
			return err
		}
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Edit(i18n.T(lang, "all_users_deleted", n))
	}
	return c.Respond()
}

// handleVerify resolves an approve/reject tap on a registration card.
func (b *Bot) handleVerify(c telebot.Context, args []string) error {
	if !b.isAdmin(c) {
		return c.Respond()
	}
	userID, ok := callbackID(args, 1)
	if !ok {
		return c.Respond()
	}

	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	approve := args[0] == "yes"

	var (
		u   *model.User
		err error
	)
	if approve {
		u, err = b.users.Approve(ctx, userID)
	} else {
		u, err = b.users.Reject(ctx, userID)
	}
	if errors.Is(err, service.ErrUserNotFound) {
		// Already handled from another card.
		return c.Respond()
	}
	if err != nil {
		return err
	}

	if u.TelegramID != nil {
		userLang := u.Language
		if userLang == "" {
			userLang = model.DefaultLanguage
		}
		chat := &telebot.Chat{ID: *u.TelegramID}
		var sendErr error
		if approve {
			_, sendErr = b.tb.Send(chat, i18n.T(userLang, "approved_notice"), b.mainMenu(userLang, false))
		} else {
			_, sendErr = b.tb.Send(chat, i18n.T(userLang, "rejected_notice"))
		}
		if sendErr != nil {
			b.log.Warn().Err(sendErr).Int64("user_id", u.ID).Msg("verdict notice failed")
		}
	}

	verdict := i18n.T(lang, "user_rejected", u.Name)
	if approve {
		verdict = i18n.T(lang, "user_approved", u.Name)
	}
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit(verdict)
}
