package bot

import (
	"errors"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/fsm"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/service"
)

func (b *Bot) handleStart(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()

	b.states.Clear(c.Sender().ID)
	lang := b.lang(c)

	u, err := b.users.GetByTelegramID(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	if u == nil {
		if err := c.Send(i18n.T(lang, "start_welcome"), b.guestMenu(lang)); err != nil {
			return err
		}
		return c.Send(i18n.T(lang, "choose_language"), languageKeyboard())
	}
	if !u.IsActive {
		return c.Send(i18n.T(lang, "not_verified"), b.guestMenu(lang))
	}
	return c.Send(i18n.T(lang, "main_menu"), b.mainMenu(lang, b.isAdmin(c)))
}

func (b *Bot) handleCancel(c telebot.Context) error {
	b.states.Clear(c.Sender().ID)
	lang := b.lang(c)

	ctx, cancel := updateCtx()
	defer cancel()
	u, _ := b.users.GetByTelegramID(ctx, c.Sender().ID)

	menu := b.guestMenu(lang)
	if u != nil && u.IsActive {
		menu = b.mainMenu(lang, b.isAdmin(c))
	}
	return c.Send(i18n.T(lang, "cancelled"), menu)
}

func (b *Bot) handleLanguageMenu(c telebot.Context) error {
	return c.Send(i18n.T(b.lang(c), "choose_language"), languageKeyboard())
}

func (b *Bot) handleLangChosen(c telebot.Context, args []string) error {
	if len(args) < 1 || !model.ValidLanguage(args[0]) {
		return c.Respond()
	}
	lang := args[0]

	ctx, cancel := updateCtx()
	defer cancel()

	// Unknown users keep the choice for the session via the cache only
	// once they register; here a missing row is fine.
	if err := b.users.SetLanguage(ctx, c.Sender().ID, lang); err != nil &&
		!errors.Is(err, service.ErrUserNotFound) {
		return err
	}

	if err := c.Respond(&telebot.CallbackResponse{Text: i18n.T(lang, "language_set")}); err != nil {
		return err
	}

	u, err := b.users.GetByTelegramID(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	if u != nil && u.IsActive {
		return c.Send(i18n.T(lang, "main_menu"), b.mainMenu(lang, b.isAdmin(c)))
	}
	return c.Send(i18n.T(lang, "start_welcome"), b.guestMenu(lang))
}

func (b *Bot) handleLoginStart(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	u, err := b.users.GetByTelegramID(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	if u != nil {
		if !u.IsActive {
			return c.Send(i18n.T(lang, "not_verified"))
		}
		return c.Send(i18n.T(lang, "login_ok", u.Name), b.mainMenu(lang, b.isAdmin(c)))
	}

	b.states.Start(c.Sender().ID, fsm.StateLoginPhone, nil)
	return c.Send(i18n.T(lang, "login_prompt"), contactKeyboard(lang))
}

func (b *Bot) loginPhone(c telebot.Context) error {
	return b.loginWithPhone(c, c.Text())
}

func (b *Bot) loginWithPhone(c telebot.Context, phone string) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	u, err := b.users.LoginByPhone(ctx, c.Sender().ID, phone)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Send(i18n.T(lang, "login_unknown_phone"))
	case errors.Is(err, service.ErrPhoneLinked):
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "login_linked_elsewhere"), b.guestMenu(lang))
	case err != nil:
		return err
	}

	b.states.Clear(c.Sender().ID)
	lang = b.lang(c) // binding may change the stored preference

	if !u.IsActive {
		return c.Send(i18n.T(lang, "not_verified"), b.guestMenu(lang))
	}
	return c.Send(i18n.T(lang, "login_ok", u.Name), b.mainMenu(lang, b.isAdmin(c)))
}

func (b *Bot) handleLogout(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	err := b.users.Logout(ctx, c.Sender().ID)
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		return err
	}

	b.states.Clear(c.Sender().ID)
	return c.Send(i18n.T(lang, "logout_ok"), b.guestMenu(lang))
}
