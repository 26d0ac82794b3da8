package bot

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/fsm"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/service"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/validator"
)

// allowedDocExts mirrors the document types the admin can open for review.
var allowedDocExts = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true, ".doc": true, ".docx": true,
}

func (b *Bot) handleRegisterStart(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)

	u, err := b.users.GetByTelegramID(ctx, c.Sender().ID)
	if err != nil {
		return err
	}
	if u != nil {
		return c.Send(i18n.T(lang, "reg_already"))
	}

	b.states.Start(c.Sender().ID, fsm.StateRegName, &model.RegistrationForm{Language: lang})
	return c.Send(i18n.T(lang, "reg_name"))
}

// regForm pulls the draft out of the wizard; a missing draft means the
// process restarted mid-wizard, so the user is sent back to the beginning.
func (b *Bot) regForm(c telebot.Context) *model.RegistrationForm {
	form, _ := b.states.Payload(c.Sender().ID).(*model.RegistrationForm)
	return form
}

func (b *Bot) regName(c telebot.Context) error {
	lang := b.lang(c)
	form := b.regForm(c)
	if form == nil {
		return b.handleRegisterStart(c)
	}

	name := strings.TrimSpace(c.Text())
	if len([]rune(name)) < 2 {
		return c.Send(i18n.T(lang, "reg_name_invalid"))
	}

	form.Name = name
	b.states.Set(c.Sender().ID, fsm.StateRegAge)
	return c.Send(i18n.T(lang, "reg_age"))
}

func (b *Bot) regAge(c telebot.Context) error {
	lang := b.lang(c)
	form := b.regForm(c)
	if form == nil {
		return b.handleRegisterStart(c)
	}

	age, err := strconv.Atoi(strings.TrimSpace(c.Text()))
	if err != nil || age < 1 || age > 120 {
		return c.Send(i18n.T(lang, "reg_age_invalid"))
	}

	form.Age = age
	b.states.Set(c.Sender().ID, fsm.StateRegPhone)
	return c.Send(i18n.T(lang, "reg_phone"), contactKeyboard(lang))
}

func (b *Bot) regPhone(c telebot.Context) error {
	return b.regPhoneValue(c, c.Text())
}

func (b *Bot) regPhoneValue(c telebot.Context, phone string) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)
	form := b.regForm(c)
	if form == nil {
		return b.handleRegisterStart(c)
	}

	phone = strings.TrimSpace(phone)
	if !validator.ValidPhone(phone) {
		return c.Send(i18n.T(lang, "reg_phone_invalid"))
	}

	taken, err := b.users.PhoneTaken(ctx, phone)
	if err != nil {
		return err
	}
	if taken {
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(lang, "reg_phone_taken"), b.guestMenu(lang))
	}

	form.Phone = phone
	b.states.Set(c.Sender().ID, fsm.StateRegPhoto)
	// Drop the share-contact keyboard along the way.
	return c.Send(i18n.T(lang, "reg_photo"), &telebot.ReplyMarkup{RemoveKeyboard: true})
}

func (b *Bot) regPhoto(c telebot.Context) error {
	lang := b.lang(c)
	form := b.regForm(c)
	if form == nil {
		return b.handleRegisterStart(c)
	}

	photo := c.Message().Photo
	if photo == nil || photo.FileID == "" {
		return c.Send(i18n.T(lang, "reg_photo_invalid"))
	}

	form.PhotoID = photo.FileID
	b.states.Set(c.Sender().ID, fsm.StateRegDocument)
	return c.Send(i18n.T(lang, "reg_document"))
}

func (b *Bot) regDocument(c telebot.Context) error {
	ctx, cancel := updateCtx()
	defer cancel()
	lang := b.lang(c)
	form := b.regForm(c)
	if form == nil {
		return b.handleRegisterStart(c)
	}

	doc := c.Message().Document
	if doc == nil || !allowedDocExts[strings.ToLower(filepath.Ext(doc.FileName))] {
		return c.Send(i18n.T(lang, "reg_document_invalid"))
	}
	form.DocumentID = doc.FileID

	u, err := b.users.Register(ctx, c.Sender().ID, form)
	if err != nil {
		if errors.Is(err, service.ErrPhoneTaken) {
			b.states.Clear(c.Sender().ID)
			return c.Send(i18n.T(lang, "reg_phone_taken"), b.guestMenu(lang))
		}
		var fe *validator.FieldErrors
		if errors.As(err, &fe) {
			b.states.Clear(c.Sender().ID)
			return c.Send(i18n.T(lang, "error_generic"), b.guestMenu(lang))
		}
		return err
	}

	b.states.Clear(c.Sender().ID)
	b.notifyAdminNewUser(u, form)
	return c.Send(i18n.T(lang, "reg_done"), b.guestMenu(lang))
}

// regWrongInput nudges the user when a photo or document step gets text.
func (b *Bot) regWrongInput(c telebot.Context, state fsm.State) error {
	lang := b.lang(c)
	if state == fsm.StateRegPhoto {
		return c.Send(i18n.T(lang, "reg_photo_invalid"))
	}
	return c.Send(i18n.T(lang, "reg_document_invalid"))
}

// notifyAdminNewUser forwards the application with the photo, document and
// approve/reject buttons.
func (b *Bot) notifyAdminNewUser(u *model.User, form *model.RegistrationForm) {
	admin := &telebot.Chat{ID: b.adminID}
	lang := b.users.Language(context.Background(), b.adminID)

	card := i18n.T(lang, "admin_new_user", form.Name, form.Age, form.Phone)
	if _, err := b.tb.Send(admin, card, verifyKeyboard(lang, u.ID)); err != nil {
		b.log.Warn().Err(err).Msg("admin notification failed")
		return
	}
	if _, err := b.tb.Send(admin, &telebot.Photo{File: telebot.File{FileID: form.PhotoID}}); err != nil {
		b.log.Warn().Err(err).Msg("admin photo forward failed")
	}
	if _, err := b.tb.Send(admin, &telebot.Document{File: telebot.File{FileID: form.DocumentID}}); err != nil {
		b.log.Warn().Err(err).Msg("admin document forward failed")
	}
}
