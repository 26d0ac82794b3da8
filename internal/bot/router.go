package bot

import (
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/fsm"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
)

// routeText dispatches free-form text: an active wizard step wins, then the
// reply-keyboard menu buttons, then a text answer for a live session.
func (b *Bot) routeText(c telebot.Context) error {
	chatID := c.Sender().ID

	if state := b.states.State(chatID); state != fsm.StateIdle {
		return b.routeWizardText(c, state)
	}

	text := c.Text()
	switch {
	case matchButton(text, "btn_tests"):
		return b.handleTestList(c)
	case matchButton(text, "btn_my_tests"):
		return b.handleMyTests(c)
	case matchButton(text, "btn_my_results"):
		return b.handleMyResults(c)
	case matchButton(text, "btn_language"):
		return b.handleLanguageMenu(c)
	case matchButton(text, "btn_register"):
		return b.handleRegisterStart(c)
	case matchButton(text, "btn_login"):
		return b.handleLoginStart(c)
	case matchButton(text, "btn_logout"):
		return b.handleLogout(c)
	case matchButton(text, "btn_admin"):
		return b.handleAdminMenu(c)
	}

	// Mid-session free text is the answer to a text question.
	if b.engine.Store().Get(chatID) != nil {
		return b.handleTextAnswer(c)
	}

	return c.Send(i18n.T(b.lang(c), "unknown_command"))
}

func (b *Bot) routeWizardText(c telebot.Context, state fsm.State) error {
	switch state {
	case fsm.StateRegName:
		return b.regName(c)
	case fsm.StateRegAge:
		return b.regAge(c)
	case fsm.StateRegPhone:
		return b.regPhone(c)
	case fsm.StateRegPhoto, fsm.StateRegDocument:
		// These steps want an upload, not text.
		return b.regWrongInput(c, state)
	case fsm.StateLoginPhone:
		return b.loginPhone(c)
	case fsm.StateTestTitle:
		return b.testWizardTitle(c)
	case fsm.StateTestDescription:
		return b.testWizardDescription(c)
	case fsm.StateTestTimeLimit:
		return b.testWizardTimeLimit(c)
	case fsm.StateTestSchedule:
		return b.testWizardSchedule(c)
	case fsm.StateEditTitle:
		return b.editTestTitle(c)
	case fsm.StateEditDescription:
		return b.editTestDescription(c)
	case fsm.StateQuestionText:
		return b.questionWizardText(c)
	case fsm.StateQuestionType:
		return c.Send(i18n.T(b.lang(c), "ask_q_type"), questionTypeKeyboard(b.lang(c)))
	case fsm.StateQuestionPoints:
		return b.questionWizardPoints(c)
	case fsm.StateQuestionOptions:
		return b.questionWizardOptions(c)
	case fsm.StateImportFile:
		return c.Send(i18n.T(b.lang(c), "ask_import_file"))
	default:
		b.states.Clear(c.Sender().ID)
		return c.Send(i18n.T(b.lang(c), "unknown_command"))
	}
}

// routeContact handles Telegram's share-contact button during the phone
// steps of login and registration.
func (b *Bot) routeContact(c telebot.Context) error {
	contact := c.Message().Contact
	if contact == nil {
		return nil
	}
	if contact.UserID != 0 && contact.UserID != c.Sender().ID {
		return c.Send(i18n.T(b.lang(c), "contact_not_yours"))
	}

	phone := contact.PhoneNumber
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	switch b.states.State(c.Sender().ID) {
	case fsm.StateLoginPhone:
		return b.loginWithPhone(c, phone)
	case fsm.StateRegPhone:
		return b.regPhoneValue(c, phone)
	}
	return nil
}

func (b *Bot) routePhoto(c telebot.Context) error {
	if b.states.State(c.Sender().ID) == fsm.StateRegPhoto {
		return b.regPhoto(c)
	}
	return nil
}

func (b *Bot) routeDocument(c telebot.Context) error {
	switch b.states.State(c.Sender().ID) {
	case fsm.StateRegDocument:
		return b.regDocument(c)
	case fsm.StateImportFile:
		return b.adminImportFile(c)
	}
	return nil
}

// routeCallback parses "verb:args" callback data and dispatches. Telebot
// prefixes raw callback data with \f, which gets stripped here.
func (b *Bot) routeCallback(c telebot.Context) error {
	data := strings.TrimPrefix(c.Callback().Data, "\f")
	parts := strings.Split(data, ":")

	var err error
	switch parts[0] {
	case "lang":
		err = b.handleLangChosen(c, parts[1:])
	case "test":
		err = b.handleStartTest(c, parts[1:])
	case "ans":
		err = b.handleAnswerTap(c, parts[1:])
	case "sess":
		err = b.handleSessionAction(c, parts[1:])
	case "verify":
		err = b.handleVerify(c, parts[1:])
	case "admin":
		err = b.handleAdminAction(c, parts[1:])
	case "at":
		err = b.handleAdminTestAction(c, parts[1:])
	case "usr":
		err = b.handleUserAdminAction(c, parts[1:])
	case "res":
		err = b.handleResultsReport(c)
	case "qtype":
		err = b.questionWizardType(c, parts[1:])
	case "noop":
		return c.Respond()
	default:
		return c.Respond()
	}

	if err != nil {
		b.log.Error().Err(err).Str("data", data).Msg("callback failed")
		return c.Respond(&telebot.CallbackResponse{Text: i18n.T(b.lang(c), "error_generic")})
	}
	return nil
}

// callbackID parses one numeric callback argument.
func callbackID(args []string, idx int) (int64, bool) {
	if idx >= len(args) {
		return 0, false
	}
	id, err := strconv.ParseInt(args[idx], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
