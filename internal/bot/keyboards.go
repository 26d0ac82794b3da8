package bot

import (
	"fmt"

	"gopkg.in/telebot.v3"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/engine"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/i18n"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// Callback data uses "verb:arg1:arg2". parseCallback in router.go is the
// other half of this contract.

func btn(text, data string) telebot.InlineButton {
	return telebot.InlineButton{Text: text, Data: data}
}

// mainMenu is the persistent reply keyboard shown after login.
func (b *Bot) mainMenu(lang string, admin bool) *telebot.ReplyMarkup {
	rows := [][]telebot.ReplyButton{
		{{Text: i18n.T(lang, "btn_tests")}, {Text: i18n.T(lang, "btn_my_tests")}},
		{{Text: i18n.T(lang, "btn_my_results")}, {Text: i18n.T(lang, "btn_language")}},
		{{Text: i18n.T(lang, "btn_logout")}},
	}
	if admin {
		rows = append(rows, []telebot.ReplyButton{{Text: i18n.T(lang, "btn_admin")}})
	}
	return &telebot.ReplyMarkup{ReplyKeyboard: rows, ResizeKeyboard: true}
}

// guestMenu is shown to unknown chats: register or log in.
func (b *Bot) guestMenu(lang string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		ReplyKeyboard: [][]telebot.ReplyButton{
			{{Text: i18n.T(lang, "btn_register")}, {Text: i18n.T(lang, "btn_login")}},
			{{Text: i18n.T(lang, "btn_language")}},
		},
		ResizeKeyboard: true,
	}
}

// contactKeyboard offers Telegram's native share-contact button next to
// typing the number by hand.
func contactKeyboard(lang string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		ReplyKeyboard: [][]telebot.ReplyButton{
			{{Text: i18n.T(lang, "btn_share_phone"), Contact: true}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

func languageKeyboard() *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{btn("🇷🇺 Русский", "lang:ru")},
			{btn("🇬🇧 English", "lang:en")},
			{btn("🇺🇿 O'zbekcha", "lang:uz")},
		},
	}
}

func startTestKeyboard(lang string, testID int64) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{btn(i18n.T(lang, "btn_start_test"), fmt.Sprintf("test:start:%d", testID))},
		},
	}
}

// questionKeyboard renders the option buttons plus the navigation row for
// the view produced by the engine.
func questionKeyboard(lang string, v *engine.QuestionView) *telebot.ReplyMarkup {
	var rows [][]telebot.InlineButton

	for _, o := range v.Options {
		label := fmt.Sprintf("%d. %s", o.Index, o.Text)
		if o.Selected {
			label = "✅ " + label
		}
		rows = append(rows, []telebot.InlineButton{
			btn(label, fmt.Sprintf("ans:%d:%d", v.QuestionID, o.ID)),
		})
	}

	if v.Type == model.QuestionTypeMultiple {
		rows = append(rows, []telebot.InlineButton{btn(i18n.T(lang, "btn_confirm"), "sess:confirm")})
	}

	var nav []telebot.InlineButton
	if v.CanPrev {
		nav = append(nav, btn(i18n.T(lang, "btn_prev"), "sess:prev"))
	}
	nav = append(nav, btn(i18n.T(lang, "btn_skip"), "sess:skip"))
	if v.CanNext {
		nav = append(nav, btn(i18n.T(lang, "btn_next"), "sess:next"))
	}
	rows = append(rows, nav)

	rows = append(rows, []telebot.InlineButton{btn(i18n.T(lang, "btn_finish"), "sess:finish")})

	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

func verifyKeyboard(lang string, userID int64) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{{
			btn(i18n.T(lang, "btn_approve"), fmt.Sprintf("verify:yes:%d", userID)),
			btn(i18n.T(lang, "btn_reject"), fmt.Sprintf("verify:no:%d", userID)),
		}},
	}
}

func deleteUserKeyboard(lang string, userID int64) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{{
			btn(i18n.T(lang, "btn_delete_user"), fmt.Sprintf("usr:del:%d", userID)),
		}},
	}
}

func deleteAllUsersKeyboard(lang string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{{
			btn(i18n.T(lang, "btn_delete_all"), "usr:delall"),
		}},
	}
}

func confirmDeleteAllKeyboard(lang string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{btn(i18n.T(lang, "btn_confirm_delete"), "usr:delall:yes")},
			{btn(i18n.T(lang, "btn_cancel"), "usr:delall:no")},
		},
	}
}

func reportKeyboard(lang string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{{
			btn(i18n.T(lang, "btn_report"), "res:report"),
		}},
	}
}

func adminMenuKeyboard(lang string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{btn(i18n.T(lang, "btn_admin_users"), "admin:users")},
			{btn(i18n.T(lang, "btn_admin_all_users"), "admin:allusers")},
			{btn(i18n.T(lang, "btn_admin_tests"), "admin:tests")},
			{btn(i18n.T(lang, "btn_admin_new_test"), "admin:newtest")},
			{btn(i18n.T(lang, "btn_admin_template"), "admin:template")},
		},
	}
}

func adminTestListKeyboard(tests []model.Test) *telebot.ReplyMarkup {
	var rows [][]telebot.InlineButton
	for _, t := range tests {
		label := t.Title
		if !t.IsActive {
			label = "⏸ " + label
		}
		rows = append(rows, []telebot.InlineButton{
			btn(label, fmt.Sprintf("at:open:%d", t.ID)),
		})
	}
	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

func adminTestKeyboard(lang string, t *model.Test) *telebot.ReplyMarkup {
	toggle := i18n.T(lang, "btn_toggle_on")
	if t.IsActive {
		toggle = i18n.T(lang, "btn_toggle_off")
	}
	id := t.ID
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{
				btn(i18n.T(lang, "btn_add_question"), fmt.Sprintf("at:addq:%d", id)),
				btn(i18n.T(lang, "btn_questions"), fmt.Sprintf("at:questions:%d", id)),
			},
			{
				btn(i18n.T(lang, "btn_edit_title"), fmt.Sprintf("at:etitle:%d", id)),
				btn(i18n.T(lang, "btn_edit_desc"), fmt.Sprintf("at:edesc:%d", id)),
			},
			{
				btn(toggle, fmt.Sprintf("at:toggle:%d", id)),
				btn(i18n.T(lang, "btn_delete_test"), fmt.Sprintf("at:del:%d", id)),
			},
			{
				btn(i18n.T(lang, "btn_stats"), fmt.Sprintf("at:stats:%d", id)),
			},
			{
				btn(i18n.T(lang, "btn_import"), fmt.Sprintf("at:import:%d", id)),
				btn(i18n.T(lang, "btn_export"), fmt.Sprintf("at:export:%d", id)),
			},
		},
	}
}

func adminQuestionsKeyboard(questions []model.Question) *telebot.ReplyMarkup {
	var rows [][]telebot.InlineButton
	for _, q := range questions {
		text := q.Text
		if len([]rune(text)) > 30 {
			text = string([]rune(text)[:30]) + "…"
		}
		rows = append(rows, []telebot.InlineButton{
			btn(fmt.Sprintf("%d. %s", q.OrderNum, text), "noop"),
			btn("🗑", fmt.Sprintf("at:delq:%d:%d", q.TestID, q.ID)),
		})
	}
	return &telebot.ReplyMarkup{InlineKeyboard: rows}
}

func questionTypeKeyboard(lang string) *telebot.ReplyMarkup {
	return &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{btn(i18n.T(lang, "btn_q_single"), "qtype:single")},
			{btn(i18n.T(lang, "btn_q_multiple"), "qtype:multiple")},
			{btn(i18n.T(lang, "btn_q_text"), "qtype:text")},
		},
	}
}

// matchButton reports whether text equals the key's label in any language,
// so reply-keyboard taps work no matter which language rendered the menu.
func matchButton(text, key string) bool {
	for _, lang := range []string{model.LangRU, model.LangEN, model.LangUZ} {
		if i18n.T(lang, key) == text {
			return true
		}
	}
	return false
}
