package i18n

var ru = map[string]string{
	// Language and start
	"choose_language": "Выберите язык:",
	"language_set":    "Язык сохранён.",
	"start_welcome":   "Добро пожаловать! Это бот для прохождения тестов.",
	"main_menu":       "Главное меню:",

	// Menu buttons
	"btn_tests":      "📝 Тесты",
	"btn_my_tests":   "🆕 Мои тесты",
	"btn_my_results": "📊 Мои результаты",
	"btn_language":   "🌐 Язык",
	"btn_login":      "🔑 Войти по телефону",
	"btn_register":   "✍️ Регистрация",
	"btn_logout":     "🚪 Выйти",
	"btn_admin":      "⚙️ Админ-панель",
	"btn_cancel":     "❌ Отмена",
	"cancelled":      "Действие отменено.",

	// Registration wizard
	"reg_name":             "Введите ваше имя и фамилию:",
	"reg_name_invalid":     "Имя должно содержать минимум 2 символа. Попробуйте ещё раз:",
	"reg_age":              "Введите ваш возраст:",
	"reg_age_invalid":      "Возраст должен быть числом от 1 до 120. Попробуйте ещё раз:",
	"reg_phone":            "Введите номер телефона (например, +998901234567):",
	"reg_phone_invalid":    "Неверный формат номера. Введите 10–15 цифр, можно с +:",
	"reg_phone_taken":      "Этот номер уже зарегистрирован. Используйте вход по телефону.",
	"reg_photo":            "Отправьте вашу фотографию:",
	"reg_photo_invalid":    "Нужна именно фотография. Отправьте фото:",
	"reg_document":         "Отправьте документ (pdf, jpg, jpeg, png, doc, docx):",
	"reg_document_invalid": "Недопустимый тип файла. Разрешены: pdf, jpg, jpeg, png, doc, docx.",
	"reg_done":             "Заявка отправлена! Ожидайте подтверждения администратора.",
	"reg_already":          "Вы уже зарегистрированы.",

	// Login / verification
	"login_prompt":           "Введите номер телефона, указанный при регистрации:",
	"btn_share_phone":        "📱 Отправить номер",
	"contact_not_yours":      "Отправьте свой собственный контакт.",
	"login_unknown_phone":    "Пользователь с таким номером не найден. Пройдите регистрацию.",
	"login_linked_elsewhere": "Этот номер привязан к другому аккаунту Telegram.",
	"login_ok":               "Вы вошли как %s.",
	"logout_ok":              "Вы вышли из аккаунта.",
	"not_verified":           "Ваш аккаунт ещё не подтверждён администратором.",
	"need_register":          "Сначала пройдите регистрацию или войдите по телефону.",

	// Admin verification
	"admin_new_user":  "Новая заявка на регистрацию:\n\nИмя: %s\nВозраст: %d\nТелефон: %s",
	"btn_approve":     "✅ Подтвердить",
	"btn_reject":      "❌ Отклонить",
	"user_approved":   "Пользователь %s подтверждён.",
	"user_rejected":   "Заявка пользователя %s отклонена.",
	"approved_notice": "Ваш аккаунт подтверждён! Теперь вам доступны тесты.",
	"rejected_notice": "Ваша заявка отклонена. Вы можете зарегистрироваться заново.",

	// Test list
	"tests_header":           "Доступные тесты:",
	"tests_empty":            "Пока нет доступных тестов.",
	"my_tests_header":        "Непройденные тесты:",
	"my_tests_empty":         "Непройденных тестов нет — всё сдано.",
	"test_card":              "📝 %s\nВопросов: %d\nМакс. балл: %.0f",
	"test_card_limit":        "⏱ Лимит времени: %d мин.",
	"test_card_no_limit":     "⏱ Без ограничения времени",
	"btn_start_test":         "▶️ Начать",
	"test_not_started":       "Тест ещё не начался. До начала: %s.",
	"test_already_completed": "Вы уже прошли этот тест.",
	"test_unavailable":       "Тест недоступен.",
	"test_empty":             "В тесте пока нет вопросов.",
	"test_resumed":           "Продолжаем незавершённый тест.",

	// Session
	"question_header":    "Вопрос %d из %d (%.1f балл.)\n\n%s",
	"multiple_hint":      "Можно выбрать несколько вариантов, затем нажмите «Подтвердить».",
	"text_answer_prompt": "Отправьте ответ текстовым сообщением.",
	"btn_confirm":        "✅ Подтвердить",
	"btn_skip":           "⏭ Пропустить",
	"btn_finish":         "🏁 Завершить тест",
	"btn_prev":           "⬅️",
	"btn_next":           "➡️",
	"time_left":          "⏱ Осталось: %s",
	"time_up":            "⏰ Время вышло! Тест завершён автоматически.",
	"no_active_session":  "У вас нет активного теста.",
	"submit_failed":      "Не удалось сохранить результат. Попробуйте завершить ещё раз.",

	// Summary and grades
	"summary": "Тест «%s» завершён!\n\nНабрано: %.1f из %.1f\nПроцент: %.1f%%\nОценка: %s",
	"grade_5": "Отлично",
	"grade_4": "Хорошо",
	"grade_3": "Удовлетворительно",
	"grade_2": "Неудовлетворительно",
	"grade_1": "Плохо",

	// Results
	"results_header": "Ваши результаты:",
	"results_empty":  "Вы ещё не прошли ни одного теста.",
	"result_line":    "%s — %.1f/%.1f (%.1f%%) — %s",
	"btn_report":     "📄 Скачать отчёт",
	"report_title":   "Отчёт о результатах: %s",
	"report_entry":   "Тест: %s\nБаллы: %.1f из %.1f\nПроцент: %.1f%%\nОценка: %s\nЗавершён: %s\nДлительность: %s",

	// Admin panel
	"admin_menu":          "Админ-панель:",
	"btn_admin_users":     "👥 Пользователи",
	"btn_admin_all_users": "👤 Все пользователи",
	"btn_admin_tests":     "🗂 Тесты",
	"btn_admin_new_test":  "➕ Новый тест",
	"btn_admin_template":  "📄 Шаблон Excel",
	"admin_only":          "Команда доступна только администратору.",
	"admin_users_empty":   "Нет заявок на подтверждение.",
	"admin_no_users":      "Пользователей пока нет.",
	"admin_tests_empty":   "Тестов пока нет.",
	"admin_user_card":     "Имя: %s\nВозраст: %d\nТелефон: %s\nСтатус: %s",
	"status_active":       "подтверждён",
	"status_pending":      "ожидает",
	"btn_delete_user":     "🗑 Удалить",
	"user_deleted":        "Пользователь %s удалён.",
	"btn_delete_all":      "⚠️ Удалить всех",
	"confirm_delete_all":  "Удалить всех пользователей вместе с их результатами?",
	"btn_confirm_delete":  "❗ Да, удалить всех",
	"all_users_deleted":   "Удалено пользователей: %d.",

	// Test wizard
	"ask_test_title":       "Введите название теста:",
	"ask_test_description": "Введите описание теста (или «-», чтобы пропустить):",
	"ask_time_limit":       "Лимит времени в минутах (0 — без лимита):",
	"ask_time_invalid":     "Введите целое число от 0 до 480:",
	"ask_schedule":         "Время начала в формате ДД.ММ.ГГГГ ЧЧ:ММ (или «-», чтобы начать сразу):",
	"ask_schedule_invalid": "Неверный формат. Пример: 25.12.2026 14:30. Попробуйте ещё раз:",
	"test_created":         "Тест «%s» создан. Добавьте вопросы и активируйте его.",

	// Question wizard
	"ask_q_text":       "Введите текст вопроса:",
	"ask_q_type":       "Выберите тип вопроса:",
	"btn_q_single":     "Один ответ",
	"btn_q_multiple":   "Несколько ответов",
	"btn_q_text":       "Текстовый ответ",
	"ask_q_points":     "Сколько баллов за вопрос? (например, 1 или 2.5):",
	"ask_q_points_bad": "Введите положительное число:",
	"ask_q_options":    "Введите варианты через ||, правильные пометьте *:\n*Париж||Лондон||Берлин",
	"options_invalid":  "Нужно минимум два варианта и хотя бы один с *. Попробуйте ещё раз:",
	"question_added":   "Вопрос добавлен. Всего вопросов: %d.",

	// Test management
	"btn_add_question": "➕ Вопрос",
	"btn_questions":    "📋 Вопросы",
	"btn_toggle_on":    "▶️ Активировать",
	"btn_toggle_off":   "⏸ Деактивировать",
	"btn_delete_test":  "🗑 Удалить",
	"btn_stats":        "📈 Статистика",
	"btn_export":       "📤 Выгрузить результаты",
	"btn_import":       "📥 Загрузить из Excel",
	"btn_del_question": "🗑",
	"btn_edit_title":   "✏️ Название",
	"btn_edit_desc":    "✏️ Описание",
	"ask_new_title":    "Введите новое название теста:",
	"ask_new_desc":     "Введите новое описание (или «-», чтобы убрать):",
	"test_updated":     "Тест обновлён.",
	"test_activated":   "Тест активирован.",
	"test_deactivated": "Тест деактивирован.",
	"test_deleted":     "Тест удалён вместе с вопросами и результатами.",
	"question_deleted": "Вопрос удалён.",
	"stats_text":       "Попыток: %d\nЗавершено: %d\nСредний балл: %.1f",
	"ask_import_file":  "Отправьте файл Excel с вопросами (лист «Questions»):",
	"import_ok":        "Импортировано вопросов: %d.",
	"import_failed":    "Не удалось импортировать: %s",
	"export_empty":     "По этому тесту ещё нет результатов.",

	// Notifications
	"test_open_notice": "📢 Тест «%s» теперь доступен! Откройте меню «Тесты», чтобы начать.",

	// Errors
	"error_generic":   "Что-то пошло не так. Попробуйте ещё раз.",
	"unknown_command": "Не понимаю. Используйте кнопки меню или /start.",
}
