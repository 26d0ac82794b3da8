package i18n

var uz = map[string]string{
	// Language and start
	"choose_language": "Tilni tanlang:",
	"language_set":    "Til saqlandi.",
	"start_welcome":   "Xush kelibsiz! Bu bot test va viktorinalar o'tkazadi.",
	"main_menu":       "Asosiy menyu:",

	// Menu buttons
	"btn_tests":      "📝 Testlar",
	"btn_my_tests":   "🆕 Mening testlarim",
	"btn_my_results": "📊 Natijalarim",
	"btn_language":   "🌐 Til",
	"btn_login":      "🔑 Telefon orqali kirish",
	"btn_register":   "✍️ Ro'yxatdan o'tish",
	"btn_logout":     "🚪 Chiqish",
	"btn_admin":      "⚙️ Admin panel",
	"btn_cancel":     "❌ Bekor qilish",
	"cancelled":      "Bekor qilindi.",

	// Registration wizard
	"reg_name":             "Ism va familiyangizni kiriting:",
	"reg_name_invalid":     "Ism kamida 2 ta belgidan iborat bo'lishi kerak. Qayta urinib ko'ring:",
	"reg_age":              "Yoshingizni kiriting:",
	"reg_age_invalid":      "Yosh 1 dan 120 gacha bo'lgan son bo'lishi kerak. Qayta urinib ko'ring:",
	"reg_phone":            "Telefon raqamingizni kiriting (masalan, +998901234567):",
	"reg_phone_invalid":    "Raqam formati noto'g'ri. 10-15 ta raqam kiriting, + mumkin:",
	"reg_phone_taken":      "Bu raqam allaqachon ro'yxatdan o'tgan. Telefon orqali kiring.",
	"reg_photo":            "Fotosuratingizni yuboring:",
	"reg_photo_invalid":    "Aynan fotosurat kerak. Foto yuboring:",
	"reg_document":         "Hujjat yuboring (pdf, jpg, jpeg, png, doc, docx):",
	"reg_document_invalid": "Fayl turi mos emas. Ruxsat etilgan: pdf, jpg, jpeg, png, doc, docx.",
	"reg_done":             "Ariza yuborildi! Admin tasdig'ini kuting.",
	"reg_already":          "Siz allaqachon ro'yxatdan o'tgansiz.",

	// Login / verification
	"login_prompt":           "Ro'yxatdan o'tishda ko'rsatilgan telefon raqamini kiriting:",
	"btn_share_phone":        "📱 Raqamni yuborish",
	"contact_not_yours":      "O'zingizning kontaktingizni yuboring.",
	"login_unknown_phone":    "Bunday raqamli foydalanuvchi topilmadi. Avval ro'yxatdan o'ting.",
	"login_linked_elsewhere": "Bu raqam boshqa Telegram hisobiga bog'langan.",
	"login_ok":               "Siz %s sifatida kirdingiz.",
	"logout_ok":              "Hisobdan chiqdingiz.",
	"not_verified":           "Hisobingiz hali admin tomonidan tasdiqlanmagan.",
	"need_register":          "Avval ro'yxatdan o'ting yoki telefon orqali kiring.",

	// Admin verification
	"admin_new_user":  "Yangi ro'yxatdan o'tish arizasi:\n\nIsm: %s\nYosh: %d\nTelefon: %s",
	"btn_approve":     "✅ Tasdiqlash",
	"btn_reject":      "❌ Rad etish",
	"user_approved":   "%s foydalanuvchi tasdiqlandi.",
	"user_rejected":   "%s arizasi rad etildi.",
	"approved_notice": "Hisobingiz tasdiqlandi! Endi testlar ochiq.",
	"rejected_notice": "Arizangiz rad etildi. Qaytadan ro'yxatdan o'tishingiz mumkin.",

	// Test list
	"tests_header":           "Mavjud testlar:",
	"tests_empty":            "Hozircha testlar yo'q.",
	"my_tests_header":        "Topshirilmagan testlar:",
	"my_tests_empty":         "Topshirilmagan testlar yo'q — hammasi topshirilgan.",
	"test_card":              "📝 %s\nSavollar: %d\nMaks. ball: %.0f",
	"test_card_limit":        "⏱ Vaqt chegarasi: %d daqiqa.",
	"test_card_no_limit":     "⏱ Vaqt chegarasi yo'q",
	"btn_start_test":         "▶️ Boshlash",
	"test_not_started":       "Test hali boshlanmadi. Boshlanishiga: %s.",
	"test_already_completed": "Siz bu testni allaqachon topshirgansiz.",
	"test_unavailable":       "Test mavjud emas.",
	"test_empty":             "Testda hali savollar yo'q.",
	"test_resumed":           "Tugallanmagan testni davom ettiramiz.",

	// Session
	"question_header":    "Savol %d / %d (%.1f ball)\n\n%s",
	"multiple_hint":      "Bir nechta variantni tanlash mumkin, so'ng \"Tasdiqlash\" tugmasini bosing.",
	"text_answer_prompt": "Javobingizni matnli xabar bilan yuboring.",
	"btn_confirm":        "✅ Tasdiqlash",
	"btn_skip":           "⏭ O'tkazib yuborish",
	"btn_finish":         "🏁 Testni yakunlash",
	"btn_prev":           "⬅️",
	"btn_next":           "➡️",
	"time_left":          "⏱ Qolgan vaqt: %s",
	"time_up":            "⏰ Vaqt tugadi! Test avtomatik yakunlandi.",
	"no_active_session":  "Sizda faol test yo'q.",
	"submit_failed":      "Natijani saqlab bo'lmadi. Yana yakunlashga urinib ko'ring.",

	// Summary and grades
	"summary": "\"%s\" testi yakunlandi!\n\nTo'plandi: %.1f / %.1f\nFoiz: %.1f%%\nBaho: %s",
	"grade_5": "A'lo",
	"grade_4": "Yaxshi",
	"grade_3": "Qoniqarli",
	"grade_2": "Qoniqarsiz",
	"grade_1": "Yomon",

	// Results
	"results_header": "Sizning natijalaringiz:",
	"results_empty":  "Siz hali birorta test topshirmadingiz.",
	"result_line":    "%s — %.1f/%.1f (%.1f%%) — %s",
	"btn_report":     "📄 Hisobotni yuklab olish",
	"report_title":   "Natijalar hisoboti: %s",
	"report_entry":   "Test: %s\nBall: %.1f / %.1f\nFoiz: %.1f%%\nBaho: %s\nYakunlandi: %s\nDavomiyligi: %s",

	// Admin panel
	"admin_menu":          "Admin panel:",
	"btn_admin_users":     "👥 Foydalanuvchilar",
	"btn_admin_all_users": "👤 Barcha foydalanuvchilar",
	"btn_admin_tests":     "🗂 Testlar",
	"btn_admin_new_test":  "➕ Yangi test",
	"btn_admin_template":  "📄 Excel shabloni",
	"admin_only":          "Bu buyruq faqat admin uchun.",
	"admin_users_empty":   "Tasdiqlash uchun arizalar yo'q.",
	"admin_no_users":      "Hozircha foydalanuvchilar yo'q.",
	"admin_tests_empty":   "Hozircha testlar yo'q.",
	"admin_user_card":     "Ism: %s\nYosh: %d\nTelefon: %s\nHolat: %s",
	"status_active":       "tasdiqlangan",
	"status_pending":      "kutilmoqda",
	"btn_delete_user":     "🗑 O'chirish",
	"user_deleted":        "%s foydalanuvchi o'chirildi.",
	"btn_delete_all":      "⚠️ Hammasini o'chirish",
	"confirm_delete_all":  "Barcha foydalanuvchilar natijalari bilan o'chirilsinmi?",
	"btn_confirm_delete":  "❗ Ha, hammasini o'chirish",
	"all_users_deleted":   "%d ta foydalanuvchi o'chirildi.",

	// Test wizard
	"ask_test_title":       "Test nomini kiriting:",
	"ask_test_description": "Test tavsifini kiriting (yoki o'tkazib yuborish uchun \"-\"):",
	"ask_time_limit":       "Vaqt chegarasi daqiqalarda (0 — chegarasiz):",
	"ask_time_invalid":     "0 dan 480 gacha butun son kiriting:",
	"ask_schedule":         "Boshlanish vaqti KK.OO.YYYY SS:DD formatida (darhol ochish uchun \"-\"):",
	"ask_schedule_invalid": "Format noto'g'ri. Namuna: 25.12.2026 14:30. Qayta urinib ko'ring:",
	"test_created":         "\"%s\" testi yaratildi. Savollar qo'shing va faollashtiring.",

	// Question wizard
	"ask_q_text":       "Savol matnini kiriting:",
	"ask_q_type":       "Savol turini tanlang:",
	"btn_q_single":     "Bitta javob",
	"btn_q_multiple":   "Bir nechta javob",
	"btn_q_text":       "Matnli javob",
	"ask_q_points":     "Savol necha ball? (masalan, 1 yoki 2.5):",
	"ask_q_points_bad": "Musbat son kiriting:",
	"ask_q_options":    "Variantlarni || bilan ajratib kiriting, to'g'rilarini * bilan belgilang:\n*Parij||London||Berlin",
	"options_invalid":  "Kamida ikkita variant va bittasi * bilan kerak. Qayta urinib ko'ring:",
	"question_added":   "Savol qo'shildi. Jami savollar: %d.",

	// Test management
	"btn_add_question": "➕ Savol",
	"btn_questions":    "📋 Savollar",
	"btn_toggle_on":    "▶️ Faollashtirish",
	"btn_toggle_off":   "⏸ To'xtatish",
	"btn_delete_test":  "🗑 O'chirish",
	"btn_stats":        "📈 Statistika",
	"btn_export":       "📤 Natijalarni yuklab olish",
	"btn_import":       "📥 Excel'dan yuklash",
	"btn_del_question": "🗑",
	"btn_edit_title":   "✏️ Nomi",
	"btn_edit_desc":    "✏️ Tavsifi",
	"ask_new_title":    "Yangi test nomini kiriting:",
	"ask_new_desc":     "Yangi tavsifni kiriting (yoki olib tashlash uchun \"-\"):",
	"test_updated":     "Test yangilandi.",
	"test_activated":   "Test faollashtirildi.",
	"test_deactivated": "Test to'xtatildi.",
	"test_deleted":     "Test savollari va natijalari bilan birga o'chirildi.",
	"question_deleted": "Savol o'chirildi.",
	"stats_text":       "Urinishlar: %d\nYakunlangan: %d\nO'rtacha ball: %.1f",
	"ask_import_file":  "Savollar bilan Excel fayl yuboring (\"Questions\" varog'i):",
	"import_ok":        "%d ta savol import qilindi.",
	"import_failed":    "Import amalga oshmadi: %s",
	"export_empty":     "Bu test bo'yicha hali natijalar yo'q.",

	// Notifications
	"test_open_notice": "📢 \"%s\" testi ochildi! Boshlash uchun \"Testlar\" menyusidan foydalaning.",

	// Errors
	"error_generic":   "Nimadir xato ketdi. Qayta urinib ko'ring.",
	"unknown_command": "Tushunmadim. Menyu tugmalaridan yoki /start dan foydalaning.",
}
