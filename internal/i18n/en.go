package i18n

var en = map[string]string{
	// Language and start
	"choose_language": "Choose a language:",
	"language_set":    "Language saved.",
	"start_welcome":   "Welcome! This bot runs quizzes and tests.",
	"main_menu":       "Main menu:",

	// Menu buttons
	"btn_tests":      "📝 Tests",
	"btn_my_tests":   "🆕 My tests",
	"btn_my_results": "📊 My results",
	"btn_language":   "🌐 Language",
	"btn_login":      "🔑 Log in by phone",
	"btn_register":   "✍️ Register",
	"btn_logout":     "🚪 Log out",
	"btn_admin":      "⚙️ Admin panel",
	"btn_cancel":     "❌ Cancel",
	"cancelled":      "Cancelled.",

	// Registration wizard
	"reg_name":             "Enter your full name:",
	"reg_name_invalid":     "The name must be at least 2 characters. Try again:",
	"reg_age":              "Enter your age:",
	"reg_age_invalid":      "Age must be a number between 1 and 120. Try again:",
	"reg_phone":            "Enter your phone number (e.g. +998901234567):",
	"reg_phone_invalid":    "Invalid number. Enter 10-15 digits, + is allowed:",
	"reg_phone_taken":      "This number is already registered. Use phone login instead.",
	"reg_photo":            "Send your photo:",
	"reg_photo_invalid":    "That has to be a photo. Send a photo:",
	"reg_document":         "Send a document (pdf, jpg, jpeg, png, doc, docx):",
	"reg_document_invalid": "Unsupported file type. Allowed: pdf, jpg, jpeg, png, doc, docx.",
	"reg_done":             "Application sent! Wait for admin approval.",
	"reg_already":          "You are already registered.",

	// Login / verification
	"login_prompt":           "Enter the phone number you registered with:",
	"btn_share_phone":        "📱 Share my number",
	"contact_not_yours":      "Please share your own contact.",
	"login_unknown_phone":    "No user with that number. Please register first.",
	"login_linked_elsewhere": "This number is linked to another Telegram account.",
	"login_ok":               "Logged in as %s.",
	"logout_ok":              "You are logged out.",
	"not_verified":           "Your account has not been approved yet.",
	"need_register":          "Register or log in by phone first.",

	// Admin verification
	"admin_new_user":  "New registration request:\n\nName: %s\nAge: %d\nPhone: %s",
	"btn_approve":     "✅ Approve",
	"btn_reject":      "❌ Reject",
	"user_approved":   "User %s approved.",
	"user_rejected":   "Request from %s rejected.",
	"approved_notice": "Your account is approved! Tests are now available.",
	"rejected_notice": "Your application was rejected. You may register again.",

	// Test list
	"tests_header":           "Available tests:",
	"tests_empty":            "No tests available yet.",
	"my_tests_header":        "Tests you have not taken yet:",
	"my_tests_empty":         "Nothing left — you have completed every available test.",
	"test_card":              "📝 %s\nQuestions: %d\nMax score: %.0f",
	"test_card_limit":        "⏱ Time limit: %d min.",
	"test_card_no_limit":     "⏱ No time limit",
	"btn_start_test":         "▶️ Start",
	"test_not_started":       "The test has not started yet. Starts in %s.",
	"test_already_completed": "You have already completed this test.",
	"test_unavailable":       "This test is not available.",
	"test_empty":             "This test has no questions yet.",
	"test_resumed":           "Resuming your unfinished test.",

	// Session
	"question_header":    "Question %d of %d (%.1f pts)\n\n%s",
	"multiple_hint":      "Select any number of options, then press Confirm.",
	"text_answer_prompt": "Send your answer as a text message.",
	"btn_confirm":        "✅ Confirm",
	"btn_skip":           "⏭ Skip",
	"btn_finish":         "🏁 Finish test",
	"btn_prev":           "⬅️",
	"btn_next":           "➡️",
	"time_left":          "⏱ Time left: %s",
	"time_up":            "⏰ Time is up! The test was submitted automatically.",
	"no_active_session":  "You have no test in progress.",
	"submit_failed":      "Could not save the result. Try finishing again.",

	// Summary and grades
	"summary": "Test \"%s\" finished!\n\nScore: %.1f of %.1f\nPercentage: %.1f%%\nGrade: %s",
	"grade_5": "Excellent",
	"grade_4": "Good",
	"grade_3": "Satisfactory",
	"grade_2": "Unsatisfactory",
	"grade_1": "Poor",

	// Results
	"results_header": "Your results:",
	"results_empty":  "You have not completed any tests yet.",
	"result_line":    "%s — %.1f/%.1f (%.1f%%) — %s",
	"btn_report":     "📄 Download report",
	"report_title":   "Results report: %s",
	"report_entry":   "Test: %s\nScore: %.1f of %.1f\nPercentage: %.1f%%\nGrade: %s\nFinished: %s\nDuration: %s",

	// Admin panel
	"admin_menu":          "Admin panel:",
	"btn_admin_users":     "👥 Users",
	"btn_admin_all_users": "👤 All users",
	"btn_admin_tests":     "🗂 Tests",
	"btn_admin_new_test":  "➕ New test",
	"btn_admin_template":  "📄 Excel template",
	"admin_only":          "This command is admin-only.",
	"admin_users_empty":   "No registrations waiting for approval.",
	"admin_no_users":      "No users yet.",
	"admin_tests_empty":   "No tests yet.",
	"admin_user_card":     "Name: %s\nAge: %d\nPhone: %s\nStatus: %s",
	"status_active":       "approved",
	"status_pending":      "pending",
	"btn_delete_user":     "🗑 Delete",
	"user_deleted":        "User %s deleted.",
	"btn_delete_all":      "⚠️ Delete all users",
	"confirm_delete_all":  "Delete every user along with their results?",
	"btn_confirm_delete":  "❗ Yes, delete everyone",
	"all_users_deleted":   "Deleted %d users.",

	// Test wizard
	"ask_test_title":       "Enter the test title:",
	"ask_test_description": "Enter a description (or \"-\" to skip):",
	"ask_time_limit":       "Time limit in minutes (0 for none):",
	"ask_time_invalid":     "Enter a whole number between 0 and 480:",
	"ask_schedule":         "Start time as DD.MM.YYYY HH:MM (or \"-\" to open immediately):",
	"ask_schedule_invalid": "Invalid format. Example: 25.12.2026 14:30. Try again:",
	"test_created":         "Test \"%s\" created. Add questions and activate it.",

	// Question wizard
	"ask_q_text":       "Enter the question text:",
	"ask_q_type":       "Choose the question type:",
	"btn_q_single":     "Single answer",
	"btn_q_multiple":   "Multiple answers",
	"btn_q_text":       "Text answer",
	"ask_q_points":     "How many points is it worth? (e.g. 1 or 2.5):",
	"ask_q_points_bad": "Enter a positive number:",
	"ask_q_options":    "Enter options separated by ||, mark correct ones with *:\n*Paris||London||Berlin",
	"options_invalid":  "Need at least two options and one marked with *. Try again:",
	"question_added":   "Question added. Total questions: %d.",

	// Test management
	"btn_add_question": "➕ Question",
	"btn_questions":    "📋 Questions",
	"btn_toggle_on":    "▶️ Activate",
	"btn_toggle_off":   "⏸ Deactivate",
	"btn_delete_test":  "🗑 Delete",
	"btn_stats":        "📈 Statistics",
	"btn_export":       "📤 Export results",
	"btn_import":       "📥 Import from Excel",
	"btn_del_question": "🗑",
	"btn_edit_title":   "✏️ Title",
	"btn_edit_desc":    "✏️ Description",
	"ask_new_title":    "Enter the new test title:",
	"ask_new_desc":     "Enter the new description (or \"-\" to clear):",
	"test_updated":     "Test updated.",
	"test_activated":   "Test activated.",
	"test_deactivated": "Test deactivated.",
	"test_deleted":     "Test deleted along with its questions and results.",
	"question_deleted": "Question deleted.",
	"stats_text":       "Attempts: %d\nCompleted: %d\nAverage score: %.1f",
	"ask_import_file":  "Send an Excel file with questions (sheet \"Questions\"):",
	"import_ok":        "Imported %d questions.",
	"import_failed":    "Import failed: %s",
	"export_empty":     "No results for this test yet.",

	// Notifications
	"test_open_notice": "📢 Test \"%s\" is now open! Use the Tests menu to start.",

	// Errors
	"error_generic":   "Something went wrong. Please try again.",
	"unknown_command": "I don't understand. Use the menu buttons or /start.",
}
