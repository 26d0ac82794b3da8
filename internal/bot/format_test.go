package bot

import (
	"strings"
	"testing"
	"time"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/engine"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{90 * time.Minute, "1h30m"},
		{time.Hour, "1h00m"},
		{12*time.Minute + 30*time.Second, "12m30s"},
		{45 * time.Second, "0m45s"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestMatchButtonAcrossLanguages(t *testing.T) {
	// The reply keyboard may have been rendered in any language; the text
	// router must recognize all of them.
	for _, label := range []string{"📝 Тесты", "📝 Tests", "📝 Testlar"} {
		if !matchButton(label, "btn_tests") {
			t.Errorf("matchButton(%q, btn_tests) = false", label)
		}
	}
	if matchButton("📝 Тесты", "btn_logout") {
		t.Fatal("matchButton matched the wrong key")
	}
}

func TestQuestionTextPerType(t *testing.T) {
	base := &engine.QuestionView{
		Position: 2, Total: 5, Points: 1.5, Text: "Why?",
	}

	base.Type = model.QuestionTypeMultiple
	if got := questionText("en", base); !strings.Contains(got, "press Confirm") {
		t.Errorf("multiple hint missing: %q", got)
	}

	base.Type = model.QuestionTypeText
	if got := questionText("en", base); !strings.Contains(got, "text message") {
		t.Errorf("text prompt missing: %q", got)
	}

	base.TimeLeft = 5 * time.Minute
	if got := questionText("en", base); !strings.Contains(got, "5m00s") {
		t.Errorf("time left missing: %q", got)
	}
}
