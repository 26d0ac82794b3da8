package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

func workbook(t *testing.T, sheet string, rows [][]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			t.Fatalf("DeleteSheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

var header = []any{"question", "type", "points", "options"}

func TestParseQuestions(t *testing.T) {
	r := workbook(t, SheetName, [][]any{
		header,
		{"Capital of France?", "single", 2, "*Paris||London||Berlin"},
		{"Even numbers", "multiple", "1,5", "*2||3||*4"},
		{"Explain gravity", "text", "", ""},
	})

	got, err := ParseQuestions(r)
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("questions = %d, want 3", len(got))
	}

	q := got[0]
	if q.Type != model.QuestionTypeSingle || q.Points != 2 {
		t.Fatalf("q1 = %+v", q)
	}
	if len(q.Options) != 3 || !q.Options[0].IsCorrect || q.Options[0].Text != "Paris" {
		t.Fatalf("q1 options = %+v", q.Options)
	}
	if q.Options[1].IsCorrect {
		t.Fatal("London marked correct")
	}

	// Comma decimal separators are accepted.
	if got[1].Points != 1.5 {
		t.Fatalf("q2 points = %v, want 1.5", got[1].Points)
	}

	// Text questions need no options; blank points default to 1.
	if got[2].Type != model.QuestionTypeText || got[2].Points != 1 || got[2].Options != nil {
		t.Fatalf("q3 = %+v", got[2])
	}
}

func TestParseQuestionsSkipsBlankRowsAndDefaults(t *testing.T) {
	r := workbook(t, SheetName, [][]any{
		header,
		{"", "single", 1, "*a||b"},
		{"No type or points", "", "garbage", "*a||b"},
	})

	got, err := ParseQuestions(r)
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("questions = %d, want 1 (blank row skipped)", len(got))
	}
	// Type defaults to single, malformed points to 1.
	if got[0].Type != model.QuestionTypeSingle || got[0].Points != 1 {
		t.Fatalf("defaults not applied: %+v", got[0])
	}
}

func TestParseQuestionsFallsBackToFirstSheet(t *testing.T) {
	r := workbook(t, "Sheet1", [][]any{
		header,
		{"From the default sheet", "single", 1, "*yes||no"},
	})

	got, err := ParseQuestions(r)
	if err != nil {
		t.Fatalf("ParseQuestions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("questions = %d, want 1", len(got))
	}
}

func TestParseQuestionsRejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		rows [][]any
	}{
		{"unknown type", [][]any{header, {"q", "ranking", 1, "*a||b"}}},
		{"one option", [][]any{header, {"q", "single", 1, "*a"}}},
		{"no correct marker", [][]any{header, {"q", "single", 1, "a||b"}}},
		{"no data rows", [][]any{header}},
		{"missing question column", [][]any{{"prompt", "type"}, {"q", "single"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseQuestions(workbook(t, SheetName, tc.rows)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestTemplateRoundTrips(t *testing.T) {
	f, err := BuildTemplate()
	if err != nil {
		t.Fatalf("BuildTemplate: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	got, err := ParseQuestions(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("template questions = %d, want 3", len(got))
	}
	types := []model.QuestionType{
		model.QuestionTypeSingle, model.QuestionTypeMultiple, model.QuestionTypeText,
	}
	for i, want := range types {
		if got[i].Type != want {
			t.Errorf("template q%d type = %q, want %q", i+1, got[i].Type, want)
		}
	}
}

func TestBuildResults(t *testing.T) {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	finished := started.Add(20 * time.Minute)

	rows := []model.ResultRow{
		{
			TestResult: model.TestResult{Score: 6, MaxScore: 9, StartedAt: started, CompletedAt: &finished},
			UserName:   "Alice",
			Phone:      "+998901112233",
		},
		{
			TestResult: model.TestResult{Score: 0, MaxScore: 9, StartedAt: started},
			UserName:   "Bob",
			Phone:      "+998904445566",
		},
	}

	f, err := BuildResults(rows)
	if err != nil {
		t.Fatalf("BuildResults: %v", err)
	}

	cells, err := f.GetRows("Results")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(cells))
	}
	if cells[1][0] != "Alice" || cells[1][7] != "completed" {
		t.Fatalf("alice row = %v", cells[1])
	}
	if cells[2][0] != "Bob" || cells[2][7] != "in progress" {
		t.Fatalf("bob row = %v", cells[2])
	}
	if cells[1][4] != "66.7%" {
		t.Fatalf("alice percent = %q, want 66.7%%", cells[1][4])
	}
}
