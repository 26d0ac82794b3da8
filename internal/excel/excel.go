// Package excel implements the spreadsheet surface of the bot: the question
// import format, the blank template handed to admins, and the results export.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// SheetName is where question imports are looked for first. Workbooks
// without it fall back to their first sheet.
const SheetName = "Questions"

// optionSeparator joins options in one cell; correctMarker prefixes the
// correct ones.
const (
	optionSeparator = "||"
	correctMarker   = "*"
)

// ParsedQuestion is one imported question before it gets database IDs.
type ParsedQuestion struct {
	Text    string
	Type    model.QuestionType
	Points  float64
	Options []model.Option
}

// RowError points at the spreadsheet row that could not be imported.
type RowError struct {
	Row    int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ParseQuestions reads the import workbook. Column headers are matched
// case-insensitively; rows with an empty question cell are skipped; a
// missing or malformed points cell defaults to 1.0. Row order becomes the
// question order.
func ParseQuestions(r io.Reader) ([]ParsedQuestion, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := SheetName
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	qCol, ok := cols["question"]
	if !ok {
		return nil, fmt.Errorf("sheet %q is missing the question column", sheet)
	}
	tCol, hasType := cols["type"]
	pCol, hasPoints := cols["points"]
	oCol, hasOptions := cols["options"]

	cell := func(row []string, idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var questions []ParsedQuestion
	for n, row := range rows[1:] {
		text := cell(row, qCol)
		if text == "" {
			continue
		}
		rowNum := n + 2 // 1-based, after the header

		q := ParsedQuestion{Text: text, Type: model.QuestionTypeSingle, Points: 1.0}

		if hasType {
			if t := model.QuestionType(strings.ToLower(cell(row, tCol))); t != "" {
				if !t.Valid() {
					return nil, &RowError{Row: rowNum, Reason: fmt.Sprintf("unknown question type %q", t)}
				}
				q.Type = t
			}
		}

		if hasPoints {
			if raw := cell(row, pCol); raw != "" {
				if p, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64); err == nil && p > 0 {
					q.Points = p
				}
			}
		}

		if q.Type != model.QuestionTypeText {
			if !hasOptions {
				return nil, &RowError{Row: rowNum, Reason: "choice question without options column"}
			}
			opts, err := parseOptionsCell(cell(row, oCol))
			if err != nil {
				return nil, &RowError{Row: rowNum, Reason: err.Error()}
			}
			q.Options = opts
		}

		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in sheet %q", sheet)
	}
	return questions, nil
}

func parseOptionsCell(raw string) ([]model.Option, error) {
	var options []model.Option
	correct := 0
	for _, part := range strings.Split(raw, optionSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		o := model.Option{Text: part}
		if strings.HasPrefix(part, correctMarker) {
			o.Text = strings.TrimSpace(strings.TrimPrefix(part, correctMarker))
			o.IsCorrect = true
			correct++
		}
		if o.Text == "" {
			continue
		}
		options = append(options, o)
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("needs at least two options")
	}
	if correct == 0 {
		return nil, fmt.Errorf("no option marked correct with %q", correctMarker)
	}
	return options, nil
}

// BuildTemplate produces the blank import workbook with the header row and
// one example of each question type.
func BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"question", "type", "points", "options"},
		{"What is the capital of France?", "single", 1, "*Paris||London||Berlin"},
		{"Select the even numbers", "multiple", 2, "*2||3||*4||5"},
		{"Describe the water cycle", "text", 3, ""},
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cellRef, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// BuildResults produces the results export for one test: a row per attempt
// with the user, score and timing.
func BuildResults(results []model.ResultRow) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Results"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []any{"Name", "Phone", "Score", "Max score", "Percent", "Started", "Finished", "Status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	const timeLayout = "2006-01-02 15:04"
	for i, r := range results {
		finished := ""
		status := "in progress"
		if r.CompletedAt != nil {
			finished = r.CompletedAt.Format(timeLayout)
			status = "completed"
		}
		row := []any{
			r.UserName,
			r.Phone,
			r.Score,
			r.MaxScore,
			fmt.Sprintf("%.1f%%", r.Percentage()),
			r.StartedAt.Format(timeLayout),
			finished,
			status,
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
