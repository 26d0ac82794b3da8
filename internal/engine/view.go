package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// OptionView is one answer option as the keyboard renders it. Index is the
// 1-based position used for the button label.
type OptionView struct {
	ID       int64
	Index    int
	Text     string
	Selected bool
}

// QuestionView is everything the presentation layer needs to render the
// question under the cursor.
type QuestionView struct {
	QuestionID int64
	Position   int // 1-based
	Total      int
	Text       string
	Type       model.QuestionType
	Points     float64
	Options    []OptionView
	Answered   bool
	CanPrev    bool
	CanNext    bool
	// TimeLeft is 0 for untimed sessions.
	TimeLeft time.Duration
}

// viewLocked builds the QuestionView for the cursor question. Callers hold
// s.mu.
func (e *Engine) viewLocked(ctx context.Context, s *TestSession) (*QuestionView, error) {
	q := s.current()
	ans := s.Answers[q.ID]

	v := &QuestionView{
		QuestionID: q.ID,
		Position:   s.Cursor + 1,
		Total:      len(s.Questions),
		Text:       q.Text,
		Type:       q.Type,
		Points:     q.Points,
		Answered:   ans.Kind != AnswerUnanswered,
		CanPrev:    s.Cursor > 0,
		CanNext:    s.Cursor < len(s.Questions)-1,
		TimeLeft:   s.TimeLeft(time.Now()),
	}

	if q.Type != model.QuestionTypeText {
		opts, err := e.catalog.GetOptions(ctx, q.ID)
		if err != nil {
			return nil, fmt.Errorf("get options: %w", err)
		}
		v.Options = make([]OptionView, 0, len(opts))
		for i, o := range opts {
			v.Options = append(v.Options, OptionView{
				ID:       o.ID,
				Index:    i + 1,
				Text:     o.Text,
				Selected: ans.Selected(o.ID),
			})
		}
	}

	return v, nil
}
