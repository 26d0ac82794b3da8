package engine

import (
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// Breakdown is the scorer's output for one finalized answer map.
type Breakdown struct {
	Earned      float64
	MaxPossible float64
}

// Percentage returns 100·earned/max, or 0 when nothing was scorable.
func (b Breakdown) Percentage() float64 {
	if b.MaxPossible <= 0 {
		return 0
	}
	return b.Earned / b.MaxPossible * 100
}

// Score computes the breakdown for a finalized session. Pure function: it
// never touches the session or the store.
//
// correctByQuestion maps question ID to the IDs of its correct options. A
// non-text question with no correct option contributes its points to the
// maximum but can never earn anything.
//
// Policy, preserved exactly from the grading rules this bot has always used:
//   - text questions are never scored automatically;
//   - single: full points iff the one selection is a correct option;
//   - multiple: full points for set equality; a non-empty proper subset of
//     the correct set earns points·|selected|/|correct|; any selection
//     containing an incorrect option earns zero outright.
func Score(questions []model.Question, correctByQuestion map[int64][]int64, answers map[int64]Answer) Breakdown {
	var b Breakdown

	for _, q := range questions {
		b.MaxPossible += q.Points

		ans, ok := answers[q.ID]
		if !ok || ans.Kind == AnswerUnanswered {
			continue
		}

		if q.Type == model.QuestionTypeText {
			continue
		}

		correct := correctByQuestion[q.ID]
		if len(correct) == 0 {
			continue
		}

		switch q.Type {
		case model.QuestionTypeSingle:
			if len(ans.OptionIDs) == 1 && containsID(correct, ans.OptionIDs[0]) {
				b.Earned += q.Points
			}
		case model.QuestionTypeMultiple:
			b.Earned += multipleCredit(q.Points, ans.OptionIDs, correct)
		}
	}

	return b
}

// multipleCredit implements the subset-only partial credit rule.
func multipleCredit(points float64, selected, correct []int64) float64 {
	if len(selected) == 0 {
		return 0
	}
	for _, id := range selected {
		if !containsID(correct, id) {
			return 0 // any false positive voids the question
		}
	}
	if len(selected) == len(correct) {
		return points
	}
	return points * float64(len(selected)) / float64(len(correct))
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Grade is one of the five discrete grade bands.
type Grade int

const (
	GradeBad Grade = iota + 1
	GradeUnsatisfactory
	GradeSatisfactory
	GradeGood
	GradeExcellent
)

// GradeFor maps a percentage to its band. Inclusive lower bounds.
func GradeFor(percentage float64) Grade {
	switch {
	case percentage >= 90:
		return GradeExcellent
	case percentage >= 75:
		return GradeGood
	case percentage >= 60:
		return GradeSatisfactory
	case percentage >= 50:
		return GradeUnsatisfactory
	default:
		return GradeBad
	}
}

// Key returns the localization key for the band label.
func (g Grade) Key() string {
	switch g {
	case GradeExcellent:
		return "grade_5"
	case GradeGood:
		return "grade_4"
	case GradeSatisfactory:
		return "grade_3"
	case GradeUnsatisfactory:
		return "grade_2"
	default:
		return "grade_1"
	}
}
