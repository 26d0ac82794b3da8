package engine

import (
	"testing"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

func TestScorePolicy(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Type: model.QuestionTypeSingle, Points: 2},
		{ID: 2, Type: model.QuestionTypeMultiple, Points: 4},
		{ID: 3, Type: model.QuestionTypeText, Points: 3},
	}
	correct := map[int64][]int64{
		1: {10},
		2: {21, 22, 23},
	}

	tests := []struct {
		name    string
		answers map[int64]Answer
		earned  float64
	}{
		{
			name:    "all skipped",
			answers: map[int64]Answer{},
			earned:  0,
		},
		{
			name: "single correct",
			answers: map[int64]Answer{
				1: {Kind: AnswerSingle, OptionIDs: []int64{10}},
			},
			earned: 2,
		},
		{
			name: "single wrong",
			answers: map[int64]Answer{
				1: {Kind: AnswerSingle, OptionIDs: []int64{11}},
			},
			earned: 0,
		},
		{
			name: "multiple exact set",
			answers: map[int64]Answer{
				2: {Kind: AnswerMultiple, OptionIDs: []int64{22, 21, 23}},
			},
			earned: 4,
		},
		{
			name: "multiple proper subset gets fraction",
			answers: map[int64]Answer{
				2: {Kind: AnswerMultiple, OptionIDs: []int64{21, 23}},
			},
			earned: 4 * 2.0 / 3.0,
		},
		{
			name: "multiple with false positive voids",
			answers: map[int64]Answer{
				2: {Kind: AnswerMultiple, OptionIDs: []int64{21, 22, 23, 20}},
			},
			earned: 0,
		},
		{
			name: "subset plus false positive still voids",
			answers: map[int64]Answer{
				2: {Kind: AnswerMultiple, OptionIDs: []int64{21, 20}},
			},
			earned: 0,
		},
		{
			name: "text never scores",
			answers: map[int64]Answer{
				3: {Kind: AnswerText, Text: "anything at all"},
			},
			earned: 0,
		},
		{
			name: "everything right",
			answers: map[int64]Answer{
				1: {Kind: AnswerSingle, OptionIDs: []int64{10}},
				2: {Kind: AnswerMultiple, OptionIDs: []int64{21, 22, 23}},
				3: {Kind: AnswerText, Text: "essay"},
			},
			earned: 6,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Score(questions, correct, tc.answers)
			if b.MaxPossible != 9 {
				t.Fatalf("max = %v, want 9", b.MaxPossible)
			}
			if diff := b.Earned - tc.earned; diff < -1e-9 || diff > 1e-9 {
				t.Fatalf("earned = %v, want %v", b.Earned, tc.earned)
			}
		})
	}
}

func TestScoreQuestionWithoutCorrectOptions(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Type: model.QuestionTypeSingle, Points: 5},
	}
	answers := map[int64]Answer{
		1: {Kind: AnswerSingle, OptionIDs: []int64{10}},
	}

	b := Score(questions, map[int64][]int64{}, answers)
	if b.MaxPossible != 5 {
		t.Fatalf("max = %v, want 5", b.MaxPossible)
	}
	if b.Earned != 0 {
		t.Fatalf("earned = %v, want 0 when nothing is marked correct", b.Earned)
	}
}

func TestPercentage(t *testing.T) {
	if p := (Breakdown{Earned: 3, MaxPossible: 9}).Percentage(); p < 33.3 || p > 33.4 {
		t.Fatalf("percentage = %v, want ~33.33", p)
	}
	if p := (Breakdown{Earned: 0, MaxPossible: 0}).Percentage(); p != 0 {
		t.Fatalf("empty breakdown percentage = %v, want 0", p)
	}
}

func TestGradeBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want Grade
	}{
		{100, GradeExcellent},
		{90, GradeExcellent},
		{89.9, GradeGood},
		{75, GradeGood},
		{74.9, GradeSatisfactory},
		{60, GradeSatisfactory},
		{59.9, GradeUnsatisfactory},
		{50, GradeUnsatisfactory},
		{49.9, GradeBad},
		{0, GradeBad},
	}
	for _, tc := range tests {
		if got := GradeFor(tc.pct); got != tc.want {
			t.Errorf("GradeFor(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestGradeKeys(t *testing.T) {
	keys := map[Grade]string{
		GradeExcellent:      "grade_5",
		GradeGood:           "grade_4",
		GradeSatisfactory:   "grade_3",
		GradeUnsatisfactory: "grade_2",
		GradeBad:            "grade_1",
	}
	for g, want := range keys {
		if got := g.Key(); got != want {
			t.Errorf("Grade(%d).Key() = %q, want %q", g, got, want)
		}
	}
}
