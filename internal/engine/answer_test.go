package engine

import (
	"encoding/json"
	"testing"
)

func TestToggleIdempotence(t *testing.T) {
	var a Answer

	a = a.toggle(21)
	if !a.Selected(21) || a.Kind != AnswerMultiple {
		t.Fatalf("after first toggle: %+v", a)
	}

	a = a.toggle(22)
	if !a.Selected(21) || !a.Selected(22) {
		t.Fatalf("after second toggle: %+v", a)
	}

	// Toggling twice nets out.
	a = a.toggle(21)
	if a.Selected(21) {
		t.Fatalf("21 still selected after double toggle: %+v", a)
	}
	if !a.Selected(22) {
		t.Fatalf("22 lost by unrelated toggle: %+v", a)
	}
}

func TestMarshalAnswersKeysByQuestionID(t *testing.T) {
	data, err := MarshalAnswers(map[int64]Answer{
		101: {Kind: AnswerSingle, OptionIDs: []int64{10}},
		103: {Kind: AnswerText, Text: "essay"},
	})
	if err != nil {
		t.Fatalf("MarshalAnswers: %v", err)
	}

	var decoded map[string]Answer
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded["101"].OptionIDs[0] != 10 {
		t.Fatalf("q101 = %+v", decoded["101"])
	}
	if decoded["103"].Text != "essay" {
		t.Fatalf("q103 = %+v", decoded["103"])
	}
}
