package engine

import (
	"encoding/json"
	"strconv"
)

// AnswerKind tags the Answer variant so the scorer can match exhaustively
// instead of sniffing an untyped payload.
type AnswerKind string

const (
	AnswerUnanswered AnswerKind = "unanswered"
	AnswerSingle     AnswerKind = "single"
	AnswerMultiple   AnswerKind = "multiple"
	AnswerText       AnswerKind = "text"
)

// Answer is the recorded response for one question.
//   - AnswerSingle:   OptionIDs holds exactly one element.
//   - AnswerMultiple: OptionIDs holds the toggled set, possibly empty.
//   - AnswerText:     Text holds the trimmed free-text response.
type Answer struct {
	Kind      AnswerKind `json:"kind"`
	OptionIDs []int64    `json:"option_ids,omitempty"`
	Text      string     `json:"text,omitempty"`
}

// Selected reports whether optionID is part of this answer.
func (a Answer) Selected(optionID int64) bool {
	for _, id := range a.OptionIDs {
		if id == optionID {
			return true
		}
	}
	return false
}

// toggle flips optionID's membership and returns the updated answer.
// Toggling the same option twice nets out to the original state.
func (a Answer) toggle(optionID int64) Answer {
	out := Answer{Kind: AnswerMultiple}
	removed := false
	for _, id := range a.OptionIDs {
		if id == optionID {
			removed = true
			continue
		}
		out.OptionIDs = append(out.OptionIDs, id)
	}
	if !removed {
		out.OptionIDs = append(out.OptionIDs, optionID)
	}
	return out
}

// MarshalAnswers serializes an answer map for the result record, keyed by
// question ID.
func MarshalAnswers(answers map[int64]Answer) ([]byte, error) {
	out := make(map[string]Answer, len(answers))
	for qid, a := range answers {
		out[strconv.FormatInt(qid, 10)] = a
	}
	return json.Marshal(out)
}
