package model

// QuestionType enumerates the supported answer rules.
type QuestionType string

const (
	QuestionTypeSingle   QuestionType = "single"
	QuestionTypeMultiple QuestionType = "multiple"
	QuestionTypeText     QuestionType = "text"
)

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeSingle, QuestionTypeMultiple, QuestionTypeText:
		return true
	}
	return false
}

// Question belongs to exactly one test. The session engine treats questions
// as immutable once a session has started against them.
type Question struct {
	ID       int64        `json:"id"`
	TestID   int64        `json:"test_id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Points   float64      `json:"points"`
	OrderNum int          `json:"order_num"`
}

// QuestionForm collects the admin question wizard fields. OptionsRaw keeps
// the ||-joined, *-prefixed option syntax shared with the Excel import.
type QuestionForm struct {
	Text       string  `validate:"required,min=1,max=2000"`
	Type       string  `validate:"required,oneof=single multiple text"`
	Points     float64 `validate:"min=0"`
	OptionsRaw string  `validate:"-"`
}
