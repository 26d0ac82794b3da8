package service

import (
	"errors"
	"testing"
)

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("*Paris|| London ||Berlin")
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("options = %d, want 3", len(opts))
	}
	if !opts[0].IsCorrect || opts[0].Text != "Paris" {
		t.Fatalf("first option = %+v", opts[0])
	}
	if opts[1].IsCorrect || opts[1].Text != "London" {
		t.Fatalf("second option = %+v", opts[1])
	}
}

func TestParseOptionsMultipleCorrect(t *testing.T) {
	opts, err := ParseOptions("*2||3||*4||5")
	if err != nil {
		t.Fatalf("ParseOptions: %v", err)
	}
	correct := 0
	for _, o := range opts {
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 2 {
		t.Fatalf("correct = %d, want 2", correct)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	if _, err := ParseOptions("*only one"); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("single option: err = %v, want ErrNoOptions", err)
	}
	if _, err := ParseOptions("a||b||c"); !errors.Is(err, ErrNoCorrect) {
		t.Fatalf("no marker: err = %v, want ErrNoCorrect", err)
	}
	if _, err := ParseOptions("||  || *"); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("blank entries: err = %v, want ErrNoOptions", err)
	}
}
