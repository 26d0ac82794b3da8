package validator

import "testing"

func TestValidPhone(t *testing.T) {
	valid := []string{"+998901234567", "998901234567", "1234567890", "+123456789012345"}
	for _, p := range valid {
		if !ValidPhone(p) {
			t.Errorf("ValidPhone(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "12345", "+12345678901234567", "phone", "+998 90 123", "998-901-234567"}
	for _, p := range invalid {
		if ValidPhone(p) {
			t.Errorf("ValidPhone(%q) = true, want false", p)
		}
	}
}

func TestCheck(t *testing.T) {
	type form struct {
		Name  string `validate:"required,min=2"`
		Phone string `validate:"required,phone"`
	}

	if fields := Check(&form{Name: "Alice", Phone: "+998901234567"}); fields != nil {
		t.Fatalf("valid form failed: %v", fields)
	}

	fields := Check(&form{Name: "A", Phone: "nope"})
	if fields["Name"] != "min" {
		t.Errorf("Name failure = %q, want min", fields["Name"])
	}
	if fields["Phone"] != "phone" {
		t.Errorf("Phone failure = %q, want phone", fields["Phone"])
	}
}
