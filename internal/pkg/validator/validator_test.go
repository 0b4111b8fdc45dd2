package validator

import "testing"

func TestValidator(t *testing.T) {
	v := New()
	v.Check(true, "title", "title must be provided")
	if !v.Valid() {
		t.Fatalf("errors = %v, want none", v.Errors)
	}

	v.Check(false, "title", "first")
	v.Check(false, "title", "second")

	if v.Valid() {
		t.Fatal("Valid() = true, want false")
	}
	if v.Errors["title"] != "first" {
		t.Errorf("title = %q, want first", v.Errors["title"])
	}

	v.AddError("color", "color must be valid HEX color")
	if len(v.Errors) != 2 {
		t.Errorf("errors = %v", v.Errors)
	}
}

func TestHexRX(t *testing.T) {
	for _, s := range []string{"#FF0000", "#a1b2c3"} {
		if !Matches(s, HexRX) {
			t.Errorf("%q should match", s)
		}
	}
	for _, s := range []string{"", "#fff", "ff0000", "#ffff", "#gg0000", "red"} {
		if Matches(s, HexRX) {
			t.Errorf("%q should not match", s)
		}
	}
}
