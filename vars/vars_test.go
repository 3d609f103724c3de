package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 0, 3, 4); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero("", "", ""); got != "" {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[int](); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		"T":     true,
		"y":     true,
		"false": false,
		"no":    false,
		"":      false,
		"foo":   false,
		" on ":  true,
		"1":     true,
		"0":     false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}
