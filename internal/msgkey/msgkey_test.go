package msgkey

import "testing"

func TestDerive(t *testing.T) {
	// sha256("hello") = 2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824
	if got := Derive("hello"); got != "2cf24dba" {
		t.Errorf("expected 2cf24dba got %s", got)
	}
	if Derive("hello") != Derive("hello") {
		t.Error("key is not stable")
	}
	if Derive("hello") == Derive("HELLO") {
		t.Error("key ignores case of the raw input")
	}
}

func TestDeriveN(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-1, 0},
		{0, 0},
		{12, 12},
		{64, 64},
		{100, 64},
	}
	for _, tt := range tests {
		if got := DeriveN("hello", tt.n); len(got) != tt.want {
			t.Errorf("DeriveN(%d): expected %d characters got %d", tt.n, tt.want, len(got))
		}
	}
}
