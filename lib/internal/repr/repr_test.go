package repr

import "testing"

func TestRepr(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1, "1"},
		{-3, "-3"},
		{3.5, "3.5"},
		{"a", "'a'"},
		{"it's", `'it\'s'`},
		{"tab\t", `'tab\t'`},
		{`say "hi"`, `'say "hi"'`},
		{true, "True"},
		{false, "False"},
	}

	for _, tt := range tests {
		if got := Repr(tt.in); got != tt.want {
			t.Errorf("Repr(%#v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]int{1, 2, 3}); got != "1, 2, 3" {
		t.Errorf("Join ints = %q", got)
	}
	if got := Join([]string{"a", "b"}); got != "'a', 'b'" {
		t.Errorf("Join strings = %q", got)
	}
	if got := Join([]int{}); got != "" {
		t.Errorf("Join empty = %q", got)
	}
}
