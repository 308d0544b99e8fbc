package fonts

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"handwriting", HandwritingStack},
		{" Handwriting ", HandwritingStack},
		{"arial", "arial"},
		{"Georgia", "Georgia"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAliasesResolve(t *testing.T) {
	aliases := Aliases()
	if len(aliases) == 0 {
		t.Fatal("no aliases")
	}
	for i, a := range aliases {
		if i > 0 && aliases[i-1] >= a {
			t.Errorf("Aliases() not sorted: %v", aliases)
		}
		if Resolve(a) == a {
			t.Errorf("alias %q does not resolve", a)
		}
	}
}
