package symtable

import "testing"

func TestHashStringKnownValues(t *testing.T) {
	tests := []struct {
		key  string
		want uint64
	}{
		{"", 0},
		{"a", 'a'},
		{"ab", 'a'*hashMultiplier + 'b'},
		{"ba", 'b'*hashMultiplier + 'a'},
	}
	for _, tt := range tests {
		if got := HashString(tt.key); got != tt.want {
			t.Errorf("HashString(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestHashersAreDeterministic(t *testing.T) {
	keys := []string{"", "x", "identifier", "a slightly longer key with spaces"}
	for _, h := range []Hasher{HashString, XXHash} {
		for _, key := range keys {
			first := h(key)
			for i := 0; i < 3; i++ {
				if again := h(key); again != first {
					t.Fatalf("hasher gave %d then %d for %q", first, again, key)
				}
			}
		}
	}
}

// TestHashStringOrderSensitivity guards against a degenerate hash that
// ignores byte positions; such a hash would file every anagram set into
// one bucket.
func TestHashStringOrderSensitivity(t *testing.T) {
	if HashString("ab") == HashString("ba") {
		t.Error("HashString collides on transposed bytes")
	}
	if HashString("abc") == HashString("cab") {
		t.Error("HashString collides on rotated bytes")
	}
}
