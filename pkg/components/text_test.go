package components

import "testing"

func TestTruncateRunes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string unchanged", "Chicken Adobo", 80, "Chicken Adobo"},
		{"exactly max unchanged", "abcde", 5, "abcde"},
		{"over max gets tail", "abcdef", 5, "abcde..."},
		{"multibyte counted as runes", "ñañañ", 3, "ñañ..."},
		{"zero max", "abc", 0, "..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.in, tc.max, "..."); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestTruncateRunesEightyCharRule(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "x"
	}
	got := TruncateRunes(long, 80, "...")
	if len([]rune(got)) != 83 {
		t.Errorf("truncated length = %d runes, want 80 + 3 tail", len([]rune(got)))
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight should not shorten: %q", got)
	}
}

func TestTruncateIgnoresANSI(t *testing.T) {
	styled := "\x1b[1mChicken\x1b[22m Adobo"
	if VisibleLen(styled) != 13 {
		t.Errorf("VisibleLen = %d, want 13", VisibleLen(styled))
	}
	if got := Truncate(styled, 7); VisibleLen(got) != 7 {
		t.Errorf("Truncate visible width = %d, want 7", VisibleLen(got))
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("sour tamarind soup with pork", 10)
	if len(lines) < 3 {
		t.Errorf("Wrap produced %d lines: %q", len(lines), lines)
	}
	for _, l := range lines {
		if VisibleLen(l) > 10 {
			t.Errorf("line %q exceeds width", l)
		}
	}
}
