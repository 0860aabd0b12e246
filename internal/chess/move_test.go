package chess

import "testing"

func TestMove_String(t *testing.T) {
	tests := []struct {
		mv   Move
		want string
	}{
		{Move{From: MakeSquare(4, 1), To: MakeSquare(4, 3)}, "E2E4"},
		{Move{From: MakeSquare(4, 6), To: MakeSquare(4, 7), Promotion: Queen}, "E7E8Q"},
	}
	for _, tt := range tests {
		if got := tt.mv.String(); got != tt.want {
			t.Errorf("Move.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseMove_RoundTrip(t *testing.T) {
	tests := []string{"E2E4", "E7E8Q", "A1H8N"}
	for _, s := range tests {
		mv, ok := ParseMove(s)
		if !ok {
			t.Fatalf("ParseMove(%q) failed", s)
		}
		if got := mv.String(); got != s {
			t.Errorf("round trip mismatch: %q -> %+v -> %q", s, mv, got)
		}
	}
}

func TestParseMove_Malformed(t *testing.T) {
	tests := []string{"", "E2", "E2E4Q2", "Z2E4", "E2Z4", "E2E4Z"}
	for _, s := range tests {
		if _, ok := ParseMove(s); ok {
			t.Errorf("ParseMove(%q) should fail", s)
		}
	}
}

func TestMove_Matches_NormalizesCaseAndWhitespace(t *testing.T) {
	mv := Move{From: MakeSquare(4, 1), To: MakeSquare(4, 3)}
	for _, s := range []string{"e2e4", "E2E4", "  e2e4  ", "E2e4"} {
		if !mv.Matches(Normalize(s)) {
			t.Errorf("Matches(%q) = false, want true", s)
		}
	}
}

func TestMove_Matches_PromotionSuffixMustMatchExactly(t *testing.T) {
	mv := Move{From: MakeSquare(4, 6), To: MakeSquare(4, 7), Promotion: Queen}
	if !mv.Matches("E7E8Q") {
		t.Errorf("expected exact promotion suffix to match")
	}
	if mv.Matches("E7E8") {
		t.Errorf("missing promotion suffix should not match a promoting move")
	}
	if mv.Matches("E7E8R") {
		t.Errorf("wrong promotion suffix should not match")
	}
}
