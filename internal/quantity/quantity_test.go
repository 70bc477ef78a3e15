package quantity

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{"2", 2},
		{"0", 0},
		{"1/2", 1},
		{"3/4", 1},
		{"1/4", 0},
		{"1 1/2", 2},
		{"2 1/2 1/2", 3},
		{"-5", -5},
	}

	for _, tc := range cases {
		got, err := Parse(tc.raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestParse_ZeroDenominator(t *testing.T) {
	if _, err := Parse("1/0"); err == nil {
		t.Fatal("expected error for zero denominator, got none")
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{"abc", "1/abc", "abc/2"}
	for _, raw := range cases {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) expected error, got none", raw)
		}
	}
}
