package chef

import "testing"

func TestMeasure_String(t *testing.T) {
	cases := []struct {
		m    Measure
		want string
	}{
		{Dry, "dry"},
		{Liquid, "liquid"},
		{Unspecified, "unspecified"},
	}
	for _, tc := range cases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.m, got, tc.want)
		}
	}
}
