package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"50.5", 50.5},
		{" 12.5 ", 12.5},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12,5", 0}, // comma separators are not a price format here
		{"NaN", 0},
		{"Inf", 0},
		{"-5", -5},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	if got := ParsePercent("10"); got != 10 {
		t.Fatalf("ParsePercent(10) = %v", got)
	}
	if got := ParsePercent("bogus"); got != 0 {
		t.Fatalf("ParsePercent(bogus) = %v, want 0", got)
	}
}
