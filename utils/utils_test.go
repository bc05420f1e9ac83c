package utils

import "testing"

func TestCoercePrice(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{"100", 100},
		{" 99.5 ", 99.5},
		{50, 50},
		{int32(7), 7},
		{int64(8), 8},
		{12.25, 12.25},
		{"bad", 0},
		{"", 0},
		{nil, 0},
		{true, 0},
	}
	for _, tc := range cases {
		if got := CoercePrice(tc.in); got != tc.want {
			t.Errorf("CoercePrice(%#v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
