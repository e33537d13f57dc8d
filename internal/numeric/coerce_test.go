package numeric

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSafeNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"empty string", "", 0},
		{"blank string", "   ", 0},
		{"dot decimal", "15.50", 15.5},
		{"comma decimal", "15,50", 15.5},
		{"integer string", "40", 40},
		{"garbage", "abc", 0},
		{"mixed separators", "1.234,56", 0},
		{"negative comma", "-2,25", -2.25},
		{"json number", json.Number("3.75"), 3.75},
		{"bool true", true, 1},
		{"bool false", false, 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"unsupported type", struct{}{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeNumber(tc.in); got != tc.want {
				t.Fatalf("SafeNumber(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSafeInt(t *testing.T) {
	if got := SafeInt("2,9"); got != 2 {
		t.Fatalf("expected truncation to 2, got %d", got)
	}
	if got := SafeInt(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
