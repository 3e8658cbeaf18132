package parser

import (
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1,234.56", 1234.56},
		{"KSh 1,234.56", 1234.56},
		{"KSh1,234", 1234},
		{"Ksh500.00", 500},
		{"0", 0},
		{"", 0},
		{"-", 0},
		{"  2,500 ", 2500},
		{"10.5", 10.5},
		{"garbage", 0},
		{"12.34.56", 0},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.input)
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2024-01-05 10:00:00")
	want := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}
}

func TestParseDateInvalid(t *testing.T) {
	inputs := []string{"", "not a date", "05/01/2024 10:00", "2024-13-40 99:99:99"}
	for _, input := range inputs {
		if got := ParseDate(input); !got.IsZero() {
			t.Errorf("ParseDate(%q) = %v, want zero time", input, got)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Paid In", "paid in"},
		{"  Completion   Time ", "completion time"},
		{"WITHDRAWN", "withdrawn"},
	}
	for _, tt := range tests {
		if got := normalizeHeader(tt.input); got != tt.want {
			t.Errorf("normalizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
