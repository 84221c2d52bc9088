package utils

import (
	"math"
	"testing"
)

func TestParseIntervalHours(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"hours only", "03:00:00", 3.0},
		{"hours minutes", "02:30:00", 2.5},
		{"seconds", "00:00:36", 0.01},
		{"single day", "1 day 00:00:00", 24.0},
		{"multiple days", "3 days 04:30:00", 76.5},
		{"days plural with minutes", "2 days 12:15:00", 60.25},
		{"zero", "00:00:00", 0.0},
		{"fractional seconds", "01:00:00.500", 1.0},
		{"negative hours", "-04:30:00", -4.5},
		{"negative with days", "-2 days 12:00:00", -60.0},
		{"negative zero", "-00:00:00", 0.0},
		{"empty string", "", 0.0},
		{"garbage", "not a duration", 0.0},
		{"missing seconds", "12:30", 0.0},
		{"sign without digits", "-", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIntervalHours(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseIntervalHours(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{1.24, 1.2},
		{1.25, 1.3},
		{-1.25, -1.3},
		{0, 0},
		{99.96, 100.0},
	}

	for _, tt := range tests {
		if got := Round1(tt.input); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(1.005); got != 1.0 && got != 1.01 {
		// 1.005 is not exactly representable; accept either neighbor
		t.Errorf("Round2(1.005) = %v", got)
	}
	if got := Round2(2.345); got != 2.35 && got != 2.34 {
		t.Errorf("Round2(2.345) = %v", got)
	}
	if got := Round2(10.123); got != 10.12 {
		t.Errorf("Round2(10.123) = %v, want 10.12", got)
	}
}
