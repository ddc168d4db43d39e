package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{999, "$999"},
		{1500, "$1,500"},
		{1_500_000, "$1,500,000"},
		{1_234_567.4, "$1,234,567"},
		{1_234_567.6, "$1,234,568"},
		{-50_000, "-$50,000"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1_234_567); got != "1,234,567" {
		t.Errorf("FormatNumber = %q, want 1,234,567", got)
	}
	if got := FormatNumber(-42); got != "-42" {
		t.Errorf("FormatNumber = %q, want -42", got)
	}
}

func TestFormatPercentAndShare(t *testing.T) {
	if got := FormatPercent(5); got != "5.0%" {
		t.Errorf("FormatPercent = %q, want 5.0%%", got)
	}
	if got := FormatShare(0.5); got != "50%" {
		t.Errorf("FormatShare = %q, want 50%%", got)
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(1); got != "1 month" {
		t.Errorf("FormatMonths(1) = %q", got)
	}
	if got := FormatMonths(6); got != "6 months" {
		t.Errorf("FormatMonths(6) = %q", got)
	}
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2025-06-15" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatMonthYear(d); got != "Jun 2025" {
		t.Errorf("FormatMonthYear = %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta(500); got != "+$500" {
		t.Errorf("FormatDelta(500) = %q", got)
	}
	if got := FormatDelta(-500); got != "-$500" {
		t.Errorf("FormatDelta(-500) = %q", got)
	}
}
