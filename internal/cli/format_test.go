package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1500", "$1,500"},
		{"300.5", "$300.50"},
		{"-100", "-$100"},
		{"1234.567", "$1,234.57"},
		{"0", "$0"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercentAndCountdown(t *testing.T) {
	if got := FormatPercent(19); got != "19%" {
		t.Errorf("FormatPercent(19) = %q", got)
	}
	if got := FormatCountdown(-3); got != "0s" {
		t.Errorf("FormatCountdown(-3) = %q", got)
	}
}
