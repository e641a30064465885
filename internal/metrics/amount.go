// Package metrics derives budget, assessment and cost figures from user
// input. All functions are pure.
package metrics

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxPercent caps Percent. Free-text amounts have no size limit, so a ratio
// can exceed any integer type.
const MaxPercent = math.MaxInt32

var (
	hundred    = decimal.NewFromInt(100)
	half       = decimal.NewFromFloat(0.5)
	maxPercent = decimal.NewFromInt(MaxPercent)
)

// ParseAmount reads a non-negative amount from free text. Every character
// other than a digit or '.' is dropped, then the longest valid number at the
// start of what remains is used. Input with no digits yields zero.
//
//	"$1,234.50abc" -> 1234.5
//	"1.2.3"        -> 1.2
//	"abc"          -> 0
func ParseAmount(text string) decimal.Decimal {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// Keep the first '.' only: "1.2.3" parses like "1.2".
	if i := strings.IndexByte(cleaned, '.'); i >= 0 {
		if j := strings.IndexByte(cleaned[i+1:], '.'); j >= 0 {
			cleaned = cleaned[:i+1+j]
		}
	}
	cleaned = strings.TrimSuffix(cleaned, ".")
	if cleaned == "" {
		return decimal.Zero
	}
	if cleaned[0] == '.' {
		cleaned = "0" + cleaned
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Sum adds amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// RoundHalfUp rounds to the nearest integer, with halves going up.
func RoundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}

// Percent returns part as a whole-number percentage of whole, rounded half
// up and saturated at ±MaxPercent. It is zero when whole is not positive.
func Percent(part, whole decimal.Decimal) int {
	if !whole.IsPositive() {
		return 0
	}
	p := part.Mul(hundred).Div(whole)
	switch {
	case p.GreaterThanOrEqual(maxPercent):
		return MaxPercent
	case p.LessThanOrEqual(maxPercent.Neg()):
		return -MaxPercent
	}
	return int(RoundHalfUp(p))
}
